package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	codeRepo "planner_backend/internals/features/users/registration_codes/repository"
	userModel "planner_backend/internals/features/users/user/model"
	userRepo "planner_backend/internals/features/users/user/repository"
	"planner_backend/internals/helpers/apperr"
)

type RegisterResult struct {
	UserID     uint                 `json:"user_id"`
	Token      string               `json:"access_token"`
	Permission userModel.Permission `json:"permission"`
}

// Register membuat user baru dan langsung memberi session.
// Username disimpan apa adanya: tidak di-trim, perbandingan exact & case-sensitive.
// Cek username, alokasi id, konsumsi code, dan insert berjalan dalam satu transaksi.
func Register(db *gorm.DB, username, password string, code *string) (*RegisterResult, error) {
	if username == "" || password == "" {
		return nil, apperr.InvalidInput("username and password are required")
	}

	salt, err := NewSalt()
	if err != nil {
		return nil, apperr.Storage(err, "failed to generate salt")
	}
	token, err := NewSessionToken()
	if err != nil {
		return nil, apperr.Storage(err, "failed to generate session")
	}
	digest := HashPassword(salt, password)

	var out RegisterResult
	err = db.Transaction(func(tx *gorm.DB) error {
		if _, err := userRepo.GetUserByUsername(tx, username); err == nil {
			return apperr.Conflict("username taken")
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return err
		}

		perm, err := codeRepo.ConsumeCode(tx, code)
		if err != nil {
			return err
		}
		id, err := userRepo.NextUserID(tx)
		if err != nil {
			return err
		}

		u := &userModel.UserModel{
			UserID:         id,
			UserName:       username,
			UserPassword:   digest,
			UserSalt:       salt,
			UserPermission: perm,
			UserSession:    &token,
		}
		if err := userRepo.CreateUser(tx, u); err != nil {
			return err
		}
		out = RegisterResult{UserID: id, Token: token, Permission: perm}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[AUTH] user registered id=%d permission=%s", out.UserID, out.Permission)
	return &out, nil
}

// Login: user tidak ada & password salah sama-sama ErrInvalidCredentials.
func Login(db *gorm.DB, username, password string) (string, error) {
	u, err := userRepo.GetUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.ErrInvalidCredentials
		}
		return "", err
	}
	if !CheckPassword(u.UserPassword, u.UserSalt, password) {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := NewSessionToken()
	if err != nil {
		return "", apperr.Storage(err, "failed to generate session")
	}
	if err := userRepo.SetSession(db, u.UserID, &token); err != nil {
		return "", err
	}
	log.Printf("[AUTH] login id=%d", u.UserID)
	return token, nil
}

func Logout(db *gorm.DB, userID uint) error {
	return userRepo.SetSession(db, userID, nil)
}

func ResolveSession(db *gorm.DB, token string) (*userModel.UserModel, error) {
	return userRepo.GetUserBySession(db, token)
}

// SetPassword memberi salt baru lalu menyimpan digest baru.
func SetPassword(db *gorm.DB, userID uint, password string) error {
	if password == "" {
		return apperr.InvalidInput("password is required")
	}
	salt, err := NewSalt()
	if err != nil {
		return apperr.Storage(err, "failed to generate salt")
	}
	return userRepo.UpdateUserCredentials(db, userID, HashPassword(salt, password), salt)
}

// UpdateUsername: username baru harus unik (case-sensitive, exact; spasi tidak di-trim).
func UpdateUsername(db *gorm.DB, userID uint, username string) (*userModel.UserModel, error) {
	if username == "" {
		return nil, apperr.InvalidInput("username is required")
	}

	var out *userModel.UserModel
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := userRepo.GetUserByUsername(tx, username)
		switch {
		case err == nil && existing.UserID != userID:
			return apperr.Conflict("username taken")
		case err != nil && !errors.Is(err, apperr.ErrNotFound):
			return err
		}
		if err := userRepo.UpdateUserName(tx, userID, username); err != nil {
			return err
		}
		out, err = userRepo.GetUserByID(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
