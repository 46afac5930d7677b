package repository

import (
	"strings"

	"gorm.io/gorm"

	userModel "planner_backend/internals/features/users/user/model"
	"planner_backend/internals/helpers/apperr"
)

/* ====================== READ ====================== */

func GetUserByID(db *gorm.DB, id uint) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}
	return &u, nil
}

// GetUserByUsername: pencocokan case-sensitive.
func GetUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Where("user_name = ?", username).First(&u).Error; err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}
	return &u, nil
}

// GetUserBySession: token kosong selalu not found (tidak pernah cocok dengan NULL).
func GetUserBySession(db *gorm.DB, token string) (*userModel.UserModel, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperr.NotFound("session not found")
	}
	var u userModel.UserModel
	if err := db.Where("user_session = ?", token).First(&u).Error; err != nil {
		return nil, apperr.FromDB(err, "session not found")
	}
	return &u, nil
}

func ListUsers(db *gorm.DB) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := db.Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list users")
	}
	return users, nil
}

// GetUsersByIDs: id yang tidak ada dilewati, urut user_id.
func GetUsersByIDs(db *gorm.DB, ids []uint) ([]userModel.UserModel, error) {
	users := []userModel.UserModel{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := db.Where("user_id IN ?", ids).Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to load users")
	}
	return users, nil
}

// SearchUsers: substring (case-insensitive) pada username, tanpa excludeID.
func SearchUsers(db *gorm.DB, fragment string, excludeID uint) ([]userModel.UserModel, error) {
	users, _, err := SearchUsersPage(db, fragment, excludeID, -1, 0)
	return users, err
}

// SearchUsersPage = SearchUsers + total & limit/offset (limit -1 = semua).
func SearchUsersPage(db *gorm.DB, fragment string, excludeID uint, limit, offset int) ([]userModel.UserModel, int64, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(fragment))) + "%"
	q := db.Model(&userModel.UserModel{}).
		Where("LOWER(user_name) LIKE ? ESCAPE '\\'", pattern).
		Where("user_id <> ?", excludeID).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.FromDB(err, "failed to search users")
	}

	var users []userModel.UserModel
	err := q.Order("user_name ASC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, apperr.FromDB(err, "failed to search users")
	}
	return users, total, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// NextUserID = max(user_id) + 1, atau 1 kalau tabel kosong.
func NextUserID(db *gorm.DB) (uint, error) {
	var maxID uint
	if err := db.Model(&userModel.UserModel{}).Select("COALESCE(MAX(user_id), 0)").Scan(&maxID).Error; err != nil {
		return 0, apperr.FromDB(err, "failed to allocate user id")
	}
	return maxID + 1, nil
}

/* ====================== WRITE ====================== */

func CreateUser(db *gorm.DB, u *userModel.UserModel) error {
	if err := db.Create(u).Error; err != nil {
		return apperr.FromDB(err, "username taken")
	}
	return nil
}

func UpdateUserName(db *gorm.DB, id uint, username string) error {
	res := db.Model(&userModel.UserModel{}).Where("user_id = ?", id).Update("user_name", username)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "username taken")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

func UpdateUserCredentials(db *gorm.DB, id uint, digest, salt string) error {
	res := db.Model(&userModel.UserModel{}).Where("user_id = ?", id).
		Updates(map[string]interface{}{"user_password": digest, "user_salt": salt})
	if res.Error != nil {
		return apperr.FromDB(res.Error, "failed to update password")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// SetSession menyimpan token baru (menggantikan yang lama); nil = logout.
func SetSession(db *gorm.DB, id uint, token *string) error {
	res := db.Model(&userModel.UserModel{}).Where("user_id = ?", id).Update("user_session", token)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "failed to store session")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// DeleteUser: hapus row user saja. Relasi dibersihkan oleh lifecycle service.
func DeleteUser(db *gorm.DB, id uint) (bool, error) {
	res := db.Where("user_id = ?", id).Delete(&userModel.UserModel{})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to delete user")
	}
	return res.RowsAffected > 0, nil
}
