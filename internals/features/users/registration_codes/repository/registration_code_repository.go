package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	codeModel "planner_backend/internals/features/users/registration_codes/model"
	userModel "planner_backend/internals/features/users/user/model"
	"planner_backend/internals/helpers/apperr"
)

func CreateCode(db *gorm.DB, code string, perm userModel.Permission) (*codeModel.RegistrationCodeModel, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperr.InvalidInput("code must not be empty")
	}
	if !perm.Valid() {
		return nil, apperr.InvalidInput("invalid permission")
	}
	m := &codeModel.RegistrationCodeModel{
		RegistrationCode:           code,
		RegistrationCodePermission: perm,
	}
	if err := db.Create(m).Error; err != nil {
		return nil, apperr.FromDB(err, "code already exists")
	}
	return m, nil
}

func GetCode(db *gorm.DB, code string) (*codeModel.RegistrationCodeModel, error) {
	var m codeModel.RegistrationCodeModel
	if err := db.Where("registration_code = ?", code).First(&m).Error; err != nil {
		return nil, apperr.FromDB(err, "registration code not found")
	}
	return &m, nil
}

func ListCodes(db *gorm.DB) ([]codeModel.RegistrationCodeModel, error) {
	var out []codeModel.RegistrationCodeModel
	if err := db.Order("registration_code_created_at ASC").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list registration codes")
	}
	return out, nil
}

// ConsumeCode mengembalikan permission dari code lalu menghapusnya.
// Code kosong / tidak dikenal → PermissionStudent, tanpa error.
func ConsumeCode(db *gorm.DB, code *string) (userModel.Permission, error) {
	if code == nil || strings.TrimSpace(*code) == "" {
		return userModel.PermissionStudent, nil
	}
	m, err := GetCode(db, strings.TrimSpace(*code))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return userModel.PermissionStudent, nil
		}
		return 0, err
	}
	res := db.Where("registration_code = ?", m.RegistrationCode).Delete(&codeModel.RegistrationCodeModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to consume registration code")
	}
	// sudah dipakai request lain di antara read & delete
	if res.RowsAffected == 0 {
		return userModel.PermissionStudent, nil
	}
	return m.RegistrationCodePermission, nil
}
