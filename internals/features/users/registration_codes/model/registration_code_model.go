package model

import (
	"time"

	userModel "planner_backend/internals/features/users/user/model"
)

// RegistrationCodeModel: kode sekali pakai yang memberi permission non-default saat register.
type RegistrationCodeModel struct {
	RegistrationCode           string               `gorm:"column:registration_code;type:varchar(64);primaryKey" json:"registration_code"`
	RegistrationCodePermission userModel.Permission `gorm:"column:registration_code_permission;not null" json:"registration_code_permission"`
	RegistrationCodeCreatedAt  time.Time            `gorm:"column:registration_code_created_at;autoCreateTime" json:"registration_code_created_at"`
}

func (RegistrationCodeModel) TableName() string {
	return "registration_codes"
}
