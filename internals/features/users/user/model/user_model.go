package model

import (
	"time"
)

// UserModel merepresentasikan tabel users.
// user_id dialokasikan manual (max+1), bukan auto increment.
type UserModel struct {
	UserID         uint       `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	UserName       string     `gorm:"column:user_name;type:varchar(50);not null;uniqueIndex:ux_users_user_name" json:"user_name"`
	UserPassword   string     `gorm:"column:user_password;type:varchar(128);not null" json:"-"`
	UserSalt       string     `gorm:"column:user_salt;type:varchar(16);not null" json:"-"`
	UserCreatedAt  time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserPermission Permission `gorm:"column:user_permission;not null;default:1" json:"user_permission"`
	UserSession    *string    `gorm:"column:user_session;type:varchar(32);uniqueIndex:ux_users_user_session" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

// HasSession true kalau user sedang login.
func (u *UserModel) HasSession() bool {
	return u.UserSession != nil && *u.UserSession != ""
}

// IsTeacher shortcut untuk cek permission minimal Teacher.
func (u *UserModel) IsTeacher() bool {
	return u.UserPermission.AtLeast(PermissionTeacher)
}
