package model

import "time"

// Nama field sensitif yang bisa di-redact.
const (
	FieldSession  = "session"
	FieldPassword = "password"
	FieldSalt     = "salt"
)

var sensitiveFields = []string{FieldSession, FieldPassword, FieldSalt}

// UserView adalah bentuk user yang aman dikirim keluar.
// Field sensitif yang di-redact bernilai nil dan tidak ikut di-serialize.
type UserView struct {
	UserID         uint       `json:"user_id"`
	UserName       string     `json:"user_name"`
	UserCreatedAt  time.Time  `json:"user_created_at"`
	UserPermission Permission `json:"user_permission"`

	UserPassword *string `json:"user_password,omitempty"`
	UserSalt     *string `json:"user_salt,omitempty"`
	UserSession  *string `json:"user_session,omitempty"`
}

// Redact mengembalikan view tanpa field yang disebut. User asli tidak diubah.
func Redact(u *UserModel, fields ...string) UserView {
	v := UserView{
		UserID:         u.UserID,
		UserName:       u.UserName,
		UserCreatedAt:  u.UserCreatedAt,
		UserPermission: u.UserPermission,
	}
	pwd, salt := u.UserPassword, u.UserSalt
	v.UserPassword = &pwd
	v.UserSalt = &salt
	if u.UserSession != nil {
		s := *u.UserSession
		v.UserSession = &s
	}

	for _, f := range fields {
		switch f {
		case FieldSession:
			v.UserSession = nil
		case FieldPassword:
			v.UserPassword = nil
		case FieldSalt:
			v.UserSalt = nil
		}
	}
	return v
}

// PublicView = Redact semua field sensitif.
func PublicView(u *UserModel) UserView {
	return Redact(u, sensitiveFields...)
}

func PublicViews(users []UserModel) []UserView {
	out := make([]UserView, 0, len(users))
	for i := range users {
		out = append(out, PublicView(&users[i]))
	}
	return out
}
