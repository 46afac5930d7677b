// Package testutil menyiapkan database SQLite in-memory untuk test.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"planner_backend/internals/configs"
	database "planner_backend/internals/databases"
	userModel "planner_backend/internals/features/users/user/model"
)

// NewTestDB membuka database in-memory yang terisolasi per test, lengkap dengan schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := configs.Config{
		DBDriver:   configs.DriverSQLite,
		DBPath:     fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBLogLevel: gormLogger.Silent,
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { database.Close(db) })
	return db
}

// CreateUser menyisipkan user langsung (tanpa hashing) untuk kebutuhan test.
func CreateUser(t *testing.T, db *gorm.DB, id uint, name string, perm userModel.Permission) *userModel.UserModel {
	t.Helper()

	u := &userModel.UserModel{
		UserID:         id,
		UserName:       name,
		UserPassword:   "x",
		UserSalt:       "x",
		UserPermission: perm,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
