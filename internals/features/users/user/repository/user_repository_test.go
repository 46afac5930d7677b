package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "planner_backend/internals/features/users/user/model"
	"planner_backend/internals/helpers/apperr"
	"planner_backend/internals/testutil"
)

func TestNextUserID(t *testing.T) {
	db := testutil.NewTestDB(t)

	id, err := NextUserID(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	testutil.CreateUser(t, db, 7, "seven", userModel.PermissionStudent)
	id, err = NextUserID(db)
	require.NoError(t, err)
	assert.Equal(t, uint(8), id)
}

func TestCreateUser_DuplicateNameIsConflict(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, 1, "alice", userModel.PermissionStudent)

	err := CreateUser(db, &userModel.UserModel{UserID: 2, UserName: "alice", UserPassword: "x", UserSalt: "x"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestGetUserByUsername_CaseSensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, 1, "Alice", userModel.PermissionStudent)

	u, err := GetUserByUsername(db, "Alice")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.UserID)

	_, err = GetUserByUsername(db, "alice")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSearchUsers(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, 1, "Alice", userModel.PermissionTeacher)
	testutil.CreateUser(t, db, 2, "malice", userModel.PermissionStudent)
	testutil.CreateUser(t, db, 3, "bob", userModel.PermissionStudent)
	testutil.CreateUser(t, db, 4, "a_b", userModel.PermissionStudent)

	users, err := SearchUsers(db, "ALI", 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "malice", users[0].UserName)

	// "_" literal, bukan wildcard
	users, err = SearchUsers(db, "_", 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a_b", users[0].UserName)
}

func TestSessionAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, 1, "alice", userModel.PermissionStudent)
	testutil.CreateUser(t, db, 2, "bob", userModel.PermissionStudent)

	token := "tok"
	require.NoError(t, SetSession(db, 1, &token))
	u, err := GetUserBySession(db, "tok")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.UserID)

	// dua user tanpa session (NULL) tidak bentrok di unique index
	require.NoError(t, SetSession(db, 1, nil))
	_, err = GetUserBySession(db, "tok")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, SetSession(db, 99, &token), apperr.ErrNotFound)

	found, err := DeleteUser(db, 2)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = DeleteUser(db, 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetUsersByIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, 2, "bob", userModel.PermissionStudent)
	testutil.CreateUser(t, db, 1, "alice", userModel.PermissionStudent)

	users, err := GetUsersByIDs(db, []uint{2, 1, 42})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, uint(1), users[0].UserID)

	users, err = GetUsersByIDs(db, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSearchUsersPage(t *testing.T) {
	db := testutil.NewTestDB(t)
	for i, name := range []string{"sam", "samantha", "samir", "bob"} {
		testutil.CreateUser(t, db, uint(i+1), name, userModel.PermissionStudent)
	}

	users, total, err := SearchUsersPage(db, "sam", 0, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 2)
	assert.Equal(t, "sam", users[0].UserName)
	assert.Equal(t, "samantha", users[1].UserName)

	users, total, err = SearchUsersPage(db, "sam", 0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 1)
	assert.Equal(t, "samir", users[0].UserName)
}
