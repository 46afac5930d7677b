package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "planner_backend/internals/features/users/user/model"
	"planner_backend/internals/helpers/apperr"
	"planner_backend/internals/testutil"
)

func ptr(s string) *string { return &s }

func TestConsumeCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := CreateCode(db, "T1", userModel.PermissionTeacher)
	require.NoError(t, err)

	tests := []struct {
		name string
		code *string
		want userModel.Permission
	}{
		{name: "nil code", code: nil, want: userModel.PermissionStudent},
		{name: "blank code", code: ptr("  "), want: userModel.PermissionStudent},
		{name: "unknown code", code: ptr("nope"), want: userModel.PermissionStudent},
		{name: "valid code", code: ptr(" T1 "), want: userModel.PermissionTeacher},
		{name: "already used", code: ptr("T1"), want: userModel.PermissionStudent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConsumeCode(db, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	codes, err := ListCodes(db)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestCreateCode_Validation(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := CreateCode(db, "", userModel.PermissionTeacher)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = CreateCode(db, "X", userModel.Permission(9))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = CreateCode(db, "X", userModel.PermissionStudent)
	require.NoError(t, err)
	_, err = CreateCode(db, "X", userModel.PermissionTeacher)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	m, err := GetCode(db, "X")
	require.NoError(t, err)
	assert.Equal(t, userModel.PermissionStudent, m.RegistrationCodePermission)
}
