package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	markModel "planner_backend/internals/features/planner/marks/model"
	authService "planner_backend/internals/features/users/auth/service"
	codeRepo "planner_backend/internals/features/users/registration_codes/repository"
	userModel "planner_backend/internals/features/users/user/model"
	userRepo "planner_backend/internals/features/users/user/repository"
	"planner_backend/internals/helpers/apperr"
	"planner_backend/internals/testutil"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &commandLine{db: testutil.NewTestDB(t), out: out}, out
}

type cliTest struct {
	name       string
	args       []string // tanpa nama program
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(tt.args)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErrStr, err.Error())
			default:
				require.NoError(t, err)
			}
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_help(t *testing.T) {
	cli, out := setup(t)
	runCLITests(t, cli, out, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "code without subcommand", args: []string{"code"}, wantErr: errHelp, wantOut: "Manage registration codes"},
		{name: "user without subcommand", args: []string{"user"}, wantErr: errHelp},
	})
}

func Test_commandLine_code(t *testing.T) {
	cli, out := setup(t)
	runCLITests(t, cli, out, []cliTest{
		{name: "bad permission", args: []string{"code", "create", "--permission", "admin"}, wantErrStr: `unknown permission "admin"`},
		{name: "create teacher code", args: []string{"code", "create", "--code", "staff-2026"}, wantOut: "staff-2026\tteacher"},
		{name: "duplicate code", args: []string{"code", "create", "--code", "staff-2026"}, wantErr: apperr.ErrConflict},
		{name: "create student code", args: []string{"code", "create", "--permission", "student", "--code", "pupil"}, wantOut: "pupil\tstudent"},
		{name: "list", args: []string{"code", "list"}, wantOut: "pupil\tstudent\n"},
	})

	out.Reset()
	require.NoError(t, cli.run([]string{"code", "create"}))
	codes, err := codeRepo.ListCodes(cli.db)
	require.NoError(t, err)
	require.Len(t, codes, 3)
	generated := 0
	for _, c := range codes {
		if len(c.RegistrationCode) == 36 {
			generated++
			assert.Equal(t, userModel.PermissionTeacher, c.RegistrationCodePermission)
		}
	}
	assert.Equal(t, 1, generated)
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli, out := setup(t)
	reg, err := authService.Register(cli.db, "awe", "old", nil)
	require.NoError(t, err)

	orig := readPasswordFunc
	t.Cleanup(func() { readPasswordFunc = orig })
	pwd := "new-secret"
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }

	runCLITests(t, cli, out, []cliTest{
		{name: "no args", args: []string{"user", "reset-password"}, wantErrStr: "accepts 1 arg(s), received 0"},
		{name: "unknown user", args: []string{"user", "reset-password", "nobody"}, wantErr: apperr.ErrNotFound},
		{name: "ok", args: []string{"user", "reset-password", "awe"}, wantOut: "password updated for awe"},
	})

	_, err = authService.ResolveSession(cli.db, reg.Token)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = authService.Login(cli.db, "awe", "new-secret")
	assert.NoError(t, err)

	pwd = ""
	err = cli.run([]string{"user", "reset-password", "awe"})
	assert.ErrorIs(t, err, errHelp)

	readPasswordFunc = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	err = cli.run([]string{"user", "reset-password", "awe"})
	assert.EqualError(t, err, "not a terminal")
}

func Test_commandLine_resetAndDelete(t *testing.T) {
	cli, out := setup(t)
	testutil.CreateUser(t, cli.db, 1, "awe", userModel.PermissionStudent)

	runCLITests(t, cli, out, []cliTest{
		{name: "reset", args: []string{"user", "reset", "awe"}, wantOut: "reset awe:"},
		{name: "delete", args: []string{"user", "delete", "awe"}, wantOut: "deleted awe:"},
		{name: "delete again", args: []string{"user", "delete", "awe"}, wantErr: apperr.ErrNotFound},
	})

	_, err := userRepo.GetUserByUsername(cli.db, "awe")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func Test_commandLine_reap(t *testing.T) {
	cli, out := setup(t)
	runCLITests(t, cli, out, []cliTest{
		{name: "dry run", args: []string{"reap", "--dry-run"}, wantOut: "dry_run=true slots=0 memberships=0 attendance=0 homework=0"},
		{name: "fix", args: []string{"reap"}, wantOut: "dry_run=false"},
		{name: "extra args", args: []string{"reap", "now"}, wantErrStr: `unknown command "now" for "admin reap"`},
	})

	// mark tanpa owner hanya dilaporkan, tidak dihapus
	require.NoError(t, cli.db.Create(&markModel.MarkModel{MarkUserID: 77, MarkName: "Quiz", MarkValue: 80, MarkGrade: "B"}).Error)
	runCLITests(t, cli, out, []cliTest{
		{name: "ownerless", args: []string{"reap"}, wantOut: "ownerless marks=1 homework=0 events=0 classes=0"},
		{name: "ownerless again", args: []string{"reap"}, wantOut: "ownerless marks=1"},
	})
}
