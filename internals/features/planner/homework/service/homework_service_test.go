package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	classModel "planner_backend/internals/features/planner/classes/model"
	classRepo "planner_backend/internals/features/planner/classes/repository"
	homeworkModel "planner_backend/internals/features/planner/homework/model"
	homeworkRepo "planner_backend/internals/features/planner/homework/repository"
	userModel "planner_backend/internals/features/users/user/model"
	"planner_backend/internals/helpers/apperr"
	"planner_backend/internals/testutil"
)

var due = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// classWithStudents: teacher id 1, murid id 2..n+1.
func classWithStudents(t *testing.T, db *gorm.DB, n int) uint {
	t.Helper()
	testutil.CreateUser(t, db, 1, "teacher", userModel.PermissionTeacher)
	c := &classModel.ClassModel{ClassTeacherID: 1, ClassName: "7B"}
	require.NoError(t, classRepo.CreateClass(db, c))
	for i := 0; i < n; i++ {
		sid := uint(i + 2)
		testutil.CreateUser(t, db, sid, "student"+string(rune('a'+i)), userModel.PermissionStudent)
		_, err := classRepo.AddMember(db, c.ClassID, sid)
		require.NoError(t, err)
	}
	return c.ClassID
}

func TestAssignToClass_BroadcastAndDedup(t *testing.T) {
	db := testutil.NewTestDB(t)
	classID := classWithStudents(t, db, 3)

	n, err := AssignToClass(db, classID, " Essay ", due, strPtr("500 words"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rows, err := homeworkRepo.ListHomeworkForClass(db, classID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	owners := map[uint]bool{}
	for _, r := range rows {
		owners[r.HomeworkUserID] = true
		assert.Equal(t, "Essay", r.HomeworkName)
	}
	assert.Len(t, owners, 3)

	hw, err := ListClassHomework(db, classID)
	require.NoError(t, err)
	require.Len(t, hw, 1)
	assert.Equal(t, 3, hw[0].Assigned)
	assert.Equal(t, 0, hw[0].Completed)
	assert.Equal(t, classID, hw[0].ClassID)
	assert.True(t, due.Equal(hw[0].DueDate))
}

func TestAssignToClass_EmptyClassAndMissingClass(t *testing.T) {
	db := testutil.NewTestDB(t)
	classID := classWithStudents(t, db, 0)

	n, err := AssignToClass(db, classID, "Essay", due, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = AssignToClass(db, 999, "Essay", due, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = AssignToClass(db, classID, "  ", due, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestDedupClassHomework(t *testing.T) {
	cid := uint(4)
	done := due.Add(time.Hour)
	rows := []homeworkModel.HomeworkModel{
		{HomeworkName: "A", HomeworkClassID: &cid, HomeworkUserID: 2, HomeworkDueDate: due},
		{HomeworkName: "A", HomeworkClassID: &cid, HomeworkUserID: 3, HomeworkDueDate: due, HomeworkCompletedAt: &done},
		{HomeworkName: "A", HomeworkClassID: &cid, HomeworkUserID: 4, HomeworkDueDate: due, HomeworkDescription: strPtr("")},
		{HomeworkName: "B", HomeworkClassID: &cid, HomeworkUserID: 2, HomeworkDueDate: due},
		{HomeworkName: "A", HomeworkClassID: &cid, HomeworkUserID: 5, HomeworkDueDate: due.Add(time.Second)},
	}

	got := DedupClassHomework(rows)
	require.Len(t, got, 4)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, 2, got[0].Assigned)
	assert.Equal(t, 1, got[0].Completed)
	// description kosong ≠ tanpa description
	require.NotNil(t, got[1].Description)
	assert.Equal(t, 1, got[1].Assigned)
	assert.Equal(t, "B", got[2].Name)
	assert.Equal(t, 1, got[3].Assigned)

	// input tidak diubah
	assert.Equal(t, uint(2), rows[0].HomeworkUserID)

	assert.Empty(t, DedupClassHomework(nil))
}

func TestUnassignFromClass(t *testing.T) {
	db := testutil.NewTestDB(t)
	classID := classWithStudents(t, db, 2)

	_, err := AssignToClass(db, classID, "Essay", due, nil)
	require.NoError(t, err)
	_, err = AssignToClass(db, classID, "Quiz", due, strPtr("ch 1"))
	require.NoError(t, err)

	n, err := UnassignFromClass(db, classID, "Essay", due, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = UnassignFromClass(db, classID, "Quiz", due, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	hw, err := ListClassHomework(db, classID)
	require.NoError(t, err)
	require.Len(t, hw, 1)
	assert.Equal(t, "Quiz", hw[0].Name)
}

func TestOwnedHomework(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := &homeworkModel.HomeworkModel{HomeworkName: "Read", HomeworkUserID: 7, HomeworkDueDate: due}
	require.NoError(t, homeworkRepo.CreateHomework(db, h))

	_, err := ToggleOwnedHomework(db, h.HomeworkID, 8, due)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	_, err = ToggleOwnedHomework(db, 999, 7, due)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := ToggleOwnedHomework(db, h.HomeworkID, 7, due)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted())
	got, err = ToggleOwnedHomework(db, h.HomeworkID, 7, due)
	require.NoError(t, err)
	assert.False(t, got.IsCompleted())

	updated, err := UpdateOwnedHomework(db, h.HomeworkID, 7, "Read ch 2", due.Add(24*time.Hour), strPtr("pages 10-20"))
	require.NoError(t, err)
	assert.Equal(t, "Read ch 2", updated.HomeworkName)
	_, err = UpdateOwnedHomework(db, h.HomeworkID, 8, "x", due, nil)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	assert.ErrorIs(t, DeleteOwnedHomework(db, h.HomeworkID, 8), apperr.ErrForbidden)
	require.NoError(t, DeleteOwnedHomework(db, h.HomeworkID, 7))
	assert.ErrorIs(t, DeleteOwnedHomework(db, h.HomeworkID, 7), apperr.ErrNotFound)
}
