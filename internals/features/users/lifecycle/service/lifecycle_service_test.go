package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	classModel "planner_backend/internals/features/planner/classes/model"
	classRepo "planner_backend/internals/features/planner/classes/repository"
	eventModel "planner_backend/internals/features/planner/events/model"
	eventRepo "planner_backend/internals/features/planner/events/repository"
	homeworkModel "planner_backend/internals/features/planner/homework/model"
	homeworkRepo "planner_backend/internals/features/planner/homework/repository"
	homeworkService "planner_backend/internals/features/planner/homework/service"
	"planner_backend/internals/features/planner/integrity/scheduler"
	markModel "planner_backend/internals/features/planner/marks/model"
	markRepo "planner_backend/internals/features/planner/marks/repository"
	subjectModel "planner_backend/internals/features/planner/subjects/model"
	subjectRepo "planner_backend/internals/features/planner/subjects/repository"
	timetableRepo "planner_backend/internals/features/planner/timetable/repository"
	userModel "planner_backend/internals/features/users/user/model"
	userRepo "planner_backend/internals/features/users/user/repository"
	"planner_backend/internals/helpers/apperr"
	"planner_backend/internals/testutil"
)

var due = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

// seedWorld: user 1 (teacher, target) punya data di semua tabel,
// user 2 murid kelas user 1, user 3 teacher lain dengan user 1 sebagai murid.
type world struct {
	ownClass, otherClass uint
	ownEvent, otherEvent uint
}

func seedWorld(t *testing.T, db *gorm.DB) world {
	t.Helper()
	testutil.CreateUser(t, db, 1, "target", userModel.PermissionTeacher)
	testutil.CreateUser(t, db, 2, "pupil", userModel.PermissionStudent)
	testutil.CreateUser(t, db, 3, "colleague", userModel.PermissionTeacher)

	subjectID, _, err := subjectRepo.CreateSubject(db, &subjectModel.SubjectModel{SubjectName: "maths", SubjectTeacher: "mr smith", SubjectRoom: "m1"})
	require.NoError(t, err)
	_, err = timetableRepo.SetSlot(db, 1, subjectID, 0, 0)
	require.NoError(t, err)
	_, err = timetableRepo.SetSlot(db, 2, subjectID, 0, 0)
	require.NoError(t, err)

	require.NoError(t, markRepo.CreateMark(db, &markModel.MarkModel{MarkUserID: 1, MarkName: "Test", MarkValue: 50, MarkGrade: "C"}))
	require.NoError(t, homeworkRepo.CreateHomework(db, &homeworkModel.HomeworkModel{HomeworkUserID: 1, HomeworkName: "Essay", HomeworkDueDate: due}))

	var w world
	own := &eventModel.EventModel{EventUserID: 1, EventName: "Open day", EventTime: due}
	require.NoError(t, eventRepo.CreateEvent(db, own))
	other := &eventModel.EventModel{EventUserID: 3, EventName: "Staff meeting", EventTime: due}
	require.NoError(t, eventRepo.CreateEvent(db, other))
	w.ownEvent, w.otherEvent = own.EventID, other.EventID
	_, err = eventRepo.AddAssociation(db, 2, own.EventID)
	require.NoError(t, err)
	_, err = eventRepo.AddAssociation(db, 1, other.EventID)
	require.NoError(t, err)

	c := &classModel.ClassModel{ClassTeacherID: 1, ClassName: "9A"}
	require.NoError(t, classRepo.CreateClass(db, c))
	_, err = classRepo.AddMember(db, c.ClassID, 2)
	require.NoError(t, err)
	_, err = homeworkService.AssignToClass(db, c.ClassID, "Worksheet", due, nil)
	require.NoError(t, err)

	oc := &classModel.ClassModel{ClassTeacherID: 3, ClassName: "CPD"}
	require.NoError(t, classRepo.CreateClass(db, oc))
	_, err = classRepo.AddMember(db, oc.ClassID, 1)
	require.NoError(t, err)
	w.ownClass, w.otherClass = c.ClassID, oc.ClassID
	return w
}

func TestDeleteUserAccount(t *testing.T) {
	db := testutil.NewTestDB(t)
	w := seedWorld(t, db)

	rep, err := DeleteUserAccount(db, 1)
	require.NoError(t, err)
	assert.Equal(t, Report{
		Slots:       1,
		Attendance:  2,
		Marks:       1,
		Homework:    1,
		Events:      1,
		Classes:     1,
		Memberships: 2,
		UserDeleted: true,
	}, *rep)

	_, err = userRepo.GetUserByID(db, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// data user lain tetap ada
	slot, err := timetableRepo.GetSlot(db, 2, 0, 0)
	require.NoError(t, err)
	assert.NotZero(t, slot)
	hw, err := homeworkRepo.ListHomeworkForUser(db, 2)
	require.NoError(t, err)
	require.Len(t, hw, 1)
	assert.Nil(t, hw[0].HomeworkClassID)

	_, err = classRepo.GetClass(db, w.ownClass)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = classRepo.GetClass(db, w.otherClass)
	require.NoError(t, err)
	members, err := classRepo.ListStudentsInClass(db, w.otherClass)
	require.NoError(t, err)
	assert.Empty(t, members)

	attendees, err := eventRepo.ListUsersForEvent(db, w.otherEvent)
	require.NoError(t, err)
	assert.Empty(t, attendees)

	// tidak ada relasi yatim tersisa
	orphans, err := scheduler.RunOrphanReaper(context.Background(), db, true)
	require.NoError(t, err)
	assert.Zero(t, orphans.Total())
	assert.Zero(t, orphans.Ownerless())

	_, err = DeleteUserAccount(db, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestResetUserData_KeepsAccount(t *testing.T) {
	db := testutil.NewTestDB(t)
	w := seedWorld(t, db)

	rep, err := ResetUserData(db, 1)
	require.NoError(t, err)
	assert.False(t, rep.UserDeleted)
	assert.Equal(t, int64(1), rep.Classes)

	u, err := userRepo.GetUserByID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "target", u.UserName)

	week, err := timetableRepo.ListSlotsForUser(db, 1)
	require.NoError(t, err)
	assert.Empty(t, week)
	marks, err := markRepo.ListMarksForUser(db, 1)
	require.NoError(t, err)
	assert.Empty(t, marks)
	_, err = eventRepo.GetEvent(db, w.ownEvent, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// reset kedua tidak menghapus apa-apa lagi
	rep, err = ResetUserData(db, 1)
	require.NoError(t, err)
	assert.Equal(t, Report{}, *rep)
}
