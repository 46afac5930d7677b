package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "planner_backend/internals/features/planner/classes/model"
	eventModel "planner_backend/internals/features/planner/events/model"
	homeworkModel "planner_backend/internals/features/planner/homework/model"
	markModel "planner_backend/internals/features/planner/marks/model"
	timetableModel "planner_backend/internals/features/planner/timetable/model"
	userModel "planner_backend/internals/features/users/user/model"
	"planner_backend/internals/testutil"
)

func TestRunOrphanReaper(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, 1, "alive", userModel.PermissionStudent)

	missing := uint(99)
	require.NoError(t, db.Create(&timetableModel.TimetableSlotModel{SlotUserID: 42, SlotDay: 1, SlotPeriod: 2, SlotSubjectID: 7}).Error)
	require.NoError(t, db.Create(&classModel.ClassStudentModel{ClassStudentClassID: missing, ClassStudentStudentID: 1}).Error)
	require.NoError(t, db.Create(&eventModel.UserEventModel{UserEventUserID: 1, UserEventEventID: missing}).Error)
	hw := &homeworkModel.HomeworkModel{HomeworkName: "Lost", HomeworkUserID: 1, HomeworkClassID: &missing, HomeworkDueDate: time.Now().UTC()}
	require.NoError(t, db.Create(hw).Error)

	want := Report{Slots: 1, Memberships: 1, Attendance: 1, Homework: 1}

	rep, err := RunOrphanReaper(context.Background(), db, true)
	require.NoError(t, err)
	assert.Equal(t, want, rep)

	// dry run tidak mengubah apa pun
	rep, err = RunOrphanReaper(context.Background(), db, true)
	require.NoError(t, err)
	assert.Equal(t, want, rep)

	rep, err = RunOrphanReaper(context.Background(), db, false)
	require.NoError(t, err)
	assert.Equal(t, want, rep)
	assert.Equal(t, int64(4), rep.Total())

	rep, err = RunOrphanReaper(context.Background(), db, false)
	require.NoError(t, err)
	assert.Zero(t, rep.Total())

	// homework yatim dilepas dari kelas, bukan dihapus
	var got homeworkModel.HomeworkModel
	require.NoError(t, db.First(&got, "homework_id = ?", hw.HomeworkID).Error)
	assert.Nil(t, got.HomeworkClassID)
}

func TestRunOrphanReaper_OwnerlessCountedOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, 1, "alive", userModel.PermissionTeacher)
	gone := uint(50)

	require.NoError(t, db.Create(&markModel.MarkModel{MarkUserID: gone, MarkName: "Quiz", MarkValue: 70, MarkGrade: "C"}).Error)
	require.NoError(t, db.Create(&markModel.MarkModel{MarkUserID: 1, MarkName: "Exam", MarkValue: 90, MarkGrade: "A"}).Error)
	require.NoError(t, db.Create(&homeworkModel.HomeworkModel{HomeworkName: "Essay", HomeworkUserID: gone, HomeworkDueDate: time.Now().UTC()}).Error)
	require.NoError(t, db.Create(&eventModel.EventModel{EventUserID: gone, EventName: "Trip", EventTime: time.Now().UTC()}).Error)
	require.NoError(t, db.Create(&classModel.ClassModel{ClassTeacherID: gone, ClassName: "7B"}).Error)
	require.NoError(t, db.Create(&classModel.ClassModel{ClassTeacherID: 1, ClassName: "7A"}).Error)

	want := Report{OwnerlessMarks: 1, OwnerlessHomework: 1, OwnerlessEvents: 1, OwnerlessClasses: 1}

	for _, dry := range []bool{true, false, false} {
		rep, err := RunOrphanReaper(context.Background(), db, dry)
		require.NoError(t, err)
		assert.Equal(t, want, rep, "dryRun=%v", dry)
		assert.Zero(t, rep.Total())
		assert.Equal(t, int64(4), rep.Ownerless())
	}

	var marks, classes int64
	require.NoError(t, db.Model(&markModel.MarkModel{}).Count(&marks).Error)
	require.NoError(t, db.Model(&classModel.ClassModel{}).Count(&classes).Error)
	assert.Equal(t, int64(2), marks)
	assert.Equal(t, int64(2), classes)
}

func TestStartOrphanReaper(t *testing.T) {
	db := testutil.NewTestDB(t)

	assert.Nil(t, StartOrphanReaper(db, ReaperConfig{}))
	assert.Nil(t, StartOrphanReaper(db, ReaperConfig{CronSchedule: "not a schedule"}))

	c := StartOrphanReaper(db, ReaperConfig{CronSchedule: "@every 1h", DryRun: true})
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
