// Package service menjalankan cascade hapus data user secara manual,
// relasi dulu baru entity, dalam satu transaksi.
package service

import (
	"log"

	"gorm.io/gorm"

	classRepo "planner_backend/internals/features/planner/classes/repository"
	classService "planner_backend/internals/features/planner/classes/service"
	eventRepo "planner_backend/internals/features/planner/events/repository"
	homeworkRepo "planner_backend/internals/features/planner/homework/repository"
	markRepo "planner_backend/internals/features/planner/marks/repository"
	timetableRepo "planner_backend/internals/features/planner/timetable/repository"
	userRepo "planner_backend/internals/features/users/user/repository"
)

// Report jumlah row yang terhapus per langkah.
type Report struct {
	Slots       int64 `json:"slots"`
	Attendance  int64 `json:"attendance"`
	Marks       int64 `json:"marks"`
	Homework    int64 `json:"homework"`
	Events      int64 `json:"events"`
	Classes     int64 `json:"classes"`
	Memberships int64 `json:"memberships"`
	UserDeleted bool  `json:"user_deleted"`
}

// ResetUserData menghapus semua data milik user, tapi akun tetap ada.
func ResetUserData(db *gorm.DB, userID uint) (*Report, error) {
	var rep Report
	err := db.Transaction(func(tx *gorm.DB) error {
		return resetSteps(tx, userID, &rep)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[LIFECYCLE] reset user=%d %+v", userID, rep)
	return &rep, nil
}

// DeleteUserAccount = ResetUserData + hapus row user, dalam transaksi yang sama.
func DeleteUserAccount(db *gorm.DB, userID uint) (*Report, error) {
	var rep Report
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := userRepo.GetUserByID(tx, userID); err != nil {
			return err
		}
		if err := resetSteps(tx, userID, &rep); err != nil {
			return err
		}
		deleted, err := userRepo.DeleteUser(tx, userID)
		rep.UserDeleted = deleted
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[LIFECYCLE] delete user=%d %+v", userID, rep)
	return &rep, nil
}

// Tiap langkah berupa delete-by-filter, jadi aman diulang.
func resetSteps(tx *gorm.DB, userID uint, rep *Report) error {
	var err error

	if rep.Slots, err = timetableRepo.ClearWeek(tx, userID); err != nil {
		return err
	}
	if rep.Attendance, err = eventRepo.RemoveAssociationsForUser(tx, userID); err != nil {
		return err
	}
	if rep.Marks, err = markRepo.DeleteMarksForUser(tx, userID); err != nil {
		return err
	}
	if rep.Homework, err = homeworkRepo.DeleteHomeworkForUser(tx, userID); err != nil {
		return err
	}

	// event buatan user: attendance dulu, lalu event
	eventIDs, err := eventRepo.ListEventIDsByCreator(tx, userID)
	if err != nil {
		return err
	}
	for _, id := range eventIDs {
		n, err := eventRepo.RemoveAssociationsForEvent(tx, id)
		if err != nil {
			return err
		}
		rep.Attendance += n
		ok, err := eventRepo.DeleteEvent(tx, id)
		if err != nil {
			return err
		}
		if ok {
			rep.Events++
		}
	}

	// kelas milik user: membership + homework kelas, lalu kelas
	classes, err := classRepo.ListClassesByTeacher(tx, userID)
	if err != nil {
		return err
	}
	for _, c := range classes {
		n, err := classRepo.RemoveAllMembers(tx, c.ClassID)
		if err != nil {
			return err
		}
		rep.Memberships += n
		ok, err := classService.DeleteClass(tx, c.ClassID)
		if err != nil {
			return err
		}
		if ok {
			rep.Classes++
		}
	}

	// keanggotaan user sebagai murid di kelas orang lain
	n, err := classRepo.RemoveStudentFromAllClasses(tx, userID)
	if err != nil {
		return err
	}
	rep.Memberships += n
	return nil
}
