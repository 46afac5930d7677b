package repository

import (
	"errors"

	"gorm.io/gorm"

	timetableModel "planner_backend/internals/features/planner/timetable/model"
	"planner_backend/internals/helpers/apperr"
)

// SlotChange: hasil SetSlot.
type SlotChange int

const (
	SlotUnchanged SlotChange = iota
	SlotInserted
	SlotUpdated
)

func (c SlotChange) String() string {
	switch c {
	case SlotInserted:
		return "inserted"
	case SlotUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Week: grid [hari][period] berisi subject id; nil = kosong.
type Week [timetableModel.Days][timetableModel.Periods]*uint

var ErrInvalidSlot = apperr.InvalidInput("day must be 0-4 and period 0-8")

func checkCell(day, period int) error {
	if !timetableModel.ValidCell(day, period) {
		return ErrInvalidSlot
	}
	return nil
}

func GetSlot(db *gorm.DB, userID uint, day, period int) (uint, error) {
	if err := checkCell(day, period); err != nil {
		return 0, err
	}
	var slot timetableModel.TimetableSlotModel
	err := db.Where("slot_user_id = ? AND slot_day = ? AND slot_period = ?", userID, day, period).
		First(&slot).Error
	if err != nil {
		return 0, apperr.FromDB(err, "slot is empty")
	}
	return slot.SlotSubjectID, nil
}

// SetSlot: insert kalau kosong, no-op kalau subject sama, update kalau beda.
// Read-then-write dalam satu transaksi; PK (user, day, period) mencegah duplikat.
func SetSlot(db *gorm.DB, userID, subjectID uint, day, period int) (SlotChange, error) {
	if err := checkCell(day, period); err != nil {
		return SlotUnchanged, err
	}

	change := SlotUnchanged
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := GetSlot(tx, userID, day, period)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			slot := timetableModel.TimetableSlotModel{
				SlotUserID:    userID,
				SlotDay:       day,
				SlotPeriod:    period,
				SlotSubjectID: subjectID,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return apperr.FromDB(err, "slot already set")
			}
			change = SlotInserted
			return nil
		case err != nil:
			return err
		case current == subjectID:
			return nil
		}

		err = tx.Model(&timetableModel.TimetableSlotModel{}).
			Where("slot_user_id = ? AND slot_day = ? AND slot_period = ?", userID, day, period).
			Update("slot_subject_id", subjectID).Error
		if err != nil {
			return apperr.FromDB(err, "failed to update slot")
		}
		change = SlotUpdated
		return nil
	})
	return change, err
}

func ClearSlot(db *gorm.DB, userID uint, day, period int) (bool, error) {
	if err := checkCell(day, period); err != nil {
		return false, err
	}
	res := db.Where("slot_user_id = ? AND slot_day = ? AND slot_period = ?", userID, day, period).
		Delete(&timetableModel.TimetableSlotModel{})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to clear slot")
	}
	return res.RowsAffected > 0, nil
}

func ListSlotsForUser(db *gorm.DB, userID uint) ([]timetableModel.TimetableSlotModel, error) {
	var slots []timetableModel.TimetableSlotModel
	err := db.Where("slot_user_id = ?", userID).
		Order("slot_day ASC, slot_period ASC").
		Find(&slots).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to load timetable")
	}
	return slots, nil
}

func GetWeek(db *gorm.DB, userID uint) (Week, error) {
	var week Week
	slots, err := ListSlotsForUser(db, userID)
	if err != nil {
		return week, err
	}
	for _, s := range slots {
		if !timetableModel.ValidCell(s.SlotDay, s.SlotPeriod) {
			continue
		}
		id := s.SlotSubjectID
		week[s.SlotDay][s.SlotPeriod] = &id
	}
	return week, nil
}

// ClearWeek menghapus semua slot milik user.
func ClearWeek(db *gorm.DB, userID uint) (int64, error) {
	res := db.Where("slot_user_id = ?", userID).Delete(&timetableModel.TimetableSlotModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to clear timetable")
	}
	return res.RowsAffected, nil
}

func ClearSlotsForSubject(db *gorm.DB, subjectID uint) (int64, error) {
	res := db.Where("slot_subject_id = ?", subjectID).Delete(&timetableModel.TimetableSlotModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to clear slots")
	}
	return res.RowsAffected, nil
}
