package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eventModel "planner_backend/internals/features/planner/events/model"
	"planner_backend/internals/helpers/apperr"
)

/* =========================================================
   USER EVENTS (siapa hadir di event apa)
========================================================= */

func ListUsersForEvent(db *gorm.DB, eventID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&eventModel.UserEventModel{}).
		Where("user_event_event_id = ?", eventID).
		Order("user_event_user_id ASC").
		Pluck("user_event_user_id", &ids).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list attendees")
	}
	return ids, nil
}

func ListEventsForUser(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&eventModel.UserEventModel{}).
		Where("user_event_user_id = ?", userID).
		Order("user_event_event_id ASC").
		Pluck("user_event_event_id", &ids).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list events")
	}
	return ids, nil
}

// AddAssociation idempotent; added=false kalau sudah ada.
func AddAssociation(db *gorm.DB, userID, eventID uint) (bool, error) {
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&eventModel.UserEventModel{
		UserEventUserID:  userID,
		UserEventEventID: eventID,
	})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to attend event")
	}
	return res.RowsAffected > 0, nil
}

func RemoveAssociation(db *gorm.DB, userID, eventID uint) (bool, error) {
	res := db.Where("user_event_user_id = ? AND user_event_event_id = ?", userID, eventID).
		Delete(&eventModel.UserEventModel{})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to leave event")
	}
	return res.RowsAffected > 0, nil
}

func RemoveAssociationsForEvent(db *gorm.DB, eventID uint) (int64, error) {
	res := db.Where("user_event_event_id = ?", eventID).Delete(&eventModel.UserEventModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to remove attendees")
	}
	return res.RowsAffected, nil
}

func RemoveAssociationsForUser(db *gorm.DB, userID uint) (int64, error) {
	res := db.Where("user_event_user_id = ?", userID).Delete(&eventModel.UserEventModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to remove attendance")
	}
	return res.RowsAffected, nil
}
