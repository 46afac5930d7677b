package repository

import (
	"gorm.io/gorm"

	eventModel "planner_backend/internals/features/planner/events/model"
	"planner_backend/internals/helpers/apperr"
)

const visibleClause = "event_private = ? OR event_user_id = ?"

func CreateEvent(db *gorm.DB, e *eventModel.EventModel) error {
	if err := db.Create(e).Error; err != nil {
		return apperr.FromDB(err, "failed to save event")
	}
	return nil
}

// GetEvent: event private milik orang lain diperlakukan sama dengan tidak ada.
func GetEvent(db *gorm.DB, id, requesterID uint) (*eventModel.EventModel, error) {
	e, err := getEventRaw(db, id)
	if err != nil {
		return nil, err
	}
	if !e.VisibleTo(requesterID) {
		return nil, apperr.NotFound("event not found")
	}
	return e, nil
}

func getEventRaw(db *gorm.DB, id uint) (*eventModel.EventModel, error) {
	var e eventModel.EventModel
	if err := db.Where("event_id = ?", id).First(&e).Error; err != nil {
		return nil, apperr.FromDB(err, "event not found")
	}
	return &e, nil
}

// ListVisibleEvents: semua event public + event private milik requester.
func ListVisibleEvents(db *gorm.DB, requesterID uint) ([]eventModel.EventModel, error) {
	var out []eventModel.EventModel
	err := db.Where(visibleClause, false, requesterID).
		Order("event_time ASC, event_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list events")
	}
	return out, nil
}

// GetEventsByIDs tanpa filter visibilitas; caller yang menyaring.
func GetEventsByIDs(db *gorm.DB, ids []uint) ([]eventModel.EventModel, error) {
	out := []eventModel.EventModel{}
	if len(ids) == 0 {
		return out, nil
	}
	err := db.Where("event_id IN ?", ids).
		Order("event_time ASC, event_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list events")
	}
	return out, nil
}

// ListEventsByCreator: event buatan creatorID yang boleh dilihat requester.
func ListEventsByCreator(db *gorm.DB, creatorID, requesterID uint) ([]eventModel.EventModel, error) {
	var out []eventModel.EventModel
	err := db.Where("event_user_id = ?", creatorID).
		Where(visibleClause, false, requesterID).
		Order("event_time ASC, event_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list events")
	}
	return out, nil
}

// ListEventIDsByCreator tanpa filter visibilitas (dipakai cascade).
func ListEventIDsByCreator(db *gorm.DB, creatorID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&eventModel.EventModel{}).
		Where("event_user_id = ?", creatorID).
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list events")
	}
	return ids, nil
}

func UpdateEvent(db *gorm.DB, e *eventModel.EventModel) error {
	res := db.Model(&eventModel.EventModel{}).
		Where("event_id = ?", e.EventID).
		Updates(map[string]interface{}{
			"event_name":        e.EventName,
			"event_time":        e.EventTime,
			"event_description": e.EventDescription,
			"event_private":     e.EventPrivate,
		})
	if res.Error != nil {
		return apperr.FromDB(res.Error, "failed to update event")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("event not found")
	}
	return nil
}

// DeleteEvent menghapus attendance event lalu event-nya, dalam satu transaksi.
func DeleteEvent(db *gorm.DB, id uint) (bool, error) {
	var found bool
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := RemoveAssociationsForEvent(tx, id); err != nil {
			return err
		}
		res := tx.Where("event_id = ?", id).Delete(&eventModel.EventModel{})
		if res.Error != nil {
			return apperr.FromDB(res.Error, "failed to delete event")
		}
		found = res.RowsAffected > 0
		return nil
	})
	return found, err
}
