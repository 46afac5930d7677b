package service

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"planner_backend/internals/constants"
	eventModel "planner_backend/internals/features/planner/events/model"
	eventRepo "planner_backend/internals/features/planner/events/repository"
	userModel "planner_backend/internals/features/users/user/model"
	userRepo "planner_backend/internals/features/users/user/repository"
	"planner_backend/internals/helpers/apperr"
)

type NewEvent struct {
	Name        string
	Time        time.Time
	Description *string
	Private     bool
}

// CreateEvent: event public hanya boleh dibuat teacher.
func CreateEvent(db *gorm.DB, creator *userModel.UserModel, in NewEvent) (*eventModel.EventModel, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.InvalidInput("event name is required")
	}
	if !in.Private && !creator.IsTeacher() {
		return nil, apperr.Forbidden(constants.TeacherOnlyPublicEvents)
	}
	e := &eventModel.EventModel{
		EventUserID:      creator.UserID,
		EventName:        name,
		EventTime:        in.Time.UTC(),
		EventDescription: in.Description,
		EventPrivate:     in.Private,
	}
	if err := eventRepo.CreateEvent(db, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetOwnedEvent: tidak terlihat → NotFound; terlihat tapi bukan pembuat → Forbidden.
func GetOwnedEvent(db *gorm.DB, eventID, userID uint) (*eventModel.EventModel, error) {
	e, err := eventRepo.GetEvent(db, eventID, userID)
	if err != nil {
		return nil, err
	}
	if e.EventUserID != userID {
		return nil, apperr.Forbidden("not your event")
	}
	return e, nil
}

// UpdateOwnedEvent: event public tetap butuh teacher.
func UpdateOwnedEvent(db *gorm.DB, user *userModel.UserModel, eventID uint, in NewEvent) (*eventModel.EventModel, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.InvalidInput("event name is required")
	}
	if !in.Private && !user.IsTeacher() {
		return nil, apperr.Forbidden(constants.TeacherOnlyPublicEvents)
	}
	var out *eventModel.EventModel
	err := db.Transaction(func(tx *gorm.DB) error {
		e, err := GetOwnedEvent(tx, eventID, user.UserID)
		if err != nil {
			return err
		}
		e.EventName, e.EventTime, e.EventDescription, e.EventPrivate = name, in.Time.UTC(), in.Description, in.Private
		if err := eventRepo.UpdateEvent(tx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	return out, err
}

// DeleteOwnedEvent menghapus event beserta attendance-nya.
func DeleteOwnedEvent(db *gorm.DB, eventID, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedEvent(tx, eventID, userID); err != nil {
			return err
		}
		found, err := eventRepo.DeleteEvent(tx, eventID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.NotFound("event not found")
		}
		return nil
	})
}

// Attend: hanya event yang terlihat oleh user. added=false kalau sudah terdaftar.
func Attend(db *gorm.DB, eventID, userID uint) (bool, error) {
	var added bool
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := eventRepo.GetEvent(tx, eventID, userID); err != nil {
			return err
		}
		var err error
		added, err = eventRepo.AddAssociation(tx, userID, eventID)
		return err
	})
	return added, err
}

func Leave(db *gorm.DB, eventID, userID uint) error {
	removed, err := eventRepo.RemoveAssociation(db, userID, eventID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("not attending this event")
	}
	return nil
}

// Attendees: daftar user (tanpa field sensitif) yang hadir di event yang terlihat.
func Attendees(db *gorm.DB, eventID, requesterID uint) ([]userModel.UserView, error) {
	if _, err := eventRepo.GetEvent(db, eventID, requesterID); err != nil {
		return nil, err
	}
	ids, err := eventRepo.ListUsersForEvent(db, eventID)
	if err != nil {
		return nil, err
	}
	users, err := userRepo.GetUsersByIDs(db, ids)
	if err != nil {
		return nil, err
	}
	return userModel.PublicViews(users), nil
}

// AttendingEvents: event yang dihadiri user, yang sudah tidak terlihat dilewati.
func AttendingEvents(db *gorm.DB, userID uint) ([]eventModel.EventModel, error) {
	ids, err := eventRepo.ListEventsForUser(db, userID)
	if err != nil {
		return nil, err
	}
	rows, err := eventRepo.GetEventsByIDs(db, ids)
	if err != nil {
		return nil, err
	}
	out := []eventModel.EventModel{}
	for i := range rows {
		if rows[i].VisibleTo(userID) {
			out = append(out, rows[i])
		}
	}
	return out, nil
}
