package model

import "time"

// EventModel: event buatan user. Event private hanya terlihat oleh pembuatnya.
type EventModel struct {
	EventID          uint      `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	EventUserID      uint      `gorm:"column:event_user_id;not null;index:idx_events_user" json:"event_user_id"`
	EventName        string    `gorm:"column:event_name;type:varchar(255);not null" json:"event_name"`
	EventTime        time.Time `gorm:"column:event_time;not null" json:"event_time"`
	EventDescription *string   `gorm:"column:event_description;type:text" json:"event_description,omitempty"`
	EventPrivate     bool      `gorm:"column:event_private;not null;default:false" json:"event_private"`
}

func (EventModel) TableName() string {
	return "events"
}

// VisibleTo: public, atau private tapi requester adalah pembuatnya.
func (e *EventModel) VisibleTo(userID uint) bool {
	return !e.EventPrivate || e.EventUserID == userID
}

/* =========================================================
   USER EVENTS (attendance)
========================================================= */

type UserEventModel struct {
	UserEventUserID  uint `gorm:"column:user_event_user_id;primaryKey;autoIncrement:false" json:"user_event_user_id"`
	UserEventEventID uint `gorm:"column:user_event_event_id;primaryKey;autoIncrement:false;index:idx_user_events_event" json:"user_event_event_id"`
}

func (UserEventModel) TableName() string {
	return "user_events"
}
