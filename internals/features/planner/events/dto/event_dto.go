package dto

import (
	"strings"
	"time"

	eventService "planner_backend/internals/features/planner/events/service"
)

// EventRequest: POST /events dan PATCH /events/:id. time dalam unix seconds.
type EventRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=255"`
	Time        int64   `json:"time" form:"time" validate:"required,min=1"`
	Description *string `json:"description" form:"description"`
	Private     *bool   `json:"private" form:"private" validate:"required"`
}

func (r *EventRequest) ToNewEvent() eventService.NewEvent {
	var desc *string
	if r.Description != nil {
		if s := strings.TrimSpace(*r.Description); s != "" {
			desc = &s
		}
	}
	return eventService.NewEvent{
		Name:        r.Name,
		Time:        time.Unix(r.Time, 0).UTC(),
		Description: desc,
		Private:     *r.Private,
	}
}

type AttendResponse struct {
	EventID uint `json:"event_id"`
	Added   bool `json:"added"`
}
