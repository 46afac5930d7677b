package dto

import (
	"strings"
	"time"
)

// due_date dalam unix seconds, sama seperti client lama.

// CreateHomeworkRequest: POST /homework (juga dipakai untuk PUT /homework/:id)
type CreateHomeworkRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=255"`
	DueDate     int64   `json:"due_date" form:"due_date" validate:"required,min=1"`
	Description *string `json:"description" form:"description"`
}

func (r *CreateHomeworkRequest) Due() time.Time {
	return time.Unix(r.DueDate, 0).UTC()
}

// Desc: deskripsi kosong disimpan sebagai NULL.
func (r *CreateHomeworkRequest) Desc() *string {
	return normalizeDesc(r.Description)
}

// HomeworkIDRequest: PATCH /homework (toggle) dan DELETE /homework
type HomeworkIDRequest struct {
	ID uint `json:"id" form:"id" validate:"required"`
}

// ClassHomeworkRequest: POST/DELETE /classes/:id/homework
type ClassHomeworkRequest struct {
	Name        string  `json:"homework_name" form:"homework_name" validate:"required,max=255"`
	DueDate     int64   `json:"due_date" form:"due_date" validate:"required,min=1"`
	Description *string `json:"description" form:"description"`
}

func (r *ClassHomeworkRequest) Due() time.Time {
	return time.Unix(r.DueDate, 0).UTC()
}

func (r *ClassHomeworkRequest) Desc() *string {
	return normalizeDesc(r.Description)
}

func normalizeDesc(d *string) *string {
	if d == nil {
		return nil
	}
	s := strings.TrimSpace(*d)
	if s == "" {
		return nil
	}
	return &s
}
