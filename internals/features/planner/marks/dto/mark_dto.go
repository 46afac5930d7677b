package dto

// CreateMarkRequest: POST /marks
type CreateMarkRequest struct {
	Name  string `json:"name" form:"name" validate:"required,max=255"`
	Mark  *int   `json:"mark" form:"mark" validate:"required"`
	Grade string `json:"grade" form:"grade" validate:"required,max=20"`
}

// UpdateMarkRequest: PUT /marks
type UpdateMarkRequest struct {
	MarkID uint   `json:"mark_id" form:"mark_id" validate:"required"`
	Name   string `json:"name" form:"name" validate:"required,max=255"`
	Mark   *int   `json:"mark" form:"mark" validate:"required"`
	Grade  string `json:"grade" form:"grade" validate:"required,max=20"`
}

// MarkIDRequest: DELETE /marks
type MarkIDRequest struct {
	MarkID uint `json:"mark_id" form:"mark_id" validate:"required"`
}
