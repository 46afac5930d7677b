package dto

// Day & Period pointer supaya nilai 0 (Monday / period pertama) tetap lolos "required".

// SetSlotRequest: POST /timetable
type SetSlotRequest struct {
	SubjectID uint `json:"subject_id" form:"subject_id" validate:"required"`
	Day       *int `json:"day" form:"day" validate:"required,min=0,max=4"`
	Period    *int `json:"period" form:"period" validate:"required,min=0,max=8"`
}

// ClearSlotRequest: DELETE /timetable
type ClearSlotRequest struct {
	Day    *int `json:"day" form:"day" validate:"required,min=0,max=4"`
	Period *int `json:"period" form:"period" validate:"required,min=0,max=8"`
}

type SlotResponse struct {
	Day       int    `json:"day"`
	Period    int    `json:"period"`
	SubjectID uint   `json:"subject_id,omitempty"`
	Change    string `json:"change,omitempty"`
}
