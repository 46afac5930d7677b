package dto

import (
	subjectModel "planner_backend/internals/features/planner/subjects/model"
)

type CreateSubjectRequest struct {
	Name    string  `json:"name" form:"name" validate:"required,max=100"`
	Teacher string  `json:"teacher" form:"teacher" validate:"max=100"`
	Room    string  `json:"room" form:"room" validate:"max=50"`
	Colour  *string `json:"colour" form:"colour" validate:"omitempty,hexcolor"`
}

func (r *CreateSubjectRequest) ToModel() *subjectModel.SubjectModel {
	return &subjectModel.SubjectModel{
		SubjectName:    r.Name,
		SubjectTeacher: r.Teacher,
		SubjectRoom:    r.Room,
		SubjectColour:  r.Colour,
	}
}

// UpdateSubjectRequest: field nil = tidak diubah
type UpdateSubjectRequest struct {
	Name    *string `json:"name" form:"name" validate:"omitempty,min=1,max=100"`
	Teacher *string `json:"teacher" form:"teacher" validate:"omitempty,max=100"`
	Room    *string `json:"room" form:"room" validate:"omitempty,max=50"`
	Colour  *string `json:"colour" form:"colour" validate:"omitempty,hexcolor"`
}

func (r *UpdateSubjectRequest) Apply(s *subjectModel.SubjectModel) {
	if r.Name != nil {
		s.SubjectName = *r.Name
	}
	if r.Teacher != nil {
		s.SubjectTeacher = *r.Teacher
	}
	if r.Room != nil {
		s.SubjectRoom = *r.Room
	}
	if r.Colour != nil {
		s.SubjectColour = r.Colour
	}
}

type CreateSubjectResponse struct {
	SubjectID uint                       `json:"subject_id"`
	Created   bool                       `json:"created"`
	Subject   *subjectModel.SubjectModel `json:"subject"`
}
