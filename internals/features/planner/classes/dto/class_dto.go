package dto

// ClassNameRequest: POST /classes dan PATCH /classes/:id
type ClassNameRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=255"`
}

// AddStudentsRequest: PATCH /classes/:id/students.
// student_id tunggal (client lama) atau student_ids.
type AddStudentsRequest struct {
	StudentID  *uint  `json:"student_id" form:"student_id"`
	StudentIDs []uint `json:"student_ids" form:"student_ids"`
}

// IDs menggabungkan kedua field tanpa duplikat, urutan dipertahankan.
func (r *AddStudentsRequest) IDs() []uint {
	out := []uint{}
	seen := map[uint]bool{}
	add := func(id uint) {
		if id == 0 || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	if r.StudentID != nil {
		add(*r.StudentID)
	}
	for _, id := range r.StudentIDs {
		add(id)
	}
	return out
}

type AddStudentsResponse struct {
	ClassID uint   `json:"class_id"`
	Added   []uint `json:"added"`
	Skipped int    `json:"skipped"`
}

type ClassHomeworkResponse struct {
	ClassID uint  `json:"class_id"`
	Count   int64 `json:"count"`
}
