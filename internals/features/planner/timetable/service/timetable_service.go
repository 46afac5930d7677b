package service

import (
	"gorm.io/gorm"

	subjectModel "planner_backend/internals/features/planner/subjects/model"
	subjectRepo "planner_backend/internals/features/planner/subjects/repository"
	timetableModel "planner_backend/internals/features/planner/timetable/model"
	timetableRepo "planner_backend/internals/features/planner/timetable/repository"
)

// Weekday: indeks hari pada grid, Monday=0 ... Friday=4.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [timetableModel.Days]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Weekday) String() string {
	if d < 0 || int(d) >= len(weekdayNames) {
		return "Unknown"
	}
	return weekdayNames[d]
}

// Timetable: grid 5×9 berisi subject; nil = sel kosong.
type Timetable [timetableModel.Days][timetableModel.Periods]*subjectModel.SubjectModel

type TimetableDay struct {
	Day     string                       `json:"day"`
	Periods []*subjectModel.SubjectModel `json:"periods"`
}

// Days merender grid dengan nama hari, untuk client.
func (t *Timetable) Days() []TimetableDay {
	out := make([]TimetableDay, 0, timetableModel.Days)
	for d := 0; d < timetableModel.Days; d++ {
		periods := make([]*subjectModel.SubjectModel, timetableModel.Periods)
		copy(periods, t[d][:])
		out = append(out, TimetableDay{Day: Weekday(d).String(), Periods: periods})
	}
	return out
}

// GetTimetable mengambil grid minggu user lalu resolve tiap sel ke subject.
// Slot yang subject-nya sudah tidak ada dianggap kosong.
func GetTimetable(db *gorm.DB, userID uint) (*Timetable, error) {
	week, err := timetableRepo.GetWeek(db, userID)
	if err != nil {
		return nil, err
	}

	seen := map[uint]bool{}
	var ids []uint
	for d := range week {
		for p := range week[d] {
			if id := week[d][p]; id != nil && !seen[*id] {
				seen[*id] = true
				ids = append(ids, *id)
			}
		}
	}

	subjects, err := subjectRepo.GetSubjectsByIDs(db, ids)
	if err != nil {
		return nil, err
	}

	var tt Timetable
	for d := range week {
		for p := range week[d] {
			id := week[d][p]
			if id == nil {
				continue
			}
			if s, ok := subjects[*id]; ok {
				s := s
				tt[d][p] = &s
			}
		}
	}
	return &tt, nil
}
