package repository

import (
	"errors"

	"gorm.io/gorm"

	subjectModel "planner_backend/internals/features/planner/subjects/model"
	timetableRepo "planner_backend/internals/features/planner/timetable/repository"
	"planner_backend/internals/helpers/apperr"
)

// CreateSubject bersifat idempotent: kalau subject kanonik yang sama sudah ada,
// id lama dikembalikan dan created=false.
func CreateSubject(db *gorm.DB, s *subjectModel.SubjectModel) (id uint, created bool, err error) {
	s.Canonicalize()
	if s.SubjectName == "" {
		return 0, false, apperr.InvalidInput("subject name is required")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		existing, err := findCanonical(tx, s.SubjectName, s.SubjectTeacher, s.SubjectRoom)
		if err != nil {
			return err
		}
		if existing != nil {
			*s = *existing
			id = existing.SubjectID
			return nil
		}
		if err := tx.Create(s).Error; err != nil {
			return apperr.FromDB(err, "subject already exists")
		}
		id, created = s.SubjectID, true
		return nil
	})
	if err != nil && errors.Is(err, apperr.ErrConflict) {
		// kalah race dengan insert lain: ambil yang sudah ada
		existing, ferr := findCanonical(db, s.SubjectName, s.SubjectTeacher, s.SubjectRoom)
		if ferr == nil && existing != nil {
			*s = *existing
			return existing.SubjectID, false, nil
		}
	}
	return id, created, err
}

func findCanonical(db *gorm.DB, name, teacher, room string) (*subjectModel.SubjectModel, error) {
	var candidates []subjectModel.SubjectModel
	if err := db.Where("subject_name = ?", name).Find(&candidates).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to look up subject")
	}
	for i := range candidates {
		if candidates[i].SubjectTeacher == teacher && candidates[i].SubjectRoom == room {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

func GetSubjectByID(db *gorm.DB, id uint) (*subjectModel.SubjectModel, error) {
	var s subjectModel.SubjectModel
	if err := db.Where("subject_id = ?", id).First(&s).Error; err != nil {
		return nil, apperr.FromDB(err, "subject not found")
	}
	return &s, nil
}

// GetSubjectsByIDs untuk resolve grid timetable sekaligus.
func GetSubjectsByIDs(db *gorm.DB, ids []uint) (map[uint]subjectModel.SubjectModel, error) {
	out := make(map[uint]subjectModel.SubjectModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []subjectModel.SubjectModel
	if err := db.Where("subject_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to load subjects")
	}
	for _, s := range rows {
		out[s.SubjectID] = s
	}
	return out, nil
}

func ListSubjects(db *gorm.DB) ([]subjectModel.SubjectModel, error) {
	var out []subjectModel.SubjectModel
	if err := db.Order("subject_name ASC, subject_id ASC").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list subjects")
	}
	return out, nil
}

// ListSubjectsByName: nama dikanonikkan dulu sebelum dicari.
func ListSubjectsByName(db *gorm.DB, name string) ([]subjectModel.SubjectModel, error) {
	var out []subjectModel.SubjectModel
	if err := db.Where("subject_name = ?", subjectModel.CanonicalName(name)).
		Order("subject_id ASC").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list subjects")
	}
	return out, nil
}

// UpdateSubject menyimpan perubahan (dikanonikkan ulang).
// Conflict kalau hasilnya sama dengan subject lain.
func UpdateSubject(db *gorm.DB, s *subjectModel.SubjectModel) error {
	s.Canonicalize()
	if s.SubjectName == "" {
		return apperr.InvalidInput("subject name is required")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetSubjectByID(tx, s.SubjectID); err != nil {
			return err
		}
		existing, err := findCanonical(tx, s.SubjectName, s.SubjectTeacher, s.SubjectRoom)
		if err != nil {
			return err
		}
		if existing != nil && existing.SubjectID != s.SubjectID {
			return apperr.Conflict("an identical subject already exists")
		}
		err = tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_id = ?", s.SubjectID).
			Updates(map[string]interface{}{
				"subject_name":    s.SubjectName,
				"subject_teacher": s.SubjectTeacher,
				"subject_room":    s.SubjectRoom,
				"subject_colour":  s.SubjectColour,
			}).Error
		return apperr.FromDB(err, "an identical subject already exists")
	})
}

// DeleteSubject mengosongkan slot timetable yang memakai subject ini, lalu menghapusnya.
func DeleteSubject(db *gorm.DB, id uint) (bool, error) {
	var found bool
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := timetableRepo.ClearSlotsForSubject(tx, id); err != nil {
			return err
		}
		res := tx.Where("subject_id = ?", id).Delete(&subjectModel.SubjectModel{})
		if res.Error != nil {
			return apperr.FromDB(res.Error, "failed to delete subject")
		}
		found = res.RowsAffected > 0
		return nil
	})
	return found, err
}
