package service

import (
	"errors"

	"gorm.io/gorm"

	classModel "planner_backend/internals/features/planner/classes/model"
	classRepo "planner_backend/internals/features/planner/classes/repository"
	homeworkRepo "planner_backend/internals/features/planner/homework/repository"
	homeworkService "planner_backend/internals/features/planner/homework/service"
	userModel "planner_backend/internals/features/users/user/model"
	userRepo "planner_backend/internals/features/users/user/repository"
	"planner_backend/internals/helpers/apperr"
)

// ClassDetail: kelas + murid (tanpa field sensitif) + tugas kelas yang sudah di-dedup.
type ClassDetail struct {
	classModel.ClassModel
	Students []userModel.UserView              `json:"students"`
	Homework []homeworkService.ClassAssignment `json:"homework"`
}

// GetOwnedClass: kelas milik orang lain → Forbidden.
func GetOwnedClass(db *gorm.DB, classID, teacherID uint) (*classModel.ClassModel, error) {
	c, err := classRepo.GetClass(db, classID)
	if err != nil {
		return nil, err
	}
	if !c.OwnedBy(teacherID) {
		return nil, apperr.Forbidden("class does not belong to you")
	}
	return c, nil
}

func GetClassDetail(db *gorm.DB, c *classModel.ClassModel) (*ClassDetail, error) {
	studentIDs, err := classRepo.ListStudentsInClass(db, c.ClassID)
	if err != nil {
		return nil, err
	}
	users, err := userRepo.GetUsersByIDs(db, studentIDs)
	if err != nil {
		return nil, err
	}
	// membership yatim (user sudah hilang) tidak ikut; dibereskan reaper
	students := userModel.PublicViews(users)
	hw, err := homeworkService.ListClassHomework(db, c.ClassID)
	if err != nil {
		return nil, err
	}
	return &ClassDetail{ClassModel: *c, Students: students, Homework: hw}, nil
}

func ListClassDetailsForTeacher(db *gorm.DB, teacherID uint) ([]ClassDetail, error) {
	classes, err := classRepo.ListClassesByTeacher(db, teacherID)
	if err != nil {
		return nil, err
	}
	out := make([]ClassDetail, 0, len(classes))
	for i := range classes {
		d, err := GetClassDetail(db, &classes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func ListClassesForStudent(db *gorm.DB, studentID uint) ([]classModel.ClassModel, error) {
	ids, err := classRepo.ListClassesForStudent(db, studentID)
	if err != nil {
		return nil, err
	}
	return classRepo.GetClassesByIDs(db, ids)
}

// AddStudents menambahkan user yang ada ke kelas; id yang tidak dikenal dilewati.
func AddStudents(db *gorm.DB, classID uint, studentIDs []uint) (added []uint, err error) {
	added = []uint{}
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, sid := range studentIDs {
			if _, err := userRepo.GetUserByID(tx, sid); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					continue
				}
				return err
			}
			ok, err := classRepo.AddMember(tx, classID, sid)
			if err != nil {
				return err
			}
			if ok {
				added = append(added, sid)
			}
		}
		return nil
	})
	return added, err
}

// DeleteClass: membership dihapus, homework kelas dilepas, lalu row kelas dihapus.
func DeleteClass(db *gorm.DB, classID uint) (bool, error) {
	var found bool
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := classRepo.RemoveAllMembers(tx, classID); err != nil {
			return err
		}
		if _, err := homeworkRepo.DetachHomeworkFromClass(tx, classID); err != nil {
			return err
		}
		var err error
		found, err = classRepo.DeleteClassRow(tx, classID)
		return err
	})
	return found, err
}

// GetReadableClass: pemilik atau murid kelas boleh melihat detail.
func GetReadableClass(db *gorm.DB, classID, userID uint) (*ClassDetail, error) {
	c, err := classRepo.GetClass(db, classID)
	if err != nil {
		return nil, err
	}
	if !c.OwnedBy(userID) {
		ids, err := classRepo.ListStudentsInClass(db, classID)
		if err != nil {
			return nil, err
		}
		if !containsID(ids, userID) {
			return nil, apperr.Forbidden("you are not part of this class")
		}
	}
	return GetClassDetail(db, c)
}

func containsID(ids []uint, id uint) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func CreateClass(db *gorm.DB, teacherID uint, name string) (*classModel.ClassModel, error) {
	c := &classModel.ClassModel{ClassTeacherID: teacherID, ClassName: name}
	if err := classRepo.CreateClass(db, c); err != nil {
		return nil, err
	}
	return c, nil
}

func RenameOwnedClass(db *gorm.DB, classID, teacherID uint, name string) (*classModel.ClassModel, error) {
	var out *classModel.ClassModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedClass(tx, classID, teacherID); err != nil {
			return err
		}
		if err := classRepo.RenameClass(tx, classID, name); err != nil {
			return err
		}
		var err error
		out, err = classRepo.GetClass(tx, classID)
		return err
	})
	return out, err
}

func DeleteOwnedClass(db *gorm.DB, classID, teacherID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedClass(tx, classID, teacherID); err != nil {
			return err
		}
		found, err := DeleteClass(tx, classID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.NotFound("class not found")
		}
		return nil
	})
}

// AddStudentsToOwnedClass: cek kepemilikan lalu AddStudents.
func AddStudentsToOwnedClass(db *gorm.DB, classID, teacherID uint, studentIDs []uint) ([]uint, error) {
	var added []uint
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedClass(tx, classID, teacherID); err != nil {
			return err
		}
		var err error
		added, err = AddStudents(tx, classID, studentIDs)
		return err
	})
	return added, err
}

func RemoveStudentFromOwnedClass(db *gorm.DB, classID, teacherID, studentID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedClass(tx, classID, teacherID); err != nil {
			return err
		}
		removed, err := classRepo.RemoveMember(tx, classID, studentID)
		if err != nil {
			return err
		}
		if !removed {
			return apperr.NotFound("student is not in this class")
		}
		return nil
	})
}
