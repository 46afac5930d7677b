package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "planner_backend/internals/features/planner/classes/model"
	"planner_backend/internals/helpers/apperr"
)

/* =========================================================
   CLASS STUDENTS
========================================================= */

func ListStudentsInClass(db *gorm.DB, classID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&classModel.ClassStudentModel{}).
		Where("class_student_class_id = ?", classID).
		Order("class_student_student_id ASC").
		Pluck("class_student_student_id", &ids).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list students")
	}
	return ids, nil
}

func ListClassesForStudent(db *gorm.DB, studentID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&classModel.ClassStudentModel{}).
		Where("class_student_student_id = ?", studentID).
		Order("class_student_class_id ASC").
		Pluck("class_student_class_id", &ids).Error
	if err != nil {
		return nil, apperr.FromDB(err, "failed to list classes")
	}
	return ids, nil
}

// AddMember idempotent: pasangan yang sama tidak pernah tersimpan dua kali.
func AddMember(db *gorm.DB, classID, studentID uint) (bool, error) {
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&classModel.ClassStudentModel{
		ClassStudentClassID:   classID,
		ClassStudentStudentID: studentID,
	})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to add student")
	}
	return res.RowsAffected > 0, nil
}

func RemoveMember(db *gorm.DB, classID, studentID uint) (bool, error) {
	res := db.Where("class_student_class_id = ? AND class_student_student_id = ?", classID, studentID).
		Delete(&classModel.ClassStudentModel{})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to remove student")
	}
	return res.RowsAffected > 0, nil
}

func RemoveAllMembers(db *gorm.DB, classID uint) (int64, error) {
	res := db.Where("class_student_class_id = ?", classID).Delete(&classModel.ClassStudentModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to remove students")
	}
	return res.RowsAffected, nil
}

func RemoveStudentFromAllClasses(db *gorm.DB, studentID uint) (int64, error) {
	res := db.Where("class_student_student_id = ?", studentID).Delete(&classModel.ClassStudentModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to remove memberships")
	}
	return res.RowsAffected, nil
}
