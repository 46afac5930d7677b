package repository

import (
	"strings"

	"gorm.io/gorm"

	classModel "planner_backend/internals/features/planner/classes/model"
	"planner_backend/internals/helpers/apperr"
)

func CreateClass(db *gorm.DB, c *classModel.ClassModel) error {
	c.ClassName = strings.TrimSpace(c.ClassName)
	if c.ClassName == "" {
		return apperr.InvalidInput("class name is required")
	}
	if err := db.Create(c).Error; err != nil {
		return apperr.FromDB(err, "failed to save class")
	}
	return nil
}

func GetClass(db *gorm.DB, id uint) (*classModel.ClassModel, error) {
	var c classModel.ClassModel
	if err := db.Where("class_id = ?", id).First(&c).Error; err != nil {
		return nil, apperr.FromDB(err, "class not found")
	}
	return &c, nil
}

func GetClassesByIDs(db *gorm.DB, ids []uint) ([]classModel.ClassModel, error) {
	out := []classModel.ClassModel{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := db.Where("class_id IN ?", ids).Order("class_id ASC").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to load classes")
	}
	return out, nil
}

func ListClassesByTeacher(db *gorm.DB, teacherID uint) ([]classModel.ClassModel, error) {
	var out []classModel.ClassModel
	if err := db.Where("class_teacher_id = ?", teacherID).Order("class_id ASC").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list classes")
	}
	return out, nil
}

func RenameClass(db *gorm.DB, id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.InvalidInput("class name is required")
	}
	res := db.Model(&classModel.ClassModel{}).Where("class_id = ?", id).Update("class_name", name)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "failed to rename class")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("class not found")
	}
	return nil
}

// DeleteClassRow hanya menghapus row kelas. Membership & homework
// harus sudah dibereskan (lihat service.DeleteClass).
func DeleteClassRow(db *gorm.DB, id uint) (bool, error) {
	res := db.Where("class_id = ?", id).Delete(&classModel.ClassModel{})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to delete class")
	}
	return res.RowsAffected > 0, nil
}
