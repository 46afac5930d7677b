package repository

import (
	"gorm.io/gorm"

	markModel "planner_backend/internals/features/planner/marks/model"
	"planner_backend/internals/helpers/apperr"
)

func CreateMark(db *gorm.DB, m *markModel.MarkModel) error {
	if err := db.Create(m).Error; err != nil {
		return apperr.FromDB(err, "failed to save mark")
	}
	return nil
}

func GetMark(db *gorm.DB, id uint) (*markModel.MarkModel, error) {
	var m markModel.MarkModel
	if err := db.Where("mark_id = ?", id).First(&m).Error; err != nil {
		return nil, apperr.FromDB(err, "mark not found")
	}
	return &m, nil
}

func UpdateMark(db *gorm.DB, m *markModel.MarkModel) error {
	res := db.Model(&markModel.MarkModel{}).
		Where("mark_id = ?", m.MarkID).
		Updates(map[string]interface{}{
			"mark_name":  m.MarkName,
			"mark_value": m.MarkValue,
			"mark_grade": m.MarkGrade,
		})
	if res.Error != nil {
		return apperr.FromDB(res.Error, "failed to update mark")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("mark not found")
	}
	return nil
}

func DeleteMark(db *gorm.DB, id uint) (bool, error) {
	res := db.Where("mark_id = ?", id).Delete(&markModel.MarkModel{})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to delete mark")
	}
	return res.RowsAffected > 0, nil
}

func ListMarksForUser(db *gorm.DB, userID uint) ([]markModel.MarkModel, error) {
	var out []markModel.MarkModel
	if err := db.Where("mark_user_id = ?", userID).Order("mark_id ASC").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list marks")
	}
	return out, nil
}

func DeleteMarksForUser(db *gorm.DB, userID uint) (int64, error) {
	res := db.Where("mark_user_id = ?", userID).Delete(&markModel.MarkModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to delete marks")
	}
	return res.RowsAffected, nil
}
