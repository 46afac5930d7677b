package service

import (
	"strings"

	"gorm.io/gorm"

	markModel "planner_backend/internals/features/planner/marks/model"
	markRepo "planner_backend/internals/features/planner/marks/repository"
	"planner_backend/internals/helpers/apperr"
)

func GetOwnedMark(db *gorm.DB, markID, userID uint) (*markModel.MarkModel, error) {
	m, err := markRepo.GetMark(db, markID)
	if err != nil {
		return nil, err
	}
	if m.MarkUserID != userID {
		return nil, apperr.Forbidden("not your mark")
	}
	return m, nil
}

func AddMark(db *gorm.DB, userID uint, name string, value int, grade string) (*markModel.MarkModel, error) {
	m := &markModel.MarkModel{
		MarkUserID: userID,
		MarkName:   strings.TrimSpace(name),
		MarkValue:  value,
		MarkGrade:  strings.TrimSpace(grade),
	}
	if m.MarkName == "" {
		return nil, apperr.InvalidInput("mark name is required")
	}
	if err := markRepo.CreateMark(db, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateOwnedMark mengganti name, value, dan grade sekaligus.
func UpdateOwnedMark(db *gorm.DB, markID, userID uint, name string, value int, grade string) (*markModel.MarkModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("mark name is required")
	}
	var out *markModel.MarkModel
	err := db.Transaction(func(tx *gorm.DB) error {
		m, err := GetOwnedMark(tx, markID, userID)
		if err != nil {
			return err
		}
		m.MarkName, m.MarkValue, m.MarkGrade = name, value, strings.TrimSpace(grade)
		if err := markRepo.UpdateMark(tx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	return out, err
}

func DeleteOwnedMark(db *gorm.DB, markID, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedMark(tx, markID, userID); err != nil {
			return err
		}
		found, err := markRepo.DeleteMark(tx, markID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.NotFound("mark not found")
		}
		return nil
	})
}
