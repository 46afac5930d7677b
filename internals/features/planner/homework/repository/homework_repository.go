package repository

import (
	"time"

	"gorm.io/gorm"

	homeworkModel "planner_backend/internals/features/planner/homework/model"
	"planner_backend/internals/helpers/apperr"
)

const orderByDue = "homework_due_date ASC, homework_id ASC"

func CreateHomework(db *gorm.DB, h *homeworkModel.HomeworkModel) error {
	h.HomeworkDueDate = homeworkModel.NormalizeDueDate(h.HomeworkDueDate)
	if err := db.Create(h).Error; err != nil {
		return apperr.FromDB(err, "failed to save homework")
	}
	return nil
}

// CreateHomeworkBatch: satu insert untuk banyak row (broadcast kelas).
func CreateHomeworkBatch(db *gorm.DB, rows []homeworkModel.HomeworkModel) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].HomeworkDueDate = homeworkModel.NormalizeDueDate(rows[i].HomeworkDueDate)
	}
	if err := db.CreateInBatches(rows, 100).Error; err != nil {
		return apperr.FromDB(err, "failed to save homework")
	}
	return nil
}

func GetHomework(db *gorm.DB, id uint) (*homeworkModel.HomeworkModel, error) {
	var h homeworkModel.HomeworkModel
	if err := db.Where("homework_id = ?", id).First(&h).Error; err != nil {
		return nil, apperr.FromDB(err, "homework not found")
	}
	return &h, nil
}

// UpdateHomework menyimpan name, due date, dan description.
func UpdateHomework(db *gorm.DB, h *homeworkModel.HomeworkModel) error {
	h.HomeworkDueDate = homeworkModel.NormalizeDueDate(h.HomeworkDueDate)
	res := db.Model(&homeworkModel.HomeworkModel{}).
		Where("homework_id = ?", h.HomeworkID).
		Updates(map[string]interface{}{
			"homework_name":        h.HomeworkName,
			"homework_due_date":    h.HomeworkDueDate,
			"homework_description": h.HomeworkDescription,
		})
	if res.Error != nil {
		return apperr.FromDB(res.Error, "failed to update homework")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("homework not found")
	}
	return nil
}

// ToggleHomeworkCompleted membalik status selesai dan mengembalikan row terbaru.
func ToggleHomeworkCompleted(db *gorm.DB, id uint, now time.Time) (*homeworkModel.HomeworkModel, error) {
	var out *homeworkModel.HomeworkModel
	err := db.Transaction(func(tx *gorm.DB) error {
		h, err := GetHomework(tx, id)
		if err != nil {
			return err
		}
		var completedAt *time.Time
		if !h.IsCompleted() {
			t := now.UTC()
			completedAt = &t
		}
		if err := tx.Model(&homeworkModel.HomeworkModel{}).
			Where("homework_id = ?", id).
			Update("homework_completed_at", completedAt).Error; err != nil {
			return apperr.FromDB(err, "failed to update homework")
		}
		h.HomeworkCompletedAt = completedAt
		out = h
		return nil
	})
	return out, err
}

func DeleteHomework(db *gorm.DB, id uint) (bool, error) {
	res := db.Where("homework_id = ?", id).Delete(&homeworkModel.HomeworkModel{})
	if res.Error != nil {
		return false, apperr.FromDB(res.Error, "failed to delete homework")
	}
	return res.RowsAffected > 0, nil
}

// ListHomeworkForUser: urut due date naik.
func ListHomeworkForUser(db *gorm.DB, userID uint) ([]homeworkModel.HomeworkModel, error) {
	var out []homeworkModel.HomeworkModel
	if err := db.Where("homework_user_id = ?", userID).Order(orderByDue).Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list homework")
	}
	return out, nil
}

// ListHomeworkForClass: semua row (satu per murid) milik kelas, urut due date naik.
func ListHomeworkForClass(db *gorm.DB, classID uint) ([]homeworkModel.HomeworkModel, error) {
	var out []homeworkModel.HomeworkModel
	if err := db.Where("homework_class_id = ?", classID).Order(orderByDue).Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err, "failed to list class homework")
	}
	return out, nil
}

// DetachHomeworkFromClass: homework murid tetap ada, hanya referensi kelas dilepas.
func DetachHomeworkFromClass(db *gorm.DB, classID uint) (int64, error) {
	res := db.Model(&homeworkModel.HomeworkModel{}).
		Where("homework_class_id = ?", classID).
		Update("homework_class_id", nil)
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to detach class homework")
	}
	return res.RowsAffected, nil
}

func DeleteHomeworkForUser(db *gorm.DB, userID uint) (int64, error) {
	res := db.Where("homework_user_id = ?", userID).Delete(&homeworkModel.HomeworkModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to delete homework")
	}
	return res.RowsAffected, nil
}

// DeleteClassAssignment menghapus semua row satu tugas kelas (name, due, description).
func DeleteClassAssignment(db *gorm.DB, classID uint, name string, due time.Time, description *string) (int64, error) {
	q := db.Where("homework_class_id = ? AND homework_name = ? AND homework_due_date = ?",
		classID, name, homeworkModel.NormalizeDueDate(due))
	if description == nil {
		q = q.Where("homework_description IS NULL")
	} else {
		q = q.Where("homework_description = ?", *description)
	}
	res := q.Delete(&homeworkModel.HomeworkModel{})
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "failed to delete class homework")
	}
	return res.RowsAffected, nil
}
