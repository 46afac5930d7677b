package model

import "time"

// HomeworkModel: satu tugas milik satu user.
// Tugas kelas disimpan sebagai satu row per murid dengan homework_class_id terisi.
type HomeworkModel struct {
	HomeworkID          uint       `gorm:"column:homework_id;primaryKey;autoIncrement" json:"homework_id"`
	HomeworkName        string     `gorm:"column:homework_name;type:varchar(255);not null" json:"homework_name"`
	HomeworkClassID     *uint      `gorm:"column:homework_class_id;index:idx_homework_class" json:"homework_class_id,omitempty"`
	HomeworkUserID      uint       `gorm:"column:homework_user_id;not null;index:idx_homework_user_due,priority:1" json:"homework_user_id"`
	HomeworkDueDate     time.Time  `gorm:"column:homework_due_date;not null;index:idx_homework_user_due,priority:2" json:"homework_due_date"`
	HomeworkDescription *string    `gorm:"column:homework_description;type:text" json:"homework_description,omitempty"`
	HomeworkCompletedAt *time.Time `gorm:"column:homework_completed_at" json:"homework_completed_at,omitempty"`
}

func (HomeworkModel) TableName() string {
	return "homework"
}

func (h *HomeworkModel) IsCompleted() bool {
	return h.HomeworkCompletedAt != nil
}

// NormalizeDueDate: due date disimpan UTC dengan presisi detik
// supaya perbandingan kesamaan (dedup) stabil di semua driver.
func NormalizeDueDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
