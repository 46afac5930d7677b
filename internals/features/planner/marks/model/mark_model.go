package model

type MarkModel struct {
	MarkID     uint   `gorm:"column:mark_id;primaryKey;autoIncrement" json:"mark_id"`
	MarkUserID uint   `gorm:"column:mark_user_id;not null;index:idx_marks_user" json:"mark_user_id"`
	MarkName   string `gorm:"column:mark_name;type:varchar(255);not null" json:"mark_name"`
	MarkValue  int    `gorm:"column:mark_value;not null" json:"mark_value"`
	MarkGrade  string `gorm:"column:mark_grade;type:varchar(20);not null" json:"mark_grade"`
}

func (MarkModel) TableName() string {
	return "marks"
}
