package model

// SubjectModel: mata pelajaran. Disimpan dalam bentuk kanonik
// (name & teacher Title Case, room UPPER CASE), unik per (name, teacher, room).
type SubjectModel struct {
	SubjectID      uint    `gorm:"column:subject_id;primaryKey;autoIncrement" json:"subject_id"`
	SubjectName    string  `gorm:"column:subject_name;type:varchar(100);not null;uniqueIndex:ux_subjects_canonical,priority:1;index:idx_subjects_name" json:"subject_name"`
	SubjectTeacher string  `gorm:"column:subject_teacher;type:varchar(100);not null;uniqueIndex:ux_subjects_canonical,priority:2" json:"subject_teacher"`
	SubjectRoom    string  `gorm:"column:subject_room;type:varchar(50);not null;uniqueIndex:ux_subjects_canonical,priority:3" json:"subject_room"`
	SubjectColour  *string `gorm:"column:subject_colour;type:varchar(7)" json:"subject_colour,omitempty"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
