package model

type ClassModel struct {
	ClassID        uint   `gorm:"column:class_id;primaryKey;autoIncrement" json:"class_id"`
	ClassTeacherID uint   `gorm:"column:class_teacher_id;not null;index:idx_classes_teacher" json:"class_teacher_id"`
	ClassName      string `gorm:"column:class_name;type:varchar(255);not null" json:"class_name"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (c *ClassModel) OwnedBy(userID uint) bool {
	return c.ClassTeacherID == userID
}

/* =========================================================
   CLASS STUDENTS (membership)
========================================================= */

type ClassStudentModel struct {
	ClassStudentClassID   uint `gorm:"column:class_student_class_id;primaryKey;autoIncrement:false" json:"class_student_class_id"`
	ClassStudentStudentID uint `gorm:"column:class_student_student_id;primaryKey;autoIncrement:false;index:idx_class_students_student" json:"class_student_student_id"`
}

func (ClassStudentModel) TableName() string {
	return "class_students"
}
