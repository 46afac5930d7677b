package model

const (
	Days    = 5 // Senin..Jumat
	Periods = 9
)

// TimetableSlotModel: satu sel timetable milik user.
// Primary key komposit (user, day, period) menjamin maksimal satu subject per sel.
type TimetableSlotModel struct {
	SlotUserID    uint `gorm:"column:slot_user_id;primaryKey;autoIncrement:false" json:"slot_user_id"`
	SlotDay       int  `gorm:"column:slot_day;primaryKey;autoIncrement:false" json:"slot_day"`
	SlotPeriod    int  `gorm:"column:slot_period;primaryKey;autoIncrement:false" json:"slot_period"`
	SlotSubjectID uint `gorm:"column:slot_subject_id;not null;index:idx_slots_subject" json:"slot_subject_id"`
}

func (TimetableSlotModel) TableName() string {
	return "timetable_slots"
}

func ValidCell(day, period int) bool {
	return day >= 0 && day < Days && period >= 0 && period < Periods
}
