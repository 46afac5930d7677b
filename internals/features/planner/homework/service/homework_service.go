package service

import (
	"strings"
	"time"

	"gorm.io/gorm"

	classRepo "planner_backend/internals/features/planner/classes/repository"
	homeworkModel "planner_backend/internals/features/planner/homework/model"
	homeworkRepo "planner_backend/internals/features/planner/homework/repository"
	"planner_backend/internals/helpers/apperr"
)

// SentinelUserID dipakai saat menormalkan pemilik row tugas kelas.
const SentinelUserID uint = 0

// ClassAssignment: satu tugas kelas secara logis (gabungan row per murid).
type ClassAssignment struct {
	ClassID     uint      `json:"class_id"`
	Name        string    `json:"homework_name"`
	DueDate     time.Time `json:"homework_due_date"`
	Description *string   `json:"homework_description,omitempty"`
	Assigned    int       `json:"assigned"`
	Completed   int       `json:"completed"`
}

type assignmentKey struct {
	name   string
	due    int64
	desc   string
	noDesc bool
}

func keyOf(h *homeworkModel.HomeworkModel) assignmentKey {
	k := assignmentKey{name: h.HomeworkName, due: h.HomeworkDueDate.Unix()}
	if h.HomeworkDescription == nil {
		k.noDesc = true
	} else {
		k.desc = *h.HomeworkDescription
	}
	return k
}

// AssignToClass membuat satu row homework untuk tiap murid kelas saat ini.
// Kelas tanpa murid → 0 row, bukan error.
func AssignToClass(db *gorm.DB, classID uint, name string, due time.Time, description *string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperr.InvalidInput("homework name is required")
	}

	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := classRepo.GetClass(tx, classID); err != nil {
			return err
		}
		students, err := classRepo.ListStudentsInClass(tx, classID)
		if err != nil {
			return err
		}
		rows := make([]homeworkModel.HomeworkModel, 0, len(students))
		for _, sid := range students {
			cid := classID
			rows = append(rows, homeworkModel.HomeworkModel{
				HomeworkName:        name,
				HomeworkClassID:     &cid,
				HomeworkUserID:      sid,
				HomeworkDueDate:     due,
				HomeworkDescription: description,
			})
		}
		if err := homeworkRepo.CreateHomeworkBatch(tx, rows); err != nil {
			return err
		}
		created = len(rows)
		return nil
	})
	return created, err
}

// DedupClassHomework menormalkan pemilik ke sentinel lalu menggabungkan row
// dengan (name, due date, description) yang persis sama. Urutan input dipertahankan.
func DedupClassHomework(rows []homeworkModel.HomeworkModel) []ClassAssignment {
	out := []ClassAssignment{}
	index := map[assignmentKey]int{}
	for i := range rows {
		h := rows[i]
		h.HomeworkUserID = SentinelUserID
		k := keyOf(&h)

		pos, ok := index[k]
		if !ok {
			var classID uint
			if h.HomeworkClassID != nil {
				classID = *h.HomeworkClassID
			}
			out = append(out, ClassAssignment{
				ClassID:     classID,
				Name:        h.HomeworkName,
				DueDate:     h.HomeworkDueDate,
				Description: h.HomeworkDescription,
			})
			pos = len(out) - 1
			index[k] = pos
		}
		out[pos].Assigned++
		if h.IsCompleted() {
			out[pos].Completed++
		}
	}
	return out
}

// ListClassHomework: tugas kelas versi logis, urut due date naik.
func ListClassHomework(db *gorm.DB, classID uint) ([]ClassAssignment, error) {
	rows, err := homeworkRepo.ListHomeworkForClass(db, classID)
	if err != nil {
		return nil, err
	}
	return DedupClassHomework(rows), nil
}

// UnassignFromClass menghapus semua row dari satu tugas kelas.
func UnassignFromClass(db *gorm.DB, classID uint, name string, due time.Time, description *string) (int64, error) {
	n, err := homeworkRepo.DeleteClassAssignment(db, classID, strings.TrimSpace(name), due, description)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, apperr.NotFound("class homework not found")
	}
	return n, nil
}

// GetOwnedHomework: NotFound kalau tidak ada, Forbidden kalau milik user lain.
func GetOwnedHomework(db *gorm.DB, homeworkID, userID uint) (*homeworkModel.HomeworkModel, error) {
	h, err := homeworkRepo.GetHomework(db, homeworkID)
	if err != nil {
		return nil, err
	}
	if h.HomeworkUserID != userID {
		return nil, apperr.Forbidden("not your homework")
	}
	return h, nil
}

// ToggleOwnedHomework membalik status selesai milik user sendiri.
func ToggleOwnedHomework(db *gorm.DB, homeworkID, userID uint, now time.Time) (*homeworkModel.HomeworkModel, error) {
	var out *homeworkModel.HomeworkModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedHomework(tx, homeworkID, userID); err != nil {
			return err
		}
		var err error
		out, err = homeworkRepo.ToggleHomeworkCompleted(tx, homeworkID, now)
		return err
	})
	return out, err
}

// UpdateOwnedHomework: hanya name, due date, description yang bisa diubah.
func UpdateOwnedHomework(db *gorm.DB, homeworkID, userID uint, name string, due time.Time, description *string) (*homeworkModel.HomeworkModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("homework name is required")
	}
	var out *homeworkModel.HomeworkModel
	err := db.Transaction(func(tx *gorm.DB) error {
		h, err := GetOwnedHomework(tx, homeworkID, userID)
		if err != nil {
			return err
		}
		h.HomeworkName, h.HomeworkDueDate, h.HomeworkDescription = name, due, description
		if err := homeworkRepo.UpdateHomework(tx, h); err != nil {
			return err
		}
		out = h
		return nil
	})
	return out, err
}

func DeleteOwnedHomework(db *gorm.DB, homeworkID, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedHomework(tx, homeworkID, userID); err != nil {
			return err
		}
		found, err := homeworkRepo.DeleteHomework(tx, homeworkID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.NotFound("homework not found")
		}
		return nil
	})
}
