package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type ReaperConfig struct {
	CronSchedule string
	DryRun       bool
}

// Report jumlah row yatim per tabel (dihapus, atau hanya dihitung kalau dry run).
// Field Ownerless* selalu hanya dihitung: entity tanpa owner tidak dihapus otomatis.
type Report struct {
	Slots       int64 `json:"slots"`
	Memberships int64 `json:"memberships"`
	Attendance  int64 `json:"attendance"`
	Homework    int64 `json:"homework"`

	OwnerlessMarks    int64 `json:"ownerless_marks"`
	OwnerlessHomework int64 `json:"ownerless_homework"`
	OwnerlessEvents   int64 `json:"ownerless_events"`
	OwnerlessClasses  int64 `json:"ownerless_classes"`
}

// Total = relasi yang diperbaiki (atau akan diperbaiki).
func (r Report) Total() int64 {
	return r.Slots + r.Memberships + r.Attendance + r.Homework
}

func (r Report) Ownerless() int64 {
	return r.OwnerlessMarks + r.OwnerlessHomework + r.OwnerlessEvents + r.OwnerlessClasses
}

// fix kosong = count-only, juga saat bukan dry run.
type orphanRule struct {
	name  string
	count string
	fix   string
	dest  func(*Report) *int64
}

// Relasi yang entity-nya sudah hilang (misal cascade yang gagal di tengah jalan).
var rules = []orphanRule{
	{
		name:  "timetable_slots",
		count: `SELECT COUNT(*) FROM timetable_slots s
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = s.slot_user_id)
			   OR NOT EXISTS (SELECT 1 FROM subjects x WHERE x.subject_id = s.slot_subject_id)`,
		fix: `DELETE FROM timetable_slots
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = timetable_slots.slot_user_id)
			   OR NOT EXISTS (SELECT 1 FROM subjects x WHERE x.subject_id = timetable_slots.slot_subject_id)`,
		dest: func(r *Report) *int64 { return &r.Slots },
	},
	{
		name:  "class_students",
		count: `SELECT COUNT(*) FROM class_students m
			WHERE NOT EXISTS (SELECT 1 FROM classes c WHERE c.class_id = m.class_student_class_id)
			   OR NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = m.class_student_student_id)`,
		fix: `DELETE FROM class_students
			WHERE NOT EXISTS (SELECT 1 FROM classes c WHERE c.class_id = class_students.class_student_class_id)
			   OR NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = class_students.class_student_student_id)`,
		dest: func(r *Report) *int64 { return &r.Memberships },
	},
	{
		name:  "user_events",
		count: `SELECT COUNT(*) FROM user_events a
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = a.user_event_user_id)
			   OR NOT EXISTS (SELECT 1 FROM events e WHERE e.event_id = a.user_event_event_id)`,
		fix: `DELETE FROM user_events
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = user_events.user_event_user_id)
			   OR NOT EXISTS (SELECT 1 FROM events e WHERE e.event_id = user_events.user_event_event_id)`,
		dest: func(r *Report) *int64 { return &r.Attendance },
	},
	{
		name:  "homework",
		count: `SELECT COUNT(*) FROM homework h
			WHERE h.homework_class_id IS NOT NULL
			  AND NOT EXISTS (SELECT 1 FROM classes c WHERE c.class_id = h.homework_class_id)`,
		fix: `UPDATE homework SET homework_class_id = NULL
			WHERE homework_class_id IS NOT NULL
			  AND NOT EXISTS (SELECT 1 FROM classes c WHERE c.class_id = homework.homework_class_id)`,
		dest: func(r *Report) *int64 { return &r.Homework },
	},
	{
		name:  "marks_owner",
		count: `SELECT COUNT(*) FROM marks m
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = m.mark_user_id)`,
		dest: func(r *Report) *int64 { return &r.OwnerlessMarks },
	},
	{
		name:  "homework_owner",
		count: `SELECT COUNT(*) FROM homework h
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = h.homework_user_id)`,
		dest: func(r *Report) *int64 { return &r.OwnerlessHomework },
	},
	{
		name:  "events_owner",
		count: `SELECT COUNT(*) FROM events e
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = e.event_user_id)`,
		dest: func(r *Report) *int64 { return &r.OwnerlessEvents },
	},
	{
		name:  "classes_owner",
		count: `SELECT COUNT(*) FROM classes c
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = c.class_teacher_id)`,
		dest: func(r *Report) *int64 { return &r.OwnerlessClasses },
	},
}

// RunOrphanReaper membersihkan relasi yatim dalam satu transaksi.
func RunOrphanReaper(ctx context.Context, db *gorm.DB, dryRun bool) (Report, error) {
	var rep Report
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range rules {
			if dryRun || r.fix == "" {
				var n int64
				if err := tx.Raw(r.count).Scan(&n).Error; err != nil {
					return fmt.Errorf("%s: %w", r.name, err)
				}
				*r.dest(&rep) = n
				continue
			}
			res := tx.Exec(r.fix)
			if res.Error != nil {
				return fmt.Errorf("%s: %w", r.name, res.Error)
			}
			*r.dest(&rep) = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	return rep, nil
}

// StartOrphanReaper menjadwalkan RunOrphanReaper. Schedule kosong = nonaktif.
func StartOrphanReaper(db *gorm.DB, cfg ReaperConfig) *cron.Cron {
	if cfg.CronSchedule == "" {
		log.Println("[REAPER] disabled (schedule kosong)")
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()

		rep, err := RunOrphanReaper(ctx, db, cfg.DryRun)
		if err != nil {
			log.Printf("[REAPER] error: %v", err)
			return
		}
		if rep.Total() == 0 && rep.Ownerless() == 0 {
			log.Println("[REAPER] tidak ada relasi yatim")
			return
		}
		log.Printf("[REAPER] dry=%v slots=%d memberships=%d attendance=%d homework=%d",
			cfg.DryRun, rep.Slots, rep.Memberships, rep.Attendance, rep.Homework)
		if rep.Ownerless() > 0 {
			log.Printf("[REAPER] owner hilang (tidak dihapus): marks=%d homework=%d events=%d classes=%d",
				rep.OwnerlessMarks, rep.OwnerlessHomework, rep.OwnerlessEvents, rep.OwnerlessClasses)
		}
	})
	if err != nil {
		log.Printf("[REAPER] add cron gagal: %v", err)
		return nil
	}
	log.Printf("[REAPER] started schedule=%q dryRun=%v", cfg.CronSchedule, cfg.DryRun)
	c.Start()
	return c
}
