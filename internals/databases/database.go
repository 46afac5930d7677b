package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"planner_backend/internals/configs"
	classModel "planner_backend/internals/features/planner/classes/model"
	eventModel "planner_backend/internals/features/planner/events/model"
	homeworkModel "planner_backend/internals/features/planner/homework/model"
	markModel "planner_backend/internals/features/planner/marks/model"
	subjectModel "planner_backend/internals/features/planner/subjects/model"
	timetableModel "planner_backend/internals/features/planner/timetable/model"
	codeModel "planner_backend/internals/features/users/registration_codes/model"
	userModel "planner_backend/internals/features/users/user/model"
)

var DB *gorm.DB

// ConnectDB membuka koneksi sesuai cfg.DBDriver, lalu menyimpannya di DB.
func ConnectDB(cfg configs.Config) error {
	db, err := Open(cfg)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

func Open(cfg configs.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.DBLogLevel),
		TranslateError: true,
	}

	switch cfg.DBDriver {
	case configs.DriverPostgres:
		log.Println("[DB] Koneksi ke PostgreSQL...")
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DBDSN,
			PreferSimpleProtocol: true,
		}), gcfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		TunePool(db, cfg.DBDriver)
		log.Println("[DB] PostgreSQL connected.")
		return db, nil

	default:
		if dir := filepath.Dir(cfg.DBPath); dir != "" && dir != "." && !strings.HasPrefix(cfg.DBPath, "file:") {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		log.Printf("[DB] Membuka SQLite %s", cfg.DBPath)
		db, err := gorm.Open(sqlite.Open(SQLiteDSN(cfg.DBPath)), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		TunePool(db, cfg.DBDriver)
		log.Println("[DB] SQLite ready.")
		return db, nil
	}
}

// SQLiteDSN menambahkan pragma busy_timeout; file DB juga pakai WAL.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=busy_timeout(5000)"
	if !strings.Contains(path, "mode=memory") && path != ":memory:" {
		dsn += "&_pragma=journal_mode(WAL)"
	}
	return dsn
}

// TunePool: SQLite hanya boleh satu writer, jadi koneksi dibatasi 1.
func TunePool(db *gorm.DB, driver string) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[DB] pool tune err: %v", err)
		return
	}
	if driver == configs.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Models: semua tabel yang dibuat saat startup (create-if-absent).
func Models() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&codeModel.RegistrationCodeModel{},
		&subjectModel.SubjectModel{},
		&timetableModel.TimetableSlotModel{},
		&homeworkModel.HomeworkModel{},
		&markModel.MarkModel{},
		&eventModel.EventModel{},
		&eventModel.UserEventModel{},
		&classModel.ClassModel{},
		&classModel.ClassStudentModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Printf("[DB] Schema siap (%d tabel)", len(Models()))
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
