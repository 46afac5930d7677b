package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config berisi semua setting runtime yang dibaca dari ENV.
type Config struct {
	Port           string
	DBDriver       string
	DBPath         string
	DBDSN          string
	DBLogLevel     gormLogger.LogLevel
	ReaperSchedule string
	ReaperDryRun   bool
	CORSOrigins    []string
	RequestTimeout time.Duration

	AccessLog       bool
	LogTimeZone     string
	PanicStackTrace bool
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] .env tidak ditemukan, menggunakan ENV dari sistem")
	} else {
		log.Println("[CONFIG] .env file berhasil dimuat")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load membaca ENV (setelah LoadEnv) ke dalam Config dengan default yang aman.
func Load() Config {
	cfg := Config{
		Port:           GetEnv("PORT", "3000"),
		DBDriver:       strings.ToLower(strings.TrimSpace(GetEnv("DB_DRIVER", DriverSQLite))),
		DBPath:         GetEnv("DB_PATH", "./databases/main.db"),
		DBDSN:          GetEnv("DB_DSN"),
		DBLogLevel:     ParseLogLevel(GetEnv("DB_LOG_LEVEL", "warn")),
		ReaperSchedule: strings.TrimSpace(GetEnv("REAPER_SCHEDULE", "@daily")),
		ReaperDryRun:   parseBool(GetEnv("REAPER_DRY_RUN"), false),
		RequestTimeout: parseDuration(GetEnv("REQUEST_TIMEOUT"), 5*time.Second),

		AccessLog:       parseBool(GetEnv("ACCESS_LOG"), true),
		LogTimeZone:     strings.TrimSpace(GetEnv("LOG_TIMEZONE", "UTC")),
		PanicStackTrace: parseBool(GetEnv("PANIC_STACKTRACE"), true),
	}
	if cfg.LogTimeZone == "" {
		cfg.LogTimeZone = "UTC"
	}

	for _, o := range strings.Split(GetEnv("CORS_ORIGINS", "http://localhost:5173"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverPostgres {
		log.Printf("[CONFIG] DB_DRIVER=%q tidak dikenal, fallback ke sqlite", cfg.DBDriver)
		cfg.DBDriver = DriverSQLite
	}
	if cfg.DBDriver == DriverPostgres && cfg.DBDSN == "" {
		log.Println("[CONFIG] DB_DSN belum diset untuk driver postgres!")
	}
	return cfg
}

func ParseLogLevel(s string) gormLogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

func parseBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	// not-found & unique violation adalah alur normal, bukan error DB
	case err != nil && l.LogLevel >= gormLogger.Error && !isExpected(err):
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}

func isExpected(err error) bool {
	if errors.Is(err, gormLogger.ErrRecordNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key")
}
