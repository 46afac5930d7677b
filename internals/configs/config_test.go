package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "DB_DSN", "DB_LOG_LEVEL", "REAPER_SCHEDULE", "REAPER_DRY_RUN", "REQUEST_TIMEOUT", "CORS_ORIGINS", "ACCESS_LOG", "LOG_TIMEZONE", "PANIC_STACKTRACE"} {
		t.Setenv(k, "")
	}
	// Setenv("") tetap "ada"; yang diuji fallback untuk nilai kosong/aneh
	cfg := Load()
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, gormLogger.Warn, cfg.DBLogLevel)
	assert.False(t, cfg.ReaperDryRun)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.CORSOrigins)
	assert.True(t, cfg.AccessLog)
	assert.Equal(t, "UTC", cfg.LogTimeZone)
	assert.True(t, cfg.PanicStackTrace)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", " Postgres ")
	t.Setenv("DB_DSN", "postgres://planner@localhost/planner")
	t.Setenv("DB_LOG_LEVEL", "info")
	t.Setenv("REAPER_SCHEDULE", "@every 30m")
	t.Setenv("REAPER_DRY_RUN", "true")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("ACCESS_LOG", "false")
	t.Setenv("LOG_TIMEZONE", "Asia/Jakarta")
	t.Setenv("PANIC_STACKTRACE", "0")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, gormLogger.Info, cfg.DBLogLevel)
	assert.Equal(t, "@every 30m", cfg.ReaperSchedule)
	assert.True(t, cfg.ReaperDryRun)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.AccessLog)
	assert.Equal(t, "Asia/Jakarta", cfg.LogTimeZone)
	assert.False(t, cfg.PanicStackTrace)
}

func TestLoad_UnknownDriverFallsBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("REQUEST_TIMEOUT", "-1s")
	cfg := Load()
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, gormLogger.Silent, ParseLogLevel("SILENT"))
	assert.Equal(t, gormLogger.Error, ParseLogLevel(" error "))
	assert.Equal(t, gormLogger.Info, ParseLogLevel("info"))
	assert.Equal(t, gormLogger.Warn, ParseLogLevel(""))
	assert.Equal(t, gormLogger.Warn, ParseLogLevel("verbose"))
}
