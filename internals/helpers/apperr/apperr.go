// Package apperr berisi taksonomi error domain dan pemetaannya dari error driver DB.
package apperr

import (
	stdErrors "errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorage            = errors.New("storage failure")
)

// kindError membawa kategori (sentinel) + pesan/cause asli.
type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.kind.Error() + ": " + e.cause.Error()
	default:
		return e.kind.Error()
	}
}

func (e *kindError) Is(target error) bool { return target == e.kind }
func (e *kindError) Unwrap() error        { return e.cause }
func (e *kindError) Cause() error         { return e.cause }

// Message pesan yang aman untuk client.
func (e *kindError) Message() string {
	if e.msg != "" {
		return e.msg
	}
	return e.kind.Error()
}

func NotFound(msg string) error     { return &kindError{kind: ErrNotFound, msg: msg} }
func Conflict(msg string) error     { return &kindError{kind: ErrConflict, msg: msg} }
func Forbidden(msg string) error    { return &kindError{kind: ErrForbidden, msg: msg} }
func InvalidInput(msg string) error { return &kindError{kind: ErrInvalidInput, msg: msg} }

// Storage membungkus error driver yang bukan not-found / unique violation.
func Storage(err error, msg string) error {
	return &kindError{kind: ErrStorage, msg: msg, cause: errors.WithStack(err)}
}

// FromDB menerjemahkan error GORM/driver ke kategori domain.
// nil tetap nil; error yang sudah berkategori dikembalikan apa adanya.
func FromDB(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ke *kindError
	if stdErrors.As(err, &ke) {
		return err
	}
	switch {
	case stdErrors.Is(err, gorm.ErrRecordNotFound):
		return &kindError{kind: ErrNotFound, msg: msg}
	case IsUniqueViolation(err):
		return &kindError{kind: ErrConflict, msg: msg, cause: err}
	}
	return Storage(err, msg)
}

// IsUniqueViolation: gorm (TranslateError), pgx, lib/pq, atau pesan SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if stdErrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if stdErrors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	if stdErrors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	// tanpa tipe driver: cek substring
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(strings.ToLower(msg), "duplicate key")
}

// HTTPStatus memetakan error domain ke status HTTP.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case stdErrors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case stdErrors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case stdErrors.Is(err, ErrUnauthorized), stdErrors.Is(err, ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case stdErrors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case stdErrors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// PublicMessage: pesan untuk client. Storage failure tidak membocorkan detail.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if HTTPStatus(err) >= fiber.StatusInternalServerError {
		return "Internal server error"
	}
	var ke *kindError
	if stdErrors.As(err, &ke) {
		return ke.Message()
	}
	return err.Error()
}
