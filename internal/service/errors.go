package service

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds returned by every service. Handlers map them to HTTP status codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStorage      = errors.New("storage failure")
	ErrUnauthorized = errors.New("unauthorized")
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// SystemClock reads the server clock in UTC
func SystemClock() time.Time {
	return time.Now().UTC()
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// validatePeriod checks a calendar month (1-12) and a four digit year
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return invalidInput("month must be between 1 and 12, got %d", month)
	}
	if year < 1000 || year > 9999 {
		return invalidInput("year must have four digits, got %d", year)
	}
	return nil
}

func validateHomeID(homeID int) error {
	if homeID <= 0 {
		return invalidInput("home_id must be a positive number, got %d", homeID)
	}
	return nil
}
