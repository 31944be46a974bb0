package validation

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrAmountNotPositive = errors.New("amount must be a positive number")
	ErrInvalidMonth      = errors.New("month must be in YYYY-MM format")
	ErrInvalidEmail      = errors.New("invalid email address")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateAmount enforces the positivity the SPA checks client-side.
// The server re-checks because clients are not trusted.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	return nil
}

// ValidateMonth requires YYYY-MM so budget ordering by month key stays
// lexicographically correct.
func ValidateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return ErrInvalidMonth
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
