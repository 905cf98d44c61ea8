package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"pocketbook/internal/common"
	"pocketbook/internal/model"
)

// ValidateAmount ensures an amount is a finite number greater than zero.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: not a number", common.ErrInvalidAmount)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: must be greater than zero, got %v", common.ErrInvalidAmount, amount)
	}
	return nil
}

// ParseAmount converts user-supplied text to a validated amount.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", common.ErrInvalidAmount, s)
	}
	if err := ValidateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// ParseDate converts user-supplied text to a date. An empty string is
// a valid "no date". The future-date check happens at create/update
// time against the ledger's clock, not here.
func ParseDate(s string) (time.Time, error) {
	date, err := model.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", common.ErrInvalidDate, s)
	}
	return date, nil
}

// validateDate rejects dates strictly after the current calendar date.
// Parsed dates sit at UTC midnight, so the clock reading is reduced to
// its own calendar day in UTC before comparing; a record dated today is
// valid in every zone. The zero time means no date was recorded and is
// always accepted.
func (l *Ledger) validateDate(date time.Time) error {
	if date.IsZero() {
		return nil
	}
	now := l.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return fmt.Errorf("%w: %s is in the future", common.ErrInvalidDate, model.FormatDate(date))
	}
	return nil
}
