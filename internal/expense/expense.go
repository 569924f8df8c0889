// Package expense defines spending records and their validation rules.
package expense

import (
	"math"
	"strings"
	"time"

	"todo/internal/errs"
)

// DateLayout is the calendar-date format used for storage and input.
const DateLayout = "2006-01-02"

// Expense is a single spending record.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category,omitempty"`
	Date        time.Time `json:"date"`
}

// Filter narrows a listing. Zero fields are ignored; From and To are inclusive.
type Filter struct {
	Category string
	From     time.Time
	To       time.Time
}

// Normalize trims text fields, truncates the date to a calendar day and
// checks the record.
func (e *Expense) Normalize() error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	e.SubCategory = strings.TrimSpace(e.SubCategory)

	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return errs.Invalid("amount", "must be a finite number")
	}
	if e.Amount <= 0 {
		return errs.Invalid("amount", "must be greater than zero")
	}
	if e.Category == "" {
		return errs.Invalid("category", "must not be empty")
	}
	if e.Date.IsZero() {
		return errs.Invalid("date", "is required")
	}
	y, m, d := e.Date.Date()
	e.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Invalid("date", "expected YYYY-MM-DD: "+s)
	}
	return t, nil
}
