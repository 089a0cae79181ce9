package domain

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month without a day component.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// ParseYearMonth parses a "YYYY-MM" string into a YearMonth.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the YearMonth containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// CurrentYearMonth returns the YearMonth containing the current UTC time.
func CurrentYearMonth() YearMonth {
	return YearMonthOf(time.Now().UTC())
}

// String renders the month in "YYYY-MM" form.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// FirstDay returns midnight UTC on the first day of the month.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month, so the
// inclusive range [FirstDay, LastDay] covers the whole month.
func (ym YearMonth) LastDay() time.Time {
	return ym.FirstDay().AddDate(0, 1, -1)
}

// IsZero reports whether ym is the zero value.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}
