package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display format for all task dates.
const DateLayout = "2006-01-02"

// AddDays shifts a YYYY-MM-DD date by a signed number of calendar days.
// Pure date arithmetic, no timezone involvement.
func AddDays(ymd string, days int) (string, error) {
	t, err := time.Parse(DateLayout, ymd)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", ymd, err)
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// DiffDays returns the number of calendar days from b to a (a - b).
func DiffDays(a, b string) (int, error) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", a, err)
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", b, err)
	}
	return int(ta.Sub(tb).Hours() / 24), nil
}

// ValidYMD reports whether s is a well-formed YYYY-MM-DD date.
func ValidYMD(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NowMillis returns the current time as unix milliseconds, the timestamp
// unit used for task creation and sync freshness comparison.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
