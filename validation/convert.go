package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

func ParseStringToInt64(str string) (int64, error) {
	if str == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// ParseDate accepts yyyy-mm-dd or RFC 3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date vide")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date invalide %q", s)
	}
	return t, nil
}

// FormatDateFR renders dd/mm/yyyy as on the printed documents.
func FormatDateFR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDateStringFR converts a yyyy-mm-dd string; unparsable input is returned unchanged.
func FormatDateStringFR(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return FormatDateFR(t)
}
