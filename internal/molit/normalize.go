package molit

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a Korean-formatted amount string (comma thousands
// separators, 10,000-KRW units) to an integer. Blank or non-numeric input
// yields nil rather than an error: an absent amount is "no value", not a
// failure.
func ParseAmount(raw string) *int64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// MakeDate assembles year/month/day strings into an ISO YYYY-MM-DD date.
// A blank day defaults to "01". Output is either a well-formed date string
// or "" on malformed input, never a partial date.
func MakeDate(year, month, day string) string {
	y := strings.TrimSpace(year)
	m := strings.TrimSpace(month)
	d := strings.TrimSpace(day)

	if !isDigits(y) || len(y) != 4 {
		return ""
	}
	if !isDigits(m) || len(m) < 1 || len(m) > 2 {
		return ""
	}
	if d == "" {
		d = "01"
	} else if !isDigits(d) || len(d) > 2 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", y, pad2(m), pad2(d))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
