package core

import (
	"fmt"
	"strings"
	"time"
)

// isoDate is the canonical storage layout.
const isoDate = "2006-01-02"

// dateLayouts are tried in order and the first successful parse wins. The
// order is load-bearing: an ambiguous input such as "02/03/2024" resolves as
// day-month-year because that layout comes before year-month-day with
// slashes. Do not reorder.
var dateLayouts = []string{
	isoDate,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

// NormalizeDate parses text against the supported layouts and returns the
// canonical ISO form. Returns ErrInvalidDate when no layout matches.
func NormalizeDate(text string) (string, error) {
	s := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDate), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, text)
}

// DateParts extracts year and month from a record date. It accepts anything
// the normalizer does, plus a strict ISO fallback for dates a lenient import
// admitted verbatim.
func DateParts(date string) (year, month int, ok bool) {
	s := strings.TrimSpace(date)
	if iso, err := NormalizeDate(s); err == nil {
		s = iso
	}
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

// MonthKey returns the YYYY-MM bucket for a record date.
func MonthKey(date string) (string, bool) {
	year, month, ok := DateParts(date)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", year, month), true
}

// Today returns the current date in canonical form.
func Today() string {
	return time.Now().Format(isoDate)
}
