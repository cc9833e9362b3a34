package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UnknownLabel is the bucket for stamps whose date cannot be parsed and for
// blank countries in the country statistics.
const UnknownLabel = "Unknown"

var (
	circaPrefix = regexp.MustCompile(`(?i)^(circa|ca\.|c\.)\s*`)
	yearRange   = regexp.MustCompile(`^(\d{4})\s*-\s*(\d{4})$`)
	yearToRange = regexp.MustCompile(`(?i)^(\d{4})\s+to\s+(\d{4})$`)
	singleYear  = regexp.MustCompile(`^\d{4}$`)
)

// ParseYear extracts a representative year from a free-text date expression.
// Supported forms: "1840", "circa 1840", "1840-1850", "1840 to 1850".
// Ranges resolve to the floor midpoint of the two years. The second return
// value reports whether a year could be extracted; an unparseable expression
// is not an error, just an unknown date.
func ParseYear(text string) (int, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	s = circaPrefix.ReplaceAllString(s, "")

	if m := yearRange.FindStringSubmatch(s); m != nil {
		return midYear(m[1], m[2]), true
	}
	if m := yearToRange.FindStringSubmatch(s); m != nil {
		return midYear(m[1], m[2]), true
	}
	if singleYear.MatchString(s) {
		year, _ := strconv.Atoi(s)
		return year, true
	}
	return 0, false
}

func midYear(start, end string) int {
	a, _ := strconv.Atoi(start)
	b, _ := strconv.Atoi(end)
	return (a + b) / 2
}

// Decade returns the starting year of the decade containing year,
// e.g. 1845 -> 1840.
func Decade(year int) int {
	return year / 10 * 10
}

// DecadeLabel formats a decade start year as its display label,
// e.g. 1840 -> "1840s".
func DecadeLabel(decade int) string {
	return fmt.Sprintf("%ds", decade)
}

// ParseDecadeLabel is the inverse of DecadeLabel. The label "Unknown" and any
// label that does not parse back to a number yield no value.
func ParseDecadeLabel(label string) (int, bool) {
	if label == UnknownLabel {
		return 0, false
	}
	decade, err := strconv.Atoi(strings.TrimSuffix(label, "s"))
	if err != nil {
		return 0, false
	}
	return decade, true
}

// DecadeLabelFor buckets a free-text date expression directly into its decade
// label, falling back to UnknownLabel when no year can be extracted.
func DecadeLabelFor(dates string) string {
	year, ok := ParseYear(dates)
	if !ok {
		return UnknownLabel
	}
	return DecadeLabel(Decade(year))
}
