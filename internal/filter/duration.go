package filter

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	durationRegex = regexp.MustCompile(`(?i)(\d+)\s*(month|week)`)
	rangeRegex    = regexp.MustCompile(`^\s*(\d+)\s*(?:,\s*(\d+)\s*)?$`)
)

// MatchesDuration reports whether a listing advertising text (e.g. "3 Months",
// "6 Weeks") fits pref. pref "N" means at most N months, "A,B" means A to B
// months inclusive. An empty or malformed pref, or text without a duration,
// keeps the listing.
func MatchesDuration(text, pref string) bool {
	lo, hi, ok := parsePreference(pref)
	if !ok {
		return true
	}

	months, ok := parseMonths(text)
	if !ok {
		return true
	}
	return months >= lo && months <= hi
}

func parsePreference(pref string) (lo, hi int, ok bool) {
	m := rangeRegex.FindStringSubmatch(pref)
	if m == nil {
		return 0, 0, false
	}
	first, _ := strconv.Atoi(m[1])
	if m[2] == "" {
		return 0, first, true
	}
	second, _ := strconv.Atoi(m[2])
	if second < first {
		first, second = second, first
	}
	return first, second, true
}

// parseMonths reads the first duration in text. Weeks round up to whole
// months of four weeks.
func parseMonths(text string) (int, bool) {
	m := durationRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(m[2], "week") {
		return (n + 3) / 4, true
	}
	return n, true
}
