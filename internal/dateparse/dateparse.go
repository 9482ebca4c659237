// Package dateparse converts relative date phrases into canonical
// YYYY-MM-DD strings anchored to the local calendar day.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical date format accepted by the Harvest API.
const Layout = "2006-01-02"

var (
	canonicalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	agoPattern       = regexp.MustCompile(`^(\d+)\s+(day|week|month)s?\s+ago$`)
	weekdayPattern   = regexp.MustCompile(`^(last|this)\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Resolve maps a relative date expression to a canonical date string
// anchored to the current local day. Unrecognized input is returned
// verbatim; rejecting it is left to the remote API.
func Resolve(input string) string {
	return ResolveAt(time.Now(), input)
}

// ResolveAt is Resolve anchored to an explicit reference time.
func ResolveAt(now time.Time, input string) string {
	trimmed := strings.TrimSpace(input)
	if canonicalPattern.MatchString(trimmed) {
		// Already canonical. No calendar validation here.
		return trimmed
	}

	lower := strings.ToLower(trimmed)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch lower {
	case "today", "now":
		return today.Format(Layout)
	case "yesterday":
		return today.AddDate(0, 0, -1).Format(Layout)
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(Layout)
	}

	if m := agoPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return input
		}
		switch m[2] {
		case "day":
			return today.AddDate(0, 0, -n).Format(Layout)
		case "week":
			return today.AddDate(0, 0, -7*n).Format(Layout)
		case "month":
			// AddDate normalizes out-of-range days, so "1 month ago"
			// from March 31 can roll into early March.
			return today.AddDate(0, -n, 0).Format(Layout)
		}
	}

	if m := weekdayPattern.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[2]]
		switch m[1] {
		case "last":
			// Most recent occurrence strictly before today.
			delta := int(today.Weekday()) - int(target)
			if delta <= 0 {
				delta += 7
			}
			return today.AddDate(0, 0, -delta).Format(Layout)
		case "this":
			// Next occurrence on or after today.
			delta := (int(target) - int(today.Weekday()) + 7) % 7
			return today.AddDate(0, 0, delta).Format(Layout)
		}
	}

	return input
}
