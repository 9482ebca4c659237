package dateparse

import (
	"fmt"
	"testing"
	"time"
)

// Wednesday.
var anchor = time.Date(2026, time.February, 4, 15, 30, 0, 0, time.UTC)

func TestResolveAt_CanonicalPassthrough(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"2026-02-04", "2026-02-04"},
		{"1999-12-31", "1999-12-31"},
		// No calendar validation on canonical-shaped input.
		{"2024-13-40", "2024-13-40"},
		{"  2026-02-04  ", "2026-02-04"},
	}
	for _, tc := range cases {
		if got := ResolveAt(anchor, tc.input); got != tc.want {
			t.Errorf("ResolveAt(%q)=%q want=%q", tc.input, got, tc.want)
		}
	}
}

func TestResolveAt_TodayAnchors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"today", "now", "TODAY", " Now "} {
		if got := ResolveAt(anchor, input); got != "2026-02-04" {
			t.Errorf("ResolveAt(%q)=%q want=2026-02-04", input, got)
		}
	}
}

func TestResolveAt_AdjacentDays(t *testing.T) {
	t.Parallel()

	if got := ResolveAt(anchor, "yesterday"); got != "2026-02-03" {
		t.Errorf("yesterday=%q", got)
	}
	if got := ResolveAt(anchor, "tomorrow"); got != "2026-02-05" {
		t.Errorf("tomorrow=%q", got)
	}
}

func TestResolveAt_AgoArithmetic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"0 days ago", "2026-02-04"},
		{"1 day ago", "2026-02-03"},
		{"10 days ago", "2026-01-25"},
		{"1 week ago", "2026-01-28"},
		{"2 weeks ago", "2026-01-21"},
		{"1 month ago", "2026-01-04"},
		{"3 months ago", "2025-11-04"},
	}
	for _, tc := range cases {
		if got := ResolveAt(anchor, tc.input); got != tc.want {
			t.Errorf("ResolveAt(%q)=%q want=%q", tc.input, got, tc.want)
		}
	}

	// Property check against plain day arithmetic.
	for n := 0; n <= 60; n++ {
		want := anchor.AddDate(0, 0, -n).Format(Layout)
		if got := ResolveAt(anchor, fmt.Sprintf("%d days ago", n)); got != want {
			t.Fatalf("%d days ago=%q want=%q", n, got, want)
		}
		want = anchor.AddDate(0, 0, -7*n).Format(Layout)
		if got := ResolveAt(anchor, fmt.Sprintf("%d weeks ago", n)); got != want {
			t.Fatalf("%d weeks ago=%q want=%q", n, got, want)
		}
	}
}

func TestResolveAt_MonthRollover(t *testing.T) {
	t.Parallel()

	// AddDate normalization: March 31 minus one month lands in March.
	march31 := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)
	if got := ResolveAt(march31, "1 month ago"); got != "2026-03-03" {
		t.Errorf("1 month ago from 2026-03-31=%q want=2026-03-03", got)
	}
}

func TestResolveAt_LastWeekday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"last monday", "2026-02-02"},
		{"last tuesday", "2026-02-03"},
		{"last wednesday", "2026-01-28"}, // today is Wednesday, never today
		{"last thursday", "2026-01-29"},
		{"last sunday", "2026-02-01"},
		{"Last Friday", "2026-01-30"},
	}
	for _, tc := range cases {
		if got := ResolveAt(anchor, tc.input); got != tc.want {
			t.Errorf("ResolveAt(%q)=%q want=%q", tc.input, got, tc.want)
		}
	}
}

func TestResolveAt_LastWeekdayNeverToday(t *testing.T) {
	t.Parallel()

	day := anchor
	for i := 0; i < 7; i++ {
		name := day.Weekday().String()
		got := ResolveAt(day, "last "+name)
		if got == day.Format(Layout) {
			t.Errorf("last %s on a %s returned today", name, name)
		}
		if want := day.AddDate(0, 0, -7).Format(Layout); got != want {
			t.Errorf("last %s=%q want=%q", name, got, want)
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestResolveAt_ThisWeekday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"this wednesday", "2026-02-04"}, // today is Wednesday, returns today
		{"this friday", "2026-02-06"},
		{"this monday", "2026-02-09"},
		{"THIS SATURDAY", "2026-02-07"},
	}
	for _, tc := range cases {
		if got := ResolveAt(anchor, tc.input); got != tc.want {
			t.Errorf("ResolveAt(%q)=%q want=%q", tc.input, got, tc.want)
		}
	}
}

func TestResolveAt_UnrecognizedPassthrough(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"banana", "next tuesday", "-3 days ago", "two weeks ago", "last someday", "2026-2-4", ""} {
		if got := ResolveAt(anchor, input); got != input {
			t.Errorf("ResolveAt(%q)=%q want verbatim passthrough", input, got)
		}
	}
}

func TestResolve_UsesLocalToday(t *testing.T) {
	t.Parallel()

	want := time.Now().Format(Layout)
	if got := Resolve("today"); got != want {
		t.Errorf("Resolve(today)=%q want=%q", got, want)
	}
}
