package vacation

import (
	"testing"
	"time"
)

func TestCountBusinessDaysFullWeek(t *testing.T) {
	start := time.Date(2020, 8, 24, 0, 0, 0, 0, time.UTC) // Monday
	end := time.Date(2020, 8, 30, 0, 0, 0, 0, time.UTC)   // Sunday

	days, err := CountBusinessDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 5 {
		t.Fatalf("expected 5 business days over a full week, got %d", days)
	}
}

func TestCountBusinessDaysSingleWeekday(t *testing.T) {
	start := time.Date(2020, 8, 24, 9, 0, 0, 0, time.UTC)
	end := time.Date(2020, 8, 24, 17, 0, 0, 0, time.UTC)

	days, err := CountBusinessDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 business day for a single Monday, got %d", days)
	}
}

func TestCountBusinessDaysWeekendOnly(t *testing.T) {
	start := time.Date(2020, 8, 29, 0, 0, 0, 0, time.UTC) // Saturday
	end := time.Date(2020, 8, 30, 0, 0, 0, 0, time.UTC)   // Sunday

	days, err := CountBusinessDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 0 {
		t.Fatalf("expected 0 business days over a weekend, got %d", days)
	}
}

func TestCountBusinessDaysWeekendExclusion(t *testing.T) {
	// Thursday through the following Monday spans a weekend: 3 weekdays.
	start := time.Date(2020, 8, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 8, 31, 0, 0, 0, 0, time.UTC)

	days, err := CountBusinessDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 business days, got %d", days)
	}
}

func TestCountBusinessDaysInvalidRange(t *testing.T) {
	start := time.Date(2020, 8, 24, 0, 0, 0, 0, time.UTC)

	if _, err := CountBusinessDays(start, start); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange for equal timestamps, got %v", err)
	}
	if _, err := CountBusinessDays(start, start.AddDate(0, 0, -1)); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange for reversed range, got %v", err)
	}
}
