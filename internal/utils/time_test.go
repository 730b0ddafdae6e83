package utils

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	t.Run("second precision", func(t *testing.T) {
		got, err := ParseClock("07:55:30")
		if err != nil {
			t.Fatalf("ParseClock() error: %v", err)
		}
		if got.Hour() != 7 || got.Minute() != 55 || got.Second() != 30 {
			t.Errorf("ParseClock() = %v", got)
		}
	})

	t.Run("minute precision", func(t *testing.T) {
		got, err := ParseClock("07:55")
		if err != nil {
			t.Fatalf("ParseClock() error: %v", err)
		}
		if got.Hour() != 7 || got.Minute() != 55 || got.Second() != 0 {
			t.Errorf("ParseClock() = %v", got)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, bad := range []string{"", "7:5", "25:00:00", "not-a-time"} {
			if _, err := ParseClock(bad); err == nil {
				t.Errorf("ParseClock(%q) accepted invalid input", bad)
			}
		}
	})
}

func TestValidateTimeFormat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"07:50", true},
		{"23:59", true},
		{"24:00", false},
		{"07:50:00", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateTimeFormat(tc.in); got != tc.want {
			t.Errorf("ValidateTimeFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateDateFormat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-04-01", true},
		{"2024-4-1", false},
		{"2024-13-01", false},
		{"04/01/2024", false},
	}
	for _, tc := range cases {
		if got := ValidateDateFormat(tc.in); got != tc.want {
			t.Errorf("ValidateDateFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCombineDateAndClock(t *testing.T) {
	day := time.Date(2024, 4, 1, 12, 34, 56, 789, time.UTC)
	clock, err := ParseClock("07:55:30")
	if err != nil {
		t.Fatalf("ParseClock() error: %v", err)
	}

	got := CombineDateAndClock(day, clock)
	want := time.Date(2024, 4, 1, 7, 55, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CombineDateAndClock() = %v, want %v", got, want)
	}
	if got.Location() != day.Location() {
		t.Error("location should come from the day, not the clock")
	}
}
