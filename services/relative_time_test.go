package services

import (
	"testing"
	"time"
)

func TestFormatRelative(t *testing.T) {
	utc := time.UTC
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, utc)
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	tests := []struct {
		name string
		ts   time.Time
		now  time.Time
		want string
	}{
		{"same day", time.Date(2024, 3, 15, 14, 5, 0, 0, utc), now, "14:05"},
		{"start of today", time.Date(2024, 3, 15, 0, 0, 0, 0, utc), now, "00:00"},
		{"yesterday morning", time.Date(2024, 3, 14, 9, 0, 0, 0, utc), now, "Yesterday"},
		{"last second of yesterday", time.Date(2024, 3, 14, 23, 59, 59, 0, utc), now, "Yesterday"},
		{"two days ago", time.Date(2024, 3, 13, 23, 59, 0, 0, utc), now, "13/03/2024"},
		{"three days ago", time.Date(2024, 3, 12, 18, 0, 0, 0, utc), now, "12/03/2024"},
		{"tomorrow", time.Date(2024, 3, 16, 8, 0, 0, 0, utc), now, "16/03/2024"},
		{"across month", time.Date(2024, 2, 29, 22, 0, 0, 0, utc), time.Date(2024, 3, 1, 10, 0, 0, 0, utc), "Yesterday"},
		{"across year", time.Date(2024, 12, 31, 23, 0, 0, 0, utc), time.Date(2025, 1, 1, 0, 30, 0, 0, utc), "Yesterday"},
		{
			"timestamp converted into now's zone",
			time.Date(2024, 3, 14, 22, 0, 0, 0, utc),
			time.Date(2024, 3, 15, 8, 0, 0, 0, tokyo),
			"07:00",
		},
		{
			"same instant, earlier zone day",
			time.Date(2024, 3, 15, 1, 0, 0, 0, tokyo),
			time.Date(2024, 3, 15, 12, 0, 0, 0, utc),
			"Yesterday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelative(tt.ts, tt.now); got != tt.want {
				t.Errorf("FormatRelative(%v, %v) = %q, want %q", tt.ts, tt.now, got, tt.want)
			}
		})
	}
}

func TestFormatRelativeAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database not available: %v", err)
	}

	// Clocks moved forward on 2024-03-10, that day is 23 hours long
	now := time.Date(2024, 3, 11, 0, 30, 0, 0, ny)
	ts := time.Date(2024, 3, 10, 0, 30, 0, 0, ny)
	if got := FormatRelative(ts, now); got != "Yesterday" {
		t.Errorf("FormatRelative across DST = %q, want %q", got, "Yesterday")
	}

	older := time.Date(2024, 3, 9, 23, 30, 0, 0, ny)
	if got := FormatRelative(older, now); got != "09/03/2024" {
		t.Errorf("FormatRelative before DST day = %q, want %q", got, "09/03/2024")
	}
}
