// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline classifies conversations into recency buckets.
package timeline

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"today afternoon", time.Date(2025, time.March, 19, 15, 45, 0, 0, time.UTC), "3:45 PM"},
		{"today morning", time.Date(2025, time.March, 19, 9, 5, 0, 0, time.UTC), "9:05 AM"},
		{"yesterday morning", time.Date(2025, time.March, 18, 9, 0, 0, 0, time.UTC), "Yesterday"},
		{"yesterday night", time.Date(2025, time.March, 18, 23, 30, 0, 0, time.UTC), "Yesterday"},
		{"monday this week", time.Date(2025, time.March, 17, 12, 0, 0, 0, time.UTC), "Monday"},
		{"sunday this week", time.Date(2025, time.March, 16, 12, 0, 0, 0, time.UTC), "Sunday"},
		{"earlier this month", time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC), "Mar 5"},
		{"last month", time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC), "Feb 10, 2025"},
		{"years ago", time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC), "Mar 5, 2023"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatTimestamp(evalInstant, stamp(tc.at))
			if got != tc.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tc.at, got, tc.want)
			}
		})
	}
}

func TestFormatTimestampYesterdayIgnoresTimeOfDay(t *testing.T) {
	// Any time-of-day component on yesterday's date formats as the literal
	// word, never as a clock time.
	for hour := 0; hour < 24; hour += 6 {
		at := time.Date(2025, time.March, 18, hour, 0, 0, 0, time.UTC)
		if got := FormatTimestamp(evalInstant, stamp(at)); got != "Yesterday" {
			t.Errorf("FormatTimestamp(yesterday %02d:00) = %q, want %q", hour, got, "Yesterday")
		}
	}
}

func TestFormatTimestampMalformed(t *testing.T) {
	raw := "not-a-date"
	if got := FormatTimestamp(evalInstant, raw); got != raw {
		t.Errorf("FormatTimestamp(%q) = %q, want the raw string back", raw, got)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"rfc3339", "2025-03-19T09:00:00Z"},
		{"rfc3339 nano", "2025-03-19T09:00:00.123456789Z"},
		{"sql datetime", "2025-03-19 09:00:00"},
		{"date only", "2025-03-19"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", tc.input, err)
			}
			if got.Year() != 2025 || got.Month() != time.March || got.Day() != 19 {
				t.Errorf("ParseTimestamp(%q) = %v, wrong date", tc.input, got)
			}
		})
	}

	if _, err := ParseTimestamp("19/03/2025"); err == nil {
		t.Error("ParseTimestamp should reject unsupported layouts")
	}
}
