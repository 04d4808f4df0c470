// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline classifies conversations into recency buckets.
package timeline

import "time"

// timestampLayouts are the formats accepted for stored timestamps, tried in
// order. Conversations written by murmur use RFC 3339; the fallbacks cover
// records imported from other tools.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a stored timestamp string.
func ParseTimestamp(ts string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, ts)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatTimestamp renders a timestamp for display using the same five-way
// classification as grouping:
//
//	Today      -> clock time, e.g. "3:45 PM"
//	Yesterday  -> the literal word "Yesterday"
//	This Week  -> weekday name, e.g. "Tuesday"
//	This Month -> abbreviated month and day, e.g. "Mar 5"
//	Older      -> month, day and year, e.g. "Mar 5, 2023"
//
// Unparseable timestamps are returned as-is.
func FormatTimestamp(now time.Time, ts string) string {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	t = t.In(now.Location())

	switch Classify(now, t) {
	case BucketToday:
		return t.Format("3:04 PM")
	case BucketYesterday:
		return "Yesterday"
	case BucketThisWeek:
		return t.Format("Monday")
	case BucketThisMonth:
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2, 2006")
	}
}
