// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline classifies conversations into recency buckets for the
// session list (Today, Yesterday, This Week, This Month, Older).
package timeline

import (
	"time"

	"github.com/jeranaias/murmur-tui/internal/model"
)

// =============================================================================
// BUCKET TYPE
// =============================================================================

// Bucket is a recency classification relative to an evaluation instant.
type Bucket int

const (
	BucketToday Bucket = iota
	BucketYesterday
	BucketThisWeek
	BucketThisMonth
	BucketOlder
)

// String returns the display label for the bucket.
func (b Bucket) String() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketYesterday:
		return "Yesterday"
	case BucketThisWeek:
		return "This Week"
	case BucketThisMonth:
		return "This Month"
	case BucketOlder:
		return "Older"
	default:
		return "Unknown"
	}
}

// Group pairs a bucket with the conversations that fell into it.
// Conversations keep their input order.
type Group struct {
	Bucket        Bucket
	Conversations []model.ConversationMeta
}

// Label returns the human-readable group heading.
func (g Group) Label() string {
	return g.Bucket.String()
}

// =============================================================================
// CLASSIFICATION RULES
// =============================================================================

// rule is one (predicate, bucket) pair in the classification chain.
type rule struct {
	bucket Bucket
	match  func(now, t time.Time) bool
}

// rules returns the ordered classification chain. The order is the contract:
// the first matching predicate wins, so a timestamp that is both "this week"
// and "this month" lands in This Week.
func rules() []rule {
	return []rule{
		{BucketToday, sameDay},
		{BucketYesterday, isYesterday},
		{BucketThisWeek, sameWeek},
		{BucketThisMonth, sameMonth},
		{BucketOlder, func(now, t time.Time) bool { return true }},
	}
}

// Classify returns the bucket for a parsed timestamp relative to now.
func Classify(now, t time.Time) Bucket {
	t = t.In(now.Location())
	for _, r := range rules() {
		if r.match(now, t) {
			return r.bucket
		}
	}
	return BucketOlder // Unreachable: the last rule always matches
}

// ClassifyTimestamp parses a raw timestamp string and classifies it.
// Unparseable timestamps classify as Older.
func ClassifyTimestamp(now time.Time, ts string) Bucket {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return BucketOlder
	}
	return Classify(now, t)
}

// =============================================================================
// GROUPING
// =============================================================================

// GroupConversations partitions conversations into labeled groups by the
// recency of their UpdatedAt timestamp, evaluated against now.
//
// Every input conversation lands in exactly one group, empty groups are
// omitted, conversations keep their relative input order, and groups appear
// in fixed bucket order (Today through Older) rather than sorted by content.
func GroupConversations(now time.Time, convs []model.ConversationMeta) []Group {
	var bucketed [BucketOlder + 1][]model.ConversationMeta
	for _, conv := range convs {
		b := ClassifyTimestamp(now, conv.UpdatedAt)
		bucketed[b] = append(bucketed[b], conv)
	}

	groups := make([]Group, 0, len(bucketed))
	for b := BucketToday; b <= BucketOlder; b++ {
		if len(bucketed[b]) == 0 {
			continue
		}
		groups = append(groups, Group{Bucket: b, Conversations: bucketed[b]})
	}
	return groups
}

// =============================================================================
// CALENDAR PREDICATES
// =============================================================================

// sameDay reports whether t falls on the same calendar day as now.
func sameDay(now, t time.Time) bool {
	return now.Year() == t.Year() && now.YearDay() == t.YearDay()
}

// isYesterday reports whether t falls on the calendar day before now.
func isYesterday(now, t time.Time) bool {
	y := now.AddDate(0, 0, -1)
	return y.Year() == t.Year() && y.YearDay() == t.YearDay()
}

// sameWeek reports whether t falls within the calendar week containing now.
// Weeks start on Sunday.
func sameWeek(now, t time.Time) bool {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 7)
	return !t.Before(start) && t.Before(end)
}

// sameMonth reports whether t falls within the calendar month containing now.
func sameMonth(now, t time.Time) bool {
	return now.Year() == t.Year() && now.Month() == t.Month()
}

// startOfWeek returns midnight of the most recent Sunday in now's location.
func startOfWeek(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}
