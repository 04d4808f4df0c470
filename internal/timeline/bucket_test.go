// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline classifies conversations into recency buckets.
package timeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/jeranaias/murmur-tui/internal/model"
)

// Wednesday afternoon, mid-March. Week runs Sun Mar 16 - Sat Mar 22.
var evalInstant = time.Date(2025, time.March, 19, 15, 0, 0, 0, time.UTC)

func stamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

func meta(id string, updated time.Time) model.ConversationMeta {
	return model.ConversationMeta{ID: id, Title: id, UpdatedAt: stamp(updated)}
}

// =============================================================================
// CLASSIFY TESTS
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want Bucket
	}{
		{"this morning", time.Date(2025, time.March, 19, 9, 0, 0, 0, time.UTC), BucketToday},
		{"midnight today", time.Date(2025, time.March, 19, 0, 0, 0, 0, time.UTC), BucketToday},
		{"yesterday morning", time.Date(2025, time.March, 18, 9, 0, 0, 0, time.UTC), BucketYesterday},
		{"yesterday just before midnight", time.Date(2025, time.March, 18, 23, 59, 59, 0, time.UTC), BucketYesterday},
		{"monday this week", time.Date(2025, time.March, 17, 12, 0, 0, 0, time.UTC), BucketThisWeek},
		{"sunday start of week", time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), BucketThisWeek},
		{"earlier this month", time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC), BucketThisMonth},
		{"saturday before week start", time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC), BucketThisMonth},
		{"last month", time.Date(2025, time.February, 28, 12, 0, 0, 0, time.UTC), BucketOlder},
		{"years ago", time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC), BucketOlder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(evalInstant, tc.at)
			if got != tc.want {
				t.Errorf("Classify(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestClassifyWeekBeatsMonth(t *testing.T) {
	// Monday Mar 17 is inside both the current week and the current month.
	// The week predicate runs first, so it must win.
	at := time.Date(2025, time.March, 17, 8, 0, 0, 0, time.UTC)
	if got := Classify(evalInstant, at); got != BucketThisWeek {
		t.Errorf("Classify(monday) = %v, want %v", got, BucketThisWeek)
	}
}

func TestClassifyTimestampMalformed(t *testing.T) {
	if got := ClassifyTimestamp(evalInstant, "not-a-date"); got != BucketOlder {
		t.Errorf("ClassifyTimestamp(malformed) = %v, want %v", got, BucketOlder)
	}
}

func TestBucketString(t *testing.T) {
	tests := []struct {
		bucket Bucket
		want   string
	}{
		{BucketToday, "Today"},
		{BucketYesterday, "Yesterday"},
		{BucketThisWeek, "This Week"},
		{BucketThisMonth, "This Month"},
		{BucketOlder, "Older"},
		{Bucket(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.bucket.String(); got != tc.want {
			t.Errorf("Bucket(%d).String() = %q, want %q", tc.bucket, got, tc.want)
		}
	}
}

// =============================================================================
// GROUPING TESTS
// =============================================================================

func TestGroupConversationsOrder(t *testing.T) {
	convs := []model.ConversationMeta{
		meta("old", time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)),
		meta("today-1", time.Date(2025, time.March, 19, 9, 0, 0, 0, time.UTC)),
		meta("month", time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)),
		meta("yesterday", time.Date(2025, time.March, 18, 9, 0, 0, 0, time.UTC)),
		meta("week", time.Date(2025, time.March, 17, 9, 0, 0, 0, time.UTC)),
		meta("today-2", time.Date(2025, time.March, 19, 14, 0, 0, 0, time.UTC)),
	}

	groups := GroupConversations(evalInstant, convs)

	wantBuckets := []Bucket{BucketToday, BucketYesterday, BucketThisWeek, BucketThisMonth, BucketOlder}
	if len(groups) != len(wantBuckets) {
		t.Fatalf("GroupConversations() returned %d groups, want %d", len(groups), len(wantBuckets))
	}
	for i, g := range groups {
		if g.Bucket != wantBuckets[i] {
			t.Errorf("group[%d].Bucket = %v, want %v", i, g.Bucket, wantBuckets[i])
		}
	}

	// Members keep input order within their group.
	todayIDs := ids(groups[0].Conversations)
	if !reflect.DeepEqual(todayIDs, []string{"today-1", "today-2"}) {
		t.Errorf("Today group = %v, want [today-1 today-2]", todayIDs)
	}
}

func TestGroupConversationsSkipsEmptyBuckets(t *testing.T) {
	// Early in the month so that "8 days ago" falls outside both the current
	// week and the current month.
	now := time.Date(2025, time.March, 5, 16, 0, 0, 0, time.UTC)
	convs := []model.ConversationMeta{
		meta("conv1", time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)),
		meta("conv2", time.Date(2025, time.March, 5, 14, 0, 0, 0, time.UTC)),
		meta("conv3", now.AddDate(0, 0, -8)),
	}

	groups := GroupConversations(now, convs)

	if len(groups) != 2 {
		t.Fatalf("GroupConversations() returned %d groups, want 2", len(groups))
	}
	if groups[0].Label() != "Today" || groups[1].Label() != "Older" {
		t.Errorf("group labels = [%s %s], want [Today Older]", groups[0].Label(), groups[1].Label())
	}
	if got := ids(groups[0].Conversations); !reflect.DeepEqual(got, []string{"conv1", "conv2"}) {
		t.Errorf("Today group = %v, want [conv1 conv2]", got)
	}
	if got := ids(groups[1].Conversations); !reflect.DeepEqual(got, []string{"conv3"}) {
		t.Errorf("Older group = %v, want [conv3]", got)
	}
}

func TestGroupConversationsPartition(t *testing.T) {
	// Every input appears in exactly one output group.
	convs := []model.ConversationMeta{
		meta("a", evalInstant),
		meta("b", evalInstant.AddDate(0, 0, -1)),
		meta("c", evalInstant.AddDate(0, 0, -2)),
		meta("d", evalInstant.AddDate(0, -2, 0)),
		meta("e", evalInstant.AddDate(-1, 0, 0)),
	}

	groups := GroupConversations(evalInstant, convs)

	seen := make(map[string]int)
	for _, g := range groups {
		for _, c := range g.Conversations {
			seen[c.ID]++
		}
	}
	if len(seen) != len(convs) {
		t.Errorf("output contains %d distinct conversations, want %d", len(seen), len(convs))
	}
	for _, c := range convs {
		if seen[c.ID] != 1 {
			t.Errorf("conversation %q appears %d times, want 1", c.ID, seen[c.ID])
		}
	}
}

func TestGroupConversationsIdempotent(t *testing.T) {
	convs := []model.ConversationMeta{
		meta("a", evalInstant),
		meta("b", evalInstant.AddDate(0, 0, -1)),
		meta("c", evalInstant.AddDate(0, -3, 0)),
	}

	first := GroupConversations(evalInstant, convs)
	second := GroupConversations(evalInstant, convs)

	if !reflect.DeepEqual(first, second) {
		t.Error("GroupConversations() is not deterministic for a fixed instant")
	}
}

func TestGroupConversationsEmptyInput(t *testing.T) {
	if groups := GroupConversations(evalInstant, nil); len(groups) != 0 {
		t.Errorf("GroupConversations(nil) returned %d groups, want 0", len(groups))
	}
}

func ids(convs []model.ConversationMeta) []string {
	out := make([]string, 0, len(convs))
	for _, c := range convs {
		out = append(out, c.ID)
	}
	return out
}
