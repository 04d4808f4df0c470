// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package timeline classifies conversation timestamps into recency buckets for
display in the session list and the sessions CLI command.

Five buckets exist, evaluated as an ordered chain of predicates where the
first match wins:

	Today > Yesterday > This Week > This Month > Older

The chain order is deliberate: a timestamp from earlier this week also falls
inside the current month, but it is reported as This Week because that
predicate runs first. Weeks start on Sunday.

# Evaluation instant

Every entry point takes the evaluation instant as an explicit parameter, so
classification is a pure function of (now, timestamp) and tests are fully
deterministic. Callers capture one instant per render or command and pass
it to both grouping and formatting so the two never disagree.

# Usage

	now := time.Now()
	groups := timeline.GroupConversations(now, metas)
	for _, g := range groups {
		fmt.Println(g.Label())
		for _, c := range g.Conversations {
			fmt.Println("  ", c.Title, timeline.FormatTimestamp(now, c.UpdatedAt))
		}
	}

Timestamps are stored as strings (RFC 3339 preferred). Strings that fail to
parse classify as Older and are displayed raw.
*/
package timeline
