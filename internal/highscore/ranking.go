// Package highscore implements the top-N leaderboard ledger: loading a
// persisted ranking, merging a finished run's score into it, and writing the
// result back to a store.
package highscore

import (
	"cmp"
	"slices"
)

// Capacity is the number of scores kept on the board.
// Load and Submit truncate to the same value.
const Capacity = 10

// Ranking is a descending list of scores holding at most Capacity entries.
// Equal scores may appear in any relative order.
type Ranking []int

// Submission is the outcome of merging one score into a ranking.
type Submission struct {
	Ranking   Ranking // Updated board, always a fresh slice
	Qualifies bool    // Whether the score survived truncation
	Rank      int     // 1-based position, 0 when the score did not place
}

// Normalize returns a sorted, truncated copy of scores.
// The input slice is left untouched.
func Normalize(scores []int) Ranking {
	out := make(Ranking, len(scores))
	copy(out, scores)
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(b, a)
	})
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out
}

// Submit merges score into r and reports where it landed.
//
// The rank is looked up by value in the truncated board, so a score that ties
// an existing entry takes the first (best) position holding that value.
// A score that falls off a full board gets Rank 0 and Qualifies false.
func Submit(r Ranking, score int) Submission {
	merged := make([]int, 0, len(r)+1)
	merged = append(merged, r...)
	merged = append(merged, score)

	board := Normalize(merged)
	rank := slices.Index(board, score) + 1

	return Submission{
		Ranking:   board,
		Qualifies: rank > 0,
		Rank:      rank,
	}
}

// Best returns the top score, or 0 for an empty ranking.
func (r Ranking) Best() int {
	if len(r) == 0 {
		return 0
	}
	return r[0]
}

// Clone returns an independent copy of r.
func (r Ranking) Clone() Ranking {
	if r == nil {
		return Ranking{}
	}
	return slices.Clone(r)
}
