package highscore

import (
	"slices"
	"testing"
)

func fullBoard() Ranking {
	return Ranking{1000, 900, 800, 700, 600, 500, 400, 300, 200, 100}
}

func TestSubmitSortsAndRanks(t *testing.T) {
	scores := Ranking{50, 200, 100}

	sub := Submit(scores, 150)

	want := Ranking{200, 150, 100, 50}
	if !slices.Equal(sub.Ranking, want) {
		t.Errorf("Submit() ranking = %v, want %v", sub.Ranking, want)
	}
	if sub.Rank != 2 {
		t.Errorf("Submit() rank = %d, want 2", sub.Rank)
	}
	if !sub.Qualifies {
		t.Error("Submit() should qualify")
	}
}

func TestSubmitLimitsToCapacity(t *testing.T) {
	sub := Submit(fullBoard(), 650)

	want := Ranking{1000, 900, 800, 700, 650, 600, 500, 400, 300, 200}
	if !slices.Equal(sub.Ranking, want) {
		t.Errorf("Submit() ranking = %v, want %v", sub.Ranking, want)
	}
	if len(sub.Ranking) != Capacity {
		t.Errorf("Expected %d entries, got %d", Capacity, len(sub.Ranking))
	}
	if sub.Rank != 5 {
		t.Errorf("Submit() rank = %d, want 5", sub.Rank)
	}
	if !sub.Qualifies {
		t.Error("Submit() should qualify")
	}
}

func TestSubmitDoesNotMutateInput(t *testing.T) {
	scores := Ranking{300, 200, 100}
	before := slices.Clone(scores)

	Submit(scores, 250)

	if !slices.Equal(scores, before) {
		t.Errorf("input mutated: got %v, want %v", scores, before)
	}
}

func TestSubmitBelowFullBoard(t *testing.T) {
	board := fullBoard()

	sub := Submit(board, 50)

	if sub.Qualifies {
		t.Error("score below a full board should not qualify")
	}
	if sub.Rank != 0 {
		t.Errorf("Expected rank 0 for non-qualifying score, got %d", sub.Rank)
	}
	if !slices.Equal(sub.Ranking, board) {
		t.Errorf("board changed: got %v, want %v", sub.Ranking, board)
	}
}

func TestSubmitTieTakesBestPosition(t *testing.T) {
	tests := []struct {
		name  string
		board Ranking
		score int
		rank  int
	}{
		{"tie in middle", Ranking{500, 400, 400, 100}, 400, 2},
		{"tie at top", Ranking{500, 300}, 500, 1},
		{"tie with last of full board", fullBoard(), 100, 10},
		{"all equal", Ranking{7, 7, 7}, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Submit(tt.board, tt.score)
			if sub.Rank != tt.rank {
				t.Errorf("rank = %d, want %d", sub.Rank, tt.rank)
			}
			if !sub.Qualifies {
				t.Error("tied score should qualify")
			}
		})
	}
}

func TestSubmitEmptyBoard(t *testing.T) {
	sub := Submit(nil, 0)

	if !slices.Equal(sub.Ranking, Ranking{0}) {
		t.Errorf("ranking = %v, want [0]", sub.Ranking)
	}
	if sub.Rank != 1 || !sub.Qualifies {
		t.Errorf("got rank=%d qualifies=%v, want rank=1 qualifies=true", sub.Rank, sub.Qualifies)
	}
}

func TestSubmitKeepsInvariants(t *testing.T) {
	board := Ranking{}
	for i := 0; i < 40; i++ {
		score := (i * 37) % 23
		sub := Submit(board, score)

		if len(sub.Ranking) > Capacity {
			t.Fatalf("step %d: %d entries exceeds capacity", i, len(sub.Ranking))
		}
		if !isDescending(sub.Ranking) {
			t.Fatalf("step %d: ranking not descending: %v", i, sub.Ranking)
		}
		if sub.Qualifies && sub.Ranking[sub.Rank-1] != score {
			t.Fatalf("step %d: rank %d points at %d, want %d", i, sub.Rank, sub.Ranking[sub.Rank-1], score)
		}
		board = sub.Ranking
	}
}

func TestNormalize(t *testing.T) {
	in := []int{3, 12, 1, 9, 4, 11, 2, 10, 5, 8, 7, 6}

	got := Normalize(in)

	want := Ranking{12, 11, 10, 9, 8, 7, 6, 5, 4, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
	if in[0] != 3 {
		t.Error("Normalize() mutated its input")
	}
}

func TestRankingHelpers(t *testing.T) {
	if (Ranking{}).Best() != 0 {
		t.Error("Best() of empty ranking should be 0")
	}
	if (Ranking{40, 30}).Best() != 40 {
		t.Error("Best() should return the first entry")
	}

	var nilRanking Ranking
	if c := nilRanking.Clone(); c == nil || len(c) != 0 {
		t.Errorf("Clone() of nil = %#v, want empty non-nil", c)
	}
}

func isDescending(r Ranking) bool {
	for i := 1; i < len(r); i++ {
		if r[i] > r[i-1] {
			return false
		}
	}
	return true
}
