package evaluate

import (
	"reflect"
	"testing"
)

func TestRank(t *testing.T) {

	scores := make(ScoreVector, NumBins)
	scores[30] = 0.9
	scores[200] = 0.7
	scores[15] = 0.5
	scores[359] = 0.3

	got := Rank(scores, 4)
	expected := []int{30, 200, 15, 359}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

// TestRankTies asserts equal scores rank the lower bin first so rankings
// are deterministic
func TestRankTies(t *testing.T) {

	scores := make(ScoreVector, NumBins)
	scores[100] = 0.5
	scores[40] = 0.5
	scores[250] = 0.5

	got := Rank(scores, 3)
	expected := []int{40, 100, 250}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestRankClampsK(t *testing.T) {

	scores := ScoreVector{0.1, 0.3, 0.2}

	if got := Rank(scores, 10); len(got) != 3 {
		t.Errorf("expected 3 candidates, got %d", len(got))
	}

	if got := Rank(scores, 0); len(got) != 3 {
		t.Errorf("expected 3 candidates for k=0, got %d", len(got))
	}
}

func TestRankAll(t *testing.T) {

	a := make(ScoreVector, NumBins)
	a[10] = 1.0
	b := make(ScoreVector, NumBins)
	b[300] = 1.0

	ranked := RankAll([]ScoreVector{a, b}, 1)

	if len(ranked) != 2 || ranked[0][0] != 10 || ranked[1][0] != 300 {
		t.Errorf("unexpected ranking %v", ranked)
	}
}
