package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/engine"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

func gameGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New([]dataset.Station{
		{ID: 1, Name: "人民广场", Lines: []string{"1号线", "2号线"}, Adjacent: []int{2, 3}, District: "黄浦区", Year: 1995},
		{ID: 2, Name: "新闸路", Lines: []string{"1号线"}, Adjacent: []int{1}, District: "静安区", Year: 1995},
		{ID: 3, Name: "南京东路", Lines: []string{"2号线", "10号线"}, Adjacent: []int{1, 4}, District: "黄浦区", Year: 2000},
		{ID: 4, Name: "陆家嘴", Lines: []string{"2号线", "14号线"}, Adjacent: []int{3}, District: "浦东新区", Year: 1999},
	})
	if err != nil {
		t.Fatalf("failed to build graph: %v", err)
	}
	return g
}

func TestNewSessionStartsFull(t *testing.T) {
	g := gameGraph(t)
	sess := NewSession(g, rand.New(rand.NewSource(1)))

	if sess.Target() == nil {
		t.Fatal("session has no target")
	}
	if len(sess.Candidates()) != g.Len() {
		t.Errorf("candidates = %d, want full list of %d", len(sess.Candidates()), g.Len())
	}
	if sess.GuessCount() != 0 || sess.Won() {
		t.Errorf("fresh session: guesses=%d won=%v", sess.GuessCount(), sess.Won())
	}
}

func TestSessionTargetDeterministicWithSeed(t *testing.T) {
	g := gameGraph(t)

	a := NewSession(g, rand.New(rand.NewSource(7)))
	b := NewSession(g, rand.New(rand.NewSource(7)))
	if a.Target().ID != b.Target().ID {
		t.Errorf("targets differ under the same seed: %d vs %d", a.Target().ID, b.Target().ID)
	}
}

func TestSessionGuessFlow(t *testing.T) {
	g := gameGraph(t)
	sess := NewSession(g, rand.New(rand.NewSource(1)))

	prev := len(sess.Candidates())
	for _, name := range []string{"新闸路", "南京东路", "陆家嘴", "人民广场"} {
		record, err := sess.Guess(name)
		if err != nil {
			t.Fatalf("Guess(%s) failed: %v", name, err)
		}
		if got := len(sess.Candidates()); got > prev {
			t.Errorf("candidate set grew after %s: %d -> %d", name, prev, got)
		}
		prev = len(sess.Candidates())

		if record.Correct != (record.Station.ID == sess.Target().ID) {
			t.Errorf("Correct flag inconsistent for %s", name)
		}
		if record.Correct && !sess.Won() {
			t.Error("session not marked won after a correct guess")
		}
	}

	if sess.GuessCount() != 4 {
		t.Errorf("GuessCount = %d, want 4", sess.GuessCount())
	}
	if !sess.Won() {
		t.Error("session not won after guessing every station")
	}
}

func TestSessionNotFoundGuessChangesNothing(t *testing.T) {
	g := gameGraph(t)
	sess := NewSession(g, rand.New(rand.NewSource(1)))

	before := len(sess.Candidates())
	_, err := sess.Guess("不存在的站")

	var notFound *engine.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Guess returned %v, want *NotFoundError", err)
	}
	if sess.GuessCount() != 0 {
		t.Error("guess counter advanced on a not-found guess")
	}
	if len(sess.Candidates()) != before {
		t.Error("candidate set changed on a not-found guess")
	}
}

func TestSessionHintsFollowGuesses(t *testing.T) {
	g := gameGraph(t)
	sess := NewSession(g, rand.New(rand.NewSource(1)))

	before := sess.Hints()
	if before.DistrictCount != 3 {
		t.Fatalf("initial district universe = %d, want 3", before.DistrictCount)
	}

	if _, err := sess.Guess("新闸路"); err != nil {
		t.Fatalf("Guess failed: %v", err)
	}

	after := sess.Hints()
	if after.DistrictCount > before.DistrictCount || after.LineCount > before.LineCount || after.YearCount > before.YearCount {
		t.Errorf("hint universes grew: %+v -> %+v", before, after)
	}
}

func TestSessionReset(t *testing.T) {
	g := gameGraph(t)
	sess := NewSession(g, rand.New(rand.NewSource(1)))

	if _, err := sess.Guess("新闸路"); err != nil {
		t.Fatalf("Guess failed: %v", err)
	}

	sess.Reset()
	if sess.GuessCount() != 0 || sess.Won() {
		t.Error("Reset did not clear progress")
	}
	if len(sess.Candidates()) != g.Len() {
		t.Errorf("Reset candidates = %d, want %d", len(sess.Candidates()), g.Len())
	}
	if sess.Hints().DistrictCount != 3 {
		t.Error("Reset did not reseed the hint tracker")
	}
}
