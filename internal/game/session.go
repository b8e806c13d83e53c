// Package game holds the session types driving a play-through: the player
// session (hidden target, shrinking candidate set, guess counter, hint
// tracker) and the solver session (constraint replay over the full network).
// Sessions share the read-only graph but own all of their mutable state, so
// concurrent sessions never interfere.
package game

import (
	"math/rand"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/engine"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/hints"
)

// Session is one play-through against a hidden random target.
type Session struct {
	graph *graph.Graph
	rng   *rand.Rand

	target     *dataset.Station
	candidates []*dataset.Station
	guessCount int
	won        bool
	tracker    *hints.Tracker
}

// NewSession starts a session with a target drawn from the caller's random
// source. Injecting the source keeps target selection deterministic under a
// seeded test rng.
func NewSession(g *graph.Graph, rng *rand.Rand) *Session {
	s := &Session{graph: g, rng: rng}
	s.Reset()
	return s
}

// Reset draws a fresh target and restores the full candidate set.
func (s *Session) Reset() {
	s.target = s.graph.Random(s.rng)
	s.candidates = s.graph.Stations()
	s.guessCount = 0
	s.won = false
	s.tracker = hints.New(s.graph)
}

// Guess evaluates a guessed station name against the target. On success the
// guess counter advances, the candidate set is replaced by the filtered
// remainder and the hint tracker observes the pattern. An unknown name
// returns *engine.NotFoundError and changes nothing.
func (s *Session) Guess(name string) (*engine.GuessRecord, error) {
	record, err := engine.EvaluateGuess(s.graph, s.target, name, s.candidates)
	if err != nil {
		return nil, err
	}

	s.guessCount++
	s.candidates = record.Remaining
	if record.Correct {
		s.won = true
	}
	s.tracker.Observe(hints.GuessAttributes{
		District: record.Station.District,
		Lines:    record.Station.Lines,
		Year:     record.Station.Year,
	}, record.Pattern)

	return record, nil
}

// Target returns the hidden target station.
func (s *Session) Target() *dataset.Station {
	return s.target
}

// GuessCount returns the number of valid guesses made so far.
func (s *Session) GuessCount() int {
	return s.guessCount
}

// Won reports whether the target has been guessed.
func (s *Session) Won() bool {
	return s.won
}

// Candidates returns the stations still consistent with every observed
// pattern. The returned slice is the session's working set; callers must
// not mutate it.
func (s *Session) Candidates() []*dataset.Station {
	return s.candidates
}

// Hints returns the current possible-value sets for district, line and year.
func (s *Session) Hints() hints.Snapshot {
	return s.tracker.Snapshot()
}
