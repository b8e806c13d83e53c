// Package engine implements the guess evaluation core: graph-distance
// metrics (minimum hops, minimum transfers), attribute comparison, and
// pattern-based candidate filtering.
package engine

import (
	"fmt"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

// NotFoundError reports a guessed name that does not resolve to any station.
// It is recoverable: the caller's candidate set and guess counter are
// untouched, unlike a successful-but-incorrect guess.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("station %q not found", e.Name)
}

// GuessRecord is the full result of evaluating one guess against the target.
type GuessRecord struct {
	Correct      bool             `json:"correct"`
	Station      *dataset.Station `json:"stationInfo"`
	MinHops      int              `json:"minStations"`
	MinTransfers int              `json:"minTransfer"`
	Pattern      Pattern          `json:"pattern"`
	// Remaining is the candidate set filtered by this guess's pattern.
	Remaining []*dataset.Station `json:"remain"`
}

// EvaluateGuess resolves name, computes both distance metrics and the
// attribute pattern against target, and filters candidates by that pattern.
// An unknown name returns *NotFoundError with no other effect. A distance
// error (ErrUnreachable) indicates broken dataset connectivity and is
// propagated as-is.
func EvaluateGuess(g *graph.Graph, target *dataset.Station, name string, candidates []*dataset.Station) (*GuessRecord, error) {
	guess := g.ByName(name)
	if guess == nil {
		return nil, &NotFoundError{Name: name}
	}

	hops, err := MinHops(g, target, guess)
	if err != nil {
		return nil, fmt.Errorf("min hops %q -> %q: %w", guess.Name, target.Name, err)
	}
	transfers, err := MinTransfers(g, target, guess)
	if err != nil {
		return nil, fmt.Errorf("min transfers %q -> %q: %w", guess.Name, target.Name, err)
	}

	pattern := Compare(target, guess)

	return &GuessRecord{
		Correct:      guess.ID == target.ID,
		Station:      guess,
		MinHops:      hops,
		MinTransfers: transfers,
		Pattern:      pattern,
		Remaining:    Filter(candidates, guess, pattern),
	}, nil
}
