package engine

import "github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"

// Filter returns the stations from candidates whose comparison against guess
// reproduces pattern exactly. The input slice is never mutated; callers
// replace their working candidate set with the result. Applying the same
// guess and pattern twice is idempotent.
func Filter(candidates []*dataset.Station, guess *dataset.Station, pattern Pattern) []*dataset.Station {
	out := make([]*dataset.Station, 0, len(candidates))
	for _, s := range candidates {
		if Compare(s, guess) == pattern {
			out = append(out, s)
		}
	}
	return out
}
