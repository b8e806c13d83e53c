package engine

import "github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"

// Overlap classifies how the guess's line set relates to the target's.
// The string values match the original stations.json game protocol.
type Overlap string

const (
	// OverlapEvery means the two line sets are exactly equal.
	OverlapEvery Overlap = "every"
	// OverlapSome means the sets intersect but differ.
	OverlapSome Overlap = "some"
	// OverlapNone means the sets are disjoint.
	OverlapNone Overlap = "none"
)

// Pattern is the attribute-difference triple produced by comparing a guess
// against the target. It is also the filtering key: a station remains a
// candidate only while its comparison against the guess reproduces the
// observed pattern exactly.
type Pattern struct {
	// District is strict equality of the district label. Compound labels
	// (two districts joined in one string, used for boundary stations)
	// compare as a single opaque value.
	District bool `json:"district"`
	// Line is the line-set overlap classification.
	Line Overlap `json:"line"`
	// Year is the sign of target.Year - guess.Year: +1 if the target opened
	// later than the guess, -1 if earlier, 0 if the same year.
	Year int `json:"year"`
}

// Compare computes the attribute pattern of guess relative to target.
func Compare(target, guess *dataset.Station) Pattern {
	return Pattern{
		District: target.District == guess.District,
		Line:     lineOverlap(target.Lines, guess.Lines),
		Year:     sign(target.Year - guess.Year),
	}
}

func lineOverlap(target, guess []string) Overlap {
	targetSet := make(map[string]bool, len(target))
	for _, l := range target {
		targetSet[l] = true
	}

	shared := 0
	guessSet := make(map[string]bool, len(guess))
	for _, l := range guess {
		if guessSet[l] {
			continue
		}
		guessSet[l] = true
		if targetSet[l] {
			shared++
		}
	}

	switch {
	case shared == len(targetSet) && shared == len(guessSet):
		return OverlapEvery
	case shared > 0:
		return OverlapSome
	default:
		return OverlapNone
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
