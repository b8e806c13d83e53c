// Package hints tracks, across a guess sequence, which district labels, line
// identifiers and opening years are still worth trying. The universes are
// derived from the loaded graph at startup rather than kept as a parallel
// static list, so they cannot drift from the dataset.
package hints

import (
	"sort"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/engine"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

// Tracker maintains the possible-value sets for the three guessed attributes.
// Each attribute starts as the full universe observed in the dataset and only
// ever shrinks. Once an exact match is observed the attribute is terminal:
// later imprecise signals must not perturb the known set.
type Tracker struct {
	districts     map[string]bool
	districtExact bool

	lines      map[string]bool
	linesExact bool

	years     map[int]bool
	yearExact bool
}

// Snapshot is a read-only view of the tracker for rendering.
type Snapshot struct {
	Districts     []string `json:"districts"`
	DistrictCount int      `json:"districtCount"`
	DistrictExact bool     `json:"districtExact"`

	Lines      []string `json:"lines"`
	LineCount  int      `json:"lineCount"`
	LinesExact bool     `json:"linesExact"`

	Years     []int `json:"years"`
	YearCount int   `json:"yearCount"`
	YearExact bool  `json:"yearExact"`
}

// New seeds a tracker with the attribute universes of the given graph.
func New(g *graph.Graph) *Tracker {
	t := &Tracker{
		districts: make(map[string]bool),
		lines:     make(map[string]bool),
		years:     make(map[int]bool),
	}
	for _, d := range g.Districts() {
		t.districts[d] = true
	}
	for _, l := range g.Lines() {
		t.lines[l] = true
	}
	for _, y := range g.Years() {
		t.years[y] = true
	}
	return t
}

// Observe applies one guess's attribute pattern.
//
// District: an exact match collapses the set to the guess's label and is
// terminal; a mismatch removes the label. Lines: "every" collapses to
// exactly the guess's line set and is terminal; "some" and "none" remove the
// tried lines from the untried universe. Year: 0 collapses to the guess's
// year; +1 keeps only later years, -1 only earlier ones.
func (t *Tracker) Observe(guess GuessAttributes, pattern engine.Pattern) {
	t.observeDistrict(guess.District, pattern.District)
	t.observeLines(guess.Lines, pattern.Line)
	t.observeYear(guess.Year, pattern.Year)
}

// GuessAttributes carries the attribute values of a guessed station.
type GuessAttributes struct {
	District string
	Lines    []string
	Year     int
}

func (t *Tracker) observeDistrict(district string, match bool) {
	if t.districtExact {
		return
	}
	if match {
		t.districts = map[string]bool{district: true}
		t.districtExact = true
		return
	}
	delete(t.districts, district)
}

func (t *Tracker) observeLines(lines []string, match engine.Overlap) {
	if t.linesExact {
		return
	}
	if match == engine.OverlapEvery {
		t.lines = make(map[string]bool, len(lines))
		for _, l := range lines {
			t.lines[l] = true
		}
		t.linesExact = true
		return
	}
	for _, l := range lines {
		delete(t.lines, l)
	}
}

func (t *Tracker) observeYear(year, match int) {
	if t.yearExact {
		return
	}
	if match == 0 {
		t.years = map[int]bool{year: true}
		t.yearExact = true
		return
	}
	for y := range t.years {
		if (match > 0 && y <= year) || (match < 0 && y >= year) {
			delete(t.years, y)
		}
	}
}

// Snapshot returns the current possible-value sets, sorted, with counts.
func (t *Tracker) Snapshot() Snapshot {
	districts := make([]string, 0, len(t.districts))
	for d := range t.districts {
		districts = append(districts, d)
	}
	sort.Strings(districts)

	lines := make([]string, 0, len(t.lines))
	for l := range t.lines {
		lines = append(lines, l)
	}
	sort.Strings(lines)

	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)

	return Snapshot{
		Districts:     districts,
		DistrictCount: len(districts),
		DistrictExact: t.districtExact,
		Lines:         lines,
		LineCount:     len(lines),
		LinesExact:    t.linesExact,
		Years:         years,
		YearCount:     len(years),
		YearExact:     t.yearExact,
	}
}
