// Package graph holds the static station network: lookup tables by name, id
// and line, plus the derived attribute enumerations used to seed hint
// tracking. It is built once from a validated dataset and never mutated, so
// it is safe to share across sessions.
package graph

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
)

// Graph is the immutable station network.
type Graph struct {
	stations  []*dataset.Station
	byName    map[string]*dataset.Station
	byID      map[int]*dataset.Station
	byLine    map[string][]*dataset.Station
	neighbors map[int][]int
}

// New builds the lookup structures from validated station records.
// It re-checks record invariants and verifies adjacency referential
// integrity: a dangling neighbor id fails construction entirely.
func New(records []dataset.Station) (*Graph, error) {
	if err := dataset.Validate(records); err != nil {
		return nil, err
	}

	g := &Graph{
		stations: make([]*dataset.Station, 0, len(records)),
		byName:   make(map[string]*dataset.Station, len(records)),
		byID:     make(map[int]*dataset.Station, len(records)),
		byLine:   make(map[string][]*dataset.Station),
	}

	for i := range records {
		s := &records[i]
		g.stations = append(g.stations, s)
		g.byName[s.Name] = s
		g.byID[s.ID] = s
		for _, line := range s.Lines {
			g.byLine[line] = append(g.byLine[line], s)
		}
	}

	// Referential integrity: every adjacency id must resolve. The neighbor
	// index is the symmetric closure of the stored edges, so traversal sees
	// A-B even when only A lists B.
	g.neighbors = make(map[int][]int, len(g.stations))
	for _, s := range g.stations {
		for _, near := range s.Adjacent {
			if _, ok := g.byID[near]; !ok {
				return nil, fmt.Errorf("station %q (id %d) references unknown adjacent station id %d", s.Name, s.ID, near)
			}
			g.addNeighbor(s.ID, near)
			g.addNeighbor(near, s.ID)
		}
	}

	return g, nil
}

func (g *Graph) addNeighbor(id, near int) {
	for _, existing := range g.neighbors[id] {
		if existing == near {
			return
		}
	}
	g.neighbors[id] = append(g.neighbors[id], near)
}

// Neighbors returns the ids adjacent to the given station, with reverse
// edges included.
func (g *Graph) Neighbors(id int) []int {
	return g.neighbors[id]
}

// ByName returns the station with the given name, or nil if unknown.
func (g *Graph) ByName(name string) *dataset.Station {
	return g.byName[name]
}

// ByID returns the station with the given id, or nil if unknown.
func (g *Graph) ByID(id int) *dataset.Station {
	return g.byID[id]
}

// OnLine returns the stations served by the given line.
// Unknown lines yield an empty slice, not an error.
func (g *Graph) OnLine(line string) []*dataset.Station {
	return g.byLine[line]
}

// Stations returns a copy of the full station list, in load order.
// Callers own the returned slice; it is the seed for a candidate set.
func (g *Graph) Stations() []*dataset.Station {
	out := make([]*dataset.Station, len(g.stations))
	copy(out, g.stations)
	return out
}

// Len returns the number of stations in the network.
func (g *Graph) Len() int {
	return len(g.stations)
}

// Random picks a station uniformly using the caller's random source.
// Sessions inject their own source so tests can seed deterministically.
func (g *Graph) Random(rng *rand.Rand) *dataset.Station {
	return g.stations[rng.Intn(len(g.stations))]
}

// Districts returns the sorted set of district labels present in the dataset.
// Compound labels count as a single value.
func (g *Graph) Districts() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range g.stations {
		if !seen[s.District] {
			seen[s.District] = true
			out = append(out, s.District)
		}
	}
	sort.Strings(out)
	return out
}

// Lines returns the sorted set of line identifiers present in the dataset.
func (g *Graph) Lines() []string {
	out := make([]string, 0, len(g.byLine))
	for line := range g.byLine {
		out = append(out, line)
	}
	sort.Strings(out)
	return out
}

// Years returns the sorted set of opening years present in the dataset.
func (g *Graph) Years() []int {
	seen := make(map[int]bool)
	var out []int
	for _, s := range g.stations {
		if !seen[s.Year] {
			seen[s.Year] = true
			out = append(out, s.Year)
		}
	}
	sort.Ints(out)
	return out
}
