package engine

import (
	"errors"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

// ErrUnreachable is returned when a BFS frontier empties before reaching the
// target. The metro network is expected to be fully connected, so hitting
// this is a data-integrity fault, not a game outcome: callers must surface
// it loudly instead of rendering it as a large finite distance.
var ErrUnreachable = errors.New("target station unreachable from source")

// MinHops returns the minimum number of station-to-station hops between
// source and target. Adjacency is treated as symmetric. Zero when source and
// target are the same station.
func MinHops(g *graph.Graph, target, source *dataset.Station) (int, error) {
	if target.ID == source.ID {
		return 0, nil
	}

	visited := map[int]bool{source.ID: true}
	frontier := []int{source.ID}

	// Expand one ring per iteration; the ring index at which the target
	// first appears is the hop distance.
	for hops := 1; len(frontier) > 0; hops++ {
		var next []int
		for _, id := range frontier {
			for _, near := range g.Neighbors(id) {
				if near == target.ID {
					return hops, nil
				}
				if !visited[near] {
					visited[near] = true
					next = append(next, near)
				}
			}
		}
		frontier = next
	}

	return 0, ErrUnreachable
}

// MinTransfers returns the minimum number of line changes needed to travel
// from source to target. Zero when the two stations share a line, however
// far apart they are. Otherwise a BFS over the line graph: two lines are
// connected when some interchange station carries both, and each expansion
// ring costs one transfer.
func MinTransfers(g *graph.Graph, target, source *dataset.Station) (int, error) {
	if sharesLine(target, source) {
		return 0, nil
	}

	visited := make(map[string]bool, len(source.Lines))
	frontier := make([]string, 0, len(source.Lines))
	for _, line := range source.Lines {
		if !visited[line] {
			visited[line] = true
			frontier = append(frontier, line)
		}
	}

	// The shared-line check above already covers the zero-transfer case, so
	// the first successful expansion means one transfer.
	for transfers := 1; ; transfers++ {
		var next []string
		for _, line := range frontier {
			for _, s := range g.OnLine(line) {
				for _, reached := range s.Lines {
					if visited[reached] {
						continue
					}
					visited[reached] = true
					next = append(next, reached)
				}
			}
		}
		if len(next) == 0 {
			return 0, ErrUnreachable
		}
		for _, line := range next {
			if target.OnLine(line) {
				return transfers, nil
			}
		}
		frontier = next
	}
}

func sharesLine(a, b *dataset.Station) bool {
	for _, line := range a.Lines {
		if b.OnLine(line) {
			return true
		}
	}
	return false
}
