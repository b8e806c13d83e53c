package game

import (
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/engine"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

// Constraint is one observed guess outcome fed to the solver: the guessed
// station and the attribute pattern the game reported for it.
type Constraint struct {
	Guess     string         `json:"guess"`
	Pattern   engine.Pattern `json:"pattern"`
	Remaining int            `json:"remaining"`
}

// Solver narrows the possible-station set from externally observed guess
// outcomes, for assisting a game played elsewhere. It never knows the target.
type Solver struct {
	graph    *graph.Graph
	possible []*dataset.Station
	history  []Constraint
}

// NewSolver starts a solver over the full station list.
func NewSolver(g *graph.Graph) *Solver {
	s := &Solver{graph: g}
	s.Reset()
	return s
}

// Reset restores the full possible-station set and clears the history.
func (s *Solver) Reset() {
	s.possible = s.graph.Stations()
	s.history = nil
}

// ApplyConstraint filters the possible set by one observed outcome. An
// unknown guess name returns *engine.NotFoundError and leaves the solver
// untouched.
func (s *Solver) ApplyConstraint(guessName string, pattern engine.Pattern) ([]*dataset.Station, error) {
	guess := s.graph.ByName(guessName)
	if guess == nil {
		return nil, &engine.NotFoundError{Name: guessName}
	}

	s.possible = engine.Filter(s.possible, guess, pattern)
	s.history = append(s.history, Constraint{
		Guess:     guessName,
		Pattern:   pattern,
		Remaining: len(s.possible),
	})
	return s.possible, nil
}

// Possible returns the stations still consistent with every constraint.
func (s *Solver) Possible() []*dataset.Station {
	return s.possible
}

// History returns the applied constraints in order.
func (s *Solver) History() []Constraint {
	return s.history
}
