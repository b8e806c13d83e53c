package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/engine"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/game"
)

// SolverResponse is the JSON state of a solver session.
type SolverResponse struct {
	SessionID string             `json:"sessionId"`
	Possible  []*dataset.Station `json:"possible"`
	Count     int                `json:"count"`
	History   []game.Constraint  `json:"history"`
}

func solverResponse(id string, solver *game.Solver) SolverResponse {
	return SolverResponse{
		SessionID: id,
		Possible:  solver.Possible(),
		Count:     len(solver.Possible()),
		History:   solver.History(),
	}
}

// CreateSolverSession handles POST /api/solver/sessions.
func (s *Server) CreateSolverSession(w http.ResponseWriter, r *http.Request) {
	solver := game.NewSolver(s.graph)
	id := s.sessions.addSolver(solver)
	respondJSON(w, http.StatusCreated, solverResponse(id, solver))
}

// GetSolverSession handles GET /api/solver/sessions/{sessionID}.
func (s *Server) GetSolverSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	ss := s.sessions.solver(id)
	if ss == nil {
		respondError(w, http.StatusNotFound, "Solver session not found", map[string]interface{}{
			"sessionId": id,
		})
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	respondJSON(w, http.StatusOK, solverResponse(id, ss.solver))
}

// ConstraintRequest is the JSON body for applying an observed guess outcome.
type ConstraintRequest struct {
	Name     string         `json:"name"`
	District bool           `json:"district"`
	Line     engine.Overlap `json:"line"`
	Year     int            `json:"year"`
}

func (c *ConstraintRequest) validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	switch c.Line {
	case engine.OverlapEvery, engine.OverlapSome, engine.OverlapNone:
	default:
		return errors.New("line must be one of every, some, none")
	}
	if c.Year < -1 || c.Year > 1 {
		return errors.New("year must be -1, 0 or 1")
	}
	return nil
}

// ApplyConstraint handles POST /api/solver/sessions/{sessionID}/constraints.
func (s *Server) ApplyConstraint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	ss := s.sessions.solver(id)
	if ss == nil {
		respondError(w, http.StatusNotFound, "Solver session not found", map[string]interface{}{
			"sessionId": id,
		})
		return
	}

	var req ConstraintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid constraint body", nil)
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid constraint", map[string]interface{}{
			"reason": err.Error(),
		})
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	_, err := ss.solver.ApplyConstraint(req.Name, engine.Pattern{
		District: req.District,
		Line:     req.Line,
		Year:     req.Year,
	})
	if err != nil {
		var notFound *engine.NotFoundError
		if errors.As(err, &notFound) {
			respondError(w, http.StatusNotFound, "Station not found", map[string]interface{}{
				"name": notFound.Name,
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to apply constraint", map[string]interface{}{
			"internal": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, solverResponse(id, ss.solver))
}

// ResetSolverSession handles POST /api/solver/sessions/{sessionID}/reset.
func (s *Server) ResetSolverSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	ss := s.sessions.solver(id)
	if ss == nil {
		respondError(w, http.StatusNotFound, "Solver session not found", map[string]interface{}{
			"sessionId": id,
		})
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.solver.Reset()
	respondJSON(w, http.StatusOK, solverResponse(id, ss.solver))
}
