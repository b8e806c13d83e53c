package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/engine"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/game"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/hints"
)

// SessionResponse is the JSON state of a play session.
type SessionResponse struct {
	SessionID string         `json:"sessionId"`
	Guesses   int            `json:"guesses"`
	Remaining int            `json:"remaining"`
	Won       bool           `json:"won"`
	Hints     hints.Snapshot `json:"hints"`
}

func sessionResponse(id string, sess *game.Session) SessionResponse {
	return SessionResponse{
		SessionID: id,
		Guesses:   sess.GuessCount(),
		Remaining: len(sess.Candidates()),
		Won:       sess.Won(),
		Hints:     sess.Hints(),
	}
}

// CreateSession handles POST /api/sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := game.NewSession(s.graph, s.newRand())
	id := s.sessions.addPlay(sess)
	respondJSON(w, http.StatusCreated, sessionResponse(id, sess))
}

// GetSession handles GET /api/sessions/{sessionID}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	ps := s.sessions.play(id)
	if ps == nil {
		respondError(w, http.StatusNotFound, "Session not found", map[string]interface{}{
			"sessionId": id,
		})
		return
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	respondJSON(w, http.StatusOK, sessionResponse(id, ps.session))
}

// GuessRequest is the JSON body for POST /api/sessions/{sessionID}/guesses.
type GuessRequest struct {
	Name string `json:"name"`
}

// GuessResponse is the JSON result of one guess, flattened to the original
// stations.json game protocol (district/line/year at the top level).
type GuessResponse struct {
	GuessNumber  int                `json:"guessNumber"`
	Correct      bool               `json:"correct"`
	Station      *dataset.Station   `json:"stationInfo"`
	MinStations  int                `json:"minStations"`
	MinTransfer  int                `json:"minTransfer"`
	District     bool               `json:"district"`
	Line         engine.Overlap     `json:"line"`
	Year         int                `json:"year"`
	Remaining    []*dataset.Station `json:"remain"`
	RemainingLen int                `json:"remainingCount"`
	Hints        hints.Snapshot     `json:"hints"`
}

// MakeGuess handles POST /api/sessions/{sessionID}/guesses.
// An unknown station name answers 404 and leaves the session untouched.
func (s *Server) MakeGuess(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	ps := s.sessions.play(id)
	if ps == nil {
		respondError(w, http.StatusNotFound, "Session not found", map[string]interface{}{
			"sessionId": id,
		})
		return
	}

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		respondError(w, http.StatusBadRequest, "Request body must be {\"name\": <station name>}", nil)
		return
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	record, err := ps.session.Guess(req.Name)
	if err != nil {
		var notFound *engine.NotFoundError
		if errors.As(err, &notFound) {
			respondError(w, http.StatusNotFound, "Station not found", map[string]interface{}{
				"name": notFound.Name,
			})
			return
		}
		// Unreachable distances mean the dataset is broken, not a bad guess.
		respondError(w, http.StatusInternalServerError, "Guess evaluation failed", map[string]interface{}{
			"internal": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, GuessResponse{
		GuessNumber:  ps.session.GuessCount(),
		Correct:      record.Correct,
		Station:      record.Station,
		MinStations:  record.MinHops,
		MinTransfer:  record.MinTransfers,
		District:     record.Pattern.District,
		Line:         record.Pattern.Line,
		Year:         record.Pattern.Year,
		Remaining:    record.Remaining,
		RemainingLen: len(record.Remaining),
		Hints:        ps.session.Hints(),
	})
}

// GetAnswer handles GET /api/sessions/{sessionID}/answer.
func (s *Server) GetAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	ps := s.sessions.play(id)
	if ps == nil {
		respondError(w, http.StatusNotFound, "Session not found", map[string]interface{}{
			"sessionId": id,
		})
		return
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	respondJSON(w, http.StatusOK, ps.session.Target())
}

// ResetSession handles POST /api/sessions/{sessionID}/reset.
func (s *Server) ResetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	ps := s.sessions.play(id)
	if ps == nil {
		respondError(w, http.StatusNotFound, "Session not found", map[string]interface{}{
			"sessionId": id,
		})
		return
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.session.Reset()
	respondJSON(w, http.StatusOK, sessionResponse(id, ps.session))
}
