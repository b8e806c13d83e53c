// Package server exposes the game engine over HTTP. Each play or solver
// session is isolated per caller behind a uuid; the station graph itself is
// read-only and shared by every session.
package server

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

// Server wires the station graph and the session stores into HTTP handlers.
type Server struct {
	graph    *graph.Graph
	sessions *sessionStore
	newRand  func() *rand.Rand
}

// New creates a server over the given graph.
func New(g *graph.Graph) *Server {
	return &Server{
		graph:    g,
		sessions: newSessionStore(),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Router builds the chi router with CORS and all API routes.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", s.GetHealth)

	// Station dataset
	r.Get("/api/stations", s.GetAllStations)
	r.Get("/api/stations/{name}", s.GetStationByName)
	r.Get("/api/lines/{line}/stations", s.GetLineStations)

	// Play sessions
	r.Post("/api/sessions", s.CreateSession)
	r.Get("/api/sessions/{sessionID}", s.GetSession)
	r.Post("/api/sessions/{sessionID}/guesses", s.MakeGuess)
	r.Get("/api/sessions/{sessionID}/answer", s.GetAnswer)
	r.Post("/api/sessions/{sessionID}/reset", s.ResetSession)

	// Solver sessions
	r.Post("/api/solver/sessions", s.CreateSolverSession)
	r.Get("/api/solver/sessions/{sessionID}", s.GetSolverSession)
	r.Post("/api/solver/sessions/{sessionID}/constraints", s.ApplyConstraint)
	r.Post("/api/solver/sessions/{sessionID}/reset", s.ResetSolverSession)

	return r
}
