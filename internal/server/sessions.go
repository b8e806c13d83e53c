package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/game"
)

// playSession pairs a game session with its own mutex: sessions are
// single-threaded state machines, so concurrent requests for the same
// session serialize here while different sessions proceed independently.
type playSession struct {
	mu      sync.Mutex
	session *game.Session
}

type solverSession struct {
	mu     sync.Mutex
	solver *game.Solver
}

// sessionStore keeps the in-memory sessions. Game state is never persisted;
// sessions live for the process lifetime.
type sessionStore struct {
	mu      sync.RWMutex
	plays   map[string]*playSession
	solvers map[string]*solverSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		plays:   make(map[string]*playSession),
		solvers: make(map[string]*solverSession),
	}
}

func (st *sessionStore) addPlay(s *game.Session) string {
	id := uuid.New().String()
	st.mu.Lock()
	st.plays[id] = &playSession{session: s}
	st.mu.Unlock()
	return id
}

func (st *sessionStore) play(id string) *playSession {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.plays[id]
}

func (st *sessionStore) addSolver(s *game.Solver) string {
	id := uuid.New().String()
	st.mu.Lock()
	st.solvers[id] = &solverSession{solver: s}
	st.mu.Unlock()
	return id
}

func (st *sessionStore) solver(id string) *solverSession {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.solvers[id]
}
