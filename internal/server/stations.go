package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
)

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"stations":  s.graph.Len(),
		"timestamp": time.Now().UTC(),
	})
}

// StationListResponse is the JSON response for station list endpoints.
type StationListResponse struct {
	Stations []*dataset.Station `json:"stations"`
	Count    int                `json:"count"`
}

// GetAllStations handles GET /api/stations.
func (s *Server) GetAllStations(w http.ResponseWriter, r *http.Request) {
	stations := s.graph.Stations()
	respondJSON(w, http.StatusOK, StationListResponse{
		Stations: stations,
		Count:    len(stations),
	})
}

// GetStationByName handles GET /api/stations/{name}.
func (s *Server) GetStationByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	station := s.graph.ByName(name)
	if station == nil {
		respondError(w, http.StatusNotFound, "Station not found", map[string]interface{}{
			"name": name,
		})
		return
	}

	respondJSON(w, http.StatusOK, station)
}

// LineStationsResponse is the JSON response for GET /api/lines/{line}/stations.
type LineStationsResponse struct {
	Line     string             `json:"line"`
	Stations []*dataset.Station `json:"stations"`
	Count    int                `json:"count"`
}

// GetLineStations handles GET /api/lines/{line}/stations.
// An unknown line yields an empty list, not an error.
func (s *Server) GetLineStations(w http.ResponseWriter, r *http.Request) {
	line := chi.URLParam(r, "line")

	stations := s.graph.OnLine(line)
	if stations == nil {
		stations = []*dataset.Station{}
	}

	respondJSON(w, http.StatusOK, LineStationsResponse{
		Line:     line,
		Stations: stations,
		Count:    len(stations),
	})
}
