package repository

import (
	"context"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
)

// JSONSource loads stations from a stations.json file.
type JSONSource struct {
	Path string
}

// NewJSONSource creates a file-backed station source.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{Path: path}
}

// LoadStations reads and validates the JSON dataset.
func (s *JSONSource) LoadStations(_ context.Context) ([]dataset.Station, error) {
	return dataset.Load(s.Path)
}
