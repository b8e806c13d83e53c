// Package repository provides the station dataset sources. The engine's
// only contract with a source is: deliver a full, valid set of station
// records or fail before first use. JSON file, SQLite and Postgres backends
// are interchangeable behind StationSource.
package repository

import (
	"context"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
)

// StationSource loads the full station dataset.
type StationSource interface {
	LoadStations(ctx context.Context) ([]dataset.Station, error)
}
