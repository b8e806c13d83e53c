package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
)

// PostgresSource loads stations from a Postgres database using the same
// table layout as the SQLite store.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a connection pool and verifies connectivity.
func NewPostgresSource(databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresSource{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresSource) Close() {
	s.pool.Close()
}

// LoadStations reads the full dataset and validates it before returning.
func (s *PostgresSource) LoadStations(ctx context.Context) ([]dataset.Station, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, district, year FROM stations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []dataset.Station
	index := make(map[int]int)
	for rows.Next() {
		var st dataset.Station
		if err := rows.Scan(&st.ID, &st.Name, &st.District, &st.Year); err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		index[st.ID] = len(stations)
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station rows: %w", err)
	}

	lineRows, err := s.pool.Query(ctx,
		"SELECT station_id, line FROM station_lines ORDER BY station_id, position")
	if err != nil {
		return nil, fmt.Errorf("failed to query station lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var stationID int
		var line string
		if err := lineRows.Scan(&stationID, &line); err != nil {
			return nil, fmt.Errorf("failed to scan line row: %w", err)
		}
		i, ok := index[stationID]
		if !ok {
			return nil, fmt.Errorf("line %q references unknown station id %d", line, stationID)
		}
		stations[i].Lines = append(stations[i].Lines, line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows: %w", err)
	}

	adjRows, err := s.pool.Query(ctx,
		"SELECT station_id, adjacent_id FROM station_adjacency ORDER BY station_id, position")
	if err != nil {
		return nil, fmt.Errorf("failed to query station adjacency: %w", err)
	}
	defer adjRows.Close()

	for adjRows.Next() {
		var stationID, adjacentID int
		if err := adjRows.Scan(&stationID, &adjacentID); err != nil {
			return nil, fmt.Errorf("failed to scan adjacency row: %w", err)
		}
		i, ok := index[stationID]
		if !ok {
			return nil, fmt.Errorf("adjacency references unknown station id %d", stationID)
		}
		stations[i].Adjacent = append(stations[i].Adjacent, adjacentID)
	}
	if err := adjRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adjacency rows: %w", err)
	}

	if err := dataset.Validate(stations); err != nil {
		return nil, fmt.Errorf("stored dataset is invalid: %w", err)
	}
	return stations, nil
}
