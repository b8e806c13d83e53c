package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"

	_ "modernc.org/sqlite"
)

// SQLiteSource loads stations from a SQLite database populated by the
// import-stations tool.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens a read connection to the station database.
func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal=WAL&_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// LoadStations reads the full dataset and validates it before returning.
func (s *SQLiteSource) LoadStations(ctx context.Context) ([]dataset.Station, error) {
	rows, err := s.db.QueryContext(ctx,
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

	if err := s.loadLines(ctx, stations, index); err != nil {
		return nil, err
	}
	if err := s.loadAdjacency(ctx, stations, index); err != nil {
		return nil, err
	}

	if err := dataset.Validate(stations); err != nil {
		return nil, fmt.Errorf("stored dataset is invalid: %w", err)
	}
	return stations, nil
}

func (s *SQLiteSource) loadLines(ctx context.Context, stations []dataset.Station, index map[int]int) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT station_id, line FROM station_lines ORDER BY station_id, position")
	if err != nil {
		return fmt.Errorf("failed to query station lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stationID int
		var line string
		if err := rows.Scan(&stationID, &line); err != nil {
			return fmt.Errorf("failed to scan line row: %w", err)
		}
		i, ok := index[stationID]
		if !ok {
			return fmt.Errorf("line %q references unknown station id %d", line, stationID)
		}
		stations[i].Lines = append(stations[i].Lines, line)
	}
	return rows.Err()
}

func (s *SQLiteSource) loadAdjacency(ctx context.Context, stations []dataset.Station, index map[int]int) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT station_id, adjacent_id FROM station_adjacency ORDER BY station_id, position")
	if err != nil {
		return fmt.Errorf("failed to query station adjacency: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stationID, adjacentID int
		if err := rows.Scan(&stationID, &adjacentID); err != nil {
			return fmt.Errorf("failed to scan adjacency row: %w", err)
		}
		i, ok := index[stationID]
		if !ok {
			return fmt.Errorf("adjacency references unknown station id %d", stationID)
		}
		stations[i].Adjacent = append(stations[i].Adjacent, adjacentID)
	}
	return rows.Err()
}
