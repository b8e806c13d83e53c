package db

import (
	"context"
	"fmt"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
)

// ReplaceStations swaps the stored dataset for the given one in a single
// transaction. The dataset is small and static, so a full replace is simpler
// and safer than diffing against the previous import.
func (db *DB) ReplaceStations(ctx context.Context, stations []dataset.Station) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"station_adjacency", "station_lines", "stations"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	stationStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO stations (id, name, district, year) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare station statement: %w", err)
	}
	defer stationStmt.Close()

	lineStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO station_lines (station_id, line, position) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare line statement: %w", err)
	}
	defer lineStmt.Close()

	adjStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO station_adjacency (station_id, adjacent_id, position) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare adjacency statement: %w", err)
	}
	defer adjStmt.Close()

	for _, s := range stations {
		if _, err := stationStmt.ExecContext(ctx, s.ID, s.Name, s.District, s.Year); err != nil {
			return fmt.Errorf("failed to insert station %q: %w", s.Name, err)
		}
		for i, line := range s.Lines {
			if _, err := lineStmt.ExecContext(ctx, s.ID, line, i); err != nil {
				return fmt.Errorf("failed to insert line %q for station %q: %w", line, s.Name, err)
			}
		}
		for i, near := range s.Adjacent {
			if _, err := adjStmt.ExecContext(ctx, s.ID, near, i); err != nil {
				return fmt.Errorf("failed to insert adjacency %d for station %q: %w", near, s.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit station import: %w", err)
	}
	return nil
}

// CountStations returns the number of stored stations.
func (db *DB) CountStations(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM stations").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count stations: %w", err)
	}
	return count, nil
}
