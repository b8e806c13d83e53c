// Command import-stations loads a stations.json dataset into the SQLite
// station database used by the game server.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/db"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

func main() {
	dbPath := flag.String("db", "data/stations.db", "Path to SQLite database")
	jsonPath := flag.String("json", "data/stations.json", "Path to stations JSON file")
	flag.Parse()

	stations, err := dataset.Load(*jsonPath)
	if err != nil {
		log.Fatalf("Failed to load stations from %s: %v", *jsonPath, err)
	}
	log.Printf("Loaded %d stations from %s", len(stations), *jsonPath)

	// Building the graph runs the full integrity checks (dangling adjacency
	// ids included) before anything is written.
	if _, err := graph.New(stations); err != nil {
		log.Fatalf("Dataset failed integrity checks: %v", err)
	}

	database, err := db.Connect(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	if err := database.ReplaceStations(ctx, stations); err != nil {
		log.Fatalf("Failed to import stations: %v", err)
	}

	count, err := database.CountStations(ctx)
	if err != nil {
		log.Fatalf("Failed to verify import: %v", err)
	}
	log.Printf("Import complete: %d stations stored in %s", count, *dbPath)
}
