package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/config"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/repository"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/server"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local development)
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg := config.Load()

	source, cleanup := selectSource(cfg)
	defer cleanup()

	stations, err := source.LoadStations(context.Background())
	if err != nil {
		log.Fatalf("Failed to load station dataset: %v", err)
	}

	g, err := graph.New(stations)
	if err != nil {
		log.Fatalf("Failed to build station graph: %v", err)
	}
	log.Printf("Station graph built: %d stations, %d lines, %d districts",
		g.Len(), len(g.Lines()), len(g.Districts()))

	srv := server.New(g)
	router := srv.Router(cfg.AllowedOrigins)

	log.Printf("Game server starting on :%s", cfg.Port)
	log.Println("Dataset endpoints:")
	log.Println("  GET  /api/stations")
	log.Println("  GET  /api/stations/{name}")
	log.Println("  GET  /api/lines/{line}/stations")
	log.Println("Play sessions:")
	log.Println("  POST /api/sessions")
	log.Println("  GET  /api/sessions/{sessionID}")
	log.Println("  POST /api/sessions/{sessionID}/guesses")
	log.Println("  GET  /api/sessions/{sessionID}/answer")
	log.Println("  POST /api/sessions/{sessionID}/reset")
	log.Println("Solver sessions:")
	log.Println("  POST /api/solver/sessions")
	log.Println("  GET  /api/solver/sessions/{sessionID}")
	log.Println("  POST /api/solver/sessions/{sessionID}/constraints")
	log.Println("  POST /api/solver/sessions/{sessionID}/reset")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// selectSource picks the station source: Postgres when DATABASE_URL is set,
// then SQLite when SQLITE_DATABASE is set, otherwise the stations JSON file.
func selectSource(cfg *config.Config) (repository.StationSource, func()) {
	if cfg.DatabaseURL != "" {
		log.Println("Loading stations from Postgres")
		src, err := repository.NewPostgresSource(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		return src, src.Close
	}

	if cfg.DatabasePath != "" {
		log.Printf("Loading stations from SQLite database: %s", cfg.DatabasePath)
		src, err := repository.NewSQLiteSource(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
		return src, func() { src.Close() }
	}

	log.Printf("Loading stations from JSON file: %s", cfg.StationsJSON)
	return repository.NewJSONSource(cfg.StationsJSON), func() {}
}
