package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Station is one record of the station dataset. The JSON field names follow
// the stations.json format ("line", "nearStation") so existing datasets load
// without conversion.
type Station struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Lines    []string `json:"line"`
	Adjacent []int    `json:"nearStation"`
	District string   `json:"district"`
	Year     int      `json:"year"`
}

// OnLine reports whether the station is served by the given line.
func (s *Station) OnLine(line string) bool {
	for _, l := range s.Lines {
		if l == line {
			return true
		}
	}
	return false
}

// Interchange reports whether the station is served by more than one line.
func (s *Station) Interchange() bool {
	return len(s.Lines) > 1
}

// Load reads and validates a station dataset from a JSON file.
// Any malformed record fails the whole load; no partial dataset is returned.
func Load(path string) ([]Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stations file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses and validates a station dataset from r.
func Read(r io.Reader) ([]Station, error) {
	var stations []Station
	if err := json.NewDecoder(r).Decode(&stations); err != nil {
		return nil, fmt.Errorf("failed to decode stations JSON: %w", err)
	}

	if err := Validate(stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// Validate checks the record-level invariants: unique ids and names,
// non-empty required fields, at least one line per station.
// Adjacency referential integrity is checked at graph construction,
// where the full id set is available as a lookup table.
func Validate(stations []Station) error {
	if len(stations) == 0 {
		return fmt.Errorf("station dataset is empty")
	}

	seenID := make(map[int]string, len(stations))
	seenName := make(map[string]int, len(stations))

	for i, s := range stations {
		if s.Name == "" {
			return fmt.Errorf("station at index %d (id %d) has no name", i, s.ID)
		}
		if len(s.Lines) == 0 {
			return fmt.Errorf("station %q (id %d) has no lines", s.Name, s.ID)
		}
		for _, l := range s.Lines {
			if l == "" {
				return fmt.Errorf("station %q (id %d) has an empty line identifier", s.Name, s.ID)
			}
		}
		if s.District == "" {
			return fmt.Errorf("station %q (id %d) has no district", s.Name, s.ID)
		}
		if s.Year == 0 {
			return fmt.Errorf("station %q (id %d) has no opening year", s.Name, s.ID)
		}

		if prev, ok := seenID[s.ID]; ok {
			return fmt.Errorf("duplicate station id %d (%q and %q)", s.ID, prev, s.Name)
		}
		seenID[s.ID] = s.Name

		if prevID, ok := seenName[s.Name]; ok {
			return fmt.Errorf("duplicate station name %q (ids %d and %d)", s.Name, prevID, s.ID)
		}
		seenName[s.Name] = s.ID
	}

	return nil
}
