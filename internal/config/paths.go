package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: per-ticker
// recommendation CSVs live under RecommendationsDir, generated event tables
// under EventsDir.
type Paths struct {
	DataDir            string
	RecommendationsDir string
	ReportsDir         string
	EventsDir          string
	LogsDir            string
}

// NewPaths builds the path layout rooted at dataDir.
//
// Directory structure:
//
//	data/
//	  ├── recommendations/   (per-ticker <TIC>_rec.csv inputs)
//	  └── reports/
//	      └── events/        (generated <TIC>_events.csv tables)
func NewPaths(dataDir, logsDir string) *Paths {
	reportsDir := filepath.Join(dataDir, "reports")
	return &Paths{
		DataDir:            dataDir,
		RecommendationsDir: filepath.Join(dataDir, "recommendations"),
		ReportsDir:         reportsDir,
		EventsDir:          filepath.Join(reportsDir, "events"),
		LogsDir:            logsDir,
	}
}

// GetPaths returns the path layout for the given configuration.
func GetPaths(cfg *Config) *Paths {
	return NewPaths(cfg.Paths.DataDir, cfg.Paths.LogsDir)
}

// RecommendationsCSV returns the location of the raw recommendations file
// for a ticker.
func (p *Paths) RecommendationsCSV(ticker string) string {
	return filepath.Join(p.RecommendationsDir, fmt.Sprintf("%s_rec.csv", strings.ToUpper(ticker)))
}

// EventsCSV returns the location of the generated event table for a ticker.
func (p *Paths) EventsCSV(ticker string) string {
	return filepath.Join(p.EventsDir, fmt.Sprintf("%s_events.csv", strings.ToUpper(ticker)))
}

// LogPath returns the location of a log file.
func (p *Paths) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// EnsureDirectories creates all directories the application writes into.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.RecommendationsDir, p.ReportsDir, p.EventsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
