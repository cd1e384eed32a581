package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths_Layout(t *testing.T) {
	paths := NewPaths("data", "logs")

	assert.Equal(t, "data", paths.DataDir)
	assert.Equal(t, filepath.Join("data", "recommendations"), paths.RecommendationsDir)
	assert.Equal(t, filepath.Join("data", "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join("data", "reports", "events"), paths.EventsDir)
	assert.Equal(t, "logs", paths.LogsDir)
}

func TestPaths_TickerFiles(t *testing.T) {
	paths := NewPaths("data", "logs")

	tests := []struct {
		name     string
		ticker   string
		recCSV   string
		eventCSV string
	}{
		{
			name:     "uppercase ticker",
			ticker:   "TSLA",
			recCSV:   filepath.Join("data", "recommendations", "TSLA_rec.csv"),
			eventCSV: filepath.Join("data", "reports", "events", "TSLA_events.csv"),
		},
		{
			name:     "lowercase ticker is normalized",
			ticker:   "aapl",
			recCSV:   filepath.Join("data", "recommendations", "AAPL_rec.csv"),
			eventCSV: filepath.Join("data", "reports", "events", "AAPL_events.csv"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.recCSV, paths.RecommendationsCSV(tt.ticker))
			assert.Equal(t, tt.eventCSV, paths.EventsCSV(tt.ticker))
		})
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(filepath.Join(base, "data"), filepath.Join(base, "logs"))

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.RecommendationsDir, paths.EventsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
