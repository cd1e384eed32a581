package exporter

import (
	"fmt"
	"strconv"

	"recstudy/internal/config"
	"recstudy/pkg/contracts/domain"
)

// eventHeaders is the column order of generated event tables.
var eventHeaders = []string{"event_id", "firm", "event_date", "event_type"}

// EventExporter writes generated event tables to per-ticker CSV files.
type EventExporter struct {
	paths     *config.Paths
	csvWriter *CSVWriter
}

// NewEventExporter creates a new event table exporter
func NewEventExporter(paths *config.Paths) *EventExporter {
	return &EventExporter{
		paths:     paths,
		csvWriter: NewCSVWriter(),
	}
}

// ExportEvents writes the event table for a ticker to its well-known
// location and returns that path. Rows keep builder order, so the file is
// sorted by event_id.
func (e *EventExporter) ExportEvents(ticker string, evts []domain.Event) (string, error) {
	records := make([][]string, 0, len(evts))
	for _, evt := range evts {
		records = append(records, []string{
			strconv.Itoa(evt.ID),
			evt.Firm,
			evt.EventDate,
			string(evt.Type),
		})
	}

	path := e.paths.EventsCSV(ticker)
	if err := e.csvWriter.WriteSimpleCSV(path, eventHeaders, records); err != nil {
		return "", fmt.Errorf("failed to write event table for %s: %w", ticker, err)
	}
	return path, nil
}
