package recommendations

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "recstudy/internal/errors"
	"recstudy/pkg/contracts/domain"
)

// validate checks required fields on parsed records.
var validate = validator.New()

// timestampLayouts are tried in order when parsing the date column. Sources
// differ on whether they carry a time-of-day component.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// Load reads the recommendations table at path, dispatching on the file
// extension. CSV and Excel sources produce the same logical records.
func Load(path string) ([]domain.Recommendation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadExcel(path)
	default:
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unsupported recommendations file type: %s", filepath.Ext(path)), nil)
	}
}

// rowsToRecords converts a raw table (header row first) into recommendation
// records. Header names are standardized before matching so sources with
// "Date", " firm " or "To Grade" headers all resolve to the same columns.
func rowsToRecords(rows [][]string, source string) ([]domain.Recommendation, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("recommendations table has no header row", nil).
			WithContext("source", source)
	}

	columns := standardizeHeader(rows[0])
	for _, required := range []string{"date", "firm", "action"} {
		if _, ok := columns[required]; !ok {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("recommendations table is missing the %q column", required), nil).
				WithContext("source", source)
		}
	}

	recs := make([]domain.Recommendation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		ts, err := parseTimestamp(cell(row, columns["date"]))
		if err != nil {
			return nil, apperrors.NewParsingError("failed to parse date column", err).
				WithContext("source", source).
				WithContext("row", i+2)
		}

		rec := domain.Recommendation{
			Date:   ts,
			Firm:   strings.TrimSpace(cell(row, columns["firm"])),
			Action: strings.TrimSpace(cell(row, columns["action"])),
		}
		if idx, ok := columns["from_grade"]; ok {
			rec.FromGrade = strings.TrimSpace(cell(row, idx))
		}
		if idx, ok := columns["to_grade"]; ok {
			rec.ToGrade = strings.TrimSpace(cell(row, idx))
		}

		if err := validate.Struct(rec); err != nil {
			return nil, apperrors.NewValidationError("invalid recommendation record", err).
				WithContext("source", source).
				WithContext("row", i+2)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// standardizeHeader maps cleaned-up column names to their positions. Names
// are trimmed, lowercased and have spaces collapsed to underscores.
func standardizeHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		name = strings.Join(strings.Fields(name), "_")
		if name == "" {
			continue
		}
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
