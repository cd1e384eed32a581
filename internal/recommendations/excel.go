package recommendations

import (
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "recstudy/internal/errors"
	"recstudy/pkg/contracts/domain"
)

// LoadExcel reads a per-ticker recommendations table from an Excel workbook.
// The sheet is located by its header row rather than by name, since export
// tools disagree on sheet naming.
func LoadExcel(path string) ([]domain.Recommendation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open recommendations workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	rows, err := findRecommendationSheet(f)
	if err != nil {
		return nil, err
	}

	return rowsToRecords(rows, path)
}

// findRecommendationSheet returns the rows of the first sheet whose header
// contains the required date/firm/action columns.
func findRecommendationSheet(f *excelize.File) ([][]string, error) {
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		header := strings.ToLower(strings.Join(rows[0], " "))
		if strings.Contains(header, "date") &&
			strings.Contains(header, "firm") &&
			strings.Contains(header, "action") {
			return rows, nil
		}
	}
	return nil, apperrors.NewParsingError("no sheet with date/firm/action columns found", nil)
}
