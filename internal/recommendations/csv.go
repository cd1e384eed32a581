package recommendations

import (
	"encoding/csv"
	"os"

	apperrors "recstudy/internal/errors"
	"recstudy/pkg/contracts/domain"
)

// LoadCSV reads a per-ticker recommendations CSV file.
func LoadCSV(path string) ([]domain.Recommendation, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError("recommendations file").
				WithContext("path", path)
		}
		return nil, apperrors.NewStorageError("failed to open recommendations file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Some exports pad short rows; column lookup handles missing cells.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read recommendations CSV", err).
			WithContext("path", path)
	}

	return rowsToRecords(rows, path)
}
