package recommendations

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "recstudy/internal/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TEST_rec.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	content := `Date,Firm,To Grade,From Grade,Action
2020-03-15 09:30,Morgan Stanley,Overweight,Equal-Weight,upgrade to overweight
2020-03-16,Jefferies,Hold,,initiated at hold

2020-04-01,Citi,Sell,Neutral,downgraded to sell
`
	recs, err := LoadCSV(writeCSV(t, content))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Morgan Stanley", recs[0].Firm)
	assert.Equal(t, "upgrade to overweight", recs[0].Action)
	assert.Equal(t, "Overweight", recs[0].ToGrade)
	assert.Equal(t, "Equal-Weight", recs[0].FromGrade)
	assert.Equal(t, time.Date(2020, 3, 15, 9, 30, 0, 0, time.UTC), recs[0].Date)

	// The blank line is skipped, not an error.
	assert.Equal(t, "Citi", recs[2].Firm)
	assert.Empty(t, recs[1].FromGrade)
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	content := "Date,Firm\n2020-01-01,Morgan Stanley\n"

	_, err := LoadCSV(writeCSV(t, content))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), `"action"`)
}

func TestLoadCSV_BadDate(t *testing.T) {
	content := "Date,Firm,Action\nnot-a-date,Morgan Stanley,upgrade to buy\n"

	_, err := LoadCSV(writeCSV(t, content))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "not-a-date")
}

func TestLoadCSV_MissingFirm(t *testing.T) {
	content := "Date,Firm,Action\n2020-01-01,,upgrade to buy\n"

	_, err := LoadCSV(writeCSV(t, content))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestLoadCSV_FileNotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "NOPE_rec.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("recommendations.parquet")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestLoadExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Date", "Firm", "Action"},
		{"2020-03-15 09:30", "Morgan Stanley", "upgrade to overweight"},
		{"2020-03-16", "Jefferies", "downgraded to hold"},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "TEST_rec.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	recs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Morgan Stanley", recs[0].Firm)
	assert.Equal(t, "downgraded to hold", recs[1].Action)
}

func TestLoadExcel_NoMatchingSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Open", "High", "Low", "Close"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := LoadExcel(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestStandardizeHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected map[string]int
	}{
		{
			name:     "mixed case and padding",
			header:   []string{" Date ", "FIRM", "To Grade"},
			expected: map[string]int{"date": 0, "firm": 1, "to_grade": 2},
		},
		{
			name:     "duplicate columns keep first position",
			header:   []string{"date", "Date"},
			expected: map[string]int{"date": 0},
		},
		{
			name:     "blank names are dropped",
			header:   []string{"", "firm"},
			expected: map[string]int{"firm": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, standardizeHeader(tt.header))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
		wantErr  bool
	}{
		{name: "date only", value: "2020-03-15", expected: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "date with minutes", value: "2020-03-15 09:30", expected: time.Date(2020, 3, 15, 9, 30, 0, 0, time.UTC)},
		{name: "date with seconds", value: "2020-03-15 09:30:45", expected: time.Date(2020, 3, 15, 9, 30, 45, 0, time.UTC)},
		{name: "slash separated", value: "2020/03/15", expected: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", value: "2020-03-15T09:30:00Z", expected: time.Date(2020, 3, 15, 9, 30, 0, 0, time.UTC)},
		{name: "garbage", value: "yesterday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := parseTimestamp(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ts))
		})
	}
}
