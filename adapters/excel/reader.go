package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"namesake/domain/features"
	"namesake/internal"
	"namesake/internal/errors"
)

// RosterReader reads entity rosters from Excel or CSV files. The first row
// is a header; recognized columns (case-insensitive) are name, position,
// syllables, harshness, memorability, length, vowel_ratio,
// consonant_clusters, uniqueness, pronounceability, years_in_league,
// media_buzz, market_size_mult, is_contract_year, games_played, and outcome.
// Unrecognized columns are ignored.
type RosterReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewRosterReader creates a reader that handles both Excel and CSV files
func NewRosterReader(filePath string) *RosterReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &RosterReader{filePath: filePath, fileType: fileType, logger: internal.DefaultLogger}
}

// ReadRoster loads entity descriptors plus the optional outcome column.
// The outcome slice is nil when the file has no outcome column.
func (r *RosterReader) ReadRoster() ([]features.EntityDescriptor, []float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.New(errors.CodeRosterInvalid, "roster file not found: "+r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, errors.New(errors.CodeRosterInvalid, "roster has no data rows")
	}

	header := map[string]int{}
	for i, h := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := header["name"]; !ok {
		return nil, nil, errors.New(errors.CodeRosterInvalid, "roster is missing the name column")
	}
	_, hasOutcome := header["outcome"]

	var entities []features.EntityDescriptor
	var outcomes []float64
	for _, row := range rows[1:] {
		name := cell(row, header, "name")
		if strings.TrimSpace(name) == "" {
			continue
		}
		entity := features.EntityDescriptor{
			Name:     name,
			Position: cell(row, header, "position"),
			Linguistic: features.LinguisticFeatures{
				Syllables:         numCell(row, header, "syllables"),
				Harshness:         numCell(row, header, "harshness"),
				Memorability:      numCell(row, header, "memorability"),
				Length:            numCell(row, header, "length"),
				VowelRatio:        numCell(row, header, "vowel_ratio"),
				ConsonantClusters: numCell(row, header, "consonant_clusters"),
				Uniqueness:        numCell(row, header, "uniqueness"),
				Pronounceability:  numCell(row, header, "pronounceability"),
			},
			YearsInLeague:  numCell(row, header, "years_in_league"),
			MediaBuzz:      numCell(row, header, "media_buzz"),
			MarketSizeMult: numCell(row, header, "market_size_mult"),
			IsContractYear: boolCell(row, header, "is_contract_year"),
			GamesPlayed:    numCell(row, header, "games_played"),
		}
		entities = append(entities, entity)
		if hasOutcome {
			outcomes = append(outcomes, numCell(row, header, "outcome"))
		}
	}

	r.logger.Info("roster loaded: %d entities from %s", len(entities), r.filePath)
	if !hasOutcome {
		return entities, nil, nil
	}
	return entities, outcomes, nil
}

func (r *RosterReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	return rows, nil
}

func (r *RosterReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV")
	}
	return rows, nil
}

func cell(row []string, header map[string]int, key string) string {
	i, ok := header[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func numCell(row []string, header map[string]int, key string) float64 {
	v := cell(row, header, key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func boolCell(row []string, header map[string]int, key string) bool {
	switch strings.ToLower(cell(row, header, key)) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}
