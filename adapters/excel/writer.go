package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"namesake/domain/features"
	"namesake/internal/errors"
)

// MatrixWriter exports extracted feature vectors to an Excel workbook,
// one row per entity and one column per feature key.
type MatrixWriter struct {
	filePath string
}

func NewMatrixWriter(filePath string) *MatrixWriter {
	return &MatrixWriter{filePath: filePath}
}

// WriteFeatures writes the full feature matrix to Sheet1. Columns are
// sorted by key so the output is stable across runs.
func (w *MatrixWriter) WriteFeatures(extracted []features.ExtractedEntity) error {
	if len(extracted) == 0 {
		return errors.New(errors.CodeRosterInvalid, "no extracted entities to write")
	}

	keySet := map[string]bool{}
	for _, e := range extracted {
		for k := range e.Features {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetCellValue(sheet, "A1", "name"); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for i, k := range keys {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		if err := f.SetCellValue(sheet, cell, k); err != nil {
			return errors.Wrapf(err, "failed to write header %s", k)
		}
	}

	for row, e := range extracted {
		nameCell, _ := excelize.CoordinatesToCellName(1, row+2)
		if err := f.SetCellValue(sheet, nameCell, e.Entity.Name); err != nil {
			return errors.Wrapf(err, "failed to write row for %s", e.Entity.Name)
		}
		for i, k := range keys {
			cell, _ := excelize.CoordinatesToCellName(i+2, row+2)
			if err := f.SetCellValue(sheet, cell, e.Features.Get(k, 0)); err != nil {
				return errors.Wrap(err, fmt.Sprintf("failed to write %s for %s", k, e.Entity.Name))
			}
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return errors.Wrap(err, "failed to save workbook")
	}
	return nil
}
