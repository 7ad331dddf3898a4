package converter

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"file-converter/internal/model"
)

// SpreadsheetAdapter converts tabular files. CSV is read and written with
// the standard library; workbook formats go through excelize. A PDF target
// is not handled natively and is delegated to the office adapter.
type SpreadsheetAdapter struct {
	office *OfficeAdapter
}

// NewSpreadsheetAdapter creates a spreadsheet adapter. office handles the
// delegated PDF target.
func NewSpreadsheetAdapter(office *OfficeAdapter) *SpreadsheetAdapter {
	return &SpreadsheetAdapter{office: office}
}

// Convert parses the source into rows and serializes them as the target.
func (a *SpreadsheetAdapter) Convert(ctx context.Context, job model.ConversionJob) error {
	switch job.Target {
	case "csv", "xlsx":
	case "pdf":
		return a.office.Convert(ctx, job)
	default:
		return fmt.Errorf("%w: .%s", ErrUnsupportedSpreadsheetTarget, job.Target)
	}

	rows, err := readRows(job.SourcePath)
	if err != nil {
		return fmt.Errorf("reading spreadsheet: %w", err)
	}

	if job.Target == "csv" {
		return writeCSV(job.DestPath, rows)
	}
	return writeXLSX(job.DestPath, rows)
}

// readRows loads the source into a row/column model. CSV is parsed
// directly; anything else is treated as a workbook and the first sheet is
// used.
func readRows(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1 // ragged rows are fine
		return reader.ReadAll()
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return wb.GetRows(sheets[0])
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func writeXLSX(path string, rows [][]string) error {
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return wb.SaveAs(path)
}
