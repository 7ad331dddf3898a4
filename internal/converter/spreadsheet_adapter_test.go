package converter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"file-converter/internal/model"
)

func sheetJob(src, dst, target string) model.ConversionJob {
	return model.ConversionJob{
		SourcePath: src,
		DestPath:   dst,
		Category:   model.CategorySpreadsheet,
		Target:     target,
	}
}

func TestSpreadsheetCsvToXlsx(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.csv")
	dst := filepath.Join(dir, "data.xlsx")
	writeFile(t, src, "name,count\nalpha,3\nbeta,7\n")

	a := NewSpreadsheetAdapter(nil)
	if err := a.Convert(context.Background(), sheetJob(src, dst, "xlsx")); err != nil {
		t.Fatal(err)
	}

	wb, err := excelize.OpenFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(wb.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "name" || rows[2][1] != "7" {
		t.Errorf("cell values did not survive the round trip: %v", rows)
	}
}

func TestSpreadsheetXlsxToCsv(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.xlsx")
	dst := filepath.Join(dir, "data.csv")

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	if err := wb.SetSheetRow(sheet, "A1", &[]string{"city", "pop"}); err != nil {
		t.Fatal(err)
	}
	if err := wb.SetSheetRow(sheet, "A2", &[]string{"oslo", "700000"}); err != nil {
		t.Fatal(err)
	}
	if err := wb.SaveAs(src); err != nil {
		t.Fatal(err)
	}
	wb.Close()

	a := NewSpreadsheetAdapter(nil)
	if err := a.Convert(context.Background(), sheetJob(src, dst, "csv")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	want := "city,pop\noslo,700000\n"
	if string(data) != want {
		t.Errorf("csv output = %q, want %q", data, want)
	}
}

func TestSpreadsheetRaggedCsv(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ragged.csv")
	dst := filepath.Join(dir, "ragged.xlsx")
	writeFile(t, src, "a,b,c\nonly-one\nx,y\n")

	a := NewSpreadsheetAdapter(nil)
	if err := a.Convert(context.Background(), sheetJob(src, dst, "xlsx")); err != nil {
		t.Fatalf("ragged rows should be accepted: %v", err)
	}
}

func TestSpreadsheetPdfDelegatesToOffice(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.csv")
	dst := filepath.Join(dir, "id_data.pdf")
	writeFile(t, src, "a,b\n1,2\n")

	runner := &fakeRunner{
		available: map[string]bool{"libreoffice": true},
		onRun:     libreofficeStub(t),
	}
	a := NewSpreadsheetAdapter(NewOfficeAdapter(runner, time.Minute))

	if err := a.Convert(context.Background(), sheetJob(src, dst, "pdf")); err != nil {
		t.Fatal(err)
	}
	if len(runner.calls) != 1 || runner.calls[0].name != "libreoffice" {
		t.Fatalf("expected a single libreoffice invocation, got %v", runner.calls)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination missing: %v", err)
	}
}

func TestSpreadsheetUnsupportedTarget(t *testing.T) {
	a := NewSpreadsheetAdapter(nil)

	err := a.Convert(context.Background(), sheetJob("in.csv", "out.xls", "xls"))
	if !errors.Is(err, ErrUnsupportedSpreadsheetTarget) {
		t.Fatalf("err = %v, want ErrUnsupportedSpreadsheetTarget", err)
	}
}
