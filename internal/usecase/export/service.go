package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Report"

// Result names the files written for one report
type Result struct {
	Name     string `json:"name"`
	CSVPath  string `json:"csv_path"`
	XLSXPath string `json:"xlsx_path,omitempty"`
	Rows     int    `json:"rows"`
}

// Service writes reports as CSV and XLSX files
type Service interface {
	Export(report interface{}, sourceName string) (*Result, error)
}

type exportService struct {
	dir    string
	logger *zap.Logger
}

// NewExportService writes exports into dir
func NewExportService(dir string, logger *zap.Logger) Service {
	return &exportService{dir: dir, logger: logger}
}

// ExportName derives the export base name from an uploaded file name,
// e.g. "call.mp4" becomes "call_mp4"
func ExportName(sourceName string) string {
	base := filepath.Base(filepath.Clean("/" + sourceName))
	if base == "/" || base == "." {
		base = "report"
	}
	return strings.ReplaceAll(base, ".", "_")
}

func (s *exportService) Export(report interface{}, sourceName string) (*Result, error) {
	table := Flatten(report)
	name := ExportName(sourceName)

	csvPath := filepath.Join(s.dir, name+".csv")
	if err := writeCSV(csvPath, table); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	result := &Result{Name: name, CSVPath: csvPath, Rows: len(table.Rows)}

	xlsxPath := filepath.Join(s.dir, name+".xlsx")
	if err := writeXLSX(xlsxPath, table); err != nil {
		// XLSX is best-effort
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to write XLSX export", zap.String("path", xlsxPath), zap.Error(err))
		}
	} else {
		result.XLSXPath = xlsxPath
	}

	if s.logger != nil {
		s.logger.Info("📊 Report exported", zap.String("csv", csvPath), zap.Int("rows", result.Rows))
	}
	return result, nil
}

// writeCSV writes the header and rows; an empty table yields an empty file
func writeCSV(path string, table Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if len(table.Rows) == 0 {
		return nil
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return err
	}
	return f.Close()
}

func writeXLSX(path string, table Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	if len(table.Rows) > 0 {
		if err := setRow(f, 1, table.Columns); err != nil {
			return err
		}
		for i, row := range table.Rows {
			if err := setRow(f, i+2, row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &row)
}
