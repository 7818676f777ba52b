// Package spreadsheet reads uploaded CSV, XLSX and XLS files into a header
// row plus data rows.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

const bom = "\ufeff"

// Row is one data row. Line is the 1-based line (or sheet row) it came from,
// counting the header as line 1.
type Row struct {
	Line  int
	Cells []string
}

type Sheet struct {
	Headers []string
	Rows    []Row
}

// Records keys every row by header. Used where downstream code works with
// loosely typed rows.
func (s Sheet) Records() []map[string]any {
	out := make([]map[string]any, 0, len(s.Rows))
	for _, row := range s.Rows {
		rec := make(map[string]any, len(s.Headers))
		for i, h := range s.Headers {
			if i < len(row.Cells) {
				rec[h] = row.Cells[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	}
	return "", fmt.Errorf("unsupported file type %q", filepath.Ext(name))
}

// Read picks a reader from the file name's extension.
func Read(name string, r io.Reader) (*Sheet, error) {
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLSX:
		return ReadXLSX(r)
	case FormatXLS:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return ReadXLS(bytes.NewReader(data))
	default:
		return ReadCSV(r)
	}
}

func ReadCSV(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	sheet := &Sheet{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if sheet.Headers == nil {
			sheet.Headers = cleanHeaders(record)
			continue
		}
		if blank(record) {
			continue
		}
		sheet.Rows = append(sheet.Rows, Row{Line: line, Cells: record})
	}

	return sheet, nil
}

func ReadXLSX(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}

	return fromGrid(rows), nil
}

func ReadXLS(r io.ReadSeeker) (*Sheet, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, fmt.Errorf("xls has no sheets")
	}

	grid := [][]string{}
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		grid = append(grid, cells)
	}

	return fromGrid(grid), nil
}

func fromGrid(rows [][]string) *Sheet {
	sheet := &Sheet{}
	for i, cells := range rows {
		if sheet.Headers == nil {
			if blank(cells) {
				continue
			}
			sheet.Headers = cleanHeaders(cells)
			continue
		}
		if blank(cells) {
			continue
		}
		sheet.Rows = append(sheet.Rows, Row{Line: i + 1, Cells: cells})
	}
	return sheet
}

func cleanHeaders(record []string) []string {
	out := make([]string, len(record))
	for i, h := range record {
		out[i] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(h), bom))
	}
	return out
}

func blank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
