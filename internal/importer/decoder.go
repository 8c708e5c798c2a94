package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/parser"
)

// menuSheetName is read when present; otherwise the first sheet is used.
const menuSheetName = "Menus"

// DecodeWorkbook reads an uploaded workbook into raw menu rows. Cells are
// read unformatted, so a date cell surfaces as its spreadsheet serial number
// instead of a locale-formatted string. Rows with no value in any mapped
// column are dropped.
func DecodeWorkbook(r io.Reader) ([]parser.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := pickSheet(f)
	if sheet == "" {
		return []parser.RawRow{}, nil
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return []parser.RawRow{}, nil
	}

	header := rows[0]
	out := make([]parser.RawRow, 0, len(rows)-1)

	for _, row := range rows[1:] {
		raw := parser.RawRow{}
		for i, col := range header {
			col = strings.TrimSpace(col)
			if col == "" || i >= len(row) || row[i] == "" {
				continue
			}
			raw[col] = decodeCell(col, row[i])
		}
		if len(raw) == 0 {
			continue
		}
		out = append(out, raw)
	}

	return out, nil
}

// decodeCell keeps cell values as strings except in the date column, where a
// numeric raw value is a spreadsheet serial.
func decodeCell(col, val string) any {
	if col != parser.ColDate {
		return val
	}
	if serial, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
		return serial
	}
	return val
}

func pickSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	for _, s := range sheets {
		if s == menuSheetName {
			return s
		}
	}
	return sheets[0]
}
