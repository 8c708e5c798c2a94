package importer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/parser"
)

var menuHeader = []string{
	parser.ColDate, parser.ColDayName, parser.ColMealPeriod, parser.ColDishRole,
	parser.ColDishName, parser.ColCategory, parser.ColDietTags,
	parser.ColAllergenTags, parser.ColDescription,
}

// buildWorkbook writes a one-sheet workbook with the given header and rows.
func buildWorkbook(t *testing.T, header []string, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestDecodeWorkbook_TypedCells(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, menuHeader, [][]any{
		{45502, "jeudi", "Déjeuner", "Principal", "Poulet", "main", "Sans sel", nil, nil},
		{"2024-07-29", nil, "Dîner", "Dessert", "Fruit", "dessert", nil, nil, nil},
	})

	rows, err := DecodeWorkbook(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}

	if got, ok := rows[0][parser.ColDate].(float64); !ok || got != 45502 {
		t.Fatalf("date cell must decode as serial: %v", rows[0][parser.ColDate])
	}
	if got, ok := rows[1][parser.ColDate].(string); !ok || got != "2024-07-29" {
		t.Fatalf("ISO date cell must stay a string: %v", rows[1][parser.ColDate])
	}
	if rows[0][parser.ColDishName] != "Poulet" {
		t.Fatalf("dish name mismatch: %v", rows[0][parser.ColDishName])
	}
	if _, present := rows[1][parser.ColDietTags]; present {
		t.Fatalf("empty cells must stay absent from the row")
	}
}

func TestDecodeWorkbook_SkipsEmptyRows(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, menuHeader, [][]any{
		{"2024-07-29", nil, "Déjeuner", "Principal", "Poulet", "main", nil, nil, nil},
		{nil, nil, nil, nil, nil, nil, nil, nil, nil},
		{"2024-07-30", nil, "Déjeuner", "Principal", "Gratin", "main", nil, nil, nil},
	})

	rows, err := DecodeWorkbook(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows after dropping the empty one, got %d", len(rows))
	}
}

func TestDecodeWorkbook_PrefersMenusSheet(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet(menuSheetName); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := f.SetCellValue(menuSheetName, "A1", parser.ColDate); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := f.SetCellValue(menuSheetName, "A2", "2024-07-29"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	rows, err := DecodeWorkbook(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0][parser.ColDate] != "2024-07-29" {
		t.Fatalf("Menus sheet must win over the default sheet: %v", rows)
	}
}

func TestDecodeWorkbook_CorruptFile(t *testing.T) {
	t.Parallel()

	if _, err := DecodeWorkbook(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatalf("corrupt input must error")
	}
}
