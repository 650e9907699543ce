package source

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadWorkbook(t *testing.T) {
	data := workbookBytes(t, [][]any{
		{"Course Code", "Course Name", "Day"},
		{"CS101", "Intro", "MW"},
		{"CS102", "Advanced", "TTh"},
	})
	rows, err := ReadWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if v := rows[0].Values["Course Code"]; v != "CS101" {
		t.Errorf("code = %q", v)
	}
	if v := rows[1].Values["Day"]; v != "TTh" {
		t.Errorf("day = %q", v)
	}
}

func TestReadWorkbook_SkipsBlankRows(t *testing.T) {
	data := workbookBytes(t, [][]any{
		{"Course Code"},
		{"CS101"},
		{},
		{"CS102"},
	})
	rows, err := ReadWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestReadWorkbook_Garbage(t *testing.T) {
	if _, err := ReadWorkbook(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatalf("expected error for invalid workbook data")
	}
}
