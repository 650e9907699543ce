package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/coursegrid/coursegrid/core/resolve"
)

// ReadWorkbook reads the first sheet of a workbook. The first row is the
// header row; rows with no cell data are skipped entirely so they do not
// consume serial positions.
func ReadWorkbook(r io.Reader) ([]resolve.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]resolve.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := resolve.NewRow(headers, line)
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
