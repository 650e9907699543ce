// Package source locates and reads timetable files. It is the I/O shell in
// front of the pure normalization core: it turns a data directory into raw
// rows and leaves all semantics to core/normalize.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coursegrid/coursegrid/core/resolve"
)

// Format tags the tabular source kind.
type Format int

const (
	// FormatSpreadsheet is a binary workbook (.xlsx/.xls); only the first
	// sheet is read.
	FormatSpreadsheet Format = iota
	// FormatDelimited is comma-delimited text with a header line.
	FormatDelimited
)

func (f Format) String() string {
	switch f {
	case FormatSpreadsheet:
		return "spreadsheet"
	case FormatDelimited:
		return "delimited-text"
	default:
		return "unknown"
	}
}

// Locate scans dir for a timetable file. Workbooks win over delimited
// text; within a kind the lexicographically first name is chosen so
// repeated scans are deterministic. A missing directory or a directory
// with no usable file is an error: it means zero data, not partial data,
// and must surface to the caller.
func Locate(dir string) (string, Format, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, fmt.Errorf("data directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, n := range names {
		switch strings.ToLower(filepath.Ext(n)) {
		case ".xlsx", ".xls":
			return filepath.Join(dir, n), FormatSpreadsheet, nil
		}
	}
	for _, n := range names {
		if strings.ToLower(filepath.Ext(n)) == ".csv" {
			return filepath.Join(dir, n), FormatDelimited, nil
		}
	}
	return "", 0, fmt.Errorf("no timetable file (.xlsx, .xls or .csv) in %s", dir)
}

// Load opens the file and reads it according to its format.
func Load(path string, format Format) ([]resolve.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	switch format {
	case FormatSpreadsheet:
		return ReadWorkbook(f)
	case FormatDelimited:
		return ReadDelimited(f)
	default:
		return nil, fmt.Errorf("unknown source format %d", format)
	}
}
