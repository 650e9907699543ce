package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/coursegrid/coursegrid/core/resolve"
)

// ReadDelimited reads comma-delimited text. The first non-blank line is
// the header line; blank lines are skipped. Quoting follows RFC 4180:
// fields may be wrapped in double quotes, a doubled "" inside a quoted
// field is one literal quote, and commas inside quotes are literal.
// Quoted fields spanning multiple lines are not supported.
func ReadDelimited(r io.Reader) ([]resolve.Row, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var headers []string
	var rows []resolve.Row
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := splitLine(line)
		if headers == nil {
			headers = cells
			continue
		}
		row := resolve.NewRow(headers, cells)
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// splitLine tokenizes one delimited line with a single in-quotes flag,
// toggled on '"'. A doubled quote inside a quoted field emits one literal
// quote.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
