package wago

import "strings"

// Row is one record of a DB2 table export, keyed by trimmed header name.
// Fields that were absent from the line are simply missing from the map, so
// lookups on short rows yield the empty string.
type Row map[string]string

// ParseTable parses the body of a wago DB2 CSV export. The first line is the
// header; every following non-blank line is zipped positionally against it.
// Values beyond the header width are dropped and headers beyond the value
// count stay absent, with no padding either way. Cells are split on every
// comma: the upstream export carries no quoting or escaping, and this parser
// intentionally mirrors that.
func ParseTable(body string) []Row {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, ",")
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = strings.TrimSpace(values[i])
			}
		}
		rows = append(rows, row)
	}

	return rows
}
