package cli

import "strings"

// Table is a simple column-aligned table formatter with dynamic widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2,
	}
}

// AddRow adds a row to the table. Short rows are padded to the header count,
// long rows are truncated.
func (t *Table) AddRow(row []string) {
	normalized := make([]string, len(t.headers))
	copy(normalized, row)
	t.rows = append(t.rows, normalized)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	t.writeRow(&b, t.headers, widths)

	separator := make([]string, len(t.headers))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	t.writeRow(&b, separator, widths)

	for _, row := range t.rows {
		t.writeRow(&b, row, widths)
	}

	return b.String()
}

// writeRow writes one padded row.
func (t *Table) writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)+t.padding))
		}
	}
	b.WriteString("\n")
}
