// Package dataset provides the in-memory table the ETL pipelines operate on.
// Cells are strings; the empty string marks an absent value, matching the
// null semantics of the upstream exports.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a header-addressed table of string cells.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// ReadCSV parses CSV text with a header row into a Table. Data rows shorter
// than the header are padded with empty cells, longer rows are truncated, so
// a ragged export never fails the load.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse CSV: missing header row")
	}

	header := records[0]
	t := &Table{columns: make([]string, len(header)), index: make(map[string]int, len(header))}
	for i, name := range header {
		name = strings.TrimSpace(name)
		t.columns[i] = name
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}

	for _, rec := range records[1:] {
		row := make([]string, len(header))
		copy(row, rec)
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Get returns the cell at (row, column), or "" when the column is absent.
func (t *Table) Get(row int, column string) string {
	i, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// Set overwrites the cell at (row, column). Absent columns are ignored.
func (t *Table) Set(row int, column, value string) {
	if i, ok := t.index[column]; ok {
		t.rows[row][i] = value
	}
}

// RowIsBlank reports whether any cell of the row is empty or all-whitespace.
// The name follows the cleaning rule it serves: a transaction row with any
// blank cell is treated as an empty row and dropped whole.
func (t *Table) RowIsBlank(row int) bool {
	for _, cell := range t.rows[row] {
		if strings.TrimSpace(cell) == "" {
			return true
		}
	}
	return false
}

// DropColumns removes the named columns. Names not present are ignored.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	keep := make([]int, 0, len(t.columns))
	for i, c := range t.columns {
		if !drop[c] {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.columns) {
		return
	}

	columns := make([]string, len(keep))
	index := make(map[string]int, len(keep))
	for j, i := range keep {
		columns[j] = t.columns[i]
		if _, dup := index[columns[j]]; !dup {
			index[columns[j]] = j
		}
	}
	rows := make([][]string, len(t.rows))
	for r, row := range t.rows {
		next := make([]string, len(keep))
		for j, i := range keep {
			next[j] = row[i]
		}
		rows[r] = next
	}
	t.columns, t.index, t.rows = columns, index, rows
}

// Filter keeps only the rows for which keep returns true.
func (t *Table) Filter(keep func(row int) bool) {
	rows := t.rows[:0]
	for r := range t.rows {
		if keep(r) {
			rows = append(rows, t.rows[r])
		}
	}
	t.rows = rows
}
