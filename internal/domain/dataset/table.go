package dataset

import (
	"errors"
	"strings"

	"simpeg/internal/domain/employee"
)

var ErrNoKeyColumn = errors.New("table has no usable NIP column")

// Table is an externally parsed tabular structure: an ordered header row and
// rows of string cells. Parsing files into a Table is the caller's problem.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Normalized returns the table with headers uppercased and trimmed, the form
// the reconciliation step expects.
func (t Table) Normalized() Table {
	columns := make([]string, len(t.Columns))
	for i, name := range t.Columns {
		columns[i] = strings.ToUpper(strings.TrimSpace(name))
	}
	return Table{Columns: columns, Rows: t.Rows}
}

// Reconcile maps the table onto the expected schema: expected columns absent
// from the input are filled with the empty string and reported as drift,
// unexpected columns are dropped silently. Rows without a NIP are skipped.
func Reconcile(t Table) ([]employee.Record, []string, error) {
	normalized := t.Normalized()

	index := make(map[string]int, len(normalized.Columns))
	for i, name := range normalized.Columns {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	if _, ok := index[employee.KeyColumn]; !ok {
		return nil, nil, ErrNoKeyColumn
	}

	var missing []string
	for _, name := range employee.Columns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}

	var recs []employee.Record
	for _, row := range normalized.Rows {
		fields := make(map[string]string, len(index))
		for name, col := range index {
			if col < len(row) {
				fields[name] = strings.TrimSpace(row[col])
			}
		}
		record := employee.FromFields(fields)
		if record.NIP == "" {
			continue
		}
		recs = append(recs, record)
	}
	return recs, missing, nil
}
