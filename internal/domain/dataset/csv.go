package dataset

import (
	"encoding/csv"
	"io"

	"simpeg/internal/domain/employee"
)

// ReadCSV parses a CSV stream into a Table. The first row is the header.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, nil
	}
	return Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// WriteCSV emits records with the given canonical columns as the header.
func WriteCSV(w io.Writer, columns []string, recs []employee.Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, rec := range recs {
		fields := rec.Fields()
		row := make([]string, len(columns))
		for i, name := range columns {
			row[i] = fields[name]
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTemplateCSV emits the canonical header row only, the upload template.
func WriteTemplateCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(employee.Columns); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
