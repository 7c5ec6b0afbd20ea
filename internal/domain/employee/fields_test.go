package employee

import (
	"strings"
	"testing"
)

func TestColumnsResolve(t *testing.T) {
	var rec Record
	for _, name := range storeColumns {
		if fieldRef(&rec, name) == nil {
			t.Fatalf("column %q has no backing field", name)
		}
	}
}

func TestColumnCount(t *testing.T) {
	if len(Columns) != 33 {
		t.Fatalf("expected 33 canonical columns, got %d", len(Columns))
	}
	if Columns[1] != KeyColumn {
		t.Fatalf("expected NIP as second canonical column, got %q", Columns[1])
	}
}

func TestFromFieldsDefaults(t *testing.T) {
	rec := FromFields(map[string]string{
		"NIP":        "1985123100",
		"NAMA":       "Budi Santoso",
		"KOLOM LIAR": "dropped",
	})

	if rec.NIP != "1985123100" || rec.Nama != "Budi Santoso" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	for name, value := range rec.Fields() {
		if name == "NIP" || name == "NAMA" {
			continue
		}
		if value != "" {
			t.Fatalf("column %q should default to empty, got %q", name, value)
		}
	}
}

func TestValuesOrder(t *testing.T) {
	rec := FromFields(map[string]string{"NAMA": "Siti", "NIP": "77", "UNOR INDUK": "DINAS A"})
	values := rec.Values()
	if len(values) != len(Columns) {
		t.Fatalf("expected %d values, got %d", len(Columns), len(values))
	}
	if values[0] != "Siti" || values[1] != "77" || values[len(values)-1] != "DINAS A" {
		t.Fatalf("values out of canonical order: %v", values)
	}
}

func TestApplyOverwritesNamedFieldsOnly(t *testing.T) {
	rec := FromFields(map[string]string{"NIP": "1", "NAMA": "Asep", "EMAIL": "asep@example.go.id"})
	rec.Apply(map[string]string{"NAMA": "Asep Sunandar"})

	if rec.Nama != "Asep Sunandar" {
		t.Fatalf("apply did not overwrite NAMA: %q", rec.Nama)
	}
	if rec.Email != "asep@example.go.id" {
		t.Fatalf("apply clobbered EMAIL: %q", rec.Email)
	}
}

func TestDBColumnNames(t *testing.T) {
	if DBColumn("STATUS CPNS PNS") != "status_cpns_pns" {
		t.Fatalf("unexpected db column: %q", DBColumn("STATUS CPNS PNS"))
	}
	for _, col := range dbColumns() {
		if strings.ContainsAny(col, " -") || col != strings.ToLower(col) {
			t.Fatalf("db column %q is not a lower snake identifier", col)
		}
	}
}

func TestUpsertSQLTargetsAllColumnsButKey(t *testing.T) {
	sql := upsertSQL()
	if !strings.Contains(sql, "ON CONFLICT (nip) DO UPDATE SET") {
		t.Fatalf("upsert is not an insert-or-replace: %s", sql)
	}
	if strings.Contains(sql, "nip = EXCLUDED.nip") {
		t.Fatal("upsert must not reassign the key column")
	}
	if !strings.Contains(sql, "foto = EXCLUDED.foto") {
		t.Fatal("upsert must carry the photo column")
	}
}
