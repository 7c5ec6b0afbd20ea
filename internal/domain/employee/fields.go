package employee

import "strings"

// KeyColumn is the unique record key every row must carry.
const KeyColumn = "NIP"

// PhotoColumn holds the stored photo file reference. It is part of the
// durable schema but not of the import/export contract.
const PhotoColumn = "FOTO"

// Columns is the canonical field list, in the order exporters and the CSV
// template must emit it.
var Columns = []string{
	"NAMA", "NIP", "GELAR DEPAN", "GELAR BELAKANG", "TEMPAT LAHIR", "TANGGAL LAHIR",
	"JENIS KELAMIN", "AGAMA", "JENIS KAWIN", "NIK", "NOMOR HP", "EMAIL", "ALAMAT",
	"NPWP", "BPJS", "JENIS PEGAWAI", "KEDUDUKAN HUKUM", "STATUS CPNS PNS",
	"KARTU ASN VIRTUAL", "TMT CPNS", "TMT PNS", "GOL AWAL", "GOL AKHIR",
	"TMT GOLONGAN", "MK TAHUN", "MK BULAN", "JENIS JABATAN", "NAMA JABATAN",
	"TMT JABATAN", "TINGKAT PENDIDIKAN", "NAMA PENDIDIKAN", "NAMA UNOR", "UNOR INDUK",
}

// storeColumns is the durable table layout: the canonical columns plus FOTO.
var storeColumns = append(append([]string{}, Columns...), PhotoColumn)

// DBColumn maps a canonical column name to its database identifier.
func DBColumn(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

func dbColumns() []string {
	out := make([]string, len(storeColumns))
	for i, name := range storeColumns {
		out[i] = DBColumn(name)
	}
	return out
}
