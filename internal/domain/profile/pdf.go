package profile

import (
	"bytes"
	"os"

	"github.com/jung-kurt/gofpdf"

	"simpeg/internal/domain/employee"
)

// sheetFields is the subset of columns printed on the official profile
// sheet, in print order.
var sheetFields = []string{
	"NAMA", "NIP", "NAMA JABATAN", "JENIS JABATAN", "NAMA UNOR", "UNOR INDUK",
	"TMT JABATAN", "JENIS KELAMIN", "TANGGAL LAHIR", "TINGKAT PENDIDIKAN",
	"NAMA PENDIDIKAN", "EMAIL", "NOMOR HP", "ALAMAT",
}

// RenderPDF renders the official profile sheet for one record. A missing or
// unreadable photo is skipped, not an error.
func RenderPDF(rec employee.Record, photoPath string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFillColor(33, 150, 243)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "PROFIL PEGAWAI", "", 1, "C", true, 0, "")
	pdf.Ln(8)

	if photoPath != "" {
		if _, err := os.Stat(photoPath); err == nil {
			pdf.ImageOptions(photoPath, 160, 22, 30, 40, false, gofpdf.ImageOptions{}, 0, "")
		}
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(20)

	fields := rec.Fields()
	for _, name := range sheetFields {
		pdf.CellFormat(60, 9, name, "1", 0, "", false, 0, "")
		pdf.CellFormat(0, 9, fields[name], "1", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
