package employee

// Record is one personnel row. Every field is a plain string; absent values
// are the empty string, never NULL. NIP is the unique key.
type Record struct {
	Nama              string `json:"NAMA"`
	NIP               string `json:"NIP"`
	GelarDepan        string `json:"GELAR DEPAN"`
	GelarBelakang     string `json:"GELAR BELAKANG"`
	TempatLahir       string `json:"TEMPAT LAHIR"`
	TanggalLahir      string `json:"TANGGAL LAHIR"`
	JenisKelamin      string `json:"JENIS KELAMIN"`
	Agama             string `json:"AGAMA"`
	JenisKawin        string `json:"JENIS KAWIN"`
	NIK               string `json:"NIK"`
	NomorHP           string `json:"NOMOR HP"`
	Email             string `json:"EMAIL"`
	Alamat            string `json:"ALAMAT"`
	NPWP              string `json:"NPWP"`
	BPJS              string `json:"BPJS"`
	JenisPegawai      string `json:"JENIS PEGAWAI"`
	KedudukanHukum    string `json:"KEDUDUKAN HUKUM"`
	StatusCPNSPNS     string `json:"STATUS CPNS PNS"`
	KartuASNVirtual   string `json:"KARTU ASN VIRTUAL"`
	TMTCPNS           string `json:"TMT CPNS"`
	TMTPNS            string `json:"TMT PNS"`
	GolAwal           string `json:"GOL AWAL"`
	GolAkhir          string `json:"GOL AKHIR"`
	TMTGolongan       string `json:"TMT GOLONGAN"`
	MKTahun           string `json:"MK TAHUN"`
	MKBulan           string `json:"MK BULAN"`
	JenisJabatan      string `json:"JENIS JABATAN"`
	NamaJabatan       string `json:"NAMA JABATAN"`
	TMTJabatan        string `json:"TMT JABATAN"`
	TingkatPendidikan string `json:"TINGKAT PENDIDIKAN"`
	NamaPendidikan    string `json:"NAMA PENDIDIKAN"`
	NamaUnor          string `json:"NAMA UNOR"`
	UnorInduk         string `json:"UNOR INDUK"`
	Foto              string `json:"FOTO,omitempty"`
}

// fieldRef resolves a canonical column name to the backing struct field.
// Unknown names resolve to nil.
func fieldRef(rec *Record, column string) *string {
	switch column {
	case "NAMA":
		return &rec.Nama
	case "NIP":
		return &rec.NIP
	case "GELAR DEPAN":
		return &rec.GelarDepan
	case "GELAR BELAKANG":
		return &rec.GelarBelakang
	case "TEMPAT LAHIR":
		return &rec.TempatLahir
	case "TANGGAL LAHIR":
		return &rec.TanggalLahir
	case "JENIS KELAMIN":
		return &rec.JenisKelamin
	case "AGAMA":
		return &rec.Agama
	case "JENIS KAWIN":
		return &rec.JenisKawin
	case "NIK":
		return &rec.NIK
	case "NOMOR HP":
		return &rec.NomorHP
	case "EMAIL":
		return &rec.Email
	case "ALAMAT":
		return &rec.Alamat
	case "NPWP":
		return &rec.NPWP
	case "BPJS":
		return &rec.BPJS
	case "JENIS PEGAWAI":
		return &rec.JenisPegawai
	case "KEDUDUKAN HUKUM":
		return &rec.KedudukanHukum
	case "STATUS CPNS PNS":
		return &rec.StatusCPNSPNS
	case "KARTU ASN VIRTUAL":
		return &rec.KartuASNVirtual
	case "TMT CPNS":
		return &rec.TMTCPNS
	case "TMT PNS":
		return &rec.TMTPNS
	case "GOL AWAL":
		return &rec.GolAwal
	case "GOL AKHIR":
		return &rec.GolAkhir
	case "TMT GOLONGAN":
		return &rec.TMTGolongan
	case "MK TAHUN":
		return &rec.MKTahun
	case "MK BULAN":
		return &rec.MKBulan
	case "JENIS JABATAN":
		return &rec.JenisJabatan
	case "NAMA JABATAN":
		return &rec.NamaJabatan
	case "TMT JABATAN":
		return &rec.TMTJabatan
	case "TINGKAT PENDIDIKAN":
		return &rec.TingkatPendidikan
	case "NAMA PENDIDIKAN":
		return &rec.NamaPendidikan
	case "NAMA UNOR":
		return &rec.NamaUnor
	case "UNOR INDUK":
		return &rec.UnorInduk
	case "FOTO":
		return &rec.Foto
	}
	return nil
}

// FromFields builds a Record from named fields. Missing columns default to
// the empty string and unknown names are dropped.
func FromFields(fields map[string]string) Record {
	var rec Record
	for name, value := range fields {
		if ref := fieldRef(&rec, name); ref != nil {
			*ref = value
		}
	}
	return rec
}

// Fields returns the record as a canonical-name map, photo included.
func (r Record) Fields() map[string]string {
	out := make(map[string]string, len(storeColumns))
	for _, name := range storeColumns {
		out[name] = *fieldRef(&r, name)
	}
	return out
}

// Values returns the canonical columns (no photo) in export order.
func (r Record) Values() []string {
	out := make([]string, len(Columns))
	for i, name := range Columns {
		out[i] = *fieldRef(&r, name)
	}
	return out
}

// Apply overwrites the fields named in the map, leaving the rest untouched.
// This is the read-modify-write edit contract: last write wins.
func (r *Record) Apply(fields map[string]string) {
	for name, value := range fields {
		if ref := fieldRef(r, name); ref != nil {
			*ref = value
		}
	}
}

func (r *Record) storeValues() []any {
	out := make([]any, len(storeColumns))
	for i, name := range storeColumns {
		out[i] = *fieldRef(r, name)
	}
	return out
}

func (r *Record) scanDest() []any {
	out := make([]any, len(storeColumns))
	for i, name := range storeColumns {
		out[i] = fieldRef(r, name)
	}
	return out
}
