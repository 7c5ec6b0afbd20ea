package reports

import (
	"fmt"
	"testing"
	"time"

	"simpeg/internal/domain/employee"
)

func rec(fields map[string]string) employee.Record {
	return employee.FromFields(fields)
}

func TestNormalizeGenderSynonyms(t *testing.T) {
	for _, synonym := range []string{"M", "L", "PRIA", "LAKI-LAKI", " laki-laki "} {
		if got := NormalizeGender(synonym); got != GenderMale {
			t.Fatalf("%q -> %q, want %q", synonym, got, GenderMale)
		}
	}
	for _, synonym := range []string{"F", "P", "WANITA", "PEREMPUAN", "perempuan"} {
		if got := NormalizeGender(synonym); got != GenderFemale {
			t.Fatalf("%q -> %q, want %q", synonym, got, GenderFemale)
		}
	}
	if got := NormalizeGender("LAINNYA"); got != "LAINNYA" {
		t.Fatalf("unrecognized value should pass through, got %q", got)
	}
}

func TestNormalizeEducationSynonyms(t *testing.T) {
	cases := map[string]string{
		"SARJANA":         "S1",
		"bachelor":        "S1",
		"MAGISTER":        "S2",
		"DOKTOR":          "S3",
		"AHLI MADYA":      "D3",
		"SARJANA TERAPAN": "D4",
		"SMU":             "SMA",
		"SEKOLAH DASAR":   "SD",
		"PAKET C":         "PAKET C",
	}
	for input, want := range cases {
		if got := NormalizeEducation(input); got != want {
			t.Fatalf("%q -> %q, want %q", input, got, want)
		}
	}
}

func TestGenderSplit(t *testing.T) {
	recs := []employee.Record{
		rec(map[string]string{"NIP": "1", "JENIS KELAMIN": "M"}),
		rec(map[string]string{"NIP": "2", "JENIS KELAMIN": "Pria"}),
		rec(map[string]string{"NIP": "3", "JENIS KELAMIN": "wanita"}),
		rec(map[string]string{"NIP": "4", "JENIS KELAMIN": ""}),
	}
	split := GenderSplit(recs)
	if len(split) != 2 {
		t.Fatalf("expected 2 buckets, got %+v", split)
	}
	if split[0].Label != GenderMale || split[0].Count != 2 {
		t.Fatalf("unexpected male bucket: %+v", split[0])
	}
	if split[1].Label != GenderFemale || split[1].Count != 1 {
		t.Fatalf("unexpected female bucket: %+v", split[1])
	}
}

func TestAgeHistogramBuckets(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	recs := []employee.Record{
		rec(map[string]string{"NIP": "1", "TANGGAL LAHIR": fmt.Sprintf("%d-01-15", now.Year()-25)}),
		rec(map[string]string{"NIP": "2", "TANGGAL LAHIR": fmt.Sprintf("%d-12-31", now.Year())}),
		rec(map[string]string{"NIP": "3", "TANGGAL LAHIR": "bukan tanggal"}),
		rec(map[string]string{"NIP": "4", "TANGGAL LAHIR": ""}),
		rec(map[string]string{"NIP": "5", "TANGGAL LAHIR": "1950-06-01"}),
	}
	hist := AgeHistogram(recs, now)
	if len(hist) != len(AgeBuckets) {
		t.Fatalf("expected %d buckets, got %d", len(AgeBuckets), len(hist))
	}
	byLabel := map[string]int{}
	total := 0
	for _, bucket := range hist {
		byLabel[bucket.Label] = bucket.Count
		total += bucket.Count
	}
	if byLabel["20–29"] != 1 {
		t.Fatalf("birth year now-25 should land in 20–29: %+v", hist)
	}
	if byLabel["<20"] != 1 {
		t.Fatalf("birth year now should land in <20: %+v", hist)
	}
	if byLabel["60+"] != 1 {
		t.Fatalf("1950 birth should land in 60+: %+v", hist)
	}
	if total != 3 {
		t.Fatalf("unparseable birth dates must not inflate any bucket, total %d", total)
	}
}

func TestEducationHistogramPassthrough(t *testing.T) {
	recs := []employee.Record{
		rec(map[string]string{"NIP": "1", "TINGKAT PENDIDIKAN": "SARJANA"}),
		rec(map[string]string{"NIP": "2", "TINGKAT PENDIDIKAN": "S1"}),
		rec(map[string]string{"NIP": "3", "TINGKAT PENDIDIKAN": "HOMESCHOOL"}),
	}
	hist := EducationHistogram(recs)
	if hist[0].Label != "S1" || hist[0].Count != 2 {
		t.Fatalf("unexpected first bucket: %+v", hist)
	}
	if hist[1].Label != "HOMESCHOOL" || hist[1].Count != 1 {
		t.Fatalf("unmapped level should be its own bucket: %+v", hist)
	}
}

func TestUnitCountsTrims(t *testing.T) {
	recs := []employee.Record{
		rec(map[string]string{"NIP": "1", "UNOR INDUK": " DINAS A "}),
		rec(map[string]string{"NIP": "2", "UNOR INDUK": "DINAS A"}),
		rec(map[string]string{"NIP": "3", "UNOR INDUK": "DINAS B"}),
	}
	counts := UnitCounts(recs)
	if counts[0].Label != "DINAS A" || counts[0].Count != 2 {
		t.Fatalf("unexpected unit counts: %+v", counts)
	}
}

func TestYearlyTrend(t *testing.T) {
	recs := []employee.Record{
		rec(map[string]string{"NIP": "1", "TMT JABATAN": "2020-03-01", "UNOR INDUK": "A"}),
		rec(map[string]string{"NIP": "2", "TMT JABATAN": "2020-07-15", "UNOR INDUK": "A"}),
		rec(map[string]string{"NIP": "3", "TMT JABATAN": "2021-01-10", "UNOR INDUK": "B"}),
		rec(map[string]string{"NIP": "4", "TMT JABATAN": "tanggal rusak"}),
	}
	trend := YearlyTrend(recs)
	want := []YearCount{{2020, 2}, {2021, 1}}
	if len(trend) != len(want) || trend[0] != want[0] || trend[1] != want[1] {
		t.Fatalf("unexpected trend: %+v", trend)
	}

	filtered := Apply(recs, Filter{Units: []string{"A"}})
	trend = YearlyTrend(filtered)
	if len(trend) != 1 || trend[0] != (YearCount{2020, 2}) {
		t.Fatalf("unit filter should exclude unit B: %+v", trend)
	}
}

func TestMonthlyTrendFullSeries(t *testing.T) {
	recs := []employee.Record{
		rec(map[string]string{"NIP": "1", "TMT JABATAN": "2021-02-01"}),
		rec(map[string]string{"NIP": "2", "TMT JABATAN": "2021-02-20"}),
		rec(map[string]string{"NIP": "3", "TMT JABATAN": "2020-02-20"}),
	}
	months := MonthlyTrend(recs, 2021)
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if months[1] != (MonthCount{Month: 2, Count: 2}) {
		t.Fatalf("unexpected february: %+v", months[1])
	}
	if months[0].Count != 0 || months[11].Count != 0 {
		t.Fatalf("empty months should be zero-filled: %+v", months)
	}
}

func TestYearlyTrendByGender(t *testing.T) {
	recs := []employee.Record{
		rec(map[string]string{"NIP": "1", "TMT JABATAN": "2020-01-01", "JENIS KELAMIN": "L"}),
		rec(map[string]string{"NIP": "2", "TMT JABATAN": "2020-05-01", "JENIS KELAMIN": "P"}),
		rec(map[string]string{"NIP": "3", "TMT JABATAN": "2020-09-01", "JENIS KELAMIN": "PRIA"}),
	}
	points := YearlyTrendBy(recs, GenderLabel)
	want := []TrendPoint{
		{Year: 2020, Label: GenderMale, Count: 2},
		{Year: 2020, Label: GenderFemale, Count: 1},
	}
	if len(points) != 2 {
		t.Fatalf("unexpected points: %+v", points)
	}
	// ordered year asc, label asc
	if points[0] != want[0] || points[1] != want[1] {
		t.Fatalf("got %+v, want %+v", points, want)
	}
}

func TestApplyConjunctiveFilter(t *testing.T) {
	recs := []employee.Record{
		rec(map[string]string{"NIP": "100", "NAMA": "Budi Santoso", "UNOR INDUK": "DINAS A", "NAMA JABATAN": "Analis", "TINGKAT PENDIDIKAN": "S1"}),
		rec(map[string]string{"NIP": "200", "NAMA": "Siti Aminah", "UNOR INDUK": "DINAS A", "NAMA JABATAN": "Arsiparis", "TINGKAT PENDIDIKAN": "S2"}),
		rec(map[string]string{"NIP": "300", "NAMA": "Joko Susilo", "UNOR INDUK": "DINAS B", "NAMA JABATAN": "Analis", "TINGKAT PENDIDIKAN": "S1"}),
	}

	got := Apply(recs, Filter{Units: []string{"DINAS A"}, Titles: []string{"Analis", "Arsiparis"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	got = Apply(recs, Filter{Units: []string{"DINAS A"}, Educations: []string{"S2"}})
	if len(got) != 1 || got[0].NIP != "200" {
		t.Fatalf("AND across dimensions broken: %+v", got)
	}

	got = Apply(recs, Filter{Search: "budi"})
	if len(got) != 1 || got[0].NIP != "100" {
		t.Fatalf("name search should be case-insensitive: %+v", got)
	}

	got = Apply(recs, Filter{Search: "30"})
	if len(got) != 1 || got[0].NIP != "300" {
		t.Fatalf("NIP substring search broken: %+v", got)
	}
}

func TestParseDateLayouts(t *testing.T) {
	for _, value := range []string{"1985-12-31", "1985/12/31", "31-12-1985", "31/12/1985"} {
		parsed, ok := ParseDate(value)
		if !ok || parsed.Year() != 1985 || parsed.Month() != time.December {
			t.Fatalf("failed to parse %q", value)
		}
	}
	if _, ok := ParseDate(""); ok {
		t.Fatal("empty string should not parse")
	}
	if _, ok := ParseDate("kemarin"); ok {
		t.Fatal("free text should not parse")
	}
}
