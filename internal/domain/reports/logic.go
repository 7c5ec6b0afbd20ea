package reports

import (
	"sort"
	"strings"
	"time"

	"simpeg/internal/domain/employee"
)

// LabelCount is one aggregation bucket.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// YearCount is one point of a yearly trend.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// MonthCount is one point of a monthly trend, Month in 1..12.
type MonthCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// TrendPoint is a yearly count crossed with a second label dimension.
type TrendPoint struct {
	Year  int    `json:"year"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	time.RFC3339,
}

// ParseDate parses the tolerant date formats the record fields carry.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Age derives age as plain year subtraction, ignoring month and day.
func Age(birth string, now time.Time) (int, bool) {
	parsed, ok := ParseDate(birth)
	if !ok {
		return 0, false
	}
	return now.Year() - parsed.Year(), true
}

// GenderSplit counts records per canonical gender label.
func GenderSplit(recs []employee.Record) []LabelCount {
	counts := make(map[string]int)
	for _, rec := range recs {
		if strings.TrimSpace(rec.JenisKelamin) == "" {
			continue
		}
		counts[NormalizeGender(rec.JenisKelamin)]++
	}
	return sortedCounts(counts)
}

// AgeBuckets is the fixed histogram order; every bucket is always present.
var AgeBuckets = []string{"<20", "20–29", "30–39", "40–49", "50–59", "60+"}

func ageBucket(age int) string {
	switch {
	case age < 20:
		return AgeBuckets[0]
	case age < 30:
		return AgeBuckets[1]
	case age < 40:
		return AgeBuckets[2]
	case age < 50:
		return AgeBuckets[3]
	case age < 60:
		return AgeBuckets[4]
	default:
		return AgeBuckets[5]
	}
}

// AgeHistogram buckets record ages relative to now. Records without a
// parseable birth date are excluded entirely.
func AgeHistogram(recs []employee.Record, now time.Time) []LabelCount {
	counts := make(map[string]int)
	for _, rec := range recs {
		age, ok := Age(rec.TanggalLahir, now)
		if !ok || age < 0 {
			continue
		}
		counts[ageBucket(age)]++
	}
	out := make([]LabelCount, len(AgeBuckets))
	for i, label := range AgeBuckets {
		out[i] = LabelCount{Label: label, Count: counts[label]}
	}
	return out
}

// EducationHistogram counts records per canonical education level.
func EducationHistogram(recs []employee.Record) []LabelCount {
	counts := make(map[string]int)
	for _, rec := range recs {
		if strings.TrimSpace(rec.TingkatPendidikan) == "" {
			continue
		}
		counts[NormalizeEducation(rec.TingkatPendidikan)]++
	}
	return sortedCounts(counts)
}

// UnitCounts counts records per trimmed parent unit, no normalization.
func UnitCounts(recs []employee.Record) []LabelCount {
	counts := make(map[string]int)
	for _, rec := range recs {
		unit := strings.TrimSpace(rec.UnorInduk)
		if unit == "" {
			continue
		}
		counts[unit]++
	}
	return sortedCounts(counts)
}

// YearlyTrend groups records by the appointment year of TMT JABATAN,
// ascending. Unparseable dates are dropped.
func YearlyTrend(recs []employee.Record) []YearCount {
	counts := make(map[int]int)
	for _, rec := range recs {
		if tmt, ok := ParseDate(rec.TMTJabatan); ok {
			counts[tmt.Year()]++
		}
	}
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)
	out := make([]YearCount, len(years))
	for i, year := range years {
		out[i] = YearCount{Year: year, Count: counts[year]}
	}
	return out
}

// MonthlyTrend counts appointments per calendar month of one year, always a
// full January..December series.
func MonthlyTrend(recs []employee.Record, year int) []MonthCount {
	out := make([]MonthCount, 12)
	for i := range out {
		out[i].Month = i + 1
	}
	for _, rec := range recs {
		tmt, ok := ParseDate(rec.TMTJabatan)
		if !ok || tmt.Year() != year {
			continue
		}
		out[int(tmt.Month())-1].Count++
	}
	return out
}

// TrendYears lists the distinct appointment years present, ascending.
func TrendYears(recs []employee.Record) []int {
	seen := make(map[int]bool)
	for _, rec := range recs {
		if tmt, ok := ParseDate(rec.TMTJabatan); ok {
			seen[tmt.Year()] = true
		}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// YearlyTrendBy crosses the yearly trend with a second label dimension,
// e.g. gender or education. Ordered by year, then label.
func YearlyTrendBy(recs []employee.Record, label func(employee.Record) string) []TrendPoint {
	type key struct {
		year  int
		label string
	}
	counts := make(map[key]int)
	for _, rec := range recs {
		tmt, ok := ParseDate(rec.TMTJabatan)
		if !ok {
			continue
		}
		counts[key{tmt.Year(), label(rec)}]++
	}
	out := make([]TrendPoint, 0, len(counts))
	for k, count := range counts {
		out = append(out, TrendPoint{Year: k.year, Label: k.label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// GenderLabel and EducationLabel are the dimensions the trend reports cross
// with.
func GenderLabel(rec employee.Record) string    { return NormalizeGender(rec.JenisKelamin) }
func EducationLabel(rec employee.Record) string { return NormalizeEducation(rec.TingkatPendidikan) }

// Filter is a conjunctive record filter: OR within each multi-select, AND
// across dimensions, and a case-insensitive substring match on NIP and NAMA.
type Filter struct {
	Units      []string
	Titles     []string
	Educations []string
	Search     string
}

func (f Filter) matches(rec employee.Record) bool {
	if len(f.Units) > 0 && !containsTrimmed(f.Units, rec.UnorInduk) {
		return false
	}
	if len(f.Titles) > 0 && !containsTrimmed(f.Titles, rec.NamaJabatan) {
		return false
	}
	if len(f.Educations) > 0 && !containsTrimmed(f.Educations, rec.TingkatPendidikan) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(rec.NIP), needle) &&
			!strings.Contains(strings.ToLower(rec.Nama), needle) {
			return false
		}
	}
	return true
}

// Apply returns the records matching the filter, input order preserved.
func Apply(recs []employee.Record, f Filter) []employee.Record {
	var out []employee.Record
	for _, rec := range recs {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func containsTrimmed(values []string, candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	for _, value := range values {
		if strings.TrimSpace(value) == trimmed {
			return true
		}
	}
	return false
}

// sortedCounts orders buckets by count descending, label ascending on ties,
// so repeated calls over the same data are deterministic.
func sortedCounts(counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
