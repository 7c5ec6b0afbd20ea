package reports

import "strings"

const (
	GenderMale   = "LAKI-LAKI"
	GenderFemale = "PEREMPUAN"
)

var genderSynonyms = map[string]string{
	"M":         GenderMale,
	"L":         GenderMale,
	"PRIA":      GenderMale,
	"LAKI-LAKI": GenderMale,
	"F":         GenderFemale,
	"P":         GenderFemale,
	"WANITA":    GenderFemale,
	"PEREMPUAN": GenderFemale,
}

var educationSynonyms = map[string]string{
	"SD": "SD", "SEKOLAH DASAR": "SD", "ELEMENTARY SCHOOL": "SD",
	"SMP": "SMP", "SEKOLAH MENENGAH PERTAMA": "SMP", "JUNIOR HIGH": "SMP",
	"SMA": "SMA", "SMU": "SMA", "SMK": "SMA", "MA": "SMA", "SEKOLAH MENENGAH ATAS": "SMA", "HIGH SCHOOL": "SMA",
	"D1": "D1", "DIPLOMA I": "D1",
	"D2": "D2", "DIPLOMA II": "D2",
	"D3": "D3", "DIPLOMA III": "D3", "AHLI MADYA": "D3",
	"D4": "D4", "DIPLOMA IV": "D4", "SARJANA TERAPAN": "D4",
	"S1": "S1", "SARJANA": "S1", "UNDERGRADUATE": "S1", "BACHELOR": "S1",
	"S2": "S2", "MAGISTER": "S2", "MASTER": "S2", "POSTGRADUATE": "S2",
	"S3": "S3", "DOKTOR": "S3", "PHD": "S3", "DOCTORATE": "S3",
}

// NormalizeGender maps free-text gender spellings to a canonical label.
// Unrecognized values pass through as their own label.
func NormalizeGender(value string) string {
	key := strings.ToUpper(strings.TrimSpace(value))
	if canonical, ok := genderSynonyms[key]; ok {
		return canonical
	}
	return key
}

// NormalizeEducation maps free-text education levels to SD..S3.
// Unrecognized values pass through as their own label.
func NormalizeEducation(value string) string {
	key := strings.ToUpper(strings.TrimSpace(value))
	if canonical, ok := educationSynonyms[key]; ok {
		return canonical
	}
	return key
}
