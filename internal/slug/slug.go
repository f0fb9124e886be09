package slug

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeTurkish: Türkçe karakterleri ASCII karşılıklarına çevirir
// Örn: "ÇATI KAPLAMA ÜRÜNLERİ" -> "CATI KAPLAMA URUNLERI"
func normalizeTurkish(s string) string {
	replacements := map[rune]string{
		'ç': "c", 'Ç': "C",
		'ğ': "g", 'Ğ': "G",
		'ı': "i", 'İ': "I",
		'ö': "o", 'Ö': "O",
		'ş': "s", 'Ş': "S",
		'ü': "u", 'Ü': "U",
	}

	var result strings.Builder
	for _, r := range s {
		if replacement, ok := replacements[r]; ok {
			result.WriteString(replacement)
		} else {
			result.WriteRune(r)
		}
	}
	return strings.ToLower(result.String())
}

// Make: URL dostu slug üretir
// Örn: "Trapez Çatı Paneli" -> "trapez-cati-paneli"
func Make(s string) string {
	normalized := normalizeTurkish(strings.TrimSpace(s))
	normalized = nonSlug.ReplaceAllString(normalized, "-")
	return strings.Trim(normalized, "-")
}
