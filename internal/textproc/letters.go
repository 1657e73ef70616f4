package textproc

import "unicode"

var (
	vowels     = runeSet("аеёиоуыэюяАЕЁИОУЫЭЮЯ")
	consonants = runeSet("бвгджзйклмнпрстфхцчшщьъБВГДЖЗЙКЛМНПРСТФХЦЧШЩЬЪ")
)

// Consonant pairs and triples that may open a syllable.
var (
	onset2 = stringSet(
		"бл", "бр", "вл", "вр", "гл", "гр", "дл", "др", "жр", "зл", "зр",
		"кл", "кр", "пл", "пр", "сл", "см", "сн", "сп", "ст", "ск", "ср",
		"сф", "сх", "св", "шл", "шр", "тл", "тр", "фл", "фр", "хл", "хр",
		"чр", "вт", "гн", "мн", "мл", "мр", "нл", "нр",
	)
	onset3 = stringSet("стр", "скр", "спр", "скл")
)

// IsVowel reports whether r is a Russian vowel.
func IsVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}

// IsConsonant reports whether r is a Russian consonant or a hard/soft sign.
func IsConsonant(r rune) bool {
	_, ok := consonants[r]
	return ok
}

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

func stringSet(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, s := range items {
		m[s] = struct{}{}
	}
	return m
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
