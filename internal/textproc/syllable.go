package textproc

// SplitSyllables breaks word into syllables. Words with at most one vowel
// come back whole.
func SplitSyllables(word string) []string {
	rs := []rune(word)

	var vpos []int
	for i, r := range rs {
		if IsVowel(r) {
			vpos = append(vpos, i)
		}
	}
	if len(vpos) <= 1 {
		return []string{word}
	}

	out := make([]string, 0, len(vpos))
	start := 0
	for i, v := range vpos {
		if i == len(vpos)-1 {
			out = append(out, string(rs[start:]))
			break
		}
		next := vpos[i+1]
		boundary := next - onsetLen(rs[v+1:next])
		if boundary <= start {
			boundary = next
		}
		out = append(out, string(rs[start:boundary]))
		start = boundary
	}
	return out
}

// onsetLen returns how many trailing letters of the consonant cluster between
// two vowels move to the next syllable.
func onsetLen(cluster []rune) int {
	n := len(cluster)
	if n == 0 {
		return 0
	}
	lc := lowerRunes(cluster)
	switch {
	case n >= 2 && lc[0] == lc[1]:
		return n - 1
	case lc[n-1] == 'ь' || lc[n-1] == 'ъ':
		return 1
	case n >= 3 && has(onset3, lc[n-3:]):
		return 3
	case n >= 2 && has(onset2, lc[n-2:]):
		return 2
	}
	return 1
}

func has(set map[string]struct{}, rs []rune) bool {
	_, ok := set[string(rs)]
	return ok
}

// FirstSyllable returns the first syllable of word and the remainder.
func FirstSyllable(word string) (head, rest string) {
	syl := SplitSyllables(word)
	if len(syl) == 0 {
		return word, ""
	}
	return syl[0], word[len(syl[0]):]
}
