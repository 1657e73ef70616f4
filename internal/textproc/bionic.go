package textproc

// BionicSplit returns the leading letters of word that bionic reading
// emphasises, and the remainder.
func BionicSplit(word string) (head, rest string) {
	rs := []rune(word)
	n := bionicLen(len(rs))
	return string(rs[:n]), string(rs[n:])
}

func bionicLen(length int) int {
	switch {
	case length <= 3:
		return length
	case length <= 7:
		return 2
	case length <= 10:
		return 3
	}
	return max(3, length/3)
}
