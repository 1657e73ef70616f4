package textproc

import "regexp"

// PunctChars are the punctuation marks rendered in a muted span.
const PunctChars = `,;:!?()[]{}«»“”"—–-`

var (
	wordRe  = regexp.MustCompile(`^[А-Яа-яЁё]+$`)
	tokenRe = regexp.MustCompile(`[А-Яа-яЁё]+|[,;:!?()\[\]{}«»“”"—–\-]`)
)

// TokenKind classifies a token.
type TokenKind int

const (
	// Text is anything between words and punctuation: spaces, digits, Latin.
	Text TokenKind = iota
	Word
	Punct
)

// Token is a slice of the input text.
type Token struct {
	Kind TokenKind
	Text string
}

// HasTokens reports whether s contains at least one word or punctuation mark.
func HasTokens(s string) bool { return tokenRe.MatchString(s) }

// IsWord reports whether s is a single Cyrillic word.
func IsWord(s string) bool { return wordRe.MatchString(s) }

// Tokenize splits s into words, punctuation and the text between them.
// Concatenating the tokens' Text yields s.
func Tokenize(s string) []Token {
	locs := tokenRe.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		if s == "" {
			return nil
		}
		return []Token{{Kind: Text, Text: s}}
	}

	out := make([]Token, 0, 2*len(locs)+1)
	i := 0
	for _, loc := range locs {
		if loc[0] > i {
			out = append(out, Token{Kind: Text, Text: s[i:loc[0]]})
		}
		tok := s[loc[0]:loc[1]]
		kind := Punct
		if IsWord(tok) {
			kind = Word
		}
		out = append(out, Token{Kind: kind, Text: tok})
		i = loc[1]
	}
	if i < len(s) {
		out = append(out, Token{Kind: Text, Text: s[i:]})
	}
	return out
}
