package textproc_test

import (
	"strings"
	"testing"

	"speedread/internal/textproc"
)

func TestTokenize(t *testing.T) {
	in := "Привет, мир! 42 hello «ёж»"
	toks := textproc.Tokenize(in)

	var b strings.Builder
	var words, puncts []string
	for _, tok := range toks {
		b.WriteString(tok.Text)
		switch tok.Kind {
		case textproc.Word:
			words = append(words, tok.Text)
		case textproc.Punct:
			puncts = append(puncts, tok.Text)
		}
	}
	if b.String() != in {
		t.Fatalf("tokens do not rejoin: %q", b.String())
	}
	if strings.Join(words, "|") != "Привет|мир|ёж" {
		t.Fatalf("words: %q", words)
	}
	if strings.Join(puncts, "") != ",!«»" {
		t.Fatalf("punct: %q", puncts)
	}
}

func TestTokenize_NoTokens(t *testing.T) {
	if textproc.HasTokens("hello 123") {
		t.Fatal("latin text should have no tokens")
	}
	toks := textproc.Tokenize("hello 123")
	if len(toks) != 1 || toks[0].Kind != textproc.Text {
		t.Fatalf("want one text token, got %+v", toks)
	}
	if textproc.Tokenize("") != nil {
		t.Fatal("empty input should yield no tokens")
	}
}

func TestIsWord(t *testing.T) {
	if !textproc.IsWord("Ёлка") {
		t.Fatal("Ёлка should be a word")
	}
	if textproc.IsWord("ёлка!") || textproc.IsWord("tree") {
		t.Fatal("unexpected word match")
	}
}
