package web_test

import (
	"testing"

	"speedread/internal/web"
)

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"My cool movie.mov":          "My_cool_movie.mov",
		"../../../etc/passwd":        "etc_passwd",
		"i contain cool ümläuts.txt": "i_contain_cool_umlauts.txt",
		`C:\books\war.epub`:          "C_books_war.epub",
		"CON.epub":                   "_CON.epub",
		"книга":                      "",
		"  .hidden  ":                "hidden",
	}
	for in, want := range cases {
		if got := web.SecureFilename(in); got != want {
			t.Fatalf("SecureFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
