package textproc_test

import (
	"reflect"
	"strings"
	"testing"

	"speedread/internal/textproc"
)

func TestSplitSyllables(t *testing.T) {
	cases := []struct {
		word string
		want []string
	}{
		{"кот", []string{"кот"}},
		{"молоко", []string{"мо", "ло", "ко"}},
		{"сестра", []string{"се", "стра"}},
		{"касса", []string{"кас", "са"}},
		{"объект", []string{"об", "ъект"}},
		{"аорта", []string{"а", "ор", "та"}},
		{"Москва", []string{"Моск", "ва"}},
		{"привет", []string{"при", "вет"}},
		{"книга", []string{"кни", "га"}},
		{"ВОДА", []string{"ВО", "ДА"}},
	}
	for _, tc := range cases {
		got := textproc.SplitSyllables(tc.word)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitSyllables(%q) = %q, want %q", tc.word, got, tc.want)
		}
		if strings.Join(got, "") != tc.word {
			t.Fatalf("syllables of %q do not rejoin: %q", tc.word, got)
		}
	}
}

func TestSplitSyllables_NoVowels(t *testing.T) {
	got := textproc.SplitSyllables("вздр")
	if len(got) != 1 || got[0] != "вздр" {
		t.Fatalf("want whole word, got %q", got)
	}
}

func TestFirstSyllable(t *testing.T) {
	head, rest := textproc.FirstSyllable("молоко")
	if head != "мо" || rest != "локо" {
		t.Fatalf("got (%q, %q)", head, rest)
	}
	head, rest = textproc.FirstSyllable("дом")
	if head != "дом" || rest != "" {
		t.Fatalf("single syllable: got (%q, %q)", head, rest)
	}
}

func TestBionicSplit(t *testing.T) {
	cases := []struct {
		word, head, rest string
	}{
		{"и", "и", ""},
		{"кот", "кот", ""},
		{"мама", "ма", "ма"},
		{"привет", "пр", "ивет"},
		{"пароход", "па", "роход"},
		{"автомобиль", "авт", "омобиль"},
		{"достопримечательность", "достопр", "имечательность"},
	}
	for _, tc := range cases {
		head, rest := textproc.BionicSplit(tc.word)
		if head != tc.head || rest != tc.rest {
			t.Fatalf("BionicSplit(%q) = (%q, %q), want (%q, %q)", tc.word, head, rest, tc.head, tc.rest)
		}
	}
}
