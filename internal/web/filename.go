package web

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	windowsDevices   = map[string]bool{
		"CON": true, "PRN": true, "AUX": true, "NUL": true,
		"COM1": true, "COM2": true, "COM3": true, "COM4": true,
		"LPT1": true, "LPT2": true, "LPT3": true,
	}
)

// SecureFilename reduces name to a safe ASCII file name: accents are folded,
// path separators become spaces, whitespace runs become "_", anything outside
// [A-Za-z0-9_.-] is dropped and leading/trailing dots and underscores are
// trimmed. The result may be empty.
func SecureFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	s := strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	s = strings.Join(strings.Fields(s), "_")
	s = unsafeFilenameRe.ReplaceAllString(s, "")
	s = strings.Trim(s, "._")

	if stem, _, _ := strings.Cut(s, "."); windowsDevices[strings.ToUpper(stem)] {
		s = "_" + s
	}
	return s
}

// uploadBase strips any client-side directory from an upload's file name.
func uploadBase(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	return path.Base(name)
}
