package epub

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// expandSelfClosing rewrites self-closing non-void tags (<title/>,
// <script src="a.js"/>, <a id="p1"/>) as an explicit start and end tag.
// EPUB chapters are XHTML, but the HTML parser ignores the trailing slash
// on these elements, and a raw-text element such as <title/> would then
// swallow the rest of the document.
func expandSelfClosing(data []byte) []byte {
	z := html.NewTokenizer(bytes.NewReader(data))
	var out bytes.Buffer
	out.Grow(len(data) + 64)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			out.Write(z.Raw())
			return out.Bytes()
		}
		if tt != html.SelfClosingTagToken {
			out.Write(z.Raw())
			continue
		}

		// TagName lowercases the tokenizer buffer in place, so copy Raw first.
		raw := bytes.Clone(z.Raw())
		name, _ := z.TagName()
		z.NextIsNotRawText()
		if isVoid(name) {
			out.Write(raw)
			continue
		}
		out.Write(raw[:len(raw)-len("/>")])
		out.WriteString("></")
		out.Write(name)
		out.WriteByte('>')
	}
}

func isVoid(name []byte) bool {
	switch atom.Lookup(name) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Keygen, atom.Link, atom.Meta, atom.Param, atom.Source,
		atom.Track, atom.Wbr:
		return true
	}
	return false
}
