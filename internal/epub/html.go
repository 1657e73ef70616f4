package epub

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"speedread/internal/domain"
	"speedread/internal/textproc"
)

const (
	styleID  = "speedread-style"
	gapClass = "sr-gap"
	styleCSS = "p { text-indent: 1.25em; margin-top: 0; margin-bottom: 0; }" +
		" p + p { margin-top: 0; }" +
		" .sr-gap { text-indent: 0; margin: 0 0 1em 0; }" +
		" .punct { color: #666; opacity: 0.65; }"
)

var (
	bodyTagRe = regexp.MustCompile(`(?i)<body[\s>/]`)
	prologRe  = regexp.MustCompile(`^\s*<\?xml[^>]*\?>\s*`)
)

// Processor rewrites HTML documents. It is safe for concurrent use.
type Processor struct {
	split *textproc.Splitter
}

// NewProcessor returns a Processor using split for word emphasis.
func NewProcessor(split *textproc.Splitter) *Processor {
	return &Processor{split: split}
}

// ProcessHTML rewrites one document. Documents without a <body> are returned
// unchanged.
func (p *Processor) ProcessHTML(data []byte, mode domain.Mode) ([]byte, error) {
	if !bodyTagRe.Match(data) {
		return data, nil
	}

	prolog := prologRe.Find(data)
	doc, err := html.Parse(bytes.NewReader(expandSelfClosing(data[len(prolog):])))
	if err != nil {
		return nil, err
	}
	body := findFirst(doc, atom.Body)
	if body == nil {
		return data, nil
	}
	if head := findFirst(doc, atom.Head); head != nil {
		ensureStyle(head)
	}

	for _, para := range findAll(body, atom.P) {
		for _, text := range textNodes(para) {
			if parent := text.Parent; parent != nil &&
				(parent.DataAtom == atom.Script || parent.DataAtom == atom.Style) {
				continue
			}
			if nodes := p.buildNodes(text.Data, mode); len(nodes) > 0 {
				replaceNode(text, nodes)
			}
		}
	}

	for _, para := range findAll(body, atom.P) {
		if next := nextElement(para); next != nil && next.DataAtom == atom.P && hasClass(next, gapClass) {
			continue
		}
		para.Parent.InsertBefore(gapParagraph(), para.NextSibling)
	}

	var buf bytes.Buffer
	buf.Write(bytes.TrimRight(prolog, " \t\r\n"))
	if len(prolog) > 0 {
		buf.WriteByte('\n')
	}
	if err := html.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildNodes returns the replacement nodes for text, or nil when text has
// neither words nor punctuation.
func (p *Processor) buildNodes(text string, mode domain.Mode) []*html.Node {
	if !textproc.HasTokens(text) {
		return nil
	}
	var out []*html.Node
	for _, tok := range textproc.Tokenize(text) {
		switch tok.Kind {
		case textproc.Word:
			head, rest := p.split.Split(tok.Text, mode)
			if head == "" {
				out = append(out, textNode(tok.Text))
				continue
			}
			out = append(out, element(atom.Strong, nil, head))
			if rest != "" {
				out = append(out, textNode(rest))
			}
		case textproc.Punct:
			out = append(out, element(atom.Span, []html.Attribute{{Key: "class", Val: "punct"}}, tok.Text))
		default:
			out = append(out, textNode(tok.Text))
		}
	}
	return out
}

func ensureStyle(head *html.Node) {
	for _, s := range findAll(head, atom.Style) {
		if attr(s, "id") == styleID {
			return
		}
	}
	head.AppendChild(element(atom.Style, []html.Attribute{
		{Key: "id", Val: styleID},
		{Key: "type", Val: "text/css"},
	}, styleCSS))
}

func gapParagraph() *html.Node {
	return element(atom.P, []html.Attribute{{Key: "class", Val: gapClass}}, "\u00a0")
}

func element(a atom.Atom, attrs []html.Attribute, text string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	n.AppendChild(textNode(text))
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func replaceNode(old *html.Node, nodes []*html.Node) {
	parent := old.Parent
	for _, n := range nodes {
		parent.InsertBefore(n, old)
	}
	parent.RemoveChild(old)
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// findAll collects descendants of n (excluding n) in document order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for d := range n.Descendants() {
		if d.Type == html.ElementNode && d.DataAtom == a {
			out = append(out, d)
		}
	}
	return out
}

func textNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			out = append(out, d)
		}
	}
	return out
}

func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}
