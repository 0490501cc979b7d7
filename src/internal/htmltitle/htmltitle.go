// Package htmltitle extracts the document title from already-fetched HTML
// source. It never performs network I/O.
package htmltitle

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extract parses HTML from r and returns the text of the first <title>
// element in document order, whitespace-collapsed. ok is false when there is
// no title element or its text is empty. The parser is tolerant, so malformed
// markup still yields whatever title it contains.
func Extract(r io.Reader) (string, bool) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", false
	}
	node := findTitle(doc)
	if node == nil {
		return "", false
	}
	title := collapseSpace(textOf(node))
	return title, title != ""
}

// ExtractString is Extract over in-memory source.
func ExtractString(src string) (string, bool) {
	return Extract(strings.NewReader(src))
}

// findTitle returns the first <title> element in document order.
func findTitle(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTitle(c); found != nil {
			return found
		}
	}
	return nil
}

// textOf concatenates the direct text nodes under n.
func textOf(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// collapseSpace trims and folds runs of whitespace into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
