package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gamecat"
	"golang.org/x/net/html"
)

// invisible elements contribute no text.
var invisible = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
}

// blocks start and end a line of visible text.
var blocks = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "details": true, "div": true, "dl": true,
	"dt": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "summary": true, "table": true, "td": true,
	"th": true, "tr": true, "ul": true,
}

// VisibleLines returns the non-empty lines of text a reader would see in
// the selection. Block elements and newlines break lines; whitespace
// inside a line is collapsed.
func VisibleLines(sel *goquery.Selection) []string {
	var lines []string
	var cur strings.Builder

	flush := func() {
		if line := collapse(cur.String()); line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			parts := strings.Split(n.Data, "\n")
			for i, part := range parts {
				if i > 0 {
					flush()
				}
				cur.WriteString(part)
			}
			return
		case html.ElementNode:
			if invisible[n.Data] {
				return
			}
			if blocks[n.Data] {
				flush()
				defer flush()
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	flush()
	return lines
}

// textNodes returns the raw content of every visible text node in the
// selection, in document order.
func textNodes(sel *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if strings.TrimSpace(n.Data) != "" {
				out = append(out, n.Data)
			}
			return
		}
		if n.Type == html.ElementNode && invisible[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

// newDocument parses page markup. Parse failures are reported as EEXTRACT.
func newDocument(page *gamecat.RawPage) (*goquery.Document, error) {
	if page == nil {
		return nil, gamecat.Errorf(gamecat.EINVALID, "page required")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, gamecat.Errorf(gamecat.EEXTRACT, "failed to parse HTML from %s: %v", page.URL, err)
	}
	return doc, nil
}
