package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading parses a markdown body (front matter already removed) and
// returns the text of the first level-1 heading, if any.
func FirstHeading(body []byte) (string, bool) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(string(nodeText(h, body)))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})

	if title == "" {
		return "", false
	}
	return title, true
}

// nodeText collects the raw text segments beneath a node, so a heading like
// `# A *styled* title` yields "A styled title".
func nodeText(n gmast.Node, body []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			buf.Write(t.Segment.Value(body))
			continue
		}
		buf.Write(nodeText(c, body))
	}
	return buf.Bytes()
}
