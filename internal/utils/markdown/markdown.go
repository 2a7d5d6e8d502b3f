package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"noteshare/internal/utils/format"
)

// Raw HTML in the source is not rendered; goldmark drops it unless the
// unsafe renderer option is set.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithExtensions(&externalLinks{}),
)

// Preview renders src as HTML. If rendering fails the escaped source is
// returned with line breaks kept.
func Preview(src string) string {
	var b bytes.Buffer
	if err := renderer.Convert([]byte(src), &b); err != nil {
		return Fallback(src)
	}
	return b.String()
}

// Fallback is the plain rendering used when Markdown is unavailable.
func Fallback(src string) string {
	return strings.ReplaceAll(format.EscapeHTML(src), "\n", "<br>")
}

type externalLinks struct{}

func (e *externalLinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&externalLinksTransformer{}, 100),
	))
}

type externalLinksTransformer struct{}

// Transform opens absolute http(s) links in a new tab.
func (t *externalLinksTransformer) Transform(node *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok && isExternal(link.Destination) {
			link.SetAttributeString("target", []byte("_blank"))
			link.SetAttributeString("rel", []byte("noopener noreferrer"))
		}
		return ast.WalkContinue, nil
	})
}

func isExternal(dest []byte) bool {
	return bytes.HasPrefix(dest, []byte("http://")) || bytes.HasPrefix(dest, []byte("https://"))
}
