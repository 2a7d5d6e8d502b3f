package markdown

import "unicode/utf8"

type Kind string

const (
	Bold      Kind = "bold"
	Italic    Kind = "italic"
	Heading   Kind = "heading"
	Link      Kind = "link"
	List      Kind = "list"
	Code      Kind = "code"
	CodeBlock Kind = "codeblock"
)

// Kinds lists every supported syntax in menu order.
var Kinds = []Kind{Bold, Italic, Heading, Link, List, Code, CodeBlock}

// Insertion is the edited text and the rune range now covering the
// inserted syntax.
type Insertion struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Insert wraps the runes [start, end) of text in the syntax of kind. Offsets
// count runes, not bytes. An empty selection is filled with a placeholder.
// Out of range bounds are clamped. An unknown kind returns the text and
// selection unchanged.
func Insert(text string, start, end int, kind Kind) Insertion {
	runes := []rune(text)
	start, end = clamp(start, 0, len(runes)), clamp(end, 0, len(runes))
	if start > end {
		start, end = end, start
	}
	selected := string(runes[start:end])

	or := func(placeholder string) string {
		if selected == "" {
			return placeholder
		}
		return selected
	}

	var replacement string
	switch kind {
	case Bold:
		replacement = "**" + or("text") + "**"
	case Italic:
		replacement = "*" + or("text") + "*"
	case Heading:
		replacement = "## " + or("heading")
	case Link:
		replacement = "[" + or("link text") + "](URL)"
	case List:
		replacement = "- " + or("list item")
	case Code:
		replacement = "`" + or("code") + "`"
	case CodeBlock:
		replacement = "```\n" + or("code block") + "\n```"
	default:
		return Insertion{Text: text, Start: start, End: end}
	}

	return Insertion{
		Text:  string(runes[:start]) + replacement + string(runes[end:]),
		Start: start,
		End:   start + utf8.RuneCountInString(replacement),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
