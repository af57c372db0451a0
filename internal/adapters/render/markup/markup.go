// Package markup converts the constrained text the generator returns into
// structured blocks. The input only ever carries three marker types: "###"
// and "####" headings, numbered list items, and plain paragraphs.
package markup

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

type Block interface {
	isBlock()
}

type Heading struct {
	Level int
	Text  string
}

type OrderedList struct {
	Items []string
}

type Paragraph struct {
	Text string
}

func (Heading) isBlock()     {}
func (OrderedList) isBlock() {}
func (Paragraph) isBlock()   {}

var (
	listItemRe = regexp.MustCompile(`^\s*\d+\.\s+`)
	emphasisRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// Parse walks the text line by line. Consecutive numbered lines collapse
// into one ordered list; any non-list line closes the open list first.
// Blank lines emit nothing.
func Parse(text string) []Block {
	var blocks []Block
	var open *OrderedList

	closeList := func() {
		if open != nil {
			blocks = append(blocks, *open)
			open = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "### "):
			closeList()
			blocks = append(blocks, Heading{Level: 3, Text: strings.TrimSpace(line[4:])})
		case strings.HasPrefix(line, "#### "):
			closeList()
			blocks = append(blocks, Heading{Level: 4, Text: strings.TrimSpace(line[5:])})
		case listItemRe.MatchString(line):
			if open == nil {
				open = &OrderedList{}
			}
			open.Items = append(open.Items, listItemRe.ReplaceAllString(line, ""))
		default:
			closeList()
			if strings.TrimSpace(line) != "" {
				blocks = append(blocks, Paragraph{Text: line})
			}
		}
	}
	closeList()

	return blocks
}

// ToHTML renders the parsed blocks as nested markup, the shape the
// original web rendering produced.
func ToHTML(text string) string {
	var b strings.Builder

	for _, block := range Parse(text) {
		switch block := block.(type) {
		case Heading:
			fmt.Fprintf(&b, "<h%d>%s</h%d>", block.Level, html.EscapeString(block.Text), block.Level)
		case OrderedList:
			b.WriteString("<ol>")
			for _, item := range block.Items {
				fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(item))
			}
			b.WriteString("</ol>")
		case Paragraph:
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(block.Text))
		}
	}

	return b.String()
}

// EmphasizeHTML substitutes paired-asterisk spans with strong elements.
// Used for chat replies, which carry no other markup.
func EmphasizeHTML(text string) string {
	return emphasisRe.ReplaceAllString(text, "<strong>$1</strong>")
}

// EmphasisSpans splits text into alternating plain/emphasized spans for
// renderers that style text directly instead of emitting markup.
type Span struct {
	Text     string
	Emphasis bool
}

func EmphasisSpans(text string) []Span {
	var spans []Span
	rest := text

	for {
		loc := emphasisRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Text: rest[:loc[0]]})
		}
		spans = append(spans, Span{Text: rest[loc[2]:loc[3]], Emphasis: true})
		rest = rest[loc[1]:]
	}

	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}

	return spans
}
