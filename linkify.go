// Package linkify rewrites plain text in HTML fragments, turning bare URLs,
// email addresses, and mentions into anchor markup while leaving existing
// markup and attribute contents untouched. The core is a forward-scanning
// tokenizer (Parse, Events) that losslessly partitions the input into tag
// nodes and text nodes; Link is the assembler built on top of it.
package linkify

import (
	"strings"

	"github.com/linkifyhq/linkify/internal/matchers"
	"golang.org/x/net/html/atom"
)

// Options selects which recognizers Link applies to text nodes.
type Options struct {
	URLs     bool
	Emails   bool
	Mentions bool

	// MentionBase is prepended to a mention's username to form its href.
	// Empty means matchers.DefaultMentionBase.
	MentionBase string
}

// DefaultOptions links URLs and email addresses but not mentions.
func DefaultOptions() Options {
	return Options{URLs: true, Emails: true}
}

// Link rewrites the text nodes of input, wrapping recognized URLs, emails,
// and mentions in anchor tags. Tag nodes pass through verbatim, as does any
// text inside an <a>, <script>, <style>, <title>, or <textarea> body.
// Wherever nothing is recognized, the output is byte-identical to the
// input.
func Link(input string, o Options) string {
	mo := matchers.Options{
		URLs:        o.URLs,
		Emails:      o.Emails,
		Mentions:    o.Mentions,
		MentionBase: o.MentionBase,
	}

	var b strings.Builder
	b.Grow(len(input))
	depth := 0
	for t := range Events(input) {
		switch t.Type {
		case TextToken:
			if depth > 0 {
				b.WriteString(t.Raw)
				continue
			}
			b.WriteString(rewrite(t.Raw, mo))
		default:
			if skippedContext(t.DataAtom) {
				switch t.Type {
				case StartTagToken:
					depth++
				case EndTagToken:
					if depth > 0 {
						depth--
					}
				}
			}
			b.WriteString(t.Raw)
		}
	}
	return b.String()
}

// skippedContext reports whether text inside the element must not be
// rewritten: existing links stay as they are, and script/style/title/
// textarea bodies are not prose.
func skippedContext(a atom.Atom) bool {
	switch a {
	case atom.A, atom.Script, atom.Style, atom.Title, atom.Textarea:
		return true
	}
	return false
}

func rewrite(text string, o matchers.Options) string {
	ms := matchers.Find(text, o)
	if len(ms) == 0 {
		return text
	}
	// Match offsets are rune-based.
	runes := []rune(text)
	var b strings.Builder
	last := 0
	for _, m := range ms {
		b.WriteString(string(runes[last:m.Start]))
		b.WriteString(`<a href="`)
		b.WriteString(m.Href)
		b.WriteString(`">`)
		b.WriteString(m.Text)
		b.WriteString(`</a>`)
		last = m.End
	}
	b.WriteString(string(runes[last:]))
	return b.String()
}
