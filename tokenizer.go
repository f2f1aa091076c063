package linkify

import (
	"io"
	"strings"

	"github.com/linkifyhq/linkify/internal/loc"
	"golang.org/x/net/html/atom"
)

// A Tokenizer returns a stream of tag and text tokens for an HTML fragment.
//
// The scanner is a single forward pass: bytes accumulate into a text token
// until a '<' is found that completes a full tag per the grammar below. A
// '<' that completes no tag stays inside the surrounding text; malformed
// markup is never an error, it is simply text. The emitted raw spans
// partition the input exactly, with no gaps and no overlaps.
//
// The grammar has two alternatives, tried in order at each '<':
//
//	doctype: "<!DOCTYPE" (case-insensitive), zero or more whitespace-
//	         separated tokens (name, name=value, or a bare quoted value),
//	         optional whitespace, ">".
//	element: "<", optional "/", a tag name ([0-9A-Za-z] then [0-9A-Za-z:]*),
//	         zero or more whitespace-separated attributes (name or
//	         name=value), optional whitespace, optional "/", ">".
//
// Quoted attribute values run minimally to the next matching quote and may
// contain anything else, including '>' and whitespace. Every helper scans
// with a local cursor and commits only on a complete match, so there is no
// backtracking and the scan is linear in the input length.
type Tokenizer struct {
	buf []byte
	// buf[raw.Start:raw.End] holds the raw bytes of the current token.
	raw loc.Span
	// buf[data.Start:data.End] holds the current tag token's name.
	data loc.Span
	// tt is the TokenType of the current token.
	tt TokenType
	// err is set to io.EOF once the input is exhausted.
	err error
	// attr holds the key/value spans of the current tag token.
	attr []attrSpans
}

type attrSpans struct {
	key, val loc.Span
	typ      AttributeType
}

// pendingTag is the result of a successful speculative tag scan, committed
// into the Tokenizer only once any preceding text has been returned.
type pendingTag struct {
	tt   TokenType
	name loc.Span
	end  int
}

// NewTokenizer returns a new Tokenizer for the given input, assumed to be
// UTF-8 encoded. The input may be empty.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{buf: []byte(input)}
}

// Err returns io.EOF after the most recent ErrorToken, nil otherwise. The
// end of the input is the only condition that produces an ErrorToken.
func (z *Tokenizer) Err() error {
	if z.tt != ErrorToken {
		return nil
	}
	return z.err
}

// Raw returns the exact input bytes of the current token. Concatenating Raw
// across a whole scan reproduces the input byte for byte.
func (z *Tokenizer) Raw() []byte {
	return z.buf[z.raw.Start:z.raw.End]
}

// Next scans the next token and returns its type.
func (z *Tokenizer) Next() TokenType {
	z.raw.Start = z.raw.End
	z.data = loc.Span{Start: z.raw.End, End: z.raw.End}
	z.attr = z.attr[:0]

	if z.raw.End >= len(z.buf) {
		z.err = io.EOF
		z.tt = ErrorToken
		return z.tt
	}

	for i := z.raw.End; i < len(z.buf); i++ {
		if z.buf[i] != '<' {
			continue
		}
		t, ok := z.scanTag(i)
		if !ok {
			continue
		}
		// We have a tag, but we might have accumulated some text before
		// it. If so, return the text first; the tag is rescanned on the
		// subsequent call to Next.
		if i > z.raw.Start {
			z.raw.End = i
			z.data.End = i
			z.tt = TextToken
			return z.tt
		}
		z.raw.End = t.end
		z.data = t.name
		if t.tt == DoctypeToken {
			// A failed element attempt earlier in this call may have left
			// attribute spans behind; a doctype carries none.
			z.attr = z.attr[:0]
		}
		z.tt = t.tt
		return z.tt
	}

	// No further tag: the rest of the input is one text token.
	z.raw.End = len(z.buf)
	z.data.End = len(z.buf)
	z.attr = z.attr[:0]
	z.tt = TextToken
	return z.tt
}

// Token returns the current Token. The result remains valid after
// subsequent Next calls.
func (z *Tokenizer) Token() Token {
	t := Token{Type: z.tt, Loc: loc.Loc{Start: z.raw.Start}, Raw: string(z.Raw())}
	switch z.tt {
	case TextToken:
		t.Data = t.Raw
	case StartTagToken, EndTagToken, SelfClosingTagToken, DoctypeToken:
		name := strings.ToLower(string(z.buf[z.data.Start:z.data.End]))
		if a := atom.Lookup([]byte(name)); a != 0 {
			t.DataAtom, t.Data = a, a.String()
		} else {
			t.DataAtom, t.Data = 0, name
		}
		for _, a := range z.attr {
			t.Attr = append(t.Attr, Attribute{
				Key:    string(z.buf[a.key.Start:a.key.End]),
				KeyLoc: loc.Loc{Start: a.key.Start},
				Val:    string(z.buf[a.val.Start:a.val.End]),
				ValLoc: loc.Loc{Start: a.val.Start},
				Type:   a.typ,
			})
		}
	}
	return t
}

// scanTag attempts a tag match at pos, where buf[pos] == '<'. The doctype
// alternative is tried first so a DOCTYPE is not mis-read as a malformed
// element. Nothing is committed on failure.
func (z *Tokenizer) scanTag(pos int) (pendingTag, bool) {
	if t, ok := z.scanDoctype(pos); ok {
		return t, true
	}
	return z.scanElement(pos)
}

const doctypeLiteral = "!doctype"

// scanDoctype matches "<!DOCTYPE ...>" at pos. The declaration's
// attribute-like tokens are each a name, a name=value pair, or a bare
// quoted value, so quoted material inside the declaration cannot end it
// early.
func (z *Tokenizer) scanDoctype(pos int) (pendingTag, bool) {
	i := pos + 1
	if len(z.buf)-i < len(doctypeLiteral) {
		return pendingTag{}, false
	}
	for k := 0; k < len(doctypeLiteral); k++ {
		if lower(z.buf[i+k]) != doctypeLiteral[k] {
			return pendingTag{}, false
		}
	}
	name := loc.Span{Start: i, End: i + len(doctypeLiteral)}
	i += len(doctypeLiteral)

	for {
		j := z.skipWhitespace(i)
		if j >= len(z.buf) {
			return pendingTag{}, false
		}
		if z.buf[j] == '>' {
			return pendingTag{tt: DoctypeToken, name: name, end: j + 1}, true
		}
		// Each further token needs at least one whitespace separator.
		if j == i {
			return pendingTag{}, false
		}
		if c := z.buf[j]; c == '"' || c == '\'' {
			end, ok := z.scanQuoted(j)
			if !ok {
				return pendingTag{}, false
			}
			i = end
			continue
		}
		_, end, ok := z.scanAttribute(j)
		if !ok {
			return pendingTag{}, false
		}
		i = end
	}
}

// scanElement matches a start, end, or self-closing tag at pos, where
// buf[pos] == '<'.
func (z *Tokenizer) scanElement(pos int) (pendingTag, bool) {
	t := pendingTag{tt: StartTagToken}
	i := pos + 1
	if i < len(z.buf) && z.buf[i] == '/' {
		t.tt = EndTagToken
		i++
	}
	if i >= len(z.buf) || !isAlphanumeric(z.buf[i]) {
		return pendingTag{}, false
	}
	t.name.Start = i
	for i < len(z.buf) && (isAlphanumeric(z.buf[i]) || z.buf[i] == ':') {
		i++
	}
	t.name.End = i

	z.attr = z.attr[:0]
	for {
		j := z.skipWhitespace(i)
		if j >= len(z.buf) {
			return pendingTag{}, false
		}
		switch z.buf[j] {
		case '>':
			t.end = j + 1
			return t, true
		case '/':
			// The self-close marker must sit directly before '>'. It does
			// not make an end tag: "<br/>" and "<br>" both open.
			if j+1 < len(z.buf) && z.buf[j+1] == '>' {
				if t.tt == StartTagToken {
					t.tt = SelfClosingTagToken
				}
				t.end = j + 2
				return t, true
			}
			return pendingTag{}, false
		}
		// Attributes are whitespace-separated.
		if j == i {
			return pendingTag{}, false
		}
		a, end, ok := z.scanAttribute(j)
		if !ok {
			return pendingTag{}, false
		}
		z.attr = append(z.attr, a)
		i = end
	}
}

// scanAttribute matches `name` or `name=value` at pos, with optional
// whitespace around '='. A '=' that is not followed by a valid value fails
// the attribute, and with it the whole tag: no grammar path can resume
// after a bare '='.
func (z *Tokenizer) scanAttribute(pos int) (attrSpans, int, bool) {
	i := pos
	for i < len(z.buf) && isAttrNameByte(z.buf[i]) {
		i++
	}
	if i == pos {
		return attrSpans{}, 0, false
	}
	a := attrSpans{key: loc.Span{Start: pos, End: i}, typ: EmptyAttribute}

	j := z.skipWhitespace(i)
	if j >= len(z.buf) || z.buf[j] != '=' {
		// Bare attribute. The skipped whitespace is left for the caller,
		// since it may separate the next attribute.
		return a, i, true
	}
	j = z.skipWhitespace(j + 1)
	if j >= len(z.buf) {
		return attrSpans{}, 0, false
	}
	// A quote at the value's start always means a quoted value; an
	// unterminated quote fails the tag rather than falling back to the
	// bare-token form.
	if c := z.buf[j]; c == '"' || c == '\'' {
		end, ok := z.scanQuoted(j)
		if !ok {
			return attrSpans{}, 0, false
		}
		a.typ = QuotedAttribute
		a.val = loc.Span{Start: j + 1, End: end - 1}
		return a, end, true
	}
	k := j
	for k < len(z.buf) && isUnquotedValueByte(z.buf[k]) {
		k++
	}
	if k == j {
		return attrSpans{}, 0, false
	}
	a.typ = UnquotedAttribute
	a.val = loc.Span{Start: j, End: k}
	return a, k, true
}

// scanQuoted matches a quoted string at pos, minimally up to the next
// matching quote. buf[pos] is the opening quote. The value may contain any
// other byte, including '>' and whitespace. Returns the index just past the
// closing quote.
func (z *Tokenizer) scanQuoted(pos int) (int, bool) {
	q := z.buf[pos]
	for i := pos + 1; i < len(z.buf); i++ {
		if z.buf[i] == q {
			return i + 1, true
		}
	}
	return 0, false
}

// skipWhitespace returns the index of the first non-whitespace byte at or
// after pos, which may be len(buf).
func (z *Tokenizer) skipWhitespace(pos int) int {
	for pos < len(z.buf) && isWhitespace(z.buf[pos]) {
		pos++
	}
	return pos
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func isAlphanumeric(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// Whitespace is the ASCII set: SPACE, TAB, LF, VT, FF, CR.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isAttrNameByte reports whether c may appear in an attribute name: any
// byte except whitespace, NUL, quotes, '>', '/', '=', and the control
// ranges 0x01-0x1F and 0x7F.
func isAttrNameByte(c byte) bool {
	switch c {
	case '"', '\'', '>', '/', '=', ' ':
		return false
	}
	return c > 0x1f && c != 0x7f
}

// isUnquotedValueByte reports whether c may appear in an unquoted attribute
// value: any byte except quotes, backtick, '=', '<', '>', and whitespace.
func isUnquotedValueByte(c byte) bool {
	switch c {
	case '"', '\'', '`', '=', '<', '>':
		return false
	}
	return !isWhitespace(c)
}
