package linkify

import (
	"strconv"
	"strings"

	"github.com/linkifyhq/linkify/internal/loc"
	"golang.org/x/net/html/atom"
)

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// ErrorToken means the end of the input was reached.
	ErrorToken TokenType = iota
	// TextToken means a text node.
	TextToken
	// A StartTagToken looks like <a>.
	StartTagToken
	// An EndTagToken looks like </a>.
	EndTagToken
	// A SelfClosingTagToken tag looks like <br/>.
	SelfClosingTagToken
	// A DoctypeToken looks like <!DOCTYPE html>.
	DoctypeToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case ErrorToken:
		return "Error"
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	case DoctypeToken:
		return "Doctype"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// AttributeType is the lexical form of an Attribute's value.
type AttributeType uint32

const (
	// QuotedAttribute is k="v" or k='v'.
	QuotedAttribute AttributeType = iota
	// UnquotedAttribute is k=v.
	UnquotedAttribute
	// EmptyAttribute is a bare attribute with no value, like `disabled`.
	EmptyAttribute
)

func (t AttributeType) String() string {
	switch t {
	case QuotedAttribute:
		return "quoted"
	case UnquotedAttribute:
		return "unquoted"
	case EmptyAttribute:
		return "empty"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// An Attribute is a lexically extracted key-value pair from a tag token.
// Key and Val are the exact source bytes; Val excludes the surrounding
// quotes for a QuotedAttribute and is empty for an EmptyAttribute. No
// unescaping or further interpretation is performed.
type Attribute struct {
	Key    string
	KeyLoc loc.Loc
	Val    string
	ValLoc loc.Loc
	Type   AttributeType
}

// A Token consists of a TokenType and some Data: the lower-cased tag name
// for tag tokens (the literal "!doctype" for a DoctypeToken), the content
// for text tokens. Raw is the exact matched substring of the input;
// concatenating Raw over an entire scan reproduces the input byte for byte.
// For tag Tokens, DataAtom is the atom for Data, or zero if Data is not a
// known tag name.
type Token struct {
	Type     TokenType
	DataAtom atom.Atom
	Data     string
	Attr     []Attribute
	Raw      string
	Loc      loc.Loc
}

// String returns a source-shaped representation of the Token.
func (t Token) String() string {
	switch t.Type {
	case ErrorToken:
		return ""
	case TextToken:
		return t.Data
	case StartTagToken, EndTagToken, SelfClosingTagToken, DoctypeToken:
		if t.Raw != "" {
			return t.Raw
		}
		var b strings.Builder
		b.WriteByte('<')
		if t.Type == EndTagToken {
			b.WriteByte('/')
		}
		b.WriteString(t.Data)
		for _, a := range t.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			switch a.Type {
			case QuotedAttribute:
				b.WriteString(`="`)
				b.WriteString(a.Val)
				b.WriteByte('"')
			case UnquotedAttribute:
				b.WriteByte('=')
				b.WriteString(a.Val)
			}
		}
		if t.Type == SelfClosingTagToken {
			b.WriteByte('/')
		}
		b.WriteByte('>')
		return b.String()
	}
	return "Invalid(" + strconv.Itoa(int(t.Type)) + ")"
}
