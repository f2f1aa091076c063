package linkify

import "iter"

// Parse splits text into tag nodes and text nodes, invoking the callbacks
// synchronously and strictly in document order. onTagNode receives the
// exact matched substring, the lower-cased tag name ("!doctype" for a
// DOCTYPE declaration), and whether the match begins with "</". onTextNode
// receives each maximal run of input that matched no tag. Either callback
// may be nil.
//
// Concatenating the raw arguments across all callbacks, in call order,
// reproduces text exactly. Parse keeps no state between invocations and is
// safe to call concurrently on independent inputs.
func Parse(text string, onTagNode func(raw, tagName string, isClosingTag bool), onTextNode func(raw string)) {
	z := NewTokenizer(text)
	for {
		switch tt := z.Next(); tt {
		case ErrorToken:
			return
		case TextToken:
			if onTextNode != nil {
				onTextNode(string(z.Raw()))
			}
		default:
			if onTagNode != nil {
				t := z.Token()
				onTagNode(t.Raw, t.Data, tt == EndTagToken)
			}
		}
	}
}

// Events returns the token stream for text as a lazy sequence, for callers
// preferring pull-based iteration over push callbacks. The sequence is
// single-use but Events may be called any number of times.
func Events(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		z := NewTokenizer(text)
		for z.Next() != ErrorToken {
			if !yield(z.Token()) {
				return
			}
		}
	}
}
