package loc

// Loc is the 0-based byte offset of a location from the start of the input.
type Loc struct {
	Start int
}

// Span is a range of bytes in a Tokenizer's buffer. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}
