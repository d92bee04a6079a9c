package chunklex

import (
	"fmt"
	"strings"
)

// --- Tokens ----------------------------------------------------------------

// Token is a lexeme together with its category. Tokens are values and are never
// modified after creation.
//
// A token behaves like its content string where comparisons are concerned:
//
//    tok.Is("34.5")        // true for a token with content "34.5"
//    tok.Compare("34")     // same as strings.Compare(tok.Content(), "34")
//
// The type label is a category chosen by the application, e.g. "number".
type Token struct {
	content string
	typ     string
	span    Span
}

// MakeToken creates a token.
func MakeToken(content, typ string, span Span) Token {
	return Token{
		content: content,
		typ:     typ,
		span:    span,
	}
}

// Content returns the matched text.
func (t Token) Content() string {
	return t.content
}

// Type returns the category label of the token.
func (t Token) Type() string {
	return t.typ
}

// Span returns the byte positions the token covers in the input stream.
func (t Token) Span() Span {
	return t.span
}

// String returns the content of the token.
func (t Token) String() string {
	return t.content
}

// Is reports whether the content of t equals s.
func (t Token) Is(s string) bool {
	return t.content == s
}

// Compare compares the content of t with s, in the manner of strings.Compare.
func (t Token) Compare(s string) int {
	return strings.Compare(t.content, s)
}

// Equal reports whether two tokens have the same content. Types and spans
// are not considered.
func (t Token) Equal(other Token) bool {
	return t.content == other.content
}

// Less orders tokens by content.
func (t Token) Less(other Token) bool {
	return t.content < other.content
}

// Debug is a verbose string representation, including type and span.
func (t Token) Debug() string {
	return fmt.Sprintf("%s%q@%s", t.typ, t.content, t.span)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes
// a start position and the position just behind the end, counted from the
// start of the input stream.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull reports whether s is the zero span. Tokens never have a null span,
// as every token covers at least one byte.
func (s Span) IsNull() bool {
	return s[0] == 0 && s[1] == 0
}

// Extend returns the smallest span covering both s and other. A null span
// acts as the neutral element, so spans may be folded starting from Span{}.
func (s Span) Extend(other Span) Span {
	switch {
	case s.IsNull():
		return other
	case other.IsNull():
		return s
	}
	return Span{min(s[0], other[0]), max(s[1], other[1])}
}

// String returns a span in the form "(from…to)".
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s.From(), s.To())
}
