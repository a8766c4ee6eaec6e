package tablr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EndMarker is the terminal symbol marking the end of input. Scanners append it
// to every token sequence, and the driver uses it as lookahead once the input
// is exhausted.
const EndMarker = "$"

// errorPrefix starts the name of tokens which represent lexical errors.
const errorPrefix = "ERROR("

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by a scanner and
// reflect terminals of a grammar.
//
// The parse driver consults only the Name of a token. Lexeme and Span are
// carried along for diagnostics:
//
//    Name   = "identificador"   // terminal symbol, as named in the parse table
//    Lexeme = "foo"             // lexeme how it appeared in the input
//    Span   = 4…7               // byte offsets in the input
//
type Token struct {
	Name   string
	Lexeme string
	Span   Span
}

// MakeToken creates a token from its parts.
func MakeToken(name, lexeme string, span Span) Token {
	return Token{Name: name, Lexeme: lexeme, Span: span}
}

// EOF creates an end-of-input token positioned at pos.
func EOF(pos uint64) Token {
	return Token{Name: EndMarker, Span: Span{pos, pos}}
}

// ErrorToken creates a token for a character which no lexical pattern
// matched. The offending character is part of the token's name, e.g. "ERROR(@)",
// so it is visible wherever the token name is shown.
func ErrorToken(r rune, pos uint64) Token {
	lexeme := string(r)
	return Token{
		Name:   errorPrefix + lexeme + ")",
		Lexeme: lexeme,
		Span:   Span{pos, pos + uint64(utf8.RuneLen(r))},
	}
}

// IsEOF is true for the end-of-input token.
func (t Token) IsEOF() bool {
	return t.Name == EndMarker
}

// IsError is true for tokens created by ErrorToken.
func (t Token) IsError() bool {
	return strings.HasPrefix(t.Name, errorPrefix) && strings.HasSuffix(t.Name, ")")
}

func (t Token) String() string {
	if t.Lexeme == "" || t.Lexeme == t.Name {
		return fmt.Sprintf("%s%v", t.Name, t.Span)
	}
	return fmt.Sprintf("%s(%q)%v", t.Name, t.Lexeme, t.Span)
}

// Names projects a token sequence onto the sequence of its terminal names.
func Names(tokens []Token) []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Name
	}
	return names
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input. A span denotes a start
// position and the position just behind the end, both as byte offsets.
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

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other. A null span
// does not contribute.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
