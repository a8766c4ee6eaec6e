/*
Package scanner defines an interface for scanners to be used with the parse
driver, and provides the default scanner of tablr.

The default scanner is a priority scanner: it tries an ordered list of named
patterns at the current input position, and the first pattern that matches
wins. This is different from the usual longest-match rule of DFA scanners. A
DFA scanner built on lexmachine lives in sub-package `lexmach`.

Characters no pattern matches do not stop scanning. They are reported to the
scanner's error handler and turned into error tokens "ERROR(c)", which the
parse driver will subsequently reject as a syntax error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package scanner

import (
	"fmt"
	"regexp"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tablr/tablr"
)

// tracer traces with key 'tablr.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("tablr.scanner")
}

// Tokenizer is a scanner interface. After the input is exhausted, NextToken
// returns the end marker "$", and continues to do so.
type Tokenizer interface {
	NextToken() tablr.Token
	SetErrorHandler(func(error))
}

// LexError is reported to a scanner's error handler for every character
// which is not matched by any pattern.
type LexError struct {
	Pos  uint64 // byte offset in the input
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Scan drains a tokenizer. The returned slice ends with the end marker token.
func Scan(t Tokenizer) []tablr.Token {
	var tokens []tablr.Token
	for {
		token := t.NextToken()
		tokens = append(tokens, token)
		if token.IsEOF() {
			return tokens
		}
	}
}

// --- Patterns --------------------------------------------------------------

// Pattern is a named lexical pattern. Name is the terminal symbol tokens are
// given, Expr a regular expression in the syntax common to Go's regexp
// package and lexmachine.
//
// A word-bounded pattern only matches if there is a word boundary before and
// after the match. This keeps "int" from matching at the start of "integer",
// and "if" from matching inside "elif".
type Pattern struct {
	Name        string
	Expr        string
	WordBounded bool
}

// DefaultPatterns is the pattern list for the default grammar, in order of
// priority. Keywords precede identificador, real precedes entero and "=="
// precedes "=". The language has no subtraction or division: "-" and "/"
// are not matched and scan as error tokens.
var DefaultPatterns = []Pattern{
	{Name: "(", Expr: `\(`},
	{Name: ")", Expr: `\)`},
	{Name: "{", Expr: `\{`},
	{Name: "}", Expr: `\}`},
	{Name: "tipo", Expr: `int|float`, WordBounded: true},
	{Name: "if", Expr: `if`, WordBounded: true},
	{Name: "else", Expr: `else`, WordBounded: true},
	{Name: "while", Expr: `while`, WordBounded: true},
	{Name: "return", Expr: `return`, WordBounded: true},
	{Name: "identificador", Expr: `[a-zA-Z_][a-zA-Z0-9_]*`, WordBounded: true},
	{Name: "real", Expr: `[0-9]+\.[0-9]+`, WordBounded: true},
	{Name: "entero", Expr: `[0-9]+`, WordBounded: true},
	{Name: "cadena", Expr: `"[^"\n]*"`},
	{Name: "opSuma", Expr: `\+`},
	{Name: "opMul", Expr: `\*`},
	{Name: "opRelac", Expr: `<=|>=|<|>`},
	{Name: "opIgualdad", Expr: `==|!=`},
	{Name: "opAnd", Expr: `&&`},
	{Name: "opOr", Expr: `\|\|`},
	{Name: "opNot", Expr: `!`},
	{Name: "=", Expr: `=`},
	{Name: ";", Expr: `;`},
	{Name: ",", Expr: `,`},
}

// --- Lexer -----------------------------------------------------------------

// Lexer holds a compiled pattern list. A Lexer is immutable and may be used
// to create any number of scanners, concurrently.
type Lexer struct {
	patterns []compiled
}

type compiled struct {
	name        string
	re          *regexp.Regexp
	wordBounded bool
}

// Compile compiles a pattern list. Pattern order is significant.
func Compile(patterns []Pattern) (*Lexer, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("lexer needs at least one pattern")
	}
	lexer := &Lexer{patterns: make([]compiled, len(patterns))}
	for i, p := range patterns {
		if p.Name == "" {
			return nil, fmt.Errorf("pattern #%d has no name", i+1)
		}
		expr := `^(?:` + p.Expr + `)`
		if p.WordBounded {
			expr += `\b`
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", p.Name, err)
		}
		lexer.patterns[i] = compiled{name: p.Name, re: re, wordBounded: p.WordBounded}
	}
	return lexer, nil
}

var defaultLexer struct {
	once  sync.Once
	lexer *Lexer
}

// Default returns the lexer for DefaultPatterns.
func Default() *Lexer {
	defaultLexer.once.Do(func() {
		lexer, err := Compile(DefaultPatterns)
		if err != nil {
			panic(fmt.Sprintf("default patterns do not compile: %v", err))
		}
		defaultLexer.lexer = lexer
	})
	return defaultLexer.lexer
}

// Scanner creates a scanner for an input text.
func (lexer *Lexer) Scanner(input string) *PriorityScanner {
	return &PriorityScanner{
		lexer: lexer,
		input: input,
		Error: logError,
	}
}

// ScanString tokenizes a text with the default patterns. The result ends with
// the end marker token.
func ScanString(input string) []tablr.Token {
	return Scan(Default().Scanner(input))
}

// --- Priority scanner ------------------------------------------------------

// PriorityScanner is the default scanner, implementing the Tokenizer
// interface. Create one with New or (*Lexer).Scanner.
type PriorityScanner struct {
	lexer *Lexer
	input string
	pos   int
	Error func(error) // error handler
}

var _ Tokenizer = (*PriorityScanner)(nil)

// New compiles a pattern list and creates a scanner for an input text.
func New(patterns []Pattern, input string) (*PriorityScanner, error) {
	lexer, err := Compile(patterns)
	if err != nil {
		return nil, err
	}
	return lexer.Scanner(input), nil
}

// SetErrorHandler sets an error handler for the scanner.
func (s *PriorityScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken is part of the Tokenizer interface.
func (s *PriorityScanner) NextToken() tablr.Token {
	s.skipSpace()
	if s.pos >= len(s.input) {
		tracer().Debugf("scanner reached end of input")
		return tablr.EOF(uint64(len(s.input)))
	}
	for _, p := range s.lexer.patterns {
		if p.wordBounded && !s.atWordStart() {
			continue
		}
		loc := p.re.FindStringIndex(s.input[s.pos:])
		if loc == nil || loc[1] == 0 {
			continue
		}
		start, end := s.pos, s.pos+loc[1]
		s.pos = end
		return tablr.MakeToken(p.name, s.input[start:end], tablr.Span{uint64(start), uint64(end)})
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	token := tablr.ErrorToken(r, uint64(s.pos))
	if s.Error != nil {
		s.Error(&LexError{Pos: uint64(s.pos), Char: r})
	}
	s.pos += size
	return token
}

func (s *PriorityScanner) skipSpace() {
	for s.pos < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

// atWordStart is true if the character before the current position is not a
// word character. The regexp of a pattern only sees the remaining input, so
// the left boundary has to be checked here.
func (s *PriorityScanner) atWordStart() bool {
	if s.pos == 0 {
		return true
	}
	return !isWordByte(s.input[s.pos-1])
}

// isWordByte matches the \w class of package regexp.
func isWordByte(b byte) bool {
	return b == '_' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
