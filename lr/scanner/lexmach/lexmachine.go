package lexmach

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/tablr/tablr"
	"github.com/tablr/tablr/lr/scanner"
)

// lexmachine adapter

// tracer traces with key 'tablr.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("tablr.scanner")
}

// whitespace is skipped between tokens.
const whitespace = `( |\t|\n|\r)+`

// Adapter is a lexmachine adapter to use lexmachine as a scanner.
type Adapter struct {
	Lexer *lexmachine.Lexer
	names []string // token names by token type
}

// NewAdapter creates a new lexmachine adapter for a list of patterns. Token
// types are the pattern indexes, making earlier patterns win ties.
//
// NewAdapter will return an error if compiling the DFA failed.
func NewAdapter(patterns []scanner.Pattern) (*Adapter, error) {
	adapter := &Adapter{Lexer: lexmachine.NewLexer()}
	for i, p := range patterns {
		if p.Name == "" {
			return nil, fmt.Errorf("pattern #%d has no name", i+1)
		}
		adapter.names = append(adapter.names, p.Name)
		adapter.Lexer.Add([]byte(p.Expr), MakeToken(p.Name, i))
	}
	adapter.Lexer.Add([]byte(whitespace), Skip)
	if err := compile(adapter.Lexer); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// compile compiles the DFA of a lexer. lexmachine panics on some malformed
// expressions instead of returning an error; compile returns an error in
// either case.
func compile(lexer *lexmachine.Lexer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pattern: %v", r)
		}
	}()
	return lexer.Compile()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *Adapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{
		scanner: s,
		input:   input,
		names:   lm.names,
		Error:   logError,
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   string
	names   []string
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface.
//
// Unconsumed input is skipped character by character, each character
// resulting in an error token.
func (lms *LMScanner) NextToken() tablr.Token {
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		ui, is := err.(*machines.UnconsumedInput)
		if !is || ui.StartTC >= len(lms.input) {
			// lexmachine reports no other errors for a compiled lexer
			lms.Error(err)
			lms.scanner.TC = len(lms.input)
			return tablr.EOF(uint64(len(lms.input)))
		}
		r, size := utf8.DecodeRuneInString(lms.input[ui.StartTC:])
		pos := uint64(ui.StartTC)
		lms.Error(&scanner.LexError{Pos: pos, Char: r})
		lms.scanner.TC = ui.StartTC + size
		return tablr.ErrorToken(r, pos)
	}
	if eof {
		tracer().Debugf("lexmachine scanner reached end of input")
		return tablr.EOF(uint64(len(lms.input)))
	}
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	return tablr.MakeToken(
		lms.names[token.Type],
		string(token.Lexeme),
		tablr.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
