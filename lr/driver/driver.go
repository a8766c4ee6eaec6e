/*
Package driver provides the table-driven LR parse driver of tablr.

The driver does not construct parse tables. It consults a table oracle, usually
a *table.Table loaded from CSV, and a grammar which gives the rules the table
refers to by number. With these it runs a stack automaton over a token
sequence, building a derivation tree bottom-up as rules are reduced.

Usage

	g := lr.Default()                                  // rule catalog
	t, err := table.ReadCSV(f)                         // ACTION/GOTO table
	p := driver.New(g, t)
	result, err := p.Parse(scanner.ScanString("int foo(){}"))
	if err != nil {
		// structural error: table and grammar do not fit
	}
	switch result.Outcome {
	case driver.Accepted, driver.Terminated:
		fmt.Print(result.Root)
	case driver.Error:
		fmt.Println(result.Err)
	}

Parse runs to completion and stops at the first syntax error; there is no
error recovery. Every step of the automaton is recorded in the result's trace.

A Parser holds no state of a parse run. One Parser may be used by any number
of goroutines concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package driver

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tablr/tablr"
	"github.com/tablr/tablr/lr"
	"github.com/tablr/tablr/lr/table"
	"github.com/tablr/tablr/lr/tree"
)

// tracer traces with key 'tablr.lr'.
func tracer() tracing.Trace {
	return tracing.Select("tablr.lr")
}

// Oracle answers table look-ups. For a terminal symbol the answer is a shift,
// reduce or accept action, for a non-terminal it is a goto transition.
// Unknown states and symbols yield an action of kind None.
type Oracle interface {
	Action(state int, symbol string) table.Action
}

var _ Oracle = (*table.Table)(nil)

// Parser is a table-driven LR parser. Create one with New.
type Parser struct {
	G      *lr.Grammar
	oracle Oracle
	start  string     // designated start symbol, bare name
	onStep func(Step) // observer, may be nil
}

// Option configures a parser.
type Option func(p *Parser)

// StartSymbol sets the non-terminal whose first reduction yields the root of
// the derivation tree. The default is the start symbol of the grammar.
func StartSymbol(name string) Option {
	return func(p *Parser) {
		p.start = lr.StripBrackets(name)
	}
}

// OnStep sets a function to be called for every step of a parse run, right
// after the step has been recorded in the trace.
func OnStep(f func(Step)) Option {
	return func(p *Parser) {
		p.onStep = f
	}
}

// New creates a parser for a grammar and a table oracle.
func New(g *lr.Grammar, oracle Oracle, opts ...Option) *Parser {
	p := &Parser{
		G:      g,
		oracle: oracle,
		start:  lr.StripBrackets(g.StartSymbol()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// run holds the state of a single parse run.
type run struct {
	parser *Parser
	stack  *stack
	input  []tablr.Token
	eof    tablr.Token // lookahead after the end marker has been shifted
	result *Result
}

// ParseNames is a convenience function for parsing a sequence of terminal
// names, as e.g. produced by tablr.Names.
func (p *Parser) ParseNames(names ...string) (*Result, error) {
	tokens := make([]tablr.Token, len(names))
	for i, name := range names {
		tokens[i] = tablr.MakeToken(name, name, tablr.Span{uint64(i), uint64(i + 1)})
	}
	return p.Parse(tokens)
}

// Parse runs the automaton over a token sequence. If the sequence does not
// end with the end marker "$", one is appended.
//
// Syntax errors are not returned as errors, but reported in the result with
// outcome Error. A non-nil error signals a structural problem of table or
// grammar (ErrUnknownRule, ErrStackUnderflow); in this case the result
// reflects the run up to the failing step.
func (p *Parser) Parse(tokens []tablr.Token) (*Result, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.G == nil || p.oracle == nil {
		return nil, fmt.Errorf("parser not initialized")
	}
	input := withEndMarker(tokens)
	r := &run{
		parser: p,
		stack:  newStack(),
		input:  input,
		eof:    input[len(input)-1],
		result: &Result{Outcome: Running},
	}
	for r.result.Outcome == Running {
		if err := r.step(); err != nil {
			r.result.Outcome = Error
			tracer().Errorf("parse aborted: %v", err)
			return r.result, err
		}
	}
	tracer().Infof("parse finished with outcome %s after %d steps", r.result.Outcome, len(r.result.Trace))
	return r.result, nil
}

func withEndMarker(tokens []tablr.Token) []tablr.Token {
	input := make([]tablr.Token, len(tokens), len(tokens)+1)
	copy(input, tokens)
	if len(input) == 0 {
		return append(input, tablr.EOF(0))
	}
	if last := input[len(input)-1]; !last.IsEOF() {
		input = append(input, tablr.EOF(last.Span.To()))
	}
	return input
}

// step performs a single action of the automaton.
func (r *run) step() error {
	state, ok := r.stack.top()
	if !ok {
		return ErrStackUnderflow
	}
	lookahead := r.lookahead()
	action := r.parser.oracle.Action(state, lookahead.Name)
	tracer().Debugf("action(%d,%s) = %s", state, lookahead.Name, actionString(action))
	switch action.Kind {
	case table.Shift:
		r.record(action.String())
		tracer().Debugf("shifting %v, next state = %d", lookahead, action.Target)
		r.stack.pushSymbol(tree.Leaf(lookahead), action.Target)
		if len(r.input) > 0 {
			r.input = r.input[1:]
		}
	case table.Reduce:
		r.record(action.String())
		return r.reduce(action.Target)
	case table.Accept:
		r.record(action.String())
		r.result.Outcome = Accepted
	default:
		r.fail(&SyntaxError{
			Kind:   NoAction,
			State:  state,
			Symbol: lookahead.Name,
			Span:   lookahead.Span,
		})
	}
	return nil
}

// lookahead returns the next input token. Once the end marker has been
// shifted, the input is empty and the end marker is returned again.
func (r *run) lookahead() tablr.Token {
	if len(r.input) == 0 {
		return r.eof
	}
	return r.input[0]
}

// reduce performs a reduce action for a rule
//
//    LHS ::= X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as
//
//    [TOS]  Sn Xn ... S1 X1  S0 ...
//
// After popping them, S0 is exposed, and the goto transition for S0 and LHS
// is followed.
func (r *run) reduce(ruleno int) error {
	if ruleno == 0 {
		tracer().Infof("reduce by rule 0, parse terminated")
		r.result.Outcome = Terminated
		return nil
	}
	rule, ok := r.parser.G.Rule(ruleno)
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownRule, ruleno)
	}
	tracer().Infof("reduce %v", rule)
	popped, err := r.stack.pop(rule.Len())
	if err != nil {
		return fmt.Errorf("reducing %v: %w", rule, err)
	}
	node := tree.Reduce(rule.LHS, popped)
	exposed, ok := r.stack.top()
	if !ok {
		return ErrStackUnderflow
	}
	next := r.parser.oracle.Action(exposed, rule.LHS)
	if next.Kind != table.Goto {
		r.stack.pushNode(node)
		r.fail(&SyntaxError{
			Kind:   NoGoto,
			State:  exposed,
			Symbol: rule.LHS,
			Span:   r.lookahead().Span,
		})
		return nil
	}
	tracer().Debugf("reduced to %s, goto state %d", rule.LHS, next.Target)
	r.stack.pushSymbol(node, next.Target)
	if r.result.Root == nil && lr.StripBrackets(rule.LHS) == r.parser.start {
		tracer().Debugf("%s is root of derivation tree", rule.LHS)
		r.result.Root = node
	}
	return nil
}

// fail halts the run with a syntax error, which is recorded as the final
// step of the trace.
func (r *run) fail(err *SyntaxError) {
	tracer().Infof("%v", err)
	r.record(err.Error())
	r.result.Err = err
	r.result.Outcome = Error
}

// record appends a step to the trace.
func (r *run) record(action string) {
	step := Step{
		Stack:  r.stack.String(),
		Input:  strings.Join(tablr.Names(r.input), " "),
		Action: action,
	}
	r.result.Trace = append(r.result.Trace, step)
	if r.parser.onStep != nil {
		r.parser.onStep(step)
	}
}

// actionString is a short helper to stringify an action for tracing.
func actionString(a table.Action) string {
	if a.IsNone() {
		return "<none>"
	}
	return a.String()
}
