package driver

import (
	"errors"
	"fmt"

	"github.com/tablr/tablr"
	"github.com/tablr/tablr/lr/tree"
)

// Outcome is the state of a parse run.
type Outcome int8

// A parse run starts out Running and halts in one of the other outcomes.
// Terminated is the outcome of a reduction by rule 0, the augmenting
// production S' ::= S. It is a successful end of a parse, but distinct from
// an accept action of the table.
const (
	Running Outcome = iota
	Accepted
	Terminated
	Error
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Terminated:
		return "terminated"
	case Error:
		return "error"
	}
	return "?"
}

// Succeeded is true for Accepted and Terminated.
func (o Outcome) Succeeded() bool {
	return o == Accepted || o == Terminated
}

// Step is a snapshot of the automaton, taken before an action is performed.
// Action is the action in table notation ("d4", "r3", "accept") or an error
// message.
type Step struct {
	Stack  string
	Input  string
	Action string
}

// Trace is the sequence of steps of a parse run. The last step always
// reflects the action or error the run halted with.
type Trace []Step

// Last returns the final step of a trace.
func (tr Trace) Last() (Step, bool) {
	if len(tr) == 0 {
		return Step{}, false
	}
	return tr[len(tr)-1], true
}

// Result is the outcome of a parse run.
type Result struct {
	Outcome Outcome
	Trace   Trace
	Root    *tree.Node   // root of the derivation tree, if the start symbol has been reduced
	Err     *SyntaxError // non-nil if Outcome is Error because of a syntax error
}

// --- Errors ----------------------------------------------------------------

// Structural errors. These signal a table or grammar unfit for each other,
// not erroneous input, and are returned as the error of Parse.
var (
	ErrUnknownRule    = errors.New("reduce by unknown rule")
	ErrStackUnderflow = errors.New("parse stack underflow")
)

// SyntaxErrorKind tells what the table was missing.
type SyntaxErrorKind int8

// There is either no action for a lookahead, or no goto transition after a
// reduction.
const (
	NoAction SyntaxErrorKind = iota
	NoGoto
)

// SyntaxError describes why a parse run halted with outcome Error. Symbol is
// the lookahead terminal for NoAction and the reduced non-terminal for NoGoto.
type SyntaxError struct {
	Kind   SyntaxErrorKind
	State  int
	Symbol string
	Span   tablr.Span // of the lookahead token
}

func (e *SyntaxError) Error() string {
	if e.Kind == NoGoto {
		return fmt.Sprintf("syntax error: no goto for state %d and non-terminal %s", e.State, e.Symbol)
	}
	return fmt.Sprintf("syntax error: no action for state %d and token %q at %v", e.State, e.Symbol, e.Span)
}
