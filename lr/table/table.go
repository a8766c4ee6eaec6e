/*
Package table implements the table oracle of tablr: a read-only mapping from
(state, symbol) to a parser action.

Tables are not constructed here. They are produced by some external parser
generator and loaded, either from CSV (see ReadCSV) or programmatically with a
Builder. Every cell is decoded exactly once, at load time, into an Action. The
driver never sees the textual cell format.

Columns are addressed by symbol. Non-terminals may be given with or without
angle brackets: "<Expresion>" and "Expresion" address the same column.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package table

import (
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"

	"github.com/tablr/tablr/lr"
	"github.com/tablr/tablr/lr/sparse"
)

// tracer traces with key 'tablr.lr'.
func tracer() tracing.Trace {
	return tracing.Select("tablr.lr")
}

// --- Actions ---------------------------------------------------------------

// Kind is the kind of a parser action.
type Kind int8

// Actions for parser tables. Goto only occurs in non-terminal columns.
const (
	None Kind = iota
	Shift
	Reduce
	Accept
	Goto
)

func (k Kind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	case Goto:
		return "goto"
	}
	return "none"
}

// Action is a decoded table cell. Target is the next state for Shift and Goto,
// and the rule number for Reduce.
type Action struct {
	Kind   Kind
	Target int
}

// ShiftTo returns a shift action to state n.
func ShiftTo(n int) Action { return Action{Kind: Shift, Target: n} }

// ReduceBy returns a reduce action for rule r.
func ReduceBy(r int) Action { return Action{Kind: Reduce, Target: r} }

// GotoState returns a goto transition to state n.
func GotoState(n int) Action { return Action{Kind: Goto, Target: n} }

// AcceptAction is the accept action.
var AcceptAction = Action{Kind: Accept}

// IsNone is true for an empty cell.
func (a Action) IsNone() bool {
	return a.Kind == None
}

// String renders an action in the cell notation of ReadCSV: "d4", "r3",
// "accept", "4" (goto) or "" (none).
func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("d%d", a.Target)
	case Reduce:
		return fmt.Sprintf("r%d", a.Target)
	case Accept:
		return "accept"
	case Goto:
		return fmt.Sprintf("%d", a.Target)
	}
	return ""
}

// Cells store actions as kind<<24 | target; 0 is the empty cell.
const (
	kindShift  = 24
	maxTarget  = 1<<kindShift - 1
	targetMask = maxTarget
)

func encode(a Action) int32 {
	if a.Kind == None {
		return 0
	}
	return int32(a.Kind)<<kindShift | int32(a.Target)
}

func decode(v int32) Action {
	if v == 0 {
		return Action{}
	}
	return Action{Kind: Kind(v >> kindShift), Target: int(v & targetMask)}
}

// --- Table -----------------------------------------------------------------

// ErrConflict is returned when a cell is assigned two different actions.
var ErrConflict = errors.New("conflicting table entries")

// Table is an immutable ACTION/GOTO table. A Table may be shared between
// any number of concurrent parse runs.
type Table struct {
	matrix  *sparse.IntMatrix
	columns map[string]int // column index by bare symbol name
	symbols []string       // symbol names in column order
	rows    int            // row count as loaded; empty trailing rows have no cells
}

func newTable() *Table {
	return &Table{
		matrix:  sparse.NewIntMatrix(0, 0, 0),
		columns: make(map[string]int),
	}
}

// Action returns the action for a state and a symbol. For a non-terminal
// symbol this is the goto transition. Unknown states and symbols without a
// column yield an action of kind None.
func (t *Table) Action(state int, symbol string) Action {
	j, ok := t.columns[lr.StripBrackets(symbol)]
	if !ok || state < 0 {
		return Action{}
	}
	return decode(t.matrix.Value(state, j))
}

// States returns the number of rows of the table.
func (t *Table) States() int {
	if m := t.matrix.M(); m > t.rows {
		return m
	}
	return t.rows
}

// Symbols returns the column symbols, sorted.
func (t *Table) Symbols() []string {
	set := treeset.NewWithStringComparator()
	for _, s := range t.symbols {
		set.Add(s)
	}
	syms := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		syms = append(syms, v.(string))
	}
	return syms
}

// HasColumn is true if the table has a column for symbol.
func (t *Table) HasColumn(symbol string) bool {
	_, ok := t.columns[lr.StripBrackets(symbol)]
	return ok
}

// Each calls f for every non-empty cell, row by row.
func (t *Table) Each(f func(state int, symbol string, a Action)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(i, t.symbols[j], decode(v))
	})
}

// Size returns the number of non-empty cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

func (t *Table) column(symbol string) int {
	name := lr.StripBrackets(symbol)
	if j, ok := t.columns[name]; ok {
		return j
	}
	j := len(t.symbols)
	t.columns[name] = j
	t.symbols = append(t.symbols, name)
	return j
}

func (t *Table) set(state int, symbol string, a Action) error {
	if state < 0 {
		return fmt.Errorf("illegal state %d for symbol %q", state, symbol)
	}
	if a.Target < 0 || a.Target > maxTarget {
		return fmt.Errorf("action target out of range in (%d,%s): %d", state, symbol, a.Target)
	}
	j := t.column(symbol)
	if old := decode(t.matrix.Value(state, j)); !old.IsNone() && old != a {
		return fmt.Errorf("(%d,%s) has %q and %q: %w", state, symbol, old, a, ErrConflict)
	}
	t.matrix.Set(state, j, encode(a))
	return nil
}

// fingerprinted is the hashable content of a table.
type fingerprinted struct {
	Symbols []string
	Cells   []fingerprintCell
}

type fingerprintCell struct {
	State  int
	Column int
	Code   int32
}

// Fingerprint returns a content hash of the table. Tables with equal columns
// (in equal order) and equal cells have equal fingerprints.
func (t *Table) Fingerprint() string {
	fp := fingerprinted{Symbols: t.symbols}
	t.matrix.Each(func(i, j int, v int32) {
		fp.Cells = append(fp.Cells, fingerprintCell{State: i, Column: j, Code: v})
	})
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		tracer().Errorf("cannot hash table: %v", err)
		return ""
	}
	return h
}

// --- Builder ---------------------------------------------------------------

// Builder creates tables programmatically:
//
//    b := table.NewBuilder()
//    b.Shift(0, "a", 2).Reduce(2, "$", 1).Goto(0, "<S>", 1).Accept(1, "$")
//    t, err := b.Table()
//
// The first error is remembered and returned by Table.
type Builder struct {
	t   *Table
	err error
}

// NewBuilder creates a builder for an empty table.
func NewBuilder() *Builder {
	return &Builder{t: newTable()}
}

// Set puts an action into the cell (state, symbol). Setting the same action
// twice is harmless, setting a different one is a conflict.
func (b *Builder) Set(state int, symbol string, a Action) *Builder {
	if b.err != nil {
		return b
	}
	if b.t == nil {
		b.err = errors.New("table builder already finished")
		return b
	}
	b.err = b.t.set(state, symbol, a)
	return b
}

// Shift adds a shift action to state next.
func (b *Builder) Shift(state int, terminal string, next int) *Builder {
	return b.Set(state, terminal, ShiftTo(next))
}

// Reduce adds a reduce action by rule.
func (b *Builder) Reduce(state int, terminal string, rule int) *Builder {
	return b.Set(state, terminal, ReduceBy(rule))
}

// Accept adds an accept action.
func (b *Builder) Accept(state int, terminal string) *Builder {
	return b.Set(state, terminal, AcceptAction)
}

// Goto adds a goto transition for a non-terminal.
func (b *Builder) Goto(state int, nonterminal string, next int) *Builder {
	return b.Set(state, nonterminal, GotoState(next))
}

// Table finishes the builder and returns the table.
func (b *Builder) Table() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.t == nil {
		return nil, errors.New("table builder already finished")
	}
	t := b.t
	b.t = nil
	tracer().Debugf("table with %d states, %d symbols, %d entries", t.States(), len(t.symbols), t.Size())
	return t, nil
}
