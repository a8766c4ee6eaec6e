package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tablr/tablr/lr"
)

// ErrInconsistent is returned by Validate if a table does not fit a grammar.
var ErrInconsistent = errors.New("table does not match grammar")

// Validate checks a table against the grammar it is supposed to be generated
// for. It reports
//
//  - reduce actions naming a rule the grammar does not have,
//  - goto transitions in terminal columns and shift/reduce/accept actions in
//    non-terminal columns,
//  - non-terminals (other than the LHS of rule 0) without a column.
//
// Validate is a pre-flight check for tools. The parse driver does not rely
// on it and detects unknown rules on its own when it meets them.
func Validate(t *Table, g *lr.Grammar) error {
	var problems []string
	nonterm := make(map[string]bool)
	for _, nt := range g.NonTerminals() {
		nonterm[lr.StripBrackets(nt)] = true
	}
	t.Each(func(state int, symbol string, a Action) {
		switch {
		case a.Kind == Reduce:
			if _, ok := g.Rule(a.Target); !ok {
				problems = append(problems, fmt.Sprintf("(%d,%s): reduce by unknown rule %d", state, symbol, a.Target))
			}
			if nonterm[symbol] {
				problems = append(problems, fmt.Sprintf("(%d,%s): reduce in non-terminal column", state, symbol))
			}
		case a.Kind == Goto && !nonterm[symbol]:
			problems = append(problems, fmt.Sprintf("(%d,%s): goto in terminal column", state, symbol))
		case a.Kind != Goto && nonterm[symbol]:
			problems = append(problems, fmt.Sprintf("(%d,%s): %s in non-terminal column", state, symbol, a.Kind))
		}
	})
	augmented := ""
	if r, ok := g.Rule(0); ok {
		augmented = r.LHS
	}
	for _, nt := range g.NonTerminals() {
		if nt != augmented && !t.HasColumn(nt) {
			problems = append(problems, fmt.Sprintf("no goto column for %s", nt))
		}
	}
	if len(problems) > 0 {
		tracer().Infof("table validation found %d problems", len(problems))
		return fmt.Errorf("%w: %s", ErrInconsistent, strings.Join(problems, "; "))
	}
	return nil
}
