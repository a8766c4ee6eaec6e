package lr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// EBNF writes the grammar in the EBNF dialect of golang.org/x/exp/ebnf.
// Non-terminals become production names (brackets removed, first letter
// upper-cased), terminals become quoted tokens. Alternatives of the same LHS
// are merged into one production; epsilon-alternatives turn the production
// into an option.
//
// Bracketed symbols which are never a LHS are written as production names as
// well, so that Verify reports them as undefined.
func (g *Grammar) EBNF() string {
	var order []string
	alts := make(map[string][]string)
	hasEps := make(map[string]bool)
	g.EachRule(func(r Rule) {
		if _, seen := alts[r.LHS]; !seen && !hasEps[r.LHS] {
			order = append(order, r.LHS)
		}
		if r.IsEpsilon() {
			hasEps[r.LHS] = true
			if alts[r.LHS] == nil {
				alts[r.LHS] = []string{}
			}
			return
		}
		seq := make([]string, len(r.RHS))
		for i, sym := range r.RHS {
			if g.IsNonTerminal(sym) || IsBracketed(sym) {
				seq[i] = productionName(sym)
			} else {
				seq[i] = strconv.Quote(sym)
			}
		}
		alts[r.LHS] = append(alts[r.LHS], strings.Join(seq, " "))
	})
	var b bytes.Buffer
	for _, lhs := range order {
		body := strings.Join(alts[lhs], " | ")
		switch {
		case body == "":
			body = `""`
		case hasEps[lhs]:
			body = "[ " + body + " ]"
		}
		fmt.Fprintf(&b, "%s = %s .\n", productionName(lhs), body)
	}
	return b.String()
}

// Verify checks the grammar for consistency: every bracketed symbol must be
// defined by at least one rule, and every rule must be reachable from the
// start symbol. Verify knows nothing about parse tables; it catches typing
// errors in hand-written rule files.
func (g *Grammar) Verify() error {
	start := g.StartSymbol()
	if start == "" {
		return fmt.Errorf("grammar %s is empty: %w", g.Name, ErrMalformedRule)
	}
	if r, ok := g.rules[0]; ok && start != r.LHS {
		start = r.LHS // verify from the augmenting production
	}
	src := g.EBNF()
	tracer().Debugf("EBNF for grammar %s:\n%s", g.Name, src)
	eg, err := ebnf.Parse(g.Name, strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("grammar %s: %v: %w", g.Name, err, ErrMalformedRule)
	}
	if err = ebnf.Verify(eg, productionName(start)); err != nil {
		return fmt.Errorf("grammar %s: %v: %w", g.Name, err, ErrMalformedRule)
	}
	return nil
}

// productionName converts a non-terminal to an identifier which ebnf treats
// as a non-lexical production.
func productionName(sym string) string {
	name := []rune(StripBrackets(sym))
	for i, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			name[i] = '_'
		}
	}
	if len(name) == 0 || !unicode.IsLetter(name[0]) {
		name = append([]rune{'X'}, name...)
	}
	name[0] = unicode.ToUpper(name[0])
	return string(name)
}
