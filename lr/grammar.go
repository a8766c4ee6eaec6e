package lr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Epsilon is the textual notation for an empty right-hand side.
const Epsilon = `\e`

// ErrMalformedRule is returned for rules which cannot be part of a grammar.
var ErrMalformedRule = errors.New("malformed rule")

// --- Rules -----------------------------------------------------------------

// Rule is a numbered production LHS ::= RHS. An empty RHS denotes an
// epsilon-production.
type Rule struct {
	Number int
	LHS    string
	RHS    []string
}

// Len returns the number of symbols on the right-hand side, i.e. the number of
// stack frames a reduction by this rule pops.
func (r Rule) Len() int {
	return len(r.RHS)
}

// IsEpsilon is true for an empty production.
func (r Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

func (r Rule) String() string {
	if r.IsEpsilon() {
		return fmt.Sprintf("%s ::= %s", r.LHS, Epsilon)
	}
	return fmt.Sprintf("%s ::= %s", r.LHS, strings.Join(r.RHS, " "))
}

func (r Rule) clone() Rule {
	rhs := make([]string, len(r.RHS))
	copy(rhs, r.RHS)
	r.RHS = rhs
	return r
}

// IsBracketed is true for symbols written in angle brackets, like <Expresion>.
func IsBracketed(sym string) bool {
	return len(sym) > 2 && strings.HasPrefix(sym, "<") && strings.HasSuffix(sym, ">")
}

// StripBrackets returns the bare name of a bracketed symbol. Other symbols are
// returned unchanged.
func StripBrackets(sym string) string {
	if IsBracketed(sym) {
		return strings.TrimSpace(sym[1 : len(sym)-1])
	}
	return sym
}

func bracket(sym string) string {
	if IsBracketed(sym) {
		return sym
	}
	return "<" + sym + ">"
}

// --- Grammar ---------------------------------------------------------------

// Grammar is the catalog of numbered productions a parse table refers to.
// A grammar is immutable after construction. Create one with a GrammarBuilder,
// with NewGrammar or by reading rules from text.
type Grammar struct {
	Name         string
	rules        map[int]Rule
	numbers      []int        // rule numbers in increasing order
	nonterminals *treeset.Set // every LHS symbol
	terminals    *treeset.Set // RHS symbols which are never a LHS
}

// NewGrammar creates a grammar from a list of rules. Rule numbers must be
// unique and non-negative, and every rule needs a left-hand side.
func NewGrammar(name string, rules []Rule) (*Grammar, error) {
	g := &Grammar{
		Name:         name,
		rules:        make(map[int]Rule, len(rules)),
		nonterminals: treeset.NewWithStringComparator(),
		terminals:    treeset.NewWithStringComparator(),
	}
	for _, r := range rules {
		if r.Number < 0 {
			return nil, fmt.Errorf("rule %d: negative rule number: %w", r.Number, ErrMalformedRule)
		}
		if strings.TrimSpace(r.LHS) == "" {
			return nil, fmt.Errorf("rule %d: missing left-hand side: %w", r.Number, ErrMalformedRule)
		}
		if _, exists := g.rules[r.Number]; exists {
			return nil, fmt.Errorf("rule %d: duplicate rule number: %w", r.Number, ErrMalformedRule)
		}
		g.rules[r.Number] = r.clone()
		g.numbers = append(g.numbers, r.Number)
		g.nonterminals.Add(r.LHS)
	}
	sort.Ints(g.numbers)
	for _, r := range g.rules {
		for _, sym := range r.RHS {
			if !g.nonterminals.Contains(sym) {
				g.terminals.Add(sym)
			}
		}
	}
	tracer().Debugf("grammar %q has %d rules", name, len(g.numbers))
	return g, nil
}

// Rule returns the rule with number n. The returned rule is a copy; modifying
// it does not affect the grammar.
func (g *Grammar) Rule(n int) (Rule, bool) {
	r, ok := g.rules[n]
	if !ok {
		return Rule{}, false
	}
	return r.clone(), true
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.numbers)
}

// EachRule calls f for every rule, in increasing order of rule numbers.
func (g *Grammar) EachRule(f func(r Rule)) {
	for _, n := range g.numbers {
		f(g.rules[n].clone())
	}
}

// StartSymbol returns the designated start symbol. If rule 0 is an augmenting
// production S' ::= S, this is S. Otherwise it is the LHS of rule 0.
// For an empty grammar it returns "".
func (g *Grammar) StartSymbol() string {
	r, ok := g.rules[0]
	if !ok {
		if len(g.numbers) == 0 {
			return ""
		}
		r = g.rules[g.numbers[0]]
	}
	if len(r.RHS) == 1 && g.nonterminals.Contains(r.RHS[0]) {
		return r.RHS[0]
	}
	return r.LHS
}

// IsNonTerminal is true if sym is the LHS of at least one rule.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonterminals.Contains(sym)
}

// NonTerminals returns the LHS symbols of the grammar, sorted.
func (g *Grammar) NonTerminals() []string {
	return toStrings(g.nonterminals.Values())
}

// Terminals returns the symbols occuring only on right-hand sides, sorted.
func (g *Grammar) Terminals() []string {
	return toStrings(g.terminals.Values())
}

// Dump is a debugging helper, listing all rules to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------------------", g.Name)
	g.EachRule(func(r Rule) {
		tracer().Debugf("%3d: %s", r.Number, r)
	})
	tracer().Debugf("---------------------------------------")
}

func toStrings(values []interface{}) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.(string)
	}
	return s
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a helper for constructing grammars. Rules are numbered
// in the order they are completed.
type GrammarBuilder struct {
	name  string
	rules []Rule
}

// NewGrammarBuilder creates a builder for a grammar named gname.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// RuleBuilder collects the RHS of a single rule. Create one with
// GrammarBuilder.LHS.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []string
}

// LHS starts a new rule. Angle brackets are added to the name if missing.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: bracket(name)}
}

// N appends a non-terminal. Angle brackets are added to the name if missing.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, bracket(name))
	return rb
}

// T appends a terminal.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, name)
	return rb
}

// End completes the rule and returns it.
func (rb *RuleBuilder) End() Rule {
	r := Rule{Number: len(rb.gb.rules), LHS: rb.lhs, RHS: rb.rhs}
	rb.gb.rules = append(rb.gb.rules, r)
	return r
}

// Epsilon completes the rule as an empty production and returns it.
func (rb *RuleBuilder) Epsilon() Rule {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	return NewGrammar(gb.name, gb.rules)
}
