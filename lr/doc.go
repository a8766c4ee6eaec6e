/*
Package lr holds the grammar side of table-driven LR parsing: a catalog of
numbered productions.

Tablr does not analyse grammars. A grammar is the plain list of productions a
parse table has been generated for, numbered the same way the table's reduce
actions refer to them. Once built, a grammar is immutable and may be shared by
any number of parse runs.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Non-terminals are
written in angle brackets; the builder adds them if missing. Grammars may contain
epsilon-productions. Rules are numbered in the order they are added, starting
with 0.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S'").N("S").End()          // 0: <S'> ::= <S>
    b.LHS("S").N("A").T("a").End()    // 1: <S>  ::= <A> a
    b.LHS("A").T("b").End()           // 2: <A>  ::= b
    b.LHS("A").Epsilon()              // 3: <A>  ::= \e
    g, err := b.Grammar()

Rule 0 is expected to be the augmenting production. Its single right-hand
side symbol is the designated start symbol of the grammar.

Reading Rules

Grammars may also be read from text, one production per line:

    0: <Inicial> ::= <programa>
    1: <programa> ::= <Definiciones>
    2: <Definiciones> ::= \e

Rule numbers are optional; if missing, rules are numbered consecutively.
Default returns the grammar for a small C-like language, which the default
lexical patterns of package scanner are tailored to.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tablr.lr'.
func tracer() tracing.Trace {
	return tracing.Select("tablr.lr")
}
