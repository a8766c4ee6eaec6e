package lr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const arrow = "::="

// ParseRule parses a single production of the form
//
//    [N:] <LHS> ::= sym1 sym2 …
//
// The right-hand side may be `\e` or `ε` for an empty production. If the rule
// carries no number, ParseRule returns -1 as its number.
func ParseRule(line string) (Rule, error) {
	r := Rule{Number: -1}
	line = strings.TrimSpace(line)
	lhs, rhs, ok := cut(line, arrow)
	if !ok {
		return r, fmt.Errorf("missing %q in %q: %w", arrow, line, ErrMalformedRule)
	}
	lhs = strings.TrimSpace(lhs)
	if num, rest, found := cut(lhs, ":"); found && !IsBracketed(lhs) {
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return r, fmt.Errorf("illegal rule number %q: %w", num, ErrMalformedRule)
		}
		r.Number = n
		lhs = strings.TrimSpace(rest)
	}
	if lhs == "" || len(strings.Fields(lhs)) != 1 {
		return r, fmt.Errorf("illegal left-hand side %q: %w", lhs, ErrMalformedRule)
	}
	r.LHS = lhs
	for _, sym := range strings.Fields(rhs) {
		if sym == Epsilon || sym == "ε" {
			continue
		}
		r.RHS = append(r.RHS, sym)
	}
	return r, nil
}

// ReadRules reads a grammar from text, one rule per line. Empty lines and lines
// starting with '#' are skipped. Rules without a number are numbered one past
// the previous rule.
func ReadRules(name string, input io.Reader) (*Grammar, error) {
	var rules []Rule
	next := 0
	lineno := 0
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r, err := ParseRule(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if r.Number < 0 {
			r.Number = next
		}
		next = r.Number + 1
		rules = append(rules, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rules for %s: %w", name, err)
	}
	return NewGrammar(name, rules)
}

// cut slices s around the first instance of sep.
func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// --- Default grammar -------------------------------------------------------

// defaultRules is a grammar for a small C-like language: global variable and
// function definitions, statements and expressions.
var defaultRules = []string{
	`0: <Inicial> ::= <programa>`,
	`1: <programa> ::= <Definiciones>`,
	`2: <Definiciones> ::= \e`,
	`3: <Definiciones> ::= <Definicion> <Definiciones>`,
	`4: <Definicion> ::= <DefVar>`,
	`5: <Definicion> ::= <DefFunc>`,
	`6: <DefVar> ::= tipo identificador <ListaVar> ;`,
	`7: <ListaVar> ::= \e`,
	`8: <ListaVar> ::= , identificador <ListaVar>`,
	`9: <DefFunc> ::= tipo identificador ( <Parametros> ) <BloqFunc>`,
	`10: <Parametros> ::= \e`,
	`11: <Parametros> ::= tipo identificador <ListaParam>`,
	`12: <ListaParam> ::= \e`,
	`13: <ListaParam> ::= , tipo identificador <ListaParam>`,
	`14: <BloqFunc> ::= { <DefLocales> }`,
	`15: <DefLocales> ::= \e`,
	`16: <DefLocales> ::= <DefLocal> <DefLocales>`,
	`17: <DefLocal> ::= <DefVar>`,
	`18: <DefLocal> ::= <Sentencia>`,
	`19: <Sentencias> ::= \e`,
	`20: <Sentencias> ::= <Sentencia> <Sentencias>`,
	`21: <Sentencia> ::= identificador = <Expresion> ;`,
	`22: <Sentencia> ::= if ( <Expresion> ) <SentenciaBloque> <Otro>`,
	`23: <Sentencia> ::= while ( <Expresion> ) <Bloque>`,
	`24: <Sentencia> ::= return <ValorRegresa> ;`,
	`25: <Sentencia> ::= <LlamadaFunc> ;`,
	`26: <Otro> ::= \e`,
	`27: <Otro> ::= else <SentenciaBloque>`,
	`28: <Bloque> ::= { <Sentencias> }`,
	`29: <ValorRegresa> ::= \e`,
	`30: <ValorRegresa> ::= <Expresion>`,
	`31: <Argumentos> ::= \e`,
	`32: <Argumentos> ::= <Expresion> <ListaArgumentos>`,
	`33: <ListaArgumentos> ::= \e`,
	`34: <ListaArgumentos> ::= , <Expresion> <ListaArgumentos>`,
	`35: <Termino> ::= <LlamadaFunc>`,
	`36: <Termino> ::= identificador`,
	`37: <Termino> ::= entero`,
	`38: <Termino> ::= real`,
	`39: <Termino> ::= cadena`,
	`40: <LlamadaFunc> ::= identificador ( <Argumentos> )`,
	`41: <SentenciaBloque> ::= <Sentencia>`,
	`42: <SentenciaBloque> ::= <Bloque>`,
	`43: <Expresion> ::= ( <Expresion> )`,
	`44: <Expresion> ::= opSuma <Expresion>`,
	`45: <Expresion> ::= opNot <Expresion>`,
	`46: <Expresion> ::= <Expresion> opMul <Expresion>`,
	`47: <Expresion> ::= <Expresion> opSuma <Expresion>`,
	`48: <Expresion> ::= <Expresion> opRelac <Expresion>`,
	`49: <Expresion> ::= <Expresion> opIgualdad <Expresion>`,
	`50: <Expresion> ::= <Expresion> opAnd <Expresion>`,
	`51: <Expresion> ::= <Expresion> opOr <Expresion>`,
	`52: <Expresion> ::= <Termino>`,
}

// Default returns the grammar for the C-like language the default scanner
// patterns are made for. Its start symbol is <programa>.
func Default() *Grammar {
	g, err := ReadRules("C-like", strings.NewReader(strings.Join(defaultRules, "\n")))
	if err != nil {
		panic(fmt.Sprintf("default grammar is malformed: %v", err))
	}
	return g
}
