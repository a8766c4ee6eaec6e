package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/tablr/tablr"
)

var inputStrings = []struct {
	input  string
	tokens string
}{
	{"", "$"},
	{"   \n\t ", "$"},
	{"int x;", "tipo identificador ; $"},
	{"float y, z;", "tipo identificador , identificador ; $"},
	{"integer", "identificador $"},
	{"elif iffy if", "identificador identificador if $"},
	{"while (a) return 3.14;", "while ( identificador ) return real ; $"},
	{"x = 42", "identificador = entero $"},
	{"a == b != c", "identificador opIgualdad identificador opIgualdad identificador $"},
	{"a<=b>c", "identificador opRelac identificador opRelac identificador $"},
	{"a+b*c", "identificador opSuma identificador opMul identificador $"},
	{"a-b/c", "identificador ERROR(-) identificador ERROR(/) identificador $"},
	{"a&&b||!c", "identificador opAnd identificador opOr opNot identificador $"},
	{`s = "hola mundo";`, "identificador = cadena ; $"},
	{"{ } ( )", "{ } ( ) $"},
	{"x @ y", "identificador ERROR(@) identificador $"},
	{"3abc", "ERROR(3) ERROR(a) ERROR(b) ERROR(c) $"},
}

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	for i, s := range inputStrings {
		tokens := ScanString(s.input)
		names := strings.Join(tablr.Names(tokens), " ")
		if names != s.tokens {
			t.Errorf("#%d %q: expected %s, have %s", i, s.input, s.tokens, names)
		}
	}
}

func TestSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	tokens := ScanString("int  foo;")
	expected := []tablr.Token{
		tablr.MakeToken("tipo", "int", tablr.Span{0, 3}),
		tablr.MakeToken("identificador", "foo", tablr.Span{5, 8}),
		tablr.MakeToken(";", ";", tablr.Span{8, 9}),
		tablr.EOF(9),
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %v", len(expected), tokens)
	}
	for i := range expected {
		if tokens[i] != expected[i] {
			t.Errorf("expected token #%d to be %v, is %v", i, expected[i], tokens[i])
		}
	}
}

func TestLexErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	sc := Default().Scanner("a @ b ¿")
	var errs []error
	sc.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	tokens := Scan(sc)
	if len(errs) != 2 {
		t.Fatalf("expected 2 lexical errors, have %d", len(errs))
	}
	var lexerr *LexError
	if !errors.As(errs[0], &lexerr) || lexerr.Char != '@' || lexerr.Pos != 2 {
		t.Errorf("unexpected first error: %v", errs[0])
	}
	last := tokens[len(tokens)-2]
	if !last.IsError() || last.Name != "ERROR(¿)" || last.Span.Len() != 2 {
		t.Errorf("expected multi-byte error token, have %v", last)
	}
	if !tokens[len(tokens)-1].IsEOF() {
		t.Errorf("expected token list to end with $")
	}
	// exhausted scanners keep returning $
	if !sc.NextToken().IsEOF() {
		t.Errorf("expected $ after end of input")
	}
}

func TestPatternPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	// identificador listed first shadows the keyword
	patterns := []Pattern{
		{Name: "id", Expr: `[a-z]+`, WordBounded: true},
		{Name: "kw", Expr: `if`, WordBounded: true},
	}
	sc, err := New(patterns, "if")
	if err != nil {
		t.Fatal(err)
	}
	if tok := sc.NextToken(); tok.Name != "id" {
		t.Errorf("expected first pattern to win, have %v", tok)
	}
	// first match wins even if a later pattern matches more
	patterns = []Pattern{
		{Name: "eq", Expr: `=`},
		{Name: "eqeq", Expr: `==`},
	}
	sc, _ = New(patterns, "==")
	if names := strings.Join(tablr.Names(Scan(sc)), " "); names != "eq eq $" {
		t.Errorf("expected eq eq $, have %s", names)
	}
	// operators of the default table: only + and * are arithmetic
	names := strings.Join(tablr.Names(ScanString("x = a - b / c;")), " ")
	if names != "identificador = identificador ERROR(-) identificador ERROR(/) identificador ; $" {
		t.Errorf("expected - and / to be error tokens, have %s", names)
	}
}

func TestCompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	if _, err := Compile(nil); err == nil {
		t.Errorf("expected empty pattern list to be rejected")
	}
	if _, err := Compile([]Pattern{{Name: "x", Expr: `(`}}); err == nil {
		t.Errorf("expected malformed expression to be rejected")
	}
	if _, err := Compile([]Pattern{{Expr: `x`}}); err == nil {
		t.Errorf("expected unnamed pattern to be rejected")
	}
}
