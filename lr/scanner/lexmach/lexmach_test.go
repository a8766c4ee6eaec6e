package lexmach

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/tablr/tablr"
	"github.com/tablr/tablr/lr/scanner"
)

var inputStrings = []string{
	"",
	"int x;",
	"float f(int a, int b) { return a; }",
	"integer = 3.14 + 42",
	"if (a <= b) x = !y; else while (c == d) z = \"str\";",
	"a && b || c * d / e - f",
}

func TestParity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	LM, err := NewAdapter(scanner.DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		dfa := scanner.Scan(sc)
		prio := scanner.ScanString(input)
		for _, token := range dfa {
			t.Logf(" %15s | %15s | @%5d", token.Name, token.Lexeme, token.Span.From())
		}
		if len(dfa) != len(prio) {
			t.Errorf("#%d: expected %d tokens, have %d", i, len(prio), len(dfa))
			continue
		}
		for k := range dfa {
			if dfa[k] != prio[k] {
				t.Errorf("#%d: token %d differs: %v vs %v", i, k, dfa[k], prio[k])
			}
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestErrorTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	LM, err := NewAdapter(scanner.DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("x @# y")
	if err != nil {
		t.Fatal(err)
	}
	errcnt := 0
	sc.SetErrorHandler(func(error) { errcnt++ })
	tokens := scanner.Scan(sc)
	names := strings.Join(tablr.Names(tokens), " ")
	if names != "identificador ERROR(@) ERROR(#) identificador $" {
		t.Errorf("unexpected token sequence %s", names)
	}
	if errcnt != 2 {
		t.Errorf("expected 2 errors to be reported, have %d", errcnt)
	}
	if tokens[1].Span != (tablr.Span{2, 3}) {
		t.Errorf("expected error token at 2…3, is at %v", tokens[1].Span)
	}
}

func TestIllegalPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.scanner")
	defer teardown()
	//
	for _, expr := range []string{`(`, `[a-`, `a|(b`} {
		if _, err := NewAdapter([]scanner.Pattern{{Name: "x", Expr: expr}}); err == nil {
			t.Errorf("expected malformed pattern %q to fail", expr)
		}
	}
	// one malformed pattern fails the whole list
	patterns := append([]scanner.Pattern{}, scanner.DefaultPatterns...)
	patterns = append(patterns, scanner.Pattern{Name: "bad", Expr: `(`})
	if _, err := NewAdapter(patterns); err == nil {
		t.Errorf("expected pattern list with a malformed pattern to fail")
	}
}
