package table

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/tablr/tablr/lr"
)

// S' ::= S ; S ::= A a ; A ::= b ; A ::= ε
func smallGrammar(t *testing.T) *lr.Grammar {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S'").N("S").End()
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").T("b").End()
	b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func smallTable(t *testing.T) *Table {
	tab, err := NewBuilder().
		Shift(0, "b", 3).Reduce(0, "a", 3).Goto(0, "<S>", 1).Goto(0, "A", 2).
		Reduce(1, "$", 0).
		Shift(2, "a", 4).
		Reduce(3, "a", 2).
		Reduce(4, "$", 1).
		Table()
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	tab := smallTable(t)
	if tab.States() != 5 {
		t.Errorf("expected 5 states, have %d", tab.States())
	}
	if tab.Size() != 8 {
		t.Errorf("expected 8 entries, have %d", tab.Size())
	}
	if syms := strings.Join(tab.Symbols(), " "); syms != "$ A S a b" {
		t.Errorf("unexpected symbols: %s", syms)
	}
	checks := []struct {
		state  int
		symbol string
		action Action
	}{
		{0, "b", ShiftTo(3)},
		{0, "a", ReduceBy(3)},
		{0, "S", GotoState(1)},
		{0, "<S>", GotoState(1)},
		{0, "<A>", GotoState(2)},
		{1, "$", ReduceBy(0)},
		{1, "a", Action{}},
		{99, "a", Action{}},
		{-1, "a", Action{}},
		{0, "unknown", Action{}},
	}
	for _, c := range checks {
		if a := tab.Action(c.state, c.symbol); a != c.action {
			t.Errorf("expected ACTION(%d,%s) = %v, have %v", c.state, c.symbol, c.action, a)
		}
	}
	// repeated look-ups answer the same
	if tab.Action(2, "a") != tab.Action(2, "a") {
		t.Errorf("look-up is not idempotent")
	}
}

func TestConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	_, err := NewBuilder().Shift(0, "a", 1).Shift(0, "a", 1).Table()
	if err != nil {
		t.Errorf("setting an identical action twice should be allowed, have %v", err)
	}
	_, err = NewBuilder().Shift(0, "a", 1).Reduce(0, "a", 2).Shift(1, "b", 2).Table()
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected conflict, have %v", err)
	}
	_, err = NewBuilder().Goto(0, "A", 1).Goto(0, "<A>", 2).Table()
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected <A> and A to address the same cell, have %v", err)
	}
	b := NewBuilder().Shift(0, "a", 1)
	if _, err = b.Table(); err != nil {
		t.Fatal(err)
	}
	if _, err = b.Shift(1, "a", 1).Table(); err == nil {
		t.Errorf("expected finished builder to refuse further use")
	}
}

func TestParseAction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	cells := map[string]Action{
		"":       {},
		"nan":    {},
		" NaN ":  {},
		"d4":     ShiftTo(4),
		"s12":    ShiftTo(12),
		"r0":     ReduceBy(0),
		"r17":    ReduceBy(17),
		"acc":    AcceptAction,
		"accept": AcceptAction,
		"7":      GotoState(7),
		"7.0":    GotoState(7),
	}
	for cell, expected := range cells {
		a, err := ParseAction(cell)
		if err != nil {
			t.Errorf("cell %q: %v", cell, err)
			continue
		}
		if a != expected {
			t.Errorf("cell %q: expected %v, have %v", cell, expected, a)
		}
	}
	for _, cell := range []string{"x", "d", "rr", "7.5", "-3", "d-1"} {
		if _, err := ParseAction(cell); !errors.Is(err, ErrMalformedCell) {
			t.Errorf("expected cell %q to be malformed, have %v", cell, err)
		}
	}
	for _, a := range []Action{ShiftTo(4), ReduceBy(3), GotoState(9), AcceptAction} {
		if b, _ := ParseAction(a.String()); b != a {
			t.Errorf("expected %q to decode to %v, have %v", a.String(), a, b)
		}
	}
}

func TestReadCSV(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	f, err := os.Open("testdata/declarations.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	tab, err := ReadCSV(f)
	if err != nil {
		t.Fatal(err)
	}
	if tab.States() != 28 {
		t.Errorf("expected 28 states, have %d", tab.States())
	}
	if !tab.HasColumn(",") || !tab.HasColumn("<ListaVar>") || tab.HasColumn("<Sentencia>") {
		t.Errorf("unexpected columns: %v", tab.Symbols())
	}
	checks := []struct {
		state  int
		symbol string
		action Action
	}{
		{0, "tipo", ShiftTo(4)},
		{0, "$", ReduceBy(2)},
		{0, "<programa>", GotoState(1)},
		{1, "$", ReduceBy(0)},
		{8, ",", ShiftTo(10)},
		{9, ")", ReduceBy(10)},
		{21, "}", ReduceBy(15)},
		{27, ")", ReduceBy(13)},
		{4, "tipo", Action{}},
	}
	for _, c := range checks {
		if a := tab.Action(c.state, c.symbol); a != c.action {
			t.Errorf("expected ACTION(%d,%s) = %v, have %v", c.state, c.symbol, c.action, a)
		}
	}
}

func TestReadCSVErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	inputs := map[string]string{
		"empty":     "",
		"no columns": "state\n",
		"duplicate": ",a,<A>,A\n0,,,\n",
		"state":     ",a\nx,d1\n",
		"cell":      ",a\n0,q1\n",
		"conflict":  ",a,a2\n0,d1,\n0,r1,\n",
	}
	for name, input := range inputs {
		if _, err := ReadCSV(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	_, err := ReadCSV(strings.NewReader(",a\n0,d1\n3,zz\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected error message to name line 3, have %v", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	tab := smallTable(t)
	var buf bytes.Buffer
	if err := tab.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	reread, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Fingerprint() == "" || tab.Fingerprint() != reread.Fingerprint() {
		t.Errorf("expected equal fingerprints, have %q and %q", tab.Fingerprint(), reread.Fingerprint())
	}
	other, _ := NewBuilder().Shift(0, "b", 3).Table()
	if other.Fingerprint() == tab.Fingerprint() {
		t.Errorf("expected different tables to have different fingerprints")
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	g := smallGrammar(t)
	if err := Validate(smallTable(t), g); err != nil {
		t.Errorf("expected table to fit grammar, have %v", err)
	}
	broken, err := NewBuilder().
		Shift(0, "b", 3).Reduce(0, "a", 9).Goto(0, "S", 1).
		Goto(1, "a", 2).Shift(2, "S", 4).
		Table()
	if err != nil {
		t.Fatal(err)
	}
	err = Validate(broken, g)
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected inconsistency, have %v", err)
	}
	for _, fragment := range []string{
		"unknown rule 9",
		"goto in terminal column",
		"shift in non-terminal column",
		"no goto column for <A>",
	} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("expected error to mention %q: %v", fragment, err)
		}
	}
}
