package tree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/tablr/tablr"
)

func tok(name string, from uint64) tablr.Token {
	return tablr.MakeToken(name, name, tablr.Span{from, from + 1})
}

func TestReduceReverses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	a, b, c := Leaf(tok("a", 0)), Leaf(tok("b", 1)), Leaf(tok("c", 2))
	// popped from the stack: c first
	n := Reduce("<S>", []*Node{c, b, a})
	if n.ChildCount() != 3 {
		t.Fatalf("expected 3 children, have %d", n.ChildCount())
	}
	for i, label := range []string{"a", "b", "c"} {
		if l := n.Child(i).Label(); l != label {
			t.Errorf("expected child %d to be %s, is %s", i, label, l)
		}
	}
	if n.Span() != (tablr.Span{0, 3}) {
		t.Errorf("expected span 0…3, have %v", n.Span())
	}
	if n.Child(3) != nil || n.Child(-1) != nil {
		t.Errorf("expected out of range children to be nil")
	}
}

func TestChildrenAreCopied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	n := Reduce("<S>", []*Node{Leaf(tok("b", 1)), Leaf(tok("a", 0))})
	children := n.Children()
	children[0] = Leaf(tok("x", 9))
	if n.Child(0).Label() != "a" {
		t.Errorf("modifying Children() must not change the node")
	}
}

func TestEpsilonNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	eps := Reduce("<Parametros>", nil)
	if !eps.IsLeaf() || eps.IsTerminal() || eps.Children() != nil {
		t.Errorf("expected childless non-terminal node")
	}
	if !eps.Span().IsNull() {
		t.Errorf("expected ε-node to have a null span, has %v", eps.Span())
	}
	n := Reduce("<DefFunc>", []*Node{Leaf(tok(")", 3)), eps, Leaf(tok("(", 2))})
	if leaves := n.Leaves(); len(leaves) != 2 {
		t.Errorf("expected 2 token leaves, have %d", len(leaves))
	}
	if n.Span() != (tablr.Span{2, 4}) {
		t.Errorf("expected ε-child not to contribute to the span, have %v", n.Span())
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	//   <S>
	//     <A>
	//       a
	//     b
	A := Reduce("<A>", []*Node{Leaf(tok("a", 0))})
	S := Reduce("<S>", []*Node{Leaf(tok("b", 1)), A})
	var visited []string
	S.Walk(func(node *Node, depth int) {
		visited = append(visited, strings.Repeat(".", depth)+node.Label())
	})
	if v := strings.Join(visited, " "); v != "<S> .<A> ..a .b" {
		t.Errorf("unexpected pre-order walk: %s", v)
	}
	if S.Depth() != 2 || S.Size() != 4 {
		t.Errorf("expected depth 2 and size 4, have %d and %d", S.Depth(), S.Size())
	}
	if s := S.String(); s != "<S>\n  <A>\n    a\n  b\n" {
		t.Errorf("unexpected rendering:\n%s", s)
	}
	var leaves []string
	for _, l := range S.Leaves() {
		leaves = append(leaves, l.Lexeme())
	}
	if strings.Join(leaves, "") != "ab" {
		t.Errorf("expected leaves a b, have %v", leaves)
	}
}
