package driver

import (
	"strconv"
	"strings"

	"github.com/tablr/tablr/lr/tree"
)

// The parse stack alternates between states and symbols:
//
//    [bottom]  0  X1  s1  X2  s2 … Xn  sn  [TOS]
//
// Every symbol Xi is represented by its derivation tree node. A stack element
// holds either a state or a node, never both.
type element struct {
	state int
	node  *tree.Node // nil for states
}

func (e element) isState() bool {
	return e.node == nil
}

func (e element) String() string {
	if e.isState() {
		return strconv.Itoa(e.state)
	}
	return e.node.Label()
}

type stack struct {
	elements []element
}

func newStack() *stack {
	s := &stack{elements: make([]element, 0, 64)}
	s.pushState(0)
	return s
}

func (s *stack) pushState(state int) {
	s.elements = append(s.elements, element{state: state})
}

// pushSymbol pushes a node together with the state following it.
func (s *stack) pushSymbol(node *tree.Node, state int) {
	s.elements = append(s.elements, element{node: node}, element{state: state})
}

// pushNode pushes a node without a following state. This leaves the stack
// out of alternation and is only done right before the parse halts.
func (s *stack) pushNode(node *tree.Node) {
	s.elements = append(s.elements, element{node: node})
}

// top returns the state on top of the stack. If the top element is not a
// state, the stack is searched downwards for the nearest one. ok is false
// only if there is no state at all.
func (s *stack) top() (state int, ok bool) {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].isState() {
			if i != len(s.elements)-1 {
				tracer().Errorf("parse stack out of alternation, state found at depth %d", len(s.elements)-1-i)
			}
			return s.elements[i].state, true
		}
	}
	return 0, false
}

// pop removes n (state, symbol) pairs from the top of the stack and returns
// the symbol nodes in the order they were popped, i.e. right to left. The
// bottom state is never popped.
func (s *stack) pop(n int) ([]*tree.Node, error) {
	if n == 0 {
		return nil, nil
	}
	if len(s.elements) < 2*n+1 {
		return nil, ErrStackUnderflow
	}
	popped := make([]*tree.Node, 0, n)
	for i := 0; i < n; i++ {
		k := len(s.elements) - 1
		st, sym := s.elements[k], s.elements[k-1]
		if !st.isState() || sym.isState() {
			return nil, ErrStackUnderflow
		}
		popped = append(popped, sym.node)
		s.elements = s.elements[:k-1]
	}
	return popped, nil
}

// String renders the stack bottom to top, e.g. "0 tipo 4 identificador 8".
func (s *stack) String() string {
	var b strings.Builder
	for i, e := range s.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	return b.String()
}
