/*
Package tree implements derivation trees, built bottom-up by the parse driver.

Leaves are created for shifted tokens and labeled with the token's terminal
name. Interior nodes are created on reductions and labeled with the
non-terminal of the rule's left hand side, e.g. "<Expresion>". A node's
children are fixed when the node is created; there is no way to change them
afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package tree

import (
	"strings"

	"github.com/tablr/tablr"
)

// Node is a node of a derivation tree.
type Node struct {
	label    string
	lexeme   string
	span     tablr.Span
	terminal bool
	children []*Node
}

// Leaf creates a leaf node for a token.
func Leaf(token tablr.Token) *Node {
	return &Node{
		label:    token.Name,
		lexeme:   token.Lexeme,
		span:     token.Span,
		terminal: true,
	}
}

// Reduce creates an interior node for a non-terminal lhs. popped are the
// nodes of the right hand side in the order they have been popped from the
// parse stack, i.e. right to left. Reduce attaches them in reverse, so that
// the children of the new node appear in the order of the right hand side.
//
// For an ε-production, popped is empty and the node is created without
// children.
func Reduce(lhs string, popped []*Node) *Node {
	node := &Node{label: lhs}
	if len(popped) == 0 {
		return node
	}
	node.children = make([]*Node, len(popped))
	for i, child := range popped {
		node.children[len(popped)-1-i] = child
		node.span = node.span.Extend(child.span)
	}
	return node
}

// Label returns the terminal or non-terminal name of a node.
func (n *Node) Label() string {
	return n.label
}

// Lexeme returns the lexeme of a leaf's token, or "" for interior nodes.
func (n *Node) Lexeme() string {
	return n.lexeme
}

// Span returns the input span covered by a node. Nodes for ε-productions
// cover nothing and have a null span.
func (n *Node) Span() tablr.Span {
	return n.span
}

// IsTerminal is true for nodes created by Leaf.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// IsLeaf is true for nodes without children. Note that interior nodes for
// ε-productions are leaves in this sense as well.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Children returns a copy of the children of a node.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	c := make([]*Node, len(n.children))
	copy(c, n.children)
	return c
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns child #i, or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Walk visits the tree in pre-order, calling f for every node together with
// its depth (the root has depth 0).
func (n *Node) Walk(f func(node *Node, depth int)) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int), depth int) {
	f(n, depth)
	for _, c := range n.children {
		c.walk(f, depth+1)
	}
}

// Leaves returns the token leaves of a tree, left to right. Childless nodes of
// ε-productions are not tokens and are skipped.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node, _ int) {
		if node.terminal {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// Depth returns the height of a tree. A single node has depth 0.
func (n *Node) Depth() int {
	max := 0
	n.Walk(func(_ *Node, depth int) {
		if depth > max {
			max = depth
		}
	})
	return max
}

// Size returns the number of nodes of a tree.
func (n *Node) Size() int {
	cnt := 0
	n.Walk(func(*Node, int) { cnt++ })
	return cnt
}

// String renders a tree with one node per line, indented by two spaces per
// level.
func (n *Node) String() string {
	var b strings.Builder
	n.Walk(func(node *Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(node.label)
		b.WriteByte('\n')
	})
	return b.String()
}
