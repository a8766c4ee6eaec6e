/*
Package report renders the results of parse runs: the step-by-step trace of
the automaton and the derivation tree.

Renderers exist for plain text (the layout of the files "salida.txt" and
"arbol_derivacion.txt"), for YAML, and for terminals (using pterm).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tablr/tablr/lr/driver"
	"github.com/tablr/tablr/lr/tree"
)

// tracer traces with key 'tablr.report'.
func tracer() tracing.Trace {
	return tracing.Select("tablr.report")
}

// Column widths of the text trace. Wider cells are not truncated.
const (
	StackWidth = 100
	InputWidth = 40
)

// Default file names for text reports.
const (
	DefaultTraceFile = "salida.txt"
	DefaultTreeFile  = "arbol_derivacion.txt"
)

// WriteTrace writes a trace as a table of three left-aligned columns: the
// stack, the remaining input and the action taken.
func WriteTrace(w io.Writer, trace driver.Trace) error {
	bw := bufio.NewWriter(w)
	line := func(stack, input, action string) {
		fmt.Fprintf(bw, "%-*s%-*s%s\n", StackWidth, stack, InputWidth, input, action)
	}
	line("Stack", "Input", "Action")
	for _, step := range trace {
		line(step.Stack, step.Input, step.Action)
	}
	tracer().Debugf("wrote trace with %d steps", len(trace))
	return bw.Flush()
}

// WriteTree writes a derivation tree, one node per line in pre-order,
// indented by two spaces per level. A nil tree writes nothing.
func WriteTree(w io.Writer, root *tree.Node) error {
	if root == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	root.Walk(func(node *tree.Node, depth int) {
		bw.WriteString(strings.Repeat("  ", depth))
		bw.WriteString(node.Label())
		bw.WriteByte('\n')
	})
	return bw.Flush()
}
