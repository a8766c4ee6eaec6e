package report

import (
	"github.com/pterm/pterm"

	"github.com/tablr/tablr"
	"github.com/tablr/tablr/lr/driver"
	"github.com/tablr/tablr/lr/tree"
)

// PrintTree renders a derivation tree to the terminal.
func PrintTree(root *tree.Node) {
	if root == nil {
		pterm.Info.Println("no derivation tree")
		return
	}
	pterm.DefaultTree.WithRoot(TerminalTree(root)).Render()
}

// TerminalTree converts a derivation tree to a pterm tree. Leaves show their
// lexeme if it differs from the terminal name.
func TerminalTree(root *tree.Node) pterm.TreeNode {
	var ll pterm.LeveledList
	root.Walk(func(node *tree.Node, depth int) {
		text := node.Label()
		if node.IsTerminal() && node.Lexeme() != "" && node.Lexeme() != node.Label() {
			text += " " + pterm.FgGray.Sprint(node.Lexeme())
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

// PrintTrace renders a trace as a table to the terminal.
func PrintTrace(trace driver.Trace) {
	data := pterm.TableData{{"Stack", "Input", "Action"}}
	for _, step := range trace {
		data = append(data, []string{step.Stack, step.Input, step.Action})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// PrintTokens renders a token sequence as a table to the terminal.
func PrintTokens(tokens []tablr.Token) {
	data := pterm.TableData{{"Token", "Lexeme", "Span"}}
	for _, t := range tokens {
		data = append(data, []string{t.Name, t.Lexeme, t.Span.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
