package report

import (
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tablr/tablr/lr/driver"
	"github.com/tablr/tablr/lr/tree"
)

// Document is the YAML rendering of a parse run.
type Document struct {
	Run     string     `yaml:"run"`
	Source  string     `yaml:"source,omitempty"`
	Table   string     `yaml:"table,omitempty"` // table fingerprint
	Outcome string     `yaml:"outcome"`
	Error   string     `yaml:"error,omitempty"`
	Steps   []StepNode `yaml:"steps"`
	Tree    *TreeNode  `yaml:"tree,omitempty"`
}

// StepNode is a single step of a trace.
type StepNode struct {
	Stack  string `yaml:"stack"`
	Input  string `yaml:"input"`
	Action string `yaml:"action"`
}

// TreeNode is a node of a derivation tree.
type TreeNode struct {
	Label    string      `yaml:"label"`
	Lexeme   string      `yaml:"lexeme,omitempty"`
	Children []*TreeNode `yaml:"children,omitempty"`
}

// NewDocument creates a document for a parse result. Every document gets a
// fresh run ID.
func NewDocument(result *driver.Result) *Document {
	doc := &Document{
		Run:     uuid.New().String(),
		Outcome: result.Outcome.String(),
		Steps:   make([]StepNode, len(result.Trace)),
	}
	if result.Err != nil {
		doc.Error = result.Err.Error()
	}
	for i, step := range result.Trace {
		doc.Steps[i] = StepNode{Stack: step.Stack, Input: step.Input, Action: step.Action}
	}
	if result.Root != nil {
		doc.Tree = treeNode(result.Root)
	}
	return doc
}

func treeNode(n *tree.Node) *TreeNode {
	tn := &TreeNode{Label: n.Label()}
	if n.IsTerminal() && n.Lexeme() != n.Label() {
		tn.Lexeme = n.Lexeme()
	}
	for _, c := range n.Children() {
		tn.Children = append(tn.Children, treeNode(c))
	}
	return tn
}

// WriteYAML writes a document.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	tracer().Debugf("wrote YAML report for run %s", doc.Run)
	return enc.Close()
}
