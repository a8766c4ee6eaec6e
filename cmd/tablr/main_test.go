package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const declarations = "../../lr/table/testdata/declarations.csv"

func run(t *testing.T, args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	dir := t.TempDir()
	traceFile := filepath.Join(dir, "salida.txt")
	treeFile := filepath.Join(dir, "arbol_derivacion.txt")
	err := run(t, "--table", declarations, "parse",
		"--trace-file", traceFile, "--tree-file", treeFile, "testdata/function.c")
	if err != nil {
		t.Fatal(err)
	}
	trace, err := os.ReadFile(traceFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(trace)), "\n")
	if len(lines) != 16 || !strings.HasSuffix(lines[15], "r0") {
		t.Errorf("expected header and 15 steps ending with r0, have %d lines", len(lines))
	}
	tree, err := os.ReadFile(treeFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(tree), "<programa>\n  <Definiciones>\n") {
		t.Errorf("unexpected tree file:\n%s", tree)
	}
}

func TestParseRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	dir := t.TempDir()
	traceFile := filepath.Join(dir, "run.yaml")
	err := run(t, "--table", declarations, "parse", "--format", "yaml",
		"--trace-file", traceFile, "testdata/lexerror.c")
	if err == nil {
		t.Fatalf("expected input to be rejected")
	}
	doc, err := os.ReadFile(traceFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(doc), "outcome: error") || !strings.Contains(string(doc), "ERROR(@)") {
		t.Errorf("unexpected YAML report:\n%s", doc)
	}
}

func TestCheckCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	if err := run(t, "--table", declarations, "--rules", "testdata/declarations.rules", "check"); err != nil {
		t.Errorf("expected table to fit the declaration rules: %v", err)
	}
	// the built-in grammar has many more non-terminals than the table has columns
	if err := run(t, "--table", declarations, "--rules", "", "check"); err == nil {
		t.Errorf("expected check against the full grammar to fail")
	}
}

func TestParseNeedsTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablr.lr")
	defer teardown()
	//
	if err := run(t, "--table", "", "parse", "testdata/function.c"); err == nil {
		t.Errorf("expected parse without table to fail")
	}
}
