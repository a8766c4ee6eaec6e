package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tablr/tablr/config"
	"github.com/tablr/tablr/lr/driver"
	"github.com/tablr/tablr/report"
)

var parseFlags = struct {
	traceFile *string
	treeFile  *string
	format    *string
	show      *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse [source file]",
		Short: "Parse a source file",
		Example: `  tablr parse --table lalr.csv program.c
  cat program.c | tablr parse --table lalr.csv --format yaml --trace-file run.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	parseFlags.traceFile = cmd.Flags().String("trace-file", "", "output file for the parse trace (default salida.txt)")
	parseFlags.treeFile = cmd.Flags().String("tree-file", "", "output file for the derivation tree (default arbol_derivacion.txt)")
	parseFlags.format = cmd.Flags().String("format", "", "report format: text | yaml")
	parseFlags.show = cmd.Flags().Bool("show", false, "print trace and tree to the terminal")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("trace-file") {
		cfg.TraceFile = *parseFlags.traceFile
	}
	if flags.Changed("tree-file") {
		cfg.TreeFile = *parseFlags.treeFile
	}
	if flags.Changed("format") {
		cfg.Format = *parseFlags.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	source, err := readSource(args)
	if err != nil {
		return err
	}
	s, err := newSession(true)
	if err != nil {
		return err
	}
	tokens, err := s.tokenize(source)
	if err != nil {
		return err
	}
	result, err := s.parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parse table and grammar do not fit: %w", err)
	}
	if *parseFlags.show {
		report.PrintTrace(result.Trace)
		report.PrintTree(result.Root)
	}
	if err = writeReports(s, source, result); err != nil {
		return err
	}
	if result.Outcome == driver.Error {
		pterm.Error.Println(result.Err)
		return fmt.Errorf("input rejected")
	}
	pterm.Info.Println(fmt.Sprintf("input %s after %d steps, see %s", result.Outcome, len(result.Trace), cfg.TraceFile))
	return nil
}

func writeReports(s *session, source string, result *driver.Result) error {
	if cfg.Format == config.FormatYAML {
		doc := report.NewDocument(result)
		doc.Source = source
		doc.Table = s.T.Fingerprint()
		return writeFile(cfg.TraceFile, func(f *os.File) error {
			return report.WriteYAML(f, doc)
		})
	}
	err := writeFile(cfg.TraceFile, func(f *os.File) error {
		return report.WriteTrace(f, result.Trace)
	})
	if err != nil || result.Root == nil {
		return err
	}
	return writeFile(cfg.TreeFile, func(f *os.File) error {
		return report.WriteTree(f, result.Root)
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	tracer().Infof("wrote %s", path)
	return f.Close()
}
