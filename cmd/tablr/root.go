package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tablr/tablr/config"
)

var rootFlags = struct {
	config *string
	table  *string
	rules  *string
	start  *string
	lexer  *string
	trace  *string
}{}

// cfg is the effective configuration, after applying flags.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tablr",
	Short: "Run a table-driven LR parser",
	Long: `tablr parses source text with an LR automaton driven by an external
ACTION/GOTO table. It records every step of the automaton and builds a
derivation tree for accepted input.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	rootFlags.config = pf.StringP("config", "c", "", "TOML configuration file")
	rootFlags.table = pf.StringP("table", "t", "", "ACTION/GOTO table (CSV)")
	rootFlags.rules = pf.StringP("rules", "r", "", "rule catalog (default: built-in grammar)")
	rootFlags.start = pf.String("start", "", "start symbol (default: from rule 0)")
	rootFlags.lexer = pf.String("lexer", "", "scanner: priority | dfa")
	rootFlags.trace = pf.String("trace", "", "trace level [Debug|Info|Error]")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// setup loads the configuration, applies command line overrides and
// initializes tracing and the display.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	var err error
	if *rootFlags.config != "" {
		if cfg, err = config.Load(*rootFlags.config); err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}
	flags := cmd.Flags()
	override := func(name string, value string, target *string) {
		if flags.Changed(name) {
			*target = value
		}
	}
	override("table", *rootFlags.table, &cfg.Table)
	override("rules", *rootFlags.rules, &cfg.Rules)
	override("start", *rootFlags.start, &cfg.Start)
	override("lexer", *rootFlags.lexer, &cfg.Lexer)
	override("trace", *rootFlags.trace, &cfg.TraceLevel)
	if err = cfg.Validate(); err != nil {
		return err
	}
	level := tracing.TraceLevelFromString(cfg.TraceLevel)
	for _, key := range []string{"tablr.lr", "tablr.scanner", "tablr.report"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("configuration: %+v", *cfg)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
