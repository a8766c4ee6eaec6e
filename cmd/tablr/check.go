package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tablr/tablr/lr/table"
)

var checkFlags = struct {
	ebnf *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check rule catalog and parse table",
		Example: `  tablr check --table lalr.csv --rules grammar.rules`,
		Args:    cobra.NoArgs,
		RunE:    runCheck,
	}
	checkFlags.ebnf = cmd.Flags().Bool("ebnf", false, "print the rule catalog in EBNF")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(true)
	if err != nil {
		return err
	}
	g := s.G
	if *checkFlags.ebnf {
		fmt.Fprint(cmd.OutOrStdout(), g.EBNF())
	}
	failed := false
	if err := g.Verify(); err != nil {
		pterm.Error.Println(fmt.Sprintf("rule catalog %s: %v", g.Name, err))
		failed = true
	} else {
		pterm.Info.Println(fmt.Sprintf("rule catalog %s: %d rules, start symbol %s", g.Name, g.Size(), g.StartSymbol()))
	}
	pterm.Info.Println(fmt.Sprintf("table: %d states, %d symbols, %d entries, fingerprint %s",
		s.T.States(), len(s.T.Symbols()), s.T.Size(), s.T.Fingerprint()))
	if err := table.Validate(s.T, g); err != nil {
		pterm.Error.Println(err)
		failed = true
	}
	if failed {
		return fmt.Errorf("check failed")
	}
	pterm.Info.Println("table and rule catalog are consistent")
	return nil
}
