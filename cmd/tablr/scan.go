package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablr/tablr"
	"github.com/tablr/tablr/report"
)

var scanFlags = struct {
	plain *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "scan [source file]",
		Short:   "Tokenize a source file",
		Example: `  echo "int x;" | tablr scan --plain`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runScan,
	}
	scanFlags.plain = cmd.Flags().Bool("plain", false, "print token names only, separated by blanks")
	rootCmd.AddCommand(cmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}
	s, err := newSession(false)
	if err != nil {
		return err
	}
	tokens, err := s.tokenize(source)
	if err != nil {
		return err
	}
	if *scanFlags.plain {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tablr.Names(tokens), " "))
		return nil
	}
	report.PrintTokens(tokens)
	return nil
}
