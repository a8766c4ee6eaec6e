package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tablr/tablr"
	"github.com/tablr/tablr/config"
	"github.com/tablr/tablr/lr"
	"github.com/tablr/tablr/lr/driver"
	"github.com/tablr/tablr/lr/scanner"
	"github.com/tablr/tablr/lr/scanner/lexmach"
	"github.com/tablr/tablr/lr/table"
)

// session bundles grammar, table and scanner as configured.
type session struct {
	G      *lr.Grammar
	T      *table.Table // nil if no table is configured
	lexer  *scanner.Lexer
	dfa    *lexmach.Adapter
	parser *driver.Parser
}

// newSession loads everything the configuration names. If needTable is set,
// a missing table is an error.
func newSession(needTable bool, opts ...driver.Option) (*session, error) {
	s := &session{}
	var err error
	if s.G, err = loadGrammar(cfg.Rules); err != nil {
		return nil, err
	}
	if cfg.Table != "" {
		if s.T, err = loadTable(cfg.Table); err != nil {
			return nil, err
		}
	} else if needTable {
		return nil, errors.New("no parse table given, use --table or a configuration file")
	}
	if cfg.Lexer == config.LexerDFA {
		if s.dfa, err = lexmach.NewAdapter(scanner.DefaultPatterns); err != nil {
			return nil, fmt.Errorf("cannot create DFA scanner: %w", err)
		}
	} else {
		s.lexer = scanner.Default()
	}
	if s.T != nil {
		if cfg.Start != "" {
			opts = append(opts, driver.StartSymbol(cfg.Start))
		}
		s.parser = driver.New(s.G, s.T, opts...)
	}
	return s, nil
}

func loadGrammar(path string) (*lr.Grammar, error) {
	if path == "" {
		return lr.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open rule catalog: %w", err)
	}
	defer f.Close()
	g, err := lr.ReadRules(path, f)
	if err != nil {
		return nil, fmt.Errorf("cannot read rule catalog %s: %w", path, err)
	}
	return g, nil
}

func loadTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open parse table: %w", err)
	}
	defer f.Close()
	t, err := table.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read parse table %s: %w", path, err)
	}
	return t, nil
}

// tokenize scans a source text with the configured scanner.
func (s *session) tokenize(source string) ([]tablr.Token, error) {
	var tokenizer scanner.Tokenizer
	if s.dfa != nil {
		sc, err := s.dfa.Scanner(source)
		if err != nil {
			return nil, err
		}
		tokenizer = sc
	} else {
		tokenizer = s.lexer.Scanner(source)
	}
	return scanner.Scan(tokenizer), nil
}

// readSource reads the file named by the first argument, or stdin.
func readSource(args []string) (string, error) {
	src := os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("cannot open the source file %s: %w", args[0], err)
		}
		defer f.Close()
		src = f
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
