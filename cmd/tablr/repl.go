package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tablr/tablr/lr/driver"
	"github.com/tablr/tablr/report"
)

var replFlags = struct {
	init *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse source lines interactively",
		Long: `repl reads source text line by line, parses it and prints the derivation
tree. Lines starting with a colon are commands:

  :tokens <text>   show the tokens of a text
  :trace           show the trace of the last parse
  :tree            show the derivation tree of the last parse
  :steps           toggle printing each step while parsing
  :quit            leave`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	replFlags.init = cmd.Flags().String("init", "", "file with lines to process before going interactive")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	pterm.Info.Println("Welcome to tablr") // colored welcome message
	intp := &Intp{}
	s, err := newSession(true, driver.OnStep(intp.observe))
	if err != nil {
		return err
	}
	intp.session = s
	s.G.Dump() // only visible in debug mode
	repl, err := readline.New("tablr> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*replFlags.init)
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	session *session
	repl    *readline.Instance
	last    *driver.Result
	steps   bool // print steps while parsing
}

func (intp *Intp) observe(step driver.Step) {
	if intp.steps {
		pterm.Println(fmt.Sprintf("%-40s %-30s %s", step.Stack, step.Input, step.Action))
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval processes a command or parses a line of source text.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(line)
	}
	tokens, err := intp.session.tokenize(line)
	if err != nil {
		return false, err
	}
	result, err := intp.session.parser.Parse(tokens)
	if err != nil {
		return false, err
	}
	intp.last = result
	if result.Outcome == driver.Error {
		pterm.Error.Println(result.Err.Error())
		return false, nil
	}
	pterm.Info.Println(result.Outcome.String())
	report.PrintTree(result.Root)
	return false, nil
}

func (intp *Intp) command(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":steps":
		intp.steps = !intp.steps
		pterm.Info.Println(fmt.Sprintf("printing steps: %v", intp.steps))
	case ":tokens":
		tokens, err := intp.session.tokenize(arg)
		if err != nil {
			return false, err
		}
		report.PrintTokens(tokens)
	case ":trace", ":tree":
		if intp.last == nil {
			return false, fmt.Errorf("nothing parsed yet")
		}
		if cmd == ":trace" {
			report.PrintTrace(intp.last.Trace)
		} else {
			report.PrintTree(intp.last.Root)
		}
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}
