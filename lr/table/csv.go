package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tablr/tablr/lr"
)

// ErrMalformedCell is returned for table cells which do not denote an action.
var ErrMalformedCell = errors.New("malformed table cell")

// ParseAction decodes a single table cell:
//
//    ""  "nan"        none
//    "d5"  "s5"       shift to state 5
//    "r3"             reduce by rule 3
//    "acc"  "accept"  accept
//    "7"  "7.0"       goto state 7
//
func ParseAction(cell string) (Action, error) {
	c := strings.ToLower(strings.TrimSpace(cell))
	switch c {
	case "", "nan":
		return Action{}, nil
	case "acc", "accept":
		return AcceptAction, nil
	}
	switch c[0] {
	case 'd', 's':
		n, err := number(c[1:])
		if err != nil {
			return Action{}, fmt.Errorf("%q: %w", cell, ErrMalformedCell)
		}
		return ShiftTo(n), nil
	case 'r':
		n, err := number(c[1:])
		if err != nil {
			return Action{}, fmt.Errorf("%q: %w", cell, ErrMalformedCell)
		}
		return ReduceBy(n), nil
	}
	n, err := number(c)
	if err != nil {
		return Action{}, fmt.Errorf("%q: %w", cell, ErrMalformedCell)
	}
	return GotoState(n), nil
}

// number accepts non-negative integers, possibly written as floats with a zero
// fraction (spreadsheet tools tend to write "7.0" into integer columns).
func number(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative number %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("not a state number: %s", s)
	}
	return int(f), nil
}

// ReadCSV loads a table from CSV. The first row lists the column symbols (its
// first cell is ignored); every following row starts with a state number,
// followed by one cell per column.
func ReadCSV(input io.Reader) (*Table, error) {
	r := csv.NewReader(input)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("table is empty")
	} else if err != nil {
		return nil, fmt.Errorf("reading table header: %w", err)
	}
	if len(header) < 2 {
		return nil, errors.New("table has no symbol columns")
	}
	symbols := make([]string, len(header)-1)
	seen := make(map[string]bool)
	for i, h := range header[1:] {
		sym := strings.TrimSpace(h)
		if sym == "" {
			return nil, fmt.Errorf("table header: column %d has no symbol", i+2)
		}
		if seen[lr.StripBrackets(sym)] {
			return nil, fmt.Errorf("table header: duplicate column %q", sym)
		}
		seen[lr.StripBrackets(sym)] = true
		symbols[i] = sym
	}
	b := NewBuilder()
	for _, sym := range symbols {
		b.t.column(sym) // keep the column order of the input
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading table: %w", err)
		}
		line, _ := r.FieldPos(0)
		state, err := number(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: illegal state %q", line, record[0])
		}
		if state >= b.t.rows {
			b.t.rows = state + 1
		}
		for i, cell := range record[1:] {
			a, err := ParseAction(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, state %d, symbol %s: %w", line, state, symbols[i], err)
			}
			if a.IsNone() {
				continue
			}
			b.Set(state, symbols[i], a)
		}
	}
	t, err := b.Table()
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded table with %d states and %d symbols", t.States(), len(t.symbols))
	return t, nil
}

// WriteCSV writes the table in the format ReadCSV understands.
func (t *Table) WriteCSV(output io.Writer) error {
	w := csv.NewWriter(output)
	header := append([]string{""}, t.symbols...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < t.States(); i++ {
		record := make([]string, len(t.symbols)+1)
		record[0] = strconv.Itoa(i)
		for j := range t.symbols {
			record[j+1] = decode(t.matrix.Value(i, j)).String()
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
