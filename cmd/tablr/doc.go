/*
Command tablr runs a table-driven LR parser over source text.

	tablr scan  [file]      tokenize a source file (default stdin)
	tablr parse [file]      parse a source file, write trace and derivation tree
	tablr check             check table and rule catalog for consistency
	tablr repl              interactive mode

The ACTION/GOTO table is given with --table or in a TOML configuration file
(--config). Without --rules, the built-in grammar for a small C-like language
is used.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tablr.lr'
func tracer() tracing.Trace {
	return tracing.Select("tablr.lr")
}
