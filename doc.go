/*
Package tablr is a table-driven LR parse driver.

Tablr executes a precomputed shift/reduce/goto table against a token stream.
It does not generate tables: clients bring a table produced by some other tool,
together with the numbered productions of the grammar the table was built for.
Package structure is as follows:

■ lr: Package lr holds the grammar rule catalog (numbered productions), which
is immutable after construction and shared by all parse runs.

■ lr/table: Package table is the table oracle, answering ACTION and GOTO
queries for (state, symbol) pairs.

■ lr/driver: Package driver is the stack automaton. It shifts and reduces,
builds a derivation tree and records a step-by-step trace.

■ lr/scanner: Package scanner converts source text into tokens, using an
ordered table of lexical patterns.

■ report: Package report renders traces and derivation trees.

The base package contains the token and span types which are used throughout
all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package tablr
