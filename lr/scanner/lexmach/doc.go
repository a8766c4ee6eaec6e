/*
Package lexmach provides an adapter to use the lexmachine scanner generator as a
scanner for tablr.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The adapter is built from the same pattern list as the default priority
scanner. Lexmachine compiles the patterns into a DFA, which is fast but
resolves overlaps by the longest match, not by pattern order. Pattern order
only breaks ties between matches of equal length. For the default patterns
both scanners agree on ordinary input: keywords and type names beat
identificador because they come first and match with the same length.

	LM, err := lexmach.NewAdapter(scanner.DefaultPatterns)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("int x;")
	if err != nil {
		// do error handling
	}
	tokens := scanner.Scan(scan)   // ends with "$"

Input lexmachine cannot match is turned into error tokens "ERROR(c)", one per
character, just as the priority scanner does.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package lexmach
