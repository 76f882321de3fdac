/*
Command lr1 builds an LR(1) parser for a grammar and runs it on input.

lr1 reads a grammar in the notation of package grammar/notation (or uses a
small expression grammar if none is given), prints the canonical collection
of LR(1) item sets together with the ACTION and GOTO tables, and then parses
input, either from the command line or interactively, line by line.
Every parse prints its trace, the rightmost derivation and a parse tree.

	lr1 [flags] [input]

	-grammar file        grammar in notation format
	-lookahead rule      closure lookahead rule [first|adjacent]
	-pattern T=regex     regular expression for terminal T (repeatable)
	-dot file            export the CFSM in Graphviz Dot format
	-html prefix         export ACTION and GOTO tables to prefix-action.html/prefix-goto.html
	-quiet               do not print states and tables
	-trace level         trace level [Debug|Info|Error]

Input is tokenized by matching terminals literally, unless a pattern is given
for a terminal. Whitespace is skipped. Quit interactive mode with <ctrl>D.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.cli'
func tracer() tracing.Trace {
	return tracing.Select("lrkit.cli")
}
