/*
Package lrkit is a canonical LR(1) parser generator toolbox.

lrkit builds the canonical collection of LR(1) item sets for a context-free
grammar, derives ACTION and GOTO tables from it and drives a table-based
shift-reduce parser over a sequence of terminal tokens. Package structure is
as follows:

■ grammar: Package grammar holds the immutable grammar model, a grammar builder
and FIRST-set analysis.

■ grammar/notation: Package notation reads grammars from a small textual notation.

■ lr: Package lr implements closure and goto on LR(1) item sets, the canonical
collection (CFSM) and the parser tables.

■ lr/lr1: Package lr1 implements the table-driven parser, producing a step trace.

■ lr/scanner: Package scanner defines the tokenizer interface the parser may read from.

■ lr/scanner/lexmach: Package lexmach adapts lexmachine to the tokenizer interface.

■ cmd/lr1: Command lr1 prints the automaton for a grammar and parses input interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrkit
