/*
Package lr1 provides a table-driven LR(1)-parser. Clients have to use the tools
of package lr to prepare the necessary parse tables. The parser utilizes these
tables to create a right derivation for a given input, provided as a sequence
of terminals or through a scanner interface.

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse tables from a grammar and use the
parser directly, without a code-generation or compile step.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := grammar.NewBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("a").End()  // Var  --> Sign a
	b.LHS("Sign").T("+").End()           // Sign --> +
	b.LHS("Sign").T("-").End()           // Sign --> -
	b.LHS("Sign").Epsilon()              // Sign -->
	g, err := b.Grammar()

This grammar is subjected to table generation.

	A, err := lr.Build(g)
	if A.HasConflicts() { ... }  // parser will use the first action of a conflict

Finally parse some input:

	p := lr1.NewParser(A)
	switch r := p.Parse([]grammar.Symbol{"+", "a"}).(type) {
	case *lr1.Accepted:
		// r.Steps is the full trace of the parse
	case *lr1.Failed:
		// r.Steps holds the steps before the error, r.Err tells where
	}

The reduce steps of an accepted trace form a right derivation in reverse.
Function Derivation replays them as a sequence of sentential forms.

Parsing is single-threaded. An automaton may be shared between any number of
parsers; every parse allocates its own stack.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}
