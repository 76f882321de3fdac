/*
Package grammar implements the grammar model for LR parsing.

A grammar is an ordered list of productions together with a set of terminal
symbols supplied by the client. The left hand side of the first production is
the start symbol. Every symbol appearing on the left hand side of a production
is a non-terminal. Productions are identified by their position in the list;
this index is what a parser's reduce actions refer to.

Building a Grammar

Grammars are either created directly from productions

    g, err := grammar.New("G", []grammar.Production{
        {LHS: "E", RHS: []grammar.Symbol{"T", "-", "E"}},
        {LHS: "E", RHS: []grammar.Symbol{"T"}},
        {LHS: "T", RHS: []grammar.Symbol{"id"}},
    }, []grammar.Symbol{"id", "-"})

or using a grammar builder object:

    b := grammar.NewBuilder("G")
    b.LHS("E").N("T").T("-").N("E").End()  // 0: E  ->  T - E
    b.LHS("E").N("T").End()                // 1: E  ->  T
    b.LHS("T").T("id").End()               // 2: T  ->  id
    b.LHS("T").Epsilon()                   // 3: T  ->
    g, err := b.Grammar()

Grammars are immutable. A grammar which references a symbol that is neither
a terminal nor the left hand side of any production is rejected with a
*MalformedError.

Static Grammar Analysis

Analysis computes the nullable non-terminals and FIRST sets of a grammar.
LR(1) item set construction uses these to compute lookaheads.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.grammar")
}
