/*
Package lr implements the construction of canonical LR(1) parsers.

Items and Item Sets

An LR(1) item is a production with a dot marking parse progress, paired with
a single lookahead terminal. Items with the same production and dot position
but different lookaheads are separate entries of an item set; lookaheads are
never grouped into sets.

Parser Construction

Given a grammar, Build constructs the characteristic finite state machine
(CFSM), i.e. the canonical collection of LR(1) item sets, by breadth-first
exploration of all states reachable from the start state via goto. States are
numbered in order of discovery, starting with 0. From the CFSM, Build derives
an ACTION table (shift, reduce and accept entries, keyed by state and terminal)
and a GOTO table (keyed by state and non-terminal).

Example:

    b := grammar.NewBuilder("G")
    b.LHS("E").N("T").T("-").N("E").End()  // 0: E  ->  T - E
    b.LHS("E").N("T").End()                // 1: E  ->  T
    b.LHS("T").T("id").End()               // 2: T  ->  id
    g, _ := b.Grammar()
    A, err := lr.Build(g)                  // construct CFSM and tables
    if A.HasConflicts() { ... }            // grammar is not LR(1)

Grammars are implicitly augmented with a start production S' ➞ S; the accept
action is issued for the completed item [S' ➞ S •, #eof].

Conflicting actions for the same state and terminal are kept in the ACTION
table in the order they have been created. Parsers use the first one.

Lookaheads

Two rules for computing lookaheads during closure are available, selected by
option WithLookahead. FirstSetLookahead (the default) is the textbook rule
FIRST(β a). AdjacentLookahead is a position-local approximation which copies
the originating lookahead and adds the terminal directly following the
expanded non-terminal, if any. The two rules produce different automata for
grammars with nullable non-terminals.

The CFSM is made available to the client and can be exported to Graphviz's
Dot format. Parser tables can be exported to HTML.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}
