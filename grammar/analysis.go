package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
)

// Analysis holds the results of a static analysis of a grammar: the set of
// nullable non-terminals and the FIRST sets of all non-terminals.
// FIRST sets never contain epsilon; use Nullable to check for it.
type Analysis struct {
	g        *Grammar
	nullable map[Symbol]bool
	first    map[Symbol]map[Symbol]bool
}

// Analyse computes nullable non-terminals and FIRST sets for g.
func Analyse(g *Grammar) *Analysis {
	ga := &Analysis{
		g:        g,
		nullable: make(map[Symbol]bool),
		first:    make(map[Symbol]map[Symbol]bool),
	}
	prods := append(g.Productions(), g.Augmented())
	for _, p := range prods {
		if ga.first[p.LHS] == nil {
			ga.first[p.LHS] = make(map[Symbol]bool)
		}
	}
	// Iterate until neither nullable nor FIRST changes any more.
	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			if !ga.nullable[p.LHS] && ga.allNullable(p.RHS) {
				ga.nullable[p.LHS] = true
				changed = true
			}
			F := ga.first[p.LHS]
			for _, A := range p.RHS {
				if g.IsTerminal(A) {
					if !F[A] {
						F[A], changed = true, true
					}
					break
				}
				for a := range ga.first[A] {
					if !F[a] {
						F[a], changed = true, true
					}
				}
				if !ga.nullable[A] {
					break
				}
			}
		}
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		for _, N := range g.NonTerminals() {
			tracer().Debugf("FIRST(%s) = %v, nullable = %v", N, ga.First(N), ga.nullable[N])
		}
	}
	return ga
}

func (ga *Analysis) allNullable(syms []Symbol) bool {
	for _, A := range syms {
		if ga.g.IsTerminal(A) || !ga.nullable[A] {
			return false
		}
	}
	return true
}

// Grammar returns the analysed grammar.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// Nullable is true if A derives the empty string.
func (ga *Analysis) Nullable(A Symbol) bool {
	return ga.nullable[A]
}

// First returns FIRST(A) in sorted order. For a terminal this is {A}.
func (ga *Analysis) First(A Symbol) []Symbol {
	if ga.g.IsTerminal(A) {
		return []Symbol{A}
	}
	set := treeset.NewWith(symbolComparator)
	for a := range ga.first[A] {
		set.Add(a)
	}
	return toSymbols(set)
}

// FirstOfSequence returns FIRST(β la) in sorted order, where la is a terminal
// which follows the symbol sequence β.
func (ga *Analysis) FirstOfSequence(beta []Symbol, la Symbol) []Symbol {
	set := treeset.NewWith(symbolComparator)
	for _, A := range beta {
		if ga.g.IsTerminal(A) {
			set.Add(A)
			return toSymbols(set)
		}
		for a := range ga.first[A] {
			set.Add(a)
		}
		if !ga.nullable[A] {
			return toSymbols(set)
		}
	}
	set.Add(la)
	return toSymbols(set)
}

func toSymbols(set *treeset.Set) []Symbol {
	syms := make([]Symbol, 0, set.Size())
	for _, x := range set.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}
