package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Symbol is a terminal or non-terminal of a grammar, identified by its name.
type Symbol string

// EOF is the end-of-input marker. It is a terminal of every grammar and
// reserved: clients must not use it in productions or terminal sets.
const EOF Symbol = "#eof"

// AugmentedIndex is the index of a grammar's augmented start production S' ⟶ S.
const AugmentedIndex = -1

// Production is a grammar rule LHS ⟶ RHS. An empty RHS denotes an epsilon
// production. Index is the position of the production within its grammar.
type Production struct {
	LHS   Symbol
	RHS   []Symbol
	Index int
}

// IsEpsilon is true for productions with an empty right hand side.
func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

func (p *Production) String() string {
	if p.IsEpsilon() {
		return fmt.Sprintf("%s ➞ ε", p.LHS)
	}
	return fmt.Sprintf("%s ➞ %s", p.LHS, joinSymbols(p.RHS))
}

// Grammar is an immutable context-free grammar. Create one with New or with a
// Builder.
type Grammar struct {
	Name         string
	productions  []*Production
	augmented    *Production      // S' ⟶ S, not part of productions
	terminals    []Symbol         // sorted, without EOF
	nonterminals []Symbol         // in order of first appearance as LHS
	isTerminal   map[Symbol]bool  // includes EOF
	byLHS        map[Symbol][]int // production indices per non-terminal
}

// New creates a grammar from an ordered list of productions and a set of
// terminals. The LHS of the first production is the start symbol.
// Productions are copied; their Index fields are set to their position in prods.
//
// New returns a *MalformedError if the grammar is empty or references a symbol
// which is neither a terminal nor the LHS of any production.
func New(name string, prods []Production, terminals []Symbol) (*Grammar, error) {
	if len(prods) == 0 {
		return nil, malformed(name, AugmentedIndex, "", "grammar has no productions")
	}
	g := &Grammar{
		Name:       name,
		isTerminal: map[Symbol]bool{EOF: true},
		byLHS:      make(map[Symbol][]int),
	}
	tset := treeset.NewWith(symbolComparator)
	for _, t := range terminals {
		if t == "" {
			return nil, malformed(name, AugmentedIndex, t, "empty terminal name")
		}
		if t == EOF {
			return nil, malformed(name, AugmentedIndex, t, "terminal name is reserved")
		}
		tset.Add(t)
		g.isTerminal[t] = true
	}
	for _, x := range tset.Values() {
		g.terminals = append(g.terminals, x.(Symbol))
	}
	for i, p := range prods {
		switch {
		case p.LHS == "":
			return nil, malformed(name, i, p.LHS, "empty left hand side")
		case p.LHS == EOF:
			return nil, malformed(name, i, p.LHS, "left hand side name is reserved")
		case g.isTerminal[p.LHS]:
			return nil, malformed(name, i, p.LHS, "terminal used as left hand side")
		}
		if _, seen := g.byLHS[p.LHS]; !seen {
			g.nonterminals = append(g.nonterminals, p.LHS)
		}
		g.byLHS[p.LHS] = append(g.byLHS[p.LHS], i)
		rhs := make([]Symbol, len(p.RHS))
		copy(rhs, p.RHS)
		g.productions = append(g.productions, &Production{LHS: p.LHS, RHS: rhs, Index: i})
	}
	for _, p := range g.productions {
		for _, A := range p.RHS {
			switch {
			case A == "":
				return nil, malformed(name, p.Index, A, "empty symbol name")
			case A == EOF:
				return nil, malformed(name, p.Index, A, "end-of-input marker used in production")
			case !g.isTerminal[A] && g.byLHS[A] == nil:
				return nil, malformed(name, p.Index, A, "undeclared symbol")
			}
		}
	}
	start := g.productions[0].LHS
	sprime := start + "'"
	for g.isTerminal[sprime] || g.byLHS[sprime] != nil {
		sprime += "'"
	}
	g.augmented = &Production{LHS: sprime, RHS: []Symbol{start}, Index: AugmentedIndex}
	tracer().Debugf("grammar %s: %d productions, %d terminals, %d non-terminals",
		name, len(g.productions), len(g.terminals), len(g.nonterminals))
	return g, nil
}

func symbolComparator(a, b interface{}) int {
	return strings.Compare(string(a.(Symbol)), string(b.(Symbol)))
}

// Start returns the start symbol, i.e. the LHS of the first production.
func (g *Grammar) Start() Symbol {
	return g.productions[0].LHS
}

// Augmented returns the augmented start production S' ⟶ S. Its index is
// AugmentedIndex and it is not contained in Productions().
func (g *Grammar) Augmented() *Production {
	return g.augmented
}

// Len returns the number of productions, not counting the augmented one.
func (g *Grammar) Len() int {
	return len(g.productions)
}

// Production returns the production at index i, or nil if there is none.
// Index AugmentedIndex yields the augmented start production.
func (g *Grammar) Production(i int) *Production {
	if i == AugmentedIndex {
		return g.augmented
	}
	if i < 0 || i >= len(g.productions) {
		return nil
	}
	return g.productions[i]
}

// Productions returns all productions in order.
func (g *Grammar) Productions() []*Production {
	return append([]*Production(nil), g.productions...)
}

// ProductionsFor returns the productions with LHS N, in order.
// For the augmented start symbol it returns the augmented production.
func (g *Grammar) ProductionsFor(N Symbol) []*Production {
	if N == g.augmented.LHS {
		return []*Production{g.augmented}
	}
	inx := g.byLHS[N]
	prods := make([]*Production, len(inx))
	for i, j := range inx {
		prods[i] = g.productions[j]
	}
	return prods
}

// Terminals returns the terminals of g in sorted order, without EOF.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// NonTerminals returns the non-terminals of g in order of first appearance as
// a left hand side. The augmented start symbol is not included.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// IsTerminal is true for declared terminals and for EOF.
func (g *Grammar) IsTerminal(A Symbol) bool {
	return g.isTerminal[A]
}

// IsNonTerminal is true for every LHS symbol, including the augmented start symbol.
func (g *Grammar) IsNonTerminal(A Symbol) bool {
	return g.byLHS[A] != nil || A == g.augmented.LHS
}

// EachSymbol iterates over all terminals (sorted, without EOF), then over all
// non-terminals (in order of appearance), calling f for each.
// Iteration stops as soon as f returns false.
func (g *Grammar) EachSymbol(f func(A Symbol) bool) {
	for _, t := range g.terminals {
		if !f(t) {
			return
		}
	}
	for _, N := range g.nonterminals {
		if !f(N) {
			return
		}
	}
}

// Dump is a debugging helper, tracing all productions.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------------------------", g.Name)
	for _, p := range g.productions {
		tracer().Debugf("%3d: %s", p.Index, p)
	}
	tracer().Debugf("terminals     = %v", g.terminals)
	tracer().Debugf("non-terminals = %v", g.nonterminals)
	tracer().Debugf("-------------------------------------------------")
}

func joinSymbols(syms []Symbol) string {
	var b strings.Builder
	for i, A := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(A))
	}
	return b.String()
}

// --- Errors ----------------------------------------------------------------

// MalformedError is returned when a grammar cannot be constructed.
// Production is the index of the offending production, or AugmentedIndex if the
// error is not bound to a production.
type MalformedError struct {
	Grammar    string
	Production int
	Symbol     Symbol
	Reason     string
}

func malformed(g string, prod int, sym Symbol, reason string) *MalformedError {
	return &MalformedError{Grammar: g, Production: prod, Symbol: sym, Reason: reason}
}

func (e *MalformedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "malformed grammar %q", e.Grammar)
	if e.Production != AugmentedIndex {
		fmt.Fprintf(&b, ", production %d", e.Production)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Symbol != "" {
		fmt.Fprintf(&b, " %q", string(e.Symbol))
	}
	return b.String()
}
