package lr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/lrkit/grammar"
)

// LookaheadRule selects how closure computes lookaheads for expanded items.
type LookaheadRule int

// Lookahead rules for closure.
const (
	// FirstSetLookahead expands [A ➞ α • N β, a] to [N ➞ • γ, b] for every
	// b in FIRST(β a). This is the canonical LR(1) construction.
	FirstSetLookahead LookaheadRule = iota
	// AdjacentLookahead expands [A ➞ α • N β, a] to [N ➞ • γ, a] and, if β
	// starts with a terminal t, to [N ➞ • γ, t]. Non-terminals in β are not
	// looked through.
	AdjacentLookahead
)

func (r LookaheadRule) String() string {
	switch r {
	case FirstSetLookahead:
		return "first"
	case AdjacentLookahead:
		return "adjacent"
	}
	return fmt.Sprintf("LookaheadRule(%d)", int(r))
}

// ParseLookaheadRule returns the lookahead rule for a name ("first" or "adjacent").
func ParseLookaheadRule(name string) (LookaheadRule, error) {
	switch strings.ToLower(name) {
	case "first", "":
		return FirstSetLookahead, nil
	case "adjacent":
		return AdjacentLookahead, nil
	}
	return FirstSetLookahead, fmt.Errorf("unknown lookahead rule %q", name)
}

// Option configures the construction of an Automaton.
type Option func(*Automaton)

// WithLookahead selects the lookahead rule used by closure.
func WithLookahead(rule LookaheadRule) Option {
	return func(A *Automaton) {
		A.lookahead = rule
	}
}

// Automaton holds the canonical LR(1) collection for a grammar, together with
// the ACTION and GOTO tables derived from it. Create one with Build.
// An Automaton is read-only after construction and may be shared between
// parsers.
type Automaton struct {
	g         *grammar.Grammar
	ga        *grammar.Analysis
	lookahead LookaheadRule
	cfsm      *CFSM
	actions   *ActionTable
	gotos     *GotoTable
	conflicts []Conflict
}

// Build constructs the CFSM and the parser tables for grammar g.
// Conflicts do not make Build fail; check HasConflicts.
func Build(g *grammar.Grammar, opts ...Option) (*Automaton, error) {
	if g == nil {
		return nil, errors.New("lr: cannot build automaton for nil grammar")
	}
	A := &Automaton{g: g}
	for _, opt := range opts {
		opt(A)
	}
	if A.lookahead != FirstSetLookahead && A.lookahead != AdjacentLookahead {
		return nil, fmt.Errorf("lr: invalid lookahead rule %v", A.lookahead)
	}
	tracer().Debugf("building LR(1) automaton for grammar %s, lookahead rule = %s", g.Name, A.lookahead)
	A.ga = grammar.Analyse(g)
	A.cfsm = A.buildCFSM()
	A.buildTables()
	tracer().Infof("ACTION table has %d entries, GOTO table has %d entries, %d conflicts",
		A.actions.Size(), A.gotos.Size(), len(A.conflicts))
	return A, nil
}

// Grammar returns the grammar this automaton has been built for.
func (A *Automaton) Grammar() *grammar.Grammar {
	return A.g
}

// Lookahead returns the lookahead rule used for construction.
func (A *Automaton) Lookahead() LookaheadRule {
	return A.lookahead
}

// CFSM returns the characteristic finite state machine, i.e. the canonical
// collection of LR(1) item sets.
func (A *Automaton) CFSM() *CFSM {
	return A.cfsm
}

// States returns all states of the canonical collection, ordered by ID.
func (A *Automaton) States() []*State {
	return A.cfsm.States()
}

// StartState returns the ID of the start state.
func (A *Automaton) StartState() int {
	return A.cfsm.S0().ID
}

// ActionTable returns the ACTION table.
func (A *Automaton) ActionTable() *ActionTable {
	return A.actions
}

// GotoTable returns the GOTO table.
func (A *Automaton) GotoTable() *GotoTable {
	return A.gotos
}

// HasConflicts is true if any ACTION table position holds more than one action.
func (A *Automaton) HasConflicts() bool {
	return len(A.conflicts) > 0
}

// Conflicts returns all conflicts of the ACTION table, ordered by state and terminal.
func (A *Automaton) Conflicts() []Conflict {
	return append([]Conflict(nil), A.conflicts...)
}

// AcceptingStates returns the IDs of all states with an accept action.
func (A *Automaton) AcceptingStates() []int {
	var acc []int
	for _, s := range A.cfsm.States() {
		if s.Accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

// Closure returns the closure of an item set, using the automaton's
// lookahead rule. S is not modified.
func (A *Automaton) Closure(S *ItemSet) *ItemSet {
	return A.closure(S)
}

// Goto computes goto(S, X). It returns false if no item of S has X
// immediately after the dot.
func (A *Automaton) Goto(S *ItemSet, X grammar.Symbol) (*ItemSet, bool) {
	return A.gotoSet(S, X)
}
