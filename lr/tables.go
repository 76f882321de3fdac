package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr/sparse"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Compilers: Principles, Techniques, and Tools" (2nd ed.),
// Section 4.7.2 Constructing LR(1) Sets of Items

// closure computes the closure of an item set. The result is a new set which
// starts with the items of S, in order.
//
// The collection grows while being scanned: items appended during the scan are
// expanded as well, thus the scan ends at the fixed point.
func (A *Automaton) closure(S *ItemSet) *ItemSet {
	C := NewItemSet(S.Items()...)
	for k := 0; k < C.Size(); k++ {
		item := C.Item(k)
		N, ok := item.PeekSymbol(A.g)
		if !ok || !A.g.IsNonTerminal(N) {
			continue
		}
		lookaheads := A.lookaheads(item)
		for _, p := range A.g.ProductionsFor(N) {
			for _, la := range lookaheads {
				C.Add(Item{Prod: p.Index, Dot: 0, Lookahead: la})
			}
		}
	}
	return C
}

// lookaheads computes the lookaheads for items created by expanding the
// non-terminal after the dot of item.
func (A *Automaton) lookaheads(item Item) []grammar.Symbol {
	rhs := A.g.Production(item.Prod).RHS
	beta := rhs[item.Dot+1:]
	switch A.lookahead {
	case AdjacentLookahead:
		las := []grammar.Symbol{item.Lookahead}
		if len(beta) > 0 && A.g.IsTerminal(beta[0]) && beta[0] != item.Lookahead {
			las = append(las, beta[0])
		}
		return las
	default:
		return A.ga.FirstOfSequence(beta, item.Lookahead)
	}
}

// gotoSet computes goto(S, X): all items of S with X after the dot, advanced
// over X and closed. If no item of S has X after the dot, there is no
// transition and gotoSet returns false.
func (A *Automaton) gotoSet(S *ItemSet, X grammar.Symbol) (*ItemSet, bool) {
	kernel := NewItemSet()
	for _, i := range S.Items() {
		if Y, ok := i.PeekSymbol(A.g); ok && Y == X {
			kernel.Add(i.Advance())
		}
	}
	if kernel.Empty() {
		return nil, false
	}
	C := A.closure(kernel)
	tracer().Debugf("goto(%s) --%s--> %s", S.Format(A.g), X, C.Format(A.g))
	return C, true
}

// === CFSM Construction =====================================================

// State is a state within the CFSM for a grammar, i.e. an item set of the
// canonical LR(1) collection. IDs are assigned in order of discovery, starting
// with 0 for the start state.
type State struct {
	ID     int      // serial ID of this state
	Items  *ItemSet // configuration items within this state, closed
	Accept bool     // does this state contain [S' ➞ S •, #eof]?
}

func (s *State) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.Items.Size())
}

// Dump is a debugging helper
func (s *State) Dump(g *grammar.Grammar) {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.Items.Dump(g)
	tracer().Debugf("-------------------------")
}

func (s *State) containsCompletedStartRule() bool {
	for _, i := range s.Items.Items() {
		if i.Prod == grammar.AugmentedIndex && i.Dot == 1 && i.Lookahead == grammar.EOF {
			return true
		}
	}
	return false
}

// Edge is a CFSM transition between two states, labeled with a grammar symbol.
type Edge struct {
	From, To int
	Label    grammar.Symbol
}

// CFSM is the characteristic finite state machine for an LR(1) grammar, i.e.
// the canonical collection of LR(1) item sets together with the goto
// transitions between them. It is constructed by Build.
//
// States are stored in an arena, indexed by their ID. All cross-references
// between states are IDs.
type CFSM struct {
	g      *grammar.Grammar
	states *arraylist.List  // all the states, index = ID
	edges  *arraylist.List  // all the edges between states
	byHash map[string][]int // state IDs by item set fingerprint
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *grammar.Grammar) *CFSM {
	return &CFSM{
		g:      g,
		states: arraylist.New(),
		edges:  arraylist.New(),
		byHash: make(map[string][]int),
	}
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with ID id, or nil.
func (c *CFSM) State(id int) *State {
	x, ok := c.states.Get(id)
	if !ok {
		return nil
	}
	return x.(*State)
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*State {
	states := make([]*State, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		states = append(states, it.Value().(*State))
	}
	return states
}

// S0 returns the start state.
func (c *CFSM) S0() *State {
	return c.State(0)
}

// Edges returns all transitions in order of creation.
func (c *CFSM) Edges() []Edge {
	edges := make([]Edge, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		edges = append(edges, it.Value().(Edge))
	}
	return edges
}

// findStateByItems finds a CFSM state by the contained item set.
func (c *CFSM) findStateByItems(iset *ItemSet, fp string) (*State, bool) {
	for _, id := range c.byHash[fp] {
		if s := c.State(id); s.Items.Equals(iset) {
			return s, true
		}
	}
	return nil, false
}

// addState adds a state to the CFSM. Checks first if state is present.
// Returns the state and true if it has been newly created.
func (c *CFSM) addState(iset *ItemSet) (*State, bool) {
	fp := iset.fingerprint()
	if s, found := c.findStateByItems(iset, fp); found {
		return s, false
	}
	s := &State{ID: c.states.Size(), Items: iset}
	s.Accept = s.containsCompletedStartRule()
	c.states.Add(s)
	c.byHash[fp] = append(c.byHash[fp], s.ID)
	return s, true
}

func (c *CFSM) addEdge(from, to int, label grammar.Symbol) {
	c.edges.Add(Edge{From: from, To: to, Label: label})
}

// buildCFSM constructs the characteristic finite state machine for a grammar.
// States are processed in order of discovery; for every state, goto is
// computed for every grammar symbol (terminals first, then non-terminals).
func (A *Automaton) buildCFSM() *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	cfsm := emptyCFSM(A.g)
	closure0 := A.closure(NewItemSet(StartItem()))
	S0, _ := cfsm.addState(closure0)
	S0.Dump(A.g)
	for k := 0; k < cfsm.Size(); k++ {
		s := cfsm.State(k)
		A.g.EachSymbol(func(X grammar.Symbol) bool {
			gotoset, ok := A.gotoSet(s.Items, X)
			if !ok {
				return true
			}
			snew, isNew := cfsm.addState(gotoset)
			if isNew {
				snew.Dump(A.g)
			}
			cfsm.addEdge(s.ID, snew.ID, X)
			return true
		})
	}
	tracer().Infof("CFSM for grammar %s has %d states", A.g.Name, cfsm.Size())
	return cfsm
}

// === Parser Tables =========================================================

// ActionKind discriminates parser actions.
type ActionKind int8

// Kinds of parser actions.
const (
	ShiftAction ActionKind = iota + 1
	ReduceAction
	AcceptAction
)

// Action is an entry in an ACTION table. A shift action carries the state to
// shift to, a reduce action carries the index of the production to reduce.
type Action struct {
	kind ActionKind
	arg  int
}

// Shift creates a shift action to target state.
func Shift(target int) Action {
	return Action{kind: ShiftAction, arg: target}
}

// Reduce creates a reduce action for the production with index prod.
func Reduce(prod int) Action {
	return Action{kind: ReduceAction, arg: prod}
}

// Accept creates an accept action.
func Accept() Action {
	return Action{kind: AcceptAction}
}

// Kind returns the kind of an action.
func (a Action) Kind() ActionKind {
	return a.kind
}

// Target returns the state to shift to, or -1 for non-shift actions.
func (a Action) Target() int {
	if a.kind != ShiftAction {
		return -1
	}
	return a.arg
}

// Production returns the index of the production to reduce, or -1 for
// non-reduce actions.
func (a Action) Production() int {
	if a.kind != ReduceAction {
		return -1
	}
	return a.arg
}

func (a Action) String() string {
	switch a.kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.arg)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.arg)
	case AcceptAction:
		return "acc"
	}
	return "<none>"
}

// Actions are stored in a sparse matrix as int32:
//
//    shift to n   ⟶  n
//    accept       ⟶  -1
//    reduce n     ⟶  -2-n
//
func (a Action) encode() int32 {
	switch a.kind {
	case ShiftAction:
		return int32(a.arg)
	case ReduceAction:
		return int32(-2 - a.arg)
	}
	return -1
}

func decodeAction(v int32) Action {
	switch {
	case v >= 0:
		return Shift(int(v))
	case v == -1:
		return Accept()
	}
	return Reduce(int(-2 - v))
}

// table is a sparse (state × symbol) matrix with named columns.
type table struct {
	matrix  *sparse.IntMatrix
	symbols []grammar.Symbol
	column  map[grammar.Symbol]int
}

func newTable(rows int, symbols []grammar.Symbol) table {
	t := table{
		matrix:  sparse.NewIntMatrix(rows, len(symbols), sparse.DefaultNullValue),
		symbols: symbols,
		column:  make(map[grammar.Symbol]int, len(symbols)),
	}
	for j, A := range symbols {
		t.column[A] = j
	}
	return t
}

// cell maps (state, A) to a matrix position, if inside the table.
func (t table) cell(state int, A grammar.Symbol) (int, bool) {
	j, ok := t.column[A]
	if !ok || j >= t.matrix.N() || state < 0 || state >= t.matrix.M() {
		return 0, false
	}
	return j, true
}

func (t table) values(state int, A grammar.Symbol) []int32 {
	j, ok := t.cell(state, A)
	if !ok {
		return nil
	}
	return t.matrix.Values(state, j)
}

// ActionTable is the ACTION table of an LR(1) parser: for each state and
// terminal (including grammar.EOF) it holds an ordered list of actions.
// More than one action for a position is a conflict.
type ActionTable struct {
	table
}

// Actions returns all actions for (state, a), in order of creation, or nil.
func (t *ActionTable) Actions(state int, a grammar.Symbol) []Action {
	vals := t.values(state, a)
	if vals == nil {
		return nil
	}
	actions := make([]Action, len(vals))
	for k, v := range vals {
		actions[k] = decodeAction(v)
	}
	return actions
}

// Action returns the first action for (state, a), if any.
func (t *ActionTable) Action(state int, a grammar.Symbol) (Action, bool) {
	vals := t.values(state, a)
	if len(vals) == 0 {
		return Action{}, false
	}
	return decodeAction(vals[0]), true
}

// Terminals returns the column symbols of the table: all terminals of the
// grammar in sorted order, followed by grammar.EOF.
func (t *ActionTable) Terminals() []grammar.Symbol {
	return append([]grammar.Symbol(nil), t.symbols...)
}

// Each calls f for every non-empty entry, ordered by state and column.
func (t *ActionTable) Each(f func(state int, a grammar.Symbol, actions []Action)) {
	t.matrix.Each(func(i, j int, vals []int32) {
		actions := make([]Action, len(vals))
		for k, v := range vals {
			actions[k] = decodeAction(v)
		}
		f(i, t.symbols[j], actions)
	})
}

// Size returns the number of non-empty entries.
func (t *ActionTable) Size() int {
	return t.matrix.ValueCount()
}

func (t *ActionTable) add(state int, a grammar.Symbol, action Action) {
	t.matrix.Add(state, t.column[a], action.encode())
}

// GotoTable is the GOTO table of an LR(1) parser: for each state and
// non-terminal it holds the state to go to after a reduction.
type GotoTable struct {
	table
}

// Target returns GOTO(state, N), if defined.
func (t *GotoTable) Target(state int, N grammar.Symbol) (int, bool) {
	j, ok := t.cell(state, N)
	if !ok {
		return 0, false
	}
	target := t.matrix.Value(state, j)
	if target == t.matrix.NullValue() {
		return 0, false
	}
	return int(target), true
}

// NonTerminals returns the column symbols of the table.
func (t *GotoTable) NonTerminals() []grammar.Symbol {
	return append([]grammar.Symbol(nil), t.symbols...)
}

// Each calls f for every non-empty entry, ordered by state and column.
func (t *GotoTable) Each(f func(state int, N grammar.Symbol, target int)) {
	t.matrix.Each(func(i, j int, vals []int32) {
		f(i, t.symbols[j], int(vals[0]))
	})
}

// Size returns the number of non-empty entries.
func (t *GotoTable) Size() int {
	return t.matrix.ValueCount()
}

// Conflict is a position in the ACTION table with more than one action.
type Conflict struct {
	State    int
	Terminal grammar.Symbol
	Actions  []Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict in state %d on %s: %v", c.State, c.Terminal, c.Actions)
}

// gotoTarget computes goto(state, X) and returns the ID of the resulting state.
func (A *Automaton) gotoTarget(s *State, X grammar.Symbol) (int, bool) {
	gotoset, ok := A.gotoSet(s.Items, X)
	if !ok {
		return 0, false
	}
	target, found := A.cfsm.findStateByItems(gotoset, gotoset.fingerprint())
	if !found {
		tracer().Errorf("goto(%d, %s) leads to a state outside the CFSM", s.ID, X)
		return 0, false
	}
	return target.ID, true
}

// buildTables iterates over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state:
//
//   [A ➞ α • N β, a]  ⟶  GOTO(s, N) = goto(s, N)
//   [A ➞ α • t β, a]  ⟶  ACTION(s, t) += shift goto(s, t)
//   [A ➞ α •, a]      ⟶  ACTION(s, a) += reduce A ➞ α      (A ≠ S')
//   [S' ➞ S •, #eof]  ⟶  ACTION(s, #eof) += accept
//
func (A *Automaton) buildTables() {
	terminals := append(A.g.Terminals(), grammar.EOF)
	actions := &ActionTable{newTable(A.cfsm.Size(), terminals)}
	gotos := &GotoTable{newTable(A.cfsm.Size(), A.g.NonTerminals())}
	for _, state := range A.cfsm.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, i := range state.Items.Items() {
			X, ok := i.PeekSymbol(A.g)
			switch {
			case ok && A.g.IsNonTerminal(X):
				if target, ok := A.gotoTarget(state, X); ok {
					gotos.matrix.Set(state.ID, gotos.column[X], int32(target))
				}
			case ok:
				if target, ok := A.gotoTarget(state, X); ok {
					actions.add(state.ID, X, Shift(target))
				}
			case i.Prod != grammar.AugmentedIndex:
				actions.add(state.ID, i.Lookahead, Reduce(i.Prod))
			case i.Lookahead == grammar.EOF:
				actions.add(state.ID, grammar.EOF, Accept())
			}
		}
	}
	A.actions, A.gotos = actions, gotos
	A.conflicts = nil
	actions.Each(func(s int, a grammar.Symbol, acts []Action) {
		if len(acts) > 1 {
			c := Conflict{State: s, Terminal: a, Actions: acts}
			tracer().Infof("%v", c)
			A.conflicts = append(A.conflicts, c)
		}
	})
}
