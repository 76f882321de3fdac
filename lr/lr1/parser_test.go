package lr1

import (
	"testing"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//  0: E ➞ T - E
//  1: E ➞ T
//  2: T ➞ F * T
//  3: T ➞ F
//  4: F ➞ id
func makeExprGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Expr")
	b.LHS("E").N("T").T("-").N("E").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("F").T("*").N("T").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

//  0: S ➞ A B c
//  1: A ➞ a
//  2: B ➞ b
//  3: B ➞ ε
func makeNullableGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Nullable")
	b.LHS("S").N("A").N("B").T("c").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

func makeParser(t *testing.T, g *grammar.Grammar, opts ...lr.Option) *Parser {
	A, err := lr.Build(g, opts...)
	require.NoError(t, err)
	return NewParser(A)
}

func symbols(syms ...string) []grammar.Symbol {
	r := make([]grammar.Symbol, len(syms))
	for k, s := range syms {
		r[k] = grammar.Symbol(s)
	}
	return r
}

func TestParseSingleId(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := makeParser(t, makeExprGrammar(t))
	result := p.Parse(symbols("id"))
	acc, ok := result.(*Accepted)
	require.True(t, ok, "expected input to be accepted, is %#v", result)
	expected := []struct {
		action lr.Action
		stack  []int
		la     grammar.Symbol
	}{
		{lr.Shift(1), []int{0, 1}, "id"},
		{lr.Reduce(4), []int{0, 4}, grammar.EOF},
		{lr.Reduce(3), []int{0, 3}, grammar.EOF},
		{lr.Reduce(1), []int{0, 2}, grammar.EOF},
		{lr.Accept(), []int{0, 2}, grammar.EOF},
	}
	require.Len(t, acc.Steps, len(expected))
	for k, step := range acc.Steps {
		t.Logf("step %d: %v", k, step)
		assert.Equal(t, expected[k].action, step.Action, "action of step %d", k)
		assert.Equal(t, expected[k].stack, step.Stack, "stack of step %d", k)
		assert.Equal(t, expected[k].la, step.Lookahead, "lookahead of step %d", k)
		assert.Equal(t, 1, step.Position, "position after step %d", k)
	}
	assert.Nil(t, acc.Steps[0].Production)
	assert.Equal(t, "F ➞ id", acc.Steps[1].Production.String())
}

func TestParseFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := makeParser(t, makeExprGrammar(t))
	result := p.Parse(symbols("id", "id"))
	f, ok := result.(*Failed)
	require.True(t, ok, "expected input to be rejected")
	assert.Equal(t, 1, f.Err.State)
	assert.Equal(t, grammar.Symbol("id"), f.Err.Token)
	assert.Equal(t, 1, f.Err.Position)
	assert.Equal(t, lrkit.Span{1, 2}, f.Err.Span)
	assert.ElementsMatch(t, symbols("*", "-", "#eof"), f.Err.Expected)
	require.Len(t, f.Trace(), 1)
	assert.Equal(t, lr.ShiftAction, f.Steps[0].Action.Kind())
	//
	var err error = f.Err
	perr, ok := AsParseError(err)
	require.True(t, ok)
	assert.Contains(t, perr.Error(), "state 1")
}

func TestParseFailureAtStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := makeParser(t, makeExprGrammar(t))
	f, ok := p.Parse(symbols("-", "id")).(*Failed)
	require.True(t, ok)
	assert.Equal(t, 0, f.Err.State)
	assert.Equal(t, grammar.Symbol("-"), f.Err.Token)
	assert.Equal(t, 0, f.Err.Position)
	assert.Empty(t, f.Steps)
	assert.Equal(t, symbols("id"), f.Err.Expected)
}

func TestParseUnexpectedEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := makeParser(t, makeExprGrammar(t))
	f, ok := p.Parse(symbols("id", "-")).(*Failed)
	require.True(t, ok)
	assert.Equal(t, grammar.EOF, f.Err.Token)
	assert.Equal(t, 2, f.Err.Position)
	assert.Contains(t, f.Err.Error(), "end of input")
	// tables are left intact for subsequent parses
	_, ok = p.Parse(symbols("id", "-", "id")).(*Accepted)
	assert.True(t, ok)
}

func TestEndMarkerInsideInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := makeParser(t, makeExprGrammar(t))
	result := p.Parse(symbols("id", string(grammar.EOF), "-", "id"))
	f, ok := result.(*Failed)
	require.True(t, ok, "expected parse to fail, is %#v", result)
	require.Len(t, f.Steps, 1)
	assert.Equal(t, lr.Shift(1), f.Steps[0].Action)
	assert.True(t, f.Err.Reserved)
	assert.Equal(t, grammar.EOF, f.Err.Token)
	assert.Equal(t, 1, f.Err.State)
	assert.Equal(t, 1, f.Err.Position)
	assert.Equal(t, lrkit.Span{1, 2}, f.Err.Span)
	assert.Contains(t, f.Err.Error(), "reserved")
	// trailing marker
	f, ok = p.Parse(symbols("id", string(grammar.EOF))).(*Failed)
	require.True(t, ok)
	assert.Equal(t, 1, f.Err.Position)
	// the real end of input is still accepted
	_, ok = p.Parse(symbols("id")).(*Accepted)
	assert.True(t, ok)
}

func TestSoundness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	p := makeParser(t, g)
	inputs := [][]grammar.Symbol{
		symbols("id"),
		symbols("id", "-", "id", "*", "id"),
		symbols("id", "*", "id", "*", "id", "-", "id"),
	}
	for _, input := range inputs {
		acc, ok := p.Parse(input).(*Accepted)
		require.True(t, ok, "expected %v to be accepted", input)
		forms, err := Derivation(g, acc.Steps)
		require.NoError(t, err)
		assert.Equal(t, symbols("E"), forms[0])
		assert.Equal(t, input, forms[len(forms)-1])
		for k, form := range forms {
			t.Logf("%2d: %v", k, form)
		}
	}
}

func TestDerivationMismatch(t *testing.T) {
	g := makeExprGrammar(t)
	steps := []Step{{Action: lr.Reduce(4), Production: g.Production(4)}}
	_, err := Derivation(g, steps)
	assert.Error(t, err)
}

func TestEpsilonReduce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g := makeNullableGrammar(t)
	p := makeParser(t, g)
	acc, ok := p.Parse(symbols("a", "c")).(*Accepted)
	require.True(t, ok)
	kinds := []lr.Action{}
	for _, step := range acc.Steps {
		kinds = append(kinds, step.Action)
	}
	assert.Equal(t, []lr.Action{
		lr.Shift(acc.Steps[0].Action.Target()),
		lr.Reduce(1),
		lr.Reduce(3),
		lr.Shift(acc.Steps[3].Action.Target()),
		lr.Reduce(0),
		lr.Accept(),
	}, kinds)
	// reducing B ➞ ε pops nothing
	assert.Equal(t, len(acc.Steps[1].Stack)+1, len(acc.Steps[2].Stack))
	forms, err := Derivation(g, acc.Steps)
	require.NoError(t, err)
	assert.Equal(t, symbols("a", "c"), forms[len(forms)-1])
	//
	_, ok = p.Parse(symbols("a", "b", "c")).(*Accepted)
	assert.True(t, ok)
}

func TestAdjacentLookaheadParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := makeParser(t, makeNullableGrammar(t), lr.WithLookahead(lr.AdjacentLookahead))
	f, ok := p.Parse(symbols("a", "c")).(*Failed)
	require.True(t, ok, "expected adjacent lookaheads to miss FIRST(B c)")
	assert.Equal(t, 1, f.Err.State)
	assert.Equal(t, grammar.Symbol("c"), f.Err.Token)
}

func TestConflictFirstWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	b := grammar.NewBuilder("Ambiguous")
	b.LHS("E").N("E").T("+").N("E").End()
	b.LHS("E").T("id").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	p := makeParser(t, g)
	require.True(t, p.A.HasConflicts())
	input := symbols("id", "+", "id", "+", "id")
	acc, ok := p.Parse(input).(*Accepted)
	require.True(t, ok)
	used := 0
	tos := p.A.StartState()
	for _, step := range acc.Steps {
		for _, c := range p.A.Conflicts() {
			if c.State == tos && c.Terminal == step.Lookahead {
				assert.Equal(t, c.Actions[0], step.Action)
				used++
			}
		}
		tos = step.Stack[len(step.Stack)-1]
	}
	assert.NotZero(t, used, "expected parse to run into a conflict")
	forms, err := Derivation(g, acc.Steps)
	require.NoError(t, err)
	assert.Equal(t, input, forms[len(forms)-1])
}

func TestParseTokensFromScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	p := makeParser(t, g)
	LM, err := lexmach.ForGrammar(g, map[string]string{"id": `[a-z]+`})
	require.NoError(t, err)
	scan, err := LM.Scanner("a - b * c")
	require.NoError(t, err)
	_, ok := p.ParseTokens(scan).(*Accepted)
	assert.True(t, ok)
	//
	scan, _ = LM.Scanner("a * - b")
	f, ok := p.ParseTokens(scan).(*Failed)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol("-"), f.Err.Token)
	assert.Equal(t, "-", f.Err.Lexeme)
	assert.Equal(t, lrkit.Span{4, 5}, f.Err.Span)
}
