package grammar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprGrammar(t *testing.T) *Grammar {
	b := NewBuilder("Expr")
	b.LHS("E").N("T").T("-").N("E").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("F").T("*").N("T").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.grammar")
	defer teardown()
	//
	g := exprGrammar(t)
	g.Dump()
	if g.Start() != "E" {
		t.Errorf("expected start symbol to be E, is %s", g.Start())
	}
	if g.Len() != 5 {
		t.Errorf("expected 5 productions, have %d", g.Len())
	}
	if !reflect.DeepEqual(g.Terminals(), []Symbol{"*", "-", "id"}) {
		t.Errorf("expected sorted terminals [* - id], have %v", g.Terminals())
	}
	if !reflect.DeepEqual(g.NonTerminals(), []Symbol{"E", "T", "F"}) {
		t.Errorf("expected non-terminals [E T F], have %v", g.NonTerminals())
	}
	if p := g.Production(2); p.String() != "T ➞ F * T" || p.Index != 2 {
		t.Errorf("unexpected production 2: %v (index %d)", p, p.Index)
	}
	if g.Production(5) != nil {
		t.Errorf("expected no production at index 5")
	}
	if !g.IsTerminal(EOF) {
		t.Errorf("expected EOF to be a terminal")
	}
}

func TestAugmentedStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.grammar")
	defer teardown()
	//
	g, err := New("G", []Production{
		{LHS: "S", RHS: []Symbol{"S'", "a"}},
		{LHS: "S'", RHS: []Symbol{"a"}},
	}, []Symbol{"a"})
	if err != nil {
		t.Fatal(err)
	}
	aug := g.Augmented()
	if aug.LHS != "S''" {
		t.Errorf("expected augmented start symbol S'', is %s", aug.LHS)
	}
	if aug.Index != AugmentedIndex || g.Production(AugmentedIndex) != aug {
		t.Errorf("augmented production not reachable by its index")
	}
	if !g.IsNonTerminal(aug.LHS) {
		t.Errorf("expected augmented start symbol to be a non-terminal")
	}
	if len(g.ProductionsFor("S'")) != 1 || g.ProductionsFor("S'")[0].Index != 1 {
		t.Errorf("expected exactly production 1 for S'")
	}
}

func TestEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.grammar")
	defer teardown()
	//
	b := NewBuilder("Eps")
	b.LHS("S").N("A").T("a").End()
	inx := b.LHS("A").T("x").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if !g.Production(inx).IsEpsilon() {
		t.Errorf("expected production %d to be an epsilon production", inx)
	}
	if s := g.Production(inx).String(); s != "A ➞ ε" {
		t.Errorf("unexpected string for epsilon production: %q", s)
	}
}

func TestMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.grammar")
	defer teardown()
	//
	cases := []struct {
		name  string
		prods []Production
		terms []Symbol
		prod  int
		sym   Symbol
	}{
		{"empty", nil, []Symbol{"a"}, AugmentedIndex, ""},
		{"undeclared", []Production{{LHS: "S", RHS: []Symbol{"A", "b"}}}, []Symbol{"b"}, 0, "A"},
		{"reserved", []Production{{LHS: "S", RHS: []Symbol{EOF}}}, nil, 0, EOF},
		{"terminal-lhs", []Production{{LHS: "S", RHS: []Symbol{"a"}}, {LHS: "a"}}, []Symbol{"a"}, 1, "a"},
		{"reserved-terminal", []Production{{LHS: "S"}}, []Symbol{EOF}, AugmentedIndex, EOF},
	}
	for _, c := range cases {
		g, err := New(c.name, c.prods, c.terms)
		if err == nil || g != nil {
			t.Errorf("%s: expected construction to fail", c.name)
			continue
		}
		var merr *MalformedError
		if !errors.As(err, &merr) {
			t.Errorf("%s: expected a *MalformedError, got %T", c.name, err)
			continue
		}
		if merr.Production != c.prod || merr.Symbol != c.sym {
			t.Errorf("%s: expected error at (%d,%q), got (%d,%q)", c.name,
				c.prod, c.sym, merr.Production, merr.Symbol)
		}
		t.Logf("%s: %v", c.name, err)
	}
}

func TestProductionsAreCopied(t *testing.T) {
	rhs := []Symbol{"a"}
	g, err := New("G", []Production{{LHS: "S", RHS: rhs}}, []Symbol{"a"})
	if err != nil {
		t.Fatal(err)
	}
	rhs[0] = "b"
	if g.Production(0).RHS[0] != "a" {
		t.Errorf("grammar shares RHS storage with caller")
	}
}

func TestEachSymbol(t *testing.T) {
	g := exprGrammar(t)
	var syms []Symbol
	g.EachSymbol(func(A Symbol) bool {
		syms = append(syms, A)
		return true
	})
	expected := []Symbol{"*", "-", "id", "E", "T", "F"}
	if !reflect.DeepEqual(syms, expected) {
		t.Errorf("expected symbol order %v, have %v", expected, syms)
	}
	n := 0
	g.EachSymbol(func(A Symbol) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Errorf("expected iteration to stop after 2 symbols, visited %d", n)
	}
}
