package lexmach

import (
	"testing"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var TokenCounts = []int{1, 3, 2, 3, 3}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	literals := []string{"'", "(", ")", "[", "]", "=", "+", "-", "*", "/"}
	keywords := []string{"nil", "t"}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING"))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID"))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM"))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.Terminal() != scanner.EOF {
			t.Logf(" %6s | %15s | @%5d", token.Terminal(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != TokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, TokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func makeGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Expr")
	b.LHS("E").N("T").T("-").N("E").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("F").T("*").N("T").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("id").End()
	b.LHS("F").T("if").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGrammarScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	g := makeGrammar(t)
	LM, err := ForGrammar(g, map[string]string{"id": `[a-z][a-z0-9]*`})
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("x1 - if*yz")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"id", "-", "if", "*", "id", scanner.EOF}
	var token lrkit.Token
	for k, term := range expected {
		token = sc.NextToken()
		if token.Terminal() != term {
			t.Errorf("expected token #%d to be %q, is %q", k, term, token.Terminal())
		}
	}
	if token.Span() != (lrkit.Span{10, 10}) {
		t.Errorf("expected EOF token at position 10, is %v", token.Span())
	}
}

func TestGrammarScannerLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	g := makeGrammar(t)
	LM, err := ForGrammar(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("id*id")
	token := sc.NextToken()
	if token.Terminal() != "id" || token.Lexeme() != "id" || token.Span() != (lrkit.Span{0, 2}) {
		t.Errorf("unexpected first token %q/%q at %v", token.Terminal(), token.Lexeme(), token.Span())
	}
}

func TestGrammarScannerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	g := makeGrammar(t)
	if _, err := ForGrammar(g, map[string]string{"num": `[0-9]+`}); err == nil {
		t.Errorf("expected pattern for unknown terminal to be rejected")
	}
	LM, err := ForGrammar(g, map[string]string{"id": `[a-z]+`})
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("a ? b")
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	count := 0
	for sc.NextToken().Terminal() != scanner.EOF {
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 tokens, have %d", count)
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 scanner error, have %d", len(errs))
	}
}

func TestEscape(t *testing.T) {
	if r := escape("-"); r != `\-` {
		t.Errorf("expected '-' to be escaped, is %q", r)
	}
	if r := escape("id"); r != "id" {
		t.Errorf("expected 'id' to stay unchanged, is %q", r)
	}
	if r := escape("(*"); r != `\(\*` {
		t.Errorf("expected '(*' to be escaped, is %q", r)
	}
}
