package notation

import (
	"fmt"
	"io"
	"io/ioutil"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/timtadh/lexmachine/machines"
)

// SyntaxError is an error in the grammar notation. Line and Column are 1-based.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("grammar syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse reads a grammar in notation format from r.
//
// Errors in the notation are reported as *SyntaxError. A grammar which is
// well-formed notation but not a valid grammar, e.g. because a symbol is
// neither declared as a terminal nor defined by a rule, results in an error
// wrapping a *grammar.MalformedError.
func Parse(name string, r io.Reader) (*grammar.Grammar, error) {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	return ParseString(name, string(src))
}

// ParseString reads a grammar in notation format from a string.
func ParseString(name string, src string) (*grammar.Grammar, error) {
	p, err := newReader(src)
	if err != nil {
		return nil, err
	}
	if err = p.readGrammar(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %d productions and %d terminals for grammar %s",
		len(p.prods), len(p.terminals), name)
	g, err := grammar.New(name, p.prods, p.terminalList())
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}
	return g, nil
}

// --- Recursive descent reader ----------------------------------------------

type reader struct {
	src       string
	lines     []int // byte offsets of line starts
	toks      []lrkit.Token
	pos       int
	terminals map[grammar.Symbol]bool
	prods     []grammar.Production
}

func newReader(src string) (*reader, error) {
	p := &reader{src: src, terminals: make(map[grammar.Symbol]bool)}
	p.lines = append(p.lines, 0)
	for i, c := range src {
		if c == '\n' {
			p.lines = append(p.lines, i+1)
		}
	}
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(src)
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr != nil {
			return
		}
		if ui, ok := e.(*machines.UnconsumedInput); ok {
			line, col := p.position(ui.StartTC)
			r, _ := utf8.DecodeRuneInString(src[ui.StartTC:])
			scanErr = &SyntaxError{Line: line, Column: col, Msg: fmt.Sprintf("unexpected character %q", r)}
			return
		}
		scanErr = &SyntaxError{Line: 1, Column: 1, Msg: e.Error()}
	})
	for {
		token := scan.NextToken()
		p.toks = append(p.toks, token)
		if token.Terminal() == scanner.EOF {
			break
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return p, nil
}

// position returns line and column for a byte offset of the source.
func (p *reader) position(offset int) (int, int) {
	line := sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > offset })
	start := p.lines[line-1]
	if offset > len(p.src) {
		offset = len(p.src)
	}
	return line, utf8.RuneCountInString(p.src[start:offset]) + 1
}

func (p *reader) peek() lrkit.Token {
	return p.toks[p.pos]
}

func (p *reader) next() lrkit.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *reader) errorf(t lrkit.Token, format string, args ...interface{}) error {
	line, col := p.position(int(t.Span().From()))
	return &SyntaxError{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

func describe(t lrkit.Token) string {
	if t.Terminal() == scanner.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Lexeme())
}

// grammar := { '%terminals' { symbol } ';' | rule }
func (p *reader) readGrammar() error {
	for p.peek().Terminal() != scanner.EOF {
		t := p.peek()
		switch t.Terminal() {
		case tokTerminals:
			p.next()
			if err := p.readTerminals(); err != nil {
				return err
			}
		case tokIdent:
			if err := p.readRule(); err != nil {
				return err
			}
		default:
			return p.errorf(t, "expected rule or %%terminals, found %s", describe(t))
		}
	}
	if len(p.prods) == 0 {
		return p.errorf(p.peek(), "grammar has no rules")
	}
	return nil
}

func (p *reader) readTerminals() error {
	for {
		t := p.next()
		switch t.Terminal() {
		case tokIdent:
			p.terminals[grammar.Symbol(t.Lexeme())] = true
		case tokLiteral:
			p.terminals[unquote(t.Lexeme())] = true
		case tokSemicolon:
			return nil
		default:
			return p.errorf(t, "expected terminal or ';', found %s", describe(t))
		}
	}
}

// rule := ident ( '->' | '::=' ) alt { '|' alt } ';'
func (p *reader) readRule() error {
	lhs := grammar.Symbol(p.next().Lexeme())
	if t := p.next(); t.Terminal() != tokArrow && t.Terminal() != tokDefine {
		return p.errorf(t, "expected '->' after %s, found %s", lhs, describe(t))
	}
	for {
		rhs, err := p.readAlternative()
		if err != nil {
			return err
		}
		p.prods = append(p.prods, grammar.Production{LHS: lhs, RHS: rhs})
		t := p.next()
		switch t.Terminal() {
		case tokBar:
			continue
		case tokSemicolon:
			return nil
		default:
			return p.errorf(t, "expected '|' or ';', found %s", describe(t))
		}
	}
}

// alt := { ident | literal }
func (p *reader) readAlternative() ([]grammar.Symbol, error) {
	var rhs []grammar.Symbol
	for {
		t := p.peek()
		switch t.Terminal() {
		case tokIdent:
			rhs = append(rhs, grammar.Symbol(t.Lexeme()))
		case tokLiteral:
			lit := unquote(t.Lexeme())
			p.terminals[lit] = true
			rhs = append(rhs, lit)
		case tokBar, tokSemicolon:
			return rhs, nil
		default:
			return nil, p.errorf(t, "unexpected %s in rule", describe(t))
		}
		p.next()
	}
}

func (p *reader) terminalList() []grammar.Symbol {
	var list []grammar.Symbol
	for t := range p.terminals {
		list = append(list, t)
	}
	return list
}

func unquote(lit string) grammar.Symbol {
	return grammar.Symbol(lit[1 : len(lit)-1])
}
