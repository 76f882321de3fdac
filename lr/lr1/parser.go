package lr1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner"
)

// Parser is an LR(1)-parser type. Create and initialize one with lr1.NewParser(...)
type Parser struct {
	A *lr.Automaton
}

// NewParser creates an LR(1) parser, driven by the tables of automaton A.
func NewParser(A *lr.Automaton) *Parser {
	return &Parser{A: A}
}

// Step is a single record of a parse trace.
type Step struct {
	Stack      []int               // state stack after the step, bottom first
	Lookahead  grammar.Symbol      // the input terminal the action has been selected for
	Position   int                 // input position after the step
	Action     lr.Action           // the action performed
	Production *grammar.Production // reduced production, nil for shift and accept
}

func (s Step) String() string {
	stack := make([]string, len(s.Stack))
	for k, id := range s.Stack {
		stack[k] = fmt.Sprintf("%d", id)
	}
	str := fmt.Sprintf("[%s] %s %s", strings.Join(stack, " "), s.Lookahead, s.Action)
	if s.Production != nil {
		str += " " + s.Production.String()
	}
	return str
}

// Result is the outcome of a parse, either *Accepted or *Failed.
type Result interface {
	Trace() []Step
	isResult()
}

// Accepted is the result of a successful parse. Its last step is the accept step.
type Accepted struct {
	Steps []Step
}

// Failed is the result of a parse which ran into a syntax error. Steps holds
// the steps before the error occurred.
type Failed struct {
	Steps []Step
	Err   *ParseError
}

// Trace returns the steps of the parse.
func (a *Accepted) Trace() []Step { return a.Steps }

// Trace returns the steps of the parse up to the error.
func (f *Failed) Trace() []Step { return f.Steps }

func (a *Accepted) isResult() {}
func (f *Failed) isResult()   {}

// ParseError is a syntax error: there is no action for the current state and
// input token.
type ParseError struct {
	State    int              // state on top of the stack
	Token    grammar.Symbol   // offending input terminal
	Lexeme   string           // lexeme of the offending token
	Position int              // input position of the offending token
	Span     lrkit.Span       // input span of the offending token
	Expected []grammar.Symbol // terminals with an action in State
	Missing  grammar.Symbol   // non-terminal without GOTO entry, if any
	Reserved bool             // Token is the end-of-input marker, found inside the input
}

func (e *ParseError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("syntax error: no GOTO entry for state %d and %s", e.State, e.Missing)
	}
	if e.Reserved {
		return fmt.Sprintf("syntax error at token #%d: reserved end-of-input marker %q inside input",
			e.Position, e.Token)
	}
	if e.Token == grammar.EOF {
		return fmt.Sprintf("syntax error: unexpected end of input in state %d, expected one of %v",
			e.State, e.Expected)
	}
	return fmt.Sprintf("syntax error at token #%d %q: no action in state %d, expected one of %v",
		e.Position, e.Token, e.State, e.Expected)
}

// AsParseError returns the *ParseError wrapped by err, if any.
func AsParseError(err error) (*ParseError, bool) {
	var perr *ParseError
	ok := errors.As(err, &perr)
	return perr, ok
}

// Parse runs the parser on a sequence of terminals. The end-of-input marker
// is appended internally. A grammar.EOF inside tokens is not treated as end
// of input but fails the parse at its position.
func (p *Parser) Parse(tokens []grammar.Symbol) Result {
	return p.parse(scanner.Symbols(tokens), len(tokens))
}

// ParseTokens runs the parser on tokens read from a tokenizer, up to and
// including its EOF token.
func (p *Parser) ParseTokens(scan scanner.Tokenizer) Result {
	return p.parse(scan, -1)
}

// parse is the driver loop. If length is not negative, the input is known
// to have length tokens, and EOF is valid at position length only.
func (p *Parser) parse(scan scanner.Tokenizer, length int) Result {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	g := p.A.Grammar()
	actions, gotos := p.A.ActionTable(), p.A.GotoTable()
	stack := make([]int, 1, 64)
	stack[0] = p.A.StartState()
	var trace []Step
	record := func(la grammar.Symbol, pos int, action lr.Action, prod *grammar.Production) {
		trace = append(trace, Step{
			Stack:      append([]int(nil), stack...),
			Lookahead:  la,
			Position:   pos,
			Action:     action,
			Production: prod,
		})
	}
	pos := 0
	token := scan.NextToken()
	for {
		state := stack[len(stack)-1] // TOS
		t := grammar.Symbol(token.Terminal())
		if t == grammar.EOF && pos < length {
			tracer().Debugf("end-of-input marker in input at position %d", pos)
			return &Failed{Steps: trace, Err: &ParseError{
				State:    state,
				Token:    t,
				Lexeme:   token.Lexeme(),
				Position: pos,
				Span:     token.Span(),
				Expected: p.expected(state),
				Reserved: true,
			}}
		}
		action, ok := actions.Action(state, t)
		tracer().Debugf("action(%d,%s)=%v", state, t, valstring(action, ok))
		if !ok {
			return &Failed{Steps: trace, Err: &ParseError{
				State:    state,
				Token:    t,
				Lexeme:   token.Lexeme(),
				Position: pos,
				Span:     token.Span(),
				Expected: p.expected(state),
			}}
		}
		switch action.Kind() {
		case lr.AcceptAction:
			record(t, pos, action, nil)
			tracer().Debugf("accept")
			return &Accepted{Steps: trace}
		case lr.ShiftAction:
			stack = append(stack, action.Target())
			pos++
			tracer().Debugf("shifting, next state = %d", action.Target())
			record(t, pos, action, nil)
			token = scan.NextToken()
		case lr.ReduceAction:
			rule := g.Production(action.Production())
			stack = stack[:len(stack)-len(rule.RHS)]
			next, ok := gotos.Target(stack[len(stack)-1], rule.LHS)
			if !ok {
				return &Failed{Steps: trace, Err: &ParseError{
					State:    stack[len(stack)-1],
					Token:    t,
					Lexeme:   token.Lexeme(),
					Position: pos,
					Span:     token.Span(),
					Missing:  rule.LHS,
				}}
			}
			stack = append(stack, next)
			tracer().Infof("reduce %v", rule)
			record(t, pos, action, rule)
		}
	}
}

// expected collects all terminals with an action in state.
func (p *Parser) expected(state int) []grammar.Symbol {
	var exp []grammar.Symbol
	actions := p.A.ActionTable()
	for _, a := range actions.Terminals() {
		if _, ok := actions.Action(state, a); ok {
			exp = append(exp, a)
		}
	}
	return exp
}

// --- Helpers ----------------------------------------------------------

// valstring is a short helper to stringify an action table entry.
func valstring(action lr.Action, ok bool) string {
	if !ok {
		return "<none>"
	}
	return action.String()
}
