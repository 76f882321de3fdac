package lexmach

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lrkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …) and a list of keywords ("if", "for", …). Each of them
// will produce tokens with the literal or keyword as the terminal name.
// Literals and keywords are registered before init is called, thus taking
// precedence over patterns of init for matches of equal length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(escape(lit)), MakeToken(lit))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(escape(name)), MakeToken(name))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// ForGrammar creates a lexmachine adapter which recognizes the terminals of g.
// By default a terminal matches its own name literally. patterns maps terminal
// names to regular expressions to use instead, e.g. "id" ➞ `[a-z][a-z0-9]*`.
// Whitespace between tokens is skipped.
func ForGrammar(g *grammar.Grammar, patterns map[string]string) (*LMAdapter, error) {
	var literals, keywords, patterned []string
	for _, T := range g.Terminals() {
		name := string(T)
		if _, ok := patterns[name]; ok {
			patterned = append(patterned, name)
		} else if isWord(name) {
			keywords = append(keywords, name)
		} else {
			literals = append(literals, name)
		}
	}
	for name := range patterns {
		if !g.IsTerminal(grammar.Symbol(name)) || grammar.Symbol(name) == grammar.EOF {
			return nil, fmt.Errorf("pattern for unknown terminal %q", name)
		}
	}
	sort.Strings(patterned)
	init := func(lexer *lexmachine.Lexer) {
		for _, name := range patterned {
			lexer.Add([]byte(patterns[name]), MakeToken(name))
		}
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	return NewLMAdapter(init, literals, keywords)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     uint64 // end position of the last token
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Spans of tokens are
// byte offsets into the input.
//
// Unconsumed input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() lrkit.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", lrkit.Span{lms.end, lms.end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	lms.end = from + uint64(len(token.Lexeme))
	return scanner.MakeDefaultToken(
		token.Value.(string),
		string(token.Lexeme),
		lrkit.Span{from, lms.end},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// for terminal name.
func MakeToken(name string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, name, m), nil
	}
}

// escape turns a literal into a lexmachine regular expression matching it.
// ASCII punctuation is backslash-escaped, everything else is kept as is.
func escape(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if r < unicode.MaxASCII && !isWordRune(r) && !unicode.IsSpace(r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWord(s string) bool {
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return s != ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
