package notation

import (
	"sync"

	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token names of the notation.
const (
	tokIdent     = "IDENT"
	tokLiteral   = "LITERAL"
	tokArrow     = "->"
	tokDefine    = "::="
	tokBar       = "|"
	tokSemicolon = ";"
	tokTerminals = "%terminals"
)

// The tokens representing literal lexemes
var literals = []string{tokArrow, tokDefine, tokBar, tokSemicolon, tokTerminals}

var lexer *lexmach.LMAdapter
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for the grammar notation.
func Lexer() (*lexmach.LMAdapter, error) {
	initOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`#[^\n]*\n?`), lexmach.Skip) // skip comments
			lexer.Add([]byte(`'[^'\n]+'`), lexmach.MakeToken(tokLiteral))
			lexer.Add([]byte(`\"[^"\n]+\"`), lexmach.MakeToken(tokLiteral))
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken(tokIdent))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, nil)
	})
	return lexer, lexerErr
}
