/*
Package scanner defines an interface for scanners to be used with parsers of package lr1.

Tokenizing raw input is not a concern of the parser generator itself. Clients
will usually already hold a sequence of terminals and feed it to the parser
directly. For the cases where tokens have to be pulled from somewhere,
this package defines the Tokenizer interface, together with a default token
type and a tokenizer over a slice of terminals.
An adapter for lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/grammar"
)

// EOF is the terminal name of end-of-input tokens.
const EOF = string(grammar.EOF)

// Tokenizer is a scanner interface. At the end of input, NextToken returns a
// token for terminal EOF, and will continue to do so on subsequent calls.
type Tokenizer interface {
	NextToken() lrkit.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// symbol tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	terminal string
	lexeme   string
	span     lrkit.Span
}

var _ lrkit.Token = DefaultToken{}

// MakeDefaultToken creates a token for a terminal.
func MakeDefaultToken(terminal string, lexeme string, span lrkit.Span) DefaultToken {
	return DefaultToken{
		terminal: terminal,
		lexeme:   lexeme,
		span:     span,
	}
}

func (t DefaultToken) Terminal() string {
	return t.terminal
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lrkit.Span {
	return t.span
}

// --- Symbol tokenizer ------------------------------------------------------

// SymbolTokenizer is a tokenizer over a pre-tokenized sequence of terminals.
// The k-th token has span (k…k+1) and the terminal name as its lexeme.
type SymbolTokenizer struct {
	symbols []grammar.Symbol
	pos     int
}

var _ Tokenizer = (*SymbolTokenizer)(nil)

// Symbols creates a tokenizer which returns the given terminals, followed by EOF.
func Symbols(symbols []grammar.Symbol) *SymbolTokenizer {
	return &SymbolTokenizer{symbols: symbols}
}

// NextToken is part of the Tokenizer interface.
func (st *SymbolTokenizer) NextToken() lrkit.Token {
	if st.pos >= len(st.symbols) {
		n := uint64(len(st.symbols))
		return MakeDefaultToken(EOF, "", lrkit.Span{n, n})
	}
	A := st.symbols[st.pos]
	span := lrkit.Span{uint64(st.pos), uint64(st.pos + 1)}
	st.pos++
	return MakeDefaultToken(string(A), string(A), span)
}

// SetErrorHandler is part of the Tokenizer interface. A symbol tokenizer
// never reports errors.
func (st *SymbolTokenizer) SetErrorHandler(func(error)) {}
