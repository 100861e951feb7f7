/*
Copyright (C) 2023-2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "fmt"

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota
	TokenOpen              // "("
	TokenClose             // ")"
	TokenQuote             // "'"
	TokenSymbol
	TokenNumber
	TokenText // "..."
	TokenTrue // #t
	TokenFalse
	TokenNil
	TokenEOF
)

var tokenNames = map[TokenType]string{
	TokenInvalid: "invalid",
	TokenOpen:    "(",
	TokenClose:   ")",
	TokenQuote:   "'",
	TokenSymbol:  "SYMBOL",
	TokenNumber:  "NUMBER",
	TokenText:    "TEXT",
	TokenTrue:    "TRUE",
	TokenFalse:   "FALSE",
	TokenNil:     "NIL",
	TokenEOF:     "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Token is a lexical unit together with its decoded literal value.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  Scmer // literal for atoms, nil otherwise

	Source string
	Line   int
	Col    int
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

// IsAtom tells whether the token reduces to an atom on its own.
func (t Token) IsAtom() bool {
	switch t.Type {
	case TokenSymbol, TokenNumber, TokenText, TokenTrue, TokenFalse, TokenNil:
		return true
	}
	return false
}

func (t Token) Pos() string {
	return fmt.Sprintf("%s:%d:%d", t.Source, t.Line, t.Col)
}

// Describe names the token for error messages.
func (t Token) Describe() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenOpen, TokenClose, TokenQuote:
		return fmt.Sprintf("%q", t.Lexeme)
	}
	return fmt.Sprintf("%v %q", t.Type, t.Lexeme)
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.Type, t.Lexeme, t.Line, t.Col)
}
