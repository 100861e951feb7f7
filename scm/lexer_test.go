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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	result := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.Type
	}
	return result
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{``, []TokenType{TokenEOF}},
		{`  ; only a comment`, []TokenType{TokenEOF}},
		{`(+ 1 2)`, []TokenType{TokenOpen, TokenSymbol, TokenNumber, TokenNumber, TokenClose, TokenEOF}},
		{`'(a)`, []TokenType{TokenQuote, TokenOpen, TokenSymbol, TokenClose, TokenEOF}},
		{`#t #f true false nil`, []TokenType{TokenTrue, TokenFalse, TokenTrue, TokenFalse, TokenNil, TokenEOF}},
		{`"a b"x`, []TokenType{TokenText, TokenSymbol, TokenEOF}},
		{"; comment\n(a)", []TokenType{TokenOpen, TokenSymbol, TokenClose, TokenEOF}},
		{`(f"x")`, []TokenType{TokenOpen, TokenSymbol, TokenText, TokenClose, TokenEOF}},
	}

	for _, tc := range testCases {
		tokens, err := Tokenize("test", tc.In)
		require.NoError(t, err, tc.In)
		assert.Equal(t, tc.Out, tokenTypes(tokens), tc.In)
	}
}

func TestTokenizeWords(t *testing.T) {
	testCases := []struct {
		In   string
		Type TokenType
		Out  Scmer
	}{
		{`42`, TokenNumber, NewInt(42)},
		{`-3`, TokenNumber, NewInt(-3)},
		{`2.5`, TokenNumber, NewFloat(2.5)},
		{`.5`, TokenNumber, NewFloat(0.5)},
		{`1e3`, TokenNumber, NewFloat(1000)},
		{`-`, TokenSymbol, NewSymbol("-")},
		{`+`, TokenSymbol, NewSymbol("+")},
		{`inf`, TokenSymbol, NewSymbol("inf")},
		{`1abc`, TokenSymbol, NewSymbol("1abc")},
		{`car`, TokenSymbol, NewSymbol("car")},
		{`"a\"b\\c\n"`, TokenText, NewString("a\"b\\c\n")},
		{`""`, TokenText, NewString("")},
	}

	for _, tc := range testCases {
		tokens, err := Tokenize("test", tc.In)
		require.NoError(t, err, tc.In)
		require.Len(t, tokens, 2, tc.In)
		assert.Equal(t, tc.Type, tokens[0].Type, tc.In)
		assert.Equal(t, tc.Out, tokens[0].Value, tc.In)
		assert.Equal(t, tc.In, tokens[0].Lexeme, tc.In)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("pos", "(a\n  b)")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	expected := [][2]int{{1, 1}, {1, 2}, {2, 3}, {2, 4}}
	for i, pos := range expected {
		assert.Equal(t, pos[0], tokens[i].Line, tokens[i].String())
		assert.Equal(t, pos[1], tokens[i].Col, tokens[i].String())
	}
	assert.Equal(t, "pos:2:3", tokens[2].Pos())
}

func TestTokenizeUnterminatedText(t *testing.T) {
	_, err := Tokenize("test", `(print "abc`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))

	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 8, syntaxErr.Token.Col)
}

func TestSplitTopLevel(t *testing.T) {
	tokens, err := Tokenize("test", `(+ 1 2) 5 '(a) (b`)
	require.NoError(t, err)

	groups := SplitTopLevel(tokens)
	require.Len(t, groups, 4)
	assert.Equal(t, []TokenType{TokenOpen, TokenSymbol, TokenNumber, TokenNumber, TokenClose, TokenEOF}, tokenTypes(groups[0]))
	assert.Equal(t, []TokenType{TokenNumber, TokenEOF}, tokenTypes(groups[1]))
	assert.Equal(t, []TokenType{TokenQuote, TokenOpen, TokenSymbol, TokenClose, TokenEOF}, tokenTypes(groups[2]))
	assert.Equal(t, []TokenType{TokenOpen, TokenSymbol, TokenEOF}, tokenTypes(groups[3]))

	assert.Empty(t, SplitTopLevel([]Token{{Type: TokenEOF}}))
}
