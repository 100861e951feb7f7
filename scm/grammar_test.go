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

func TestRead(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(+ 1 2 3)`, `(+ 1 2 3)`},
		{`'(1 2 3)`, `(quote (1 2 3))`},
		{`'()`, `(quote ())`},
		{`(list (1 2) '(3) (f))`, `(list (1 2) (quote (3)) (f))`},
		{`(f ())`, `(f ())`},
		{`(f)`, `(f)`},
		{`(f ((x 5)) x)`, `(f ((x 5)) x)`},
		{`(f "a b" #t false nil 2.5)`, `(f a b #t #f nil 2.5)`},
		{`5`, `5`},
		{`foo`, `foo`},
		{``, `nil`},
		{"  ; nothing\n", `nil`},
	}

	for _, tc := range testCases {
		v, err := Read("test", tc.In)
		require.NoError(t, err, tc.In)
		assert.Equal(t, tc.Out, String(v), tc.In)
	}
}

func TestReadErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`(1 2)`, ErrUnexpectedToken},
		{`()`, ErrUnexpectedToken},
		{`("a")`, ErrUnexpectedToken},
		{`(+ 1`, ErrUnexpectedEOF},
		{`(+ (1 2)`, ErrUnexpectedEOF},
		{`'x`, ErrUnexpectedToken},
		{`'`, ErrUnexpectedEOF},
		{`)`, ErrUnexpectedToken},
		{`1 2`, ErrUnexpectedToken},
		{`(f) (g)`, ErrUnexpectedToken},
		{`(f))`, ErrUnexpectedToken},
		{`(f "x`, ErrUnexpectedEOF},
	}

	for _, tc := range testCases {
		_, err := Read("test", tc.In)
		require.Error(t, err, tc.In)
		assert.True(t, errors.Is(err, tc.Err), "%s: %v", tc.In, err)

		var syntaxErr *SyntaxError
		assert.True(t, errors.As(err, &syntaxErr), tc.In)
	}
}

func TestSyntaxErrorNamesToken(t *testing.T) {
	_, err := Read("input", "(f\n  (1 2) 3))")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, TokenClose, syntaxErr.Token.Type)
	assert.Equal(t, 2, syntaxErr.Token.Line)
	assert.Equal(t, 11, syntaxErr.Token.Col)
	assert.Equal(t, `input:2:11: syntax error: unexpected token ")", expecting end of input`, err.Error())

	_, err = Read("input", "(f (g 1)")
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, TokenEOF, syntaxErr.Token.Type)
	assert.Contains(t, syntaxErr.Expected, "input:1:1")
}

func TestEveryProductionReachable(t *testing.T) {
	seen := map[production]bool{}
	for _, in := range []string{
		`(f (1) '(2) (g) x #t #f 1 "t" nil)`,
		`x`,
		`'(1)`,
		``,
	} {
		tokens, err := Tokenize("test", in)
		require.NoError(t, err)
		p := NewParser(tokens)
		_, err = p.Parse()
		require.NoError(t, err, in)
		for _, prod := range p.reductions {
			seen[prod] = true
		}
	}
	for prod := range productionNames {
		assert.True(t, seen[production(prod)], "never reduced: %s", production(prod))
	}
}

func TestReductionsAreBottomUp(t *testing.T) {
	tokens, err := Tokenize("test", `(f (1))`)
	require.NoError(t, err)
	p := NewParser(tokens)
	_, err = p.Parse()
	require.NoError(t, err)

	assert.Equal(t, []production{
		prodAtomSymbol, prodItemAtom, // f
		prodAtomNumber, prodItemAtom, // 1
		prodItemsEmpty, prodItemsMore, prodList, prodItemList, // (1)
		prodItemsEmpty, prodItemsMore, prodItemsMore, prodCall, prodExpCall,
	}, p.reductions)
}

func TestRoundTrip(t *testing.T) {
	values := []Scmer{
		List(NewInt(1), NewInt(2), NewInt(3)),
		List(),
		List(NewInt(1), List(NewInt(2), NewSymbol("a")), NewBool(true), NewNil(), List(), NewFloat(2.5), NewInt(-3)),
		List(NewSymbol("quote"), NewSymbol("x")),
		List(List(List())),
		List(NewSymbol("car"), NewBool(false)),
	}

	in := New(Options{})
	for _, v := range values {
		text := String(v)
		expr, err := Read("roundtrip", "'"+text)
		require.NoError(t, err, text)
		result, err := in.Eval(expr, nil)
		require.NoError(t, err, text)
		assert.Equal(t, text, String(result))
		assert.True(t, Equal(v, result), text)
	}
}
