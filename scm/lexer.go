/*
Copyright (C) 2023-2026  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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
	"strconv"
	"strings"
)

var textReplacer = strings.NewReplacer("\\\"", "\"", "\\\\", "\\", "\\n", "\n", "\\r", "\r", "\\t", "\t")

func isDelimiter(ch rune) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '(', ')', '\'', '"', ';':
		return true
	}
	return false
}

// Tokenize splits s into typed tokens. The last token is always TokenEOF.
func Tokenize(source, s string) ([]Token, error) {
	/* tokenizer state machine:
	0 = expecting next item
	1 = inside word (symbol, number or literal)
	3 = inside text
	4 = inside escaping sequence of text
	5 = inside comment
	*/
	line, col := 1, 0
	startLine, startCol := 1, 0
	state := 0
	startToken := 0
	result := make([]Token, 0)

	punct := func(tt TokenType, lexeme string) {
		result = append(result, Token{Type: tt, Lexeme: lexeme, Source: source, Line: line, Col: col})
	}
	finishWord := func(end int) {
		tok := classify(s[startToken:end])
		tok.Source, tok.Line, tok.Col = source, startLine, startCol
		result = append(result, tok)
	}

	for i, ch := range s {
		col++

		switch state {
		case 1:
			if !isDelimiter(ch) {
				break // another character added to the word
			}
			finishWord(i)
			state = 0
		case 3:
			if ch == '\\' {
				state = 4
			} else if ch == '"' {
				result = append(result, Token{
					Type:   TokenText,
					Lexeme: s[startToken : i+1],
					Value:  NewString(textReplacer.Replace(s[startToken+1 : i])),
					Source: source, Line: startLine, Col: startCol,
				})
				state = 0
				goto next
			}
		case 4:
			state = 3 // continue with text
		case 5:
			if ch == '\n' {
				state = 0
			}
		}

		if state == 0 {
			// now detect what to parse next
			startToken, startLine, startCol = i, line, col
			switch ch {
			case '(':
				punct(TokenOpen, "(")
			case ')':
				punct(TokenClose, ")")
			case '\'':
				punct(TokenQuote, "'")
			case '"':
				state = 3
			case ';':
				state = 5
			case ' ', '\t', '\r', '\n':
				// white space
			default:
				state = 1
			}
		}

	next:
		if ch == '\n' {
			line++
			col = 0
		}
	}

	// in the end: finish unfinished words and report open texts
	switch state {
	case 1:
		finishWord(len(s))
	case 3, 4:
		return nil, &SyntaxError{
			Token:    Token{Type: TokenInvalid, Lexeme: s[startToken:], Source: source, Line: startLine, Col: startCol},
			Expected: "closing \"",
			Err:      ErrUnexpectedEOF,
		}
	}
	result = append(result, Token{Type: TokenEOF, Source: source, Line: line, Col: col + 1})
	return result, nil
}

// classify turns a bare word into a boolean, nil, number or symbol token.
func classify(lexeme string) Token {
	switch lexeme {
	case "#t", "true":
		return Token{Type: TokenTrue, Lexeme: lexeme, Value: NewBool(true)}
	case "#f", "false":
		return Token{Type: TokenFalse, Lexeme: lexeme, Value: NewBool(false)}
	case "nil":
		return Token{Type: TokenNil, Lexeme: lexeme, Value: NewNil()}
	}
	if looksNumeric(lexeme) {
		if i, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			return Token{Type: TokenNumber, Lexeme: lexeme, Value: NewInt(i)}
		}
		if f, err := strconv.ParseFloat(lexeme, 64); err == nil {
			return Token{Type: TokenNumber, Lexeme: lexeme, Value: NewFloat(f)}
		}
	}
	return Token{Type: TokenSymbol, Lexeme: lexeme, Value: NewSymbol(lexeme)}
}

// looksNumeric keeps words like "inf" or "-" out of the number parser.
func looksNumeric(s string) bool {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if len(s) > 1 && s[0] == '.' {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// SplitTopLevel groups a token stream into consecutive top-level
// expressions, each terminated by its own TokenEOF. An unbalanced tail
// becomes the last group so that parsing it reports the error.
func SplitTopLevel(tokens []Token) [][]Token {
	var groups [][]Token
	eof := len(tokens)
	for i, tok := range tokens {
		if tok.Is(TokenEOF) {
			eof = i
			break
		}
	}

	group := func(start, end int) []Token {
		g := make([]Token, 0, end-start+1)
		g = append(g, tokens[start:end]...)
		terminator := Token{Type: TokenEOF}
		if end < len(tokens) {
			terminator = tokens[end]
		}
		terminator.Type, terminator.Lexeme, terminator.Value = TokenEOF, "", Scmer{}
		return append(g, terminator)
	}

	depth, start := 0, 0
	for i := 0; i < eof; i++ {
		switch tokens[i].Type {
		case TokenOpen:
			depth++
		case TokenClose:
			depth--
		case TokenQuote:
			continue // belongs to the following list
		}
		if depth <= 0 {
			groups = append(groups, group(start, i+1))
			start, depth = i+1, 0
		}
	}
	if start < eof {
		groups = append(groups, group(start, eof))
	}
	return groups
}
