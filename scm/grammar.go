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

/*
Grammar (every alternative has its own production):

	exp         := atom | quoted_list | call
	quoted_list := QUOTE list
	list        := LPAREN items RPAREN
	items       := item items | ε
	item        := atom | list | quoted_list | call
	call        := LPAREN SYMBOL items RPAREN
	atom        := SYMBOL | bool | NUMBER | TEXT | NIL | ε
	bool        := TRUE | FALSE

The parser shifts tokens onto an explicit stack and reduces a
parenthesized group when its closing token arrives, so the tree is built
bottom-up. A bare list is only valid as an item; at top level a group must
be a call or quoted.
*/

type production uint8

const (
	prodExpAtom production = iota
	prodExpQuoted
	prodExpCall
	prodQuotedList
	prodList
	prodItemsMore
	prodItemsEmpty
	prodItemAtom
	prodItemList
	prodItemQuoted
	prodItemCall
	prodCall
	prodAtomSymbol
	prodAtomBool
	prodAtomNumber
	prodAtomText
	prodAtomNil
	prodAtomEmpty
	prodBoolTrue
	prodBoolFalse
)

var productionNames = [...]string{
	prodExpAtom:    "exp := atom",
	prodExpQuoted:  "exp := quoted_list",
	prodExpCall:    "exp := call",
	prodQuotedList: "quoted_list := QUOTE list",
	prodList:       "list := LPAREN items RPAREN",
	prodItemsMore:  "items := item items",
	prodItemsEmpty: "items := ε",
	prodItemAtom:   "item := atom",
	prodItemList:   "item := list",
	prodItemQuoted: "item := quoted_list",
	prodItemCall:   "item := call",
	prodCall:       "call := LPAREN SYMBOL items RPAREN",
	prodAtomSymbol: "atom := SYMBOL",
	prodAtomBool:   "atom := bool",
	prodAtomNumber: "atom := NUMBER",
	prodAtomText:   "atom := TEXT",
	prodAtomNil:    "atom := NIL",
	prodAtomEmpty:  "atom := ε",
	prodBoolTrue:   "bool := TRUE",
	prodBoolFalse:  "bool := FALSE",
}

func (p production) String() string {
	if int(p) < len(productionNames) {
		return productionNames[p]
	}
	return "?"
}

// group is a shifted LPAREN waiting for its RPAREN.
type group struct {
	open   Token
	quoted bool // QUOTE was shifted right before the LPAREN
	call   bool // the token after LPAREN is a SYMBOL and the group is not quoted
	items  []Scmer
}

// Parser reduces one top-level expression from a token stream.
type Parser struct {
	tokens []Token
	pos    int

	stack  []*group
	quote  *Token // pending QUOTE
	result *Scmer

	// reductions lists the productions in the order they were reduced.
	reductions []production
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Read parses exactly one top-level expression from s.
func Read(source, s string) (Scmer, error) {
	tokens, err := Tokenize(source, s)
	if err != nil {
		return NewNil(), err
	}
	return NewParser(tokens).Parse()
}

func (p *Parser) peek() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		return Token{Type: TokenEOF, Source: last.Source, Line: last.Line, Col: last.Col}
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) reduce(prods ...production) {
	p.reductions = append(p.reductions, prods...)
}

func unexpected(tok Token, expected string) *SyntaxError {
	err := ErrUnexpectedToken
	if tok.Is(TokenEOF) {
		err = ErrUnexpectedEOF
	}
	return &SyntaxError{Token: tok, Expected: expected, Err: err}
}

// Parse runs the shift/reduce loop. It either returns the complete tree
// or a *SyntaxError; there is no recovery.
func (p *Parser) Parse() (Scmer, error) {
	for p.result == nil {
		tok := p.next()
		switch tok.Type {
		case TokenQuote:
			if nxt := p.peek(); !nxt.Is(TokenOpen) {
				return NewNil(), unexpected(nxt, "(")
			}
			p.quote = &tok

		case TokenOpen:
			g := &group{open: tok, quoted: p.quote != nil}
			p.quote = nil
			nxt := p.peek()
			g.call = !g.quoted && nxt.Is(TokenSymbol)
			if len(p.stack) == 0 && !g.quoted && !g.call {
				// exp has no bare list alternative
				return NewNil(), unexpected(nxt, "SYMBOL")
			}
			p.stack = append(p.stack, g)

		case TokenClose:
			if len(p.stack) == 0 {
				return NewNil(), unexpected(tok, "expression")
			}
			g := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.reduce(prodItemsEmpty)
			for range g.items {
				p.reduce(prodItemsMore)
			}
			value := NewSlice(g.items)
			switch {
			case g.quoted:
				p.reduce(prodList, prodQuotedList)
				p.shiftValue(NewSlice([]Scmer{NewSymbol("quote"), value}), prodItemQuoted, prodExpQuoted)
			case g.call:
				p.reduce(prodCall)
				p.shiftValue(value, prodItemCall, prodExpCall)
			default:
				p.reduce(prodList)
				p.shiftValue(value, prodItemList, prodExpAtom) // top level never reaches here
			}

		case TokenEOF:
			if len(p.stack) > 0 {
				open := p.stack[len(p.stack)-1].open
				return NewNil(), &SyntaxError{Token: tok, Expected: "matching ) for " + open.Pos(), Err: ErrUnexpectedEOF}
			}
			p.reduce(prodAtomEmpty, prodExpAtom)
			nilValue := NewNil()
			p.result = &nilValue

		default:
			if !tok.IsAtom() {
				return NewNil(), &SyntaxError{Token: tok, Err: ErrInvalidToken}
			}
			switch tok.Type {
			case TokenSymbol:
				p.reduce(prodAtomSymbol)
			case TokenNumber:
				p.reduce(prodAtomNumber)
			case TokenText:
				p.reduce(prodAtomText)
			case TokenTrue:
				p.reduce(prodBoolTrue, prodAtomBool)
			case TokenFalse:
				p.reduce(prodBoolFalse, prodAtomBool)
			case TokenNil:
				p.reduce(prodAtomNil)
			}
			p.shiftValue(tok.Value, prodItemAtom, prodExpAtom)
		}
	}

	if rest := p.peek(); !rest.Is(TokenEOF) {
		return NewNil(), unexpected(rest, "end of input")
	}
	return *p.result, nil
}

// shiftValue appends a reduced value to the enclosing group, or finishes
// the top-level expression when there is none.
func (p *Parser) shiftValue(v Scmer, asItem, asExp production) {
	if len(p.stack) == 0 {
		p.reduce(asExp)
		p.result = &v
		return
	}
	p.reduce(asItem)
	g := p.stack[len(p.stack)-1]
	g.items = append(g.items, v)
}
