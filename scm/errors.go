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
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrDepthExceeded   = errors.New("maximum evaluation depth exceeded")
)

// SyntaxError aborts the parse of one top-level expression.
type SyntaxError struct {
	Token    Token
	Expected string
	Err      error // one of ErrUnexpectedEOF, ErrUnexpectedToken, ErrInvalidToken
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("%s: syntax error: %v %s", e.Token.Pos(), e.Err, e.Token.Describe())
	if e.Expected != "" {
		msg += ", expecting " + e.Expected
	}
	return msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Mismatch is returned by the validation step of a builtin (or by the
// builtin itself) when the operands do not fit. The evaluator turns it
// into inert data instead of failing.
type Mismatch struct {
	Op     string
	Reason string
}

func (m *Mismatch) Error() string {
	return m.Op + ": " + m.Reason
}

func mismatchf(op string, format string, a ...any) *Mismatch {
	return &Mismatch{Op: op, Reason: fmt.Sprintf(format, a...)}
}
