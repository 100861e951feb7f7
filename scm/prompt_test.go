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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSession() (*session, *bytes.Buffer) {
	var out bytes.Buffer
	return &session{in: New(Options{Output: &out}), out: &out}, &out
}

func TestSessionContinuation(t *testing.T) {
	s, out := newTestSession()

	assert.Equal(t, newprompt, s.feed(""))
	assert.Equal(t, contprompt, s.feed("(+ 1"))
	assert.Equal(t, contprompt, s.feed("   (* 2"))
	assert.Empty(t, out.String())
	assert.Equal(t, newprompt, s.feed("3))"))
	assert.Equal(t, resultprompt+"7\n", out.String())
	assert.Empty(t, s.pending)
}

func TestSessionOutput(t *testing.T) {
	s, out := newTestSession()

	s.feed(`(print "hi")`)
	assert.Equal(t, "hi\n"+resultprompt+"nil\n", out.String())

	out.Reset()
	s.feed(`(foo 1 2)`)
	assert.Equal(t, resultprompt+"(foo 1 2)\n", out.String())

	out.Reset()
	assert.Equal(t, newprompt, s.feed(`(1 2)`))
	assert.Contains(t, out.String(), "syntax error")
	assert.Empty(t, s.pending)

	out.Reset()
	s.in.maxDepth = 1
	s.feed(`(list (list 1))`)
	assert.Contains(t, out.String(), "error: maximum evaluation depth exceeded")
}

func TestSessionHelp(t *testing.T) {
	s, out := newTestSession()

	s.feed(`(help)`)
	assert.Contains(t, out.String(), "Available functions:")

	out.Reset()
	s.feed(`(help "car")`)
	assert.Contains(t, out.String(), "Help for: car")

	out.Reset()
	s.feed(`(help cdr)`)
	assert.Contains(t, out.String(), "Help for: cdr")

	out.Reset()
	s.feed(`(help nothing)`)
	assert.Contains(t, out.String(), "function not found: nothing")
}
