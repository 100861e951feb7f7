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

// Env is one frame of a persistent scope chain. Frames are never mutated;
// Bind returns a new frame pointing at its parent. The nil *Env is the
// empty environment.
type Env struct {
	name   string
	value  Scmer
	outer  *Env
	hidden bool // name is shadowed and must not be substituted below this frame
}

func (e *Env) Bind(name string, value Scmer) *Env {
	return &Env{name: name, value: value, outer: e}
}

func (e *Env) hide(name string) *Env {
	return &Env{name: name, outer: e, hidden: true}
}

// Lookup returns the innermost binding of name.
func (e *Env) Lookup(name string) (Scmer, bool) {
	for ; e != nil; e = e.outer {
		if e.name == name {
			if e.hidden {
				return NewNil(), false
			}
			return e.value, true
		}
	}
	return NewNil(), false
}

// Depth counts the visible and hidden frames.
func (e *Env) Depth() (n int) {
	for ; e != nil; e = e.outer {
		n++
	}
	return
}

// letBinding accepts (name value) and ((name value)).
func letBinding(b Scmer) (name string, value Scmer, ok bool) {
	if !b.IsSlice() {
		return "", NewNil(), false
	}
	l := b.Slice()
	if len(l) == 1 && l[0].IsSlice() {
		l = l[0].Slice()
	}
	if len(l) != 2 {
		return "", NewNil(), false
	}
	name, ok = symbolName(l[0])
	return name, l[1], ok
}

// Substitute replaces every bound symbol in body by its value and returns
// a new tree; body itself is left untouched. A nested let that rebinds a
// name only sees the outer value inside its value expression.
func Substitute(body Scmer, env *Env) Scmer {
	if env == nil {
		return body
	}
	if name, ok := symbolName(body); ok {
		if v, found := env.Lookup(name); found {
			return v
		}
		return body
	}
	if !body.IsSlice() {
		return body
	}
	l := body.Slice()
	if len(l) == 3 && l[0].SymbolEquals("let") {
		if name, value, ok := letBinding(l[1]); ok {
			binding := List(NewSymbol(name), Substitute(value, env))
			if l[1].Slice()[0].IsSlice() {
				binding = List(binding) // keep the ((name value)) shape
			}
			return List(l[0], binding, Substitute(l[2], env.hide(name)))
		}
	}
	result := make([]Scmer, len(l))
	for i, v := range l {
		result[i] = Substitute(v, env)
	}
	return NewSlice(result)
}
