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

// Equal is structural equality. Numbers compare by value, so 1 and 1.0
// are equal, and a boolean equals the number 1 (#t) or 0 (#f). Lists
// compare element-wise.
func Equal(a, b Scmer) bool {
	if a.IsNumber() && b.IsNumber() {
		if a.IsInt() && b.IsInt() {
			return a.Int() == b.Int()
		}
		return a.Float() == b.Float()
	}
	if a.IsBool() && b.IsNumber() {
		return boolNumber(a) == b.Float()
	}
	if a.IsNumber() && b.IsBool() {
		return a.Float() == boolNumber(b)
	}
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case tagNil:
		return true
	case tagBool:
		return a.bits == b.bits
	case tagString, tagSymbol:
		return a.str == b.str
	case tagSlice:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func boolNumber(v Scmer) float64 {
	if v.Bool() {
		return 1
	}
	return 0
}

func initLogic(r *Registry) {
	DeclareTitle(r, "Logic")

	eq := &Declaration{
		"eq", "compares two values structurally",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "any", "first value"},
			DeclarationParameter{"b", "any", "second value"},
		}, "bool",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			return NewBool(Equal(a[0], a[1])), nil
		},
	}
	Declare(r, eq)
	declareAlias(r, eq, "=")

	Declare(r, &Declaration{
		"and", "returns #t unless one of the values is #f or 0",
		0, Variadic,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "values to check"},
		}, "bool",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			for _, v := range a {
				if Equal(v, NewBool(false)) {
					return NewBool(false), nil
				}
			}
			return NewBool(true), nil
		},
	})
	Declare(r, &Declaration{
		"or", "returns #t if at least one of the values is #t or 1",
		0, Variadic,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "values to check"},
		}, "bool",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			for _, v := range a {
				if Equal(v, NewBool(true)) {
					return NewBool(true), nil
				}
			}
			return NewBool(false), nil
		},
	})
	Declare(r, &Declaration{
		"cond", "returns the value if the condition is truthy, otherwise nil.\nnil, #f, 0, \"\" and () are falsy.",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"condition", "any", "condition"},
			DeclarationParameter{"value", "any", "result if the condition holds"},
		}, "any",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			if a[0].Bool() {
				return a[1], nil
			}
			return NewNil(), nil
		},
	})
}
