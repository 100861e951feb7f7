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

func initList(r *Registry) {
	DeclareTitle(r, "Lists")

	Declare(r, &Declaration{
		"cons", "constructs a list from a head and a tail list",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"car", "any", "new head element"},
			DeclarationParameter{"cdr", "list", "tail that is appended after car"},
		}, "list",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			tail := a[1].Slice()
			result := make([]Scmer, 0, len(tail)+1)
			result = append(result, a[0])
			return NewSlice(append(result, tail...)), nil
		},
	})
	Declare(r, &Declaration{
		"concat", "concatenates two lists.\nBoth inputs stay unharmed.",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "list", "first part"},
			DeclarationParameter{"b", "list", "second part"},
		}, "list",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			x, y := a[0].Slice(), a[1].Slice()
			result := make([]Scmer, 0, len(x)+len(y))
			result = append(result, x...)
			return NewSlice(append(result, y...)), nil
		},
	})
	Declare(r, &Declaration{
		"list", "returns its arguments as a list",
		0, Variadic,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "list items"},
		}, "list",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			return List(a...), nil
		},
	})
	Declare(r, &Declaration{
		"car", "extracts the head of a list",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "list", "non-empty list"},
		}, "any",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			l := a[0].Slice()
			if len(l) == 0 {
				return NewNil(), mismatchf("car", "empty list")
			}
			return l[0], nil
		},
	})
	Declare(r, &Declaration{
		"cdr", "extracts the tail of a list\nThe tail of an empty list is the empty list.",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "list", "list"},
		}, "list",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			l := a[0].Slice()
			if len(l) == 0 {
				return NewSlice(nil), nil
			}
			return List(l[1:]...), nil
		},
	})
}
