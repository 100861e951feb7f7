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

func init() {
	DeclareBuiltins(Builtins)
	Builtins.Seal()
}

// DeclareBuiltins fills r with the special forms and every builtin.
func DeclareBuiltins(r *Registry) {
	DeclareTitle(r, "Syntax")
	Declare(r, &Declaration{
		"quote", "returns its argument without evaluating it\n'(a b) is the same as (quote (a b)).",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "unevaluated value"},
		}, "any",
		nil,
	})
	Declare(r, &Declaration{
		"let", "substitutes a binding into an expression and evaluates it\n(let ((x 5)) (+ x 1)) evaluates (+ 5 1). The value is inserted unevaluated. A nested let that rebinds the same name shadows the outer binding.",
		1, 2,
		[]DeclarationParameter{
			DeclarationParameter{"binding", "list", "(name value) or ((name value))"},
			DeclarationParameter{"body", "any", "expression to substitute into"},
		}, "any",
		nil,
	})

	initLogic(r)
	initList(r)
	initAlu(r)

	DeclareTitle(r, "IO")
	Declare(r, &Declaration{
		"print", "writes the rendered value and a newline to the output",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value to print"},
		}, "nil",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			if _, err := fmt.Fprintln(in.out, String(a[0])); err != nil {
				return NewNil(), fmt.Errorf("print: %w", err)
			}
			return NewNil(), nil
		},
	})
}

// declareAlias registers def once more under another name.
func declareAlias(r *Registry, def *Declaration, name string) {
	alias := *def
	alias.Name = name
	alias.Desc = "alias of " + def.Name + "\n" + def.Desc
	Declare(r, &alias)
}
