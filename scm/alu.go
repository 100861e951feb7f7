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

import "math"

// Integer arithmetic stays integer as long as every operand is an
// integer and no intermediate result overflows int64; otherwise the whole
// operation switches to float64.

func allInt(a []Scmer) bool {
	for _, v := range a {
		if !v.IsInt() {
			return false
		}
	}
	return true
}

func addInt(x, y int64) (int64, bool) {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func mulInt(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}
	return p, true
}

// floorDiv rounds toward negative infinity; y must not be 0.
func floorDiv(x, y int64) (int64, bool) {
	if x == math.MinInt64 && y == -1 {
		return 0, false
	}
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q, true
}

func sum(a []Scmer) Scmer {
	if allInt(a) {
		var s int64
		ok := true
		for _, v := range a {
			if s, ok = addInt(s, v.Int()); !ok {
				break
			}
		}
		if ok {
			return NewInt(s)
		}
	}
	var s float64
	for _, v := range a {
		s += v.Float()
	}
	return NewFloat(s)
}

func negate(v Scmer) Scmer {
	if v.IsInt() && v.Int() != math.MinInt64 {
		return NewInt(-v.Int())
	}
	return NewFloat(-v.Float())
}

func difference(a []Scmer) Scmer {
	if len(a) == 1 {
		return negate(a[0])
	}
	if allInt(a) {
		d := a[0].Int()
		ok := true
		for _, v := range a[1:] {
			if v.Int() == math.MinInt64 {
				ok = false
				break
			}
			if d, ok = addInt(d, -v.Int()); !ok {
				break
			}
		}
		if ok {
			return NewInt(d)
		}
	}
	d := a[0].Float()
	for _, v := range a[1:] {
		d -= v.Float()
	}
	return NewFloat(d)
}

func product(a []Scmer) Scmer {
	if allInt(a) {
		p := int64(1)
		ok := true
		for _, v := range a {
			if p, ok = mulInt(p, v.Int()); !ok {
				break
			}
		}
		if ok {
			return NewInt(p)
		}
	}
	p := 1.0
	for _, v := range a {
		p *= v.Float()
	}
	return NewFloat(p)
}

// quotient divides successively. Two integers use floor division, a float
// operand gives float division and a zero divisor yields the text
// "undefined".
func quotient(a []Scmer) Scmer {
	acc := a[0]
	for _, d := range a[1:] {
		if d.Float() == 0 {
			return NewString("undefined")
		}
		if acc.IsInt() && d.IsInt() {
			if q, ok := floorDiv(acc.Int(), d.Int()); ok {
				acc = NewInt(q)
				continue
			}
		}
		acc = NewFloat(acc.Float() / d.Float())
	}
	return acc
}

func numbers(name string) []DeclarationParameter {
	return []DeclarationParameter{
		DeclarationParameter{name, "number", "operand"},
	}
}

func initAlu(r *Registry) {
	DeclareTitle(r, "Arithmetic")

	add := &Declaration{
		"+", "adds two or more numbers\nWithout arguments the sum is 0.",
		0, Variadic,
		numbers("value..."), "number",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			return sum(a), nil
		},
	}
	Declare(r, add)
	declareAlias(r, add, "add")

	sub := &Declaration{
		"-", "negates a number or subtracts all further numbers from the first one",
		1, Variadic,
		numbers("value..."), "number",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			return difference(a), nil
		},
	}
	Declare(r, sub)
	declareAlias(r, sub, "minus")

	mul := &Declaration{
		"*", "multiplies numbers",
		1, Variadic,
		numbers("value..."), "number",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			return product(a), nil
		},
	}
	Declare(r, mul)
	declareAlias(r, mul, "multiply")

	div := &Declaration{
		"/", "divides the first number by all further numbers\nTwo integers are divided with floor division. Division by zero returns \"undefined\".",
		1, Variadic,
		numbers("value..."), "number|text",
		func(in *Interpreter, a ...Scmer) (Scmer, error) {
			return quotient(a), nil
		},
	}
	Declare(r, div)
	declareAlias(r, div, "divide")
}
