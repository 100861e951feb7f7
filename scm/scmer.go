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
	"math"
	"strconv"
)

// Scmer is the one value type of the language. Parsed code and runtime
// results share it: a list is code or data depending on its head at
// evaluation time.
type Scmer struct {
	tag  uint16
	bits uint64 // int64, float64 bits or bool
	str  string // text or symbol name
	list []Scmer
}

// Type tags
const (
	tagNil = iota
	tagString
	tagSymbol
	tagFloat
	tagInt
	tagBool
	tagSlice
)

var tagNames = map[uint16]string{
	tagNil:    "nil",
	tagString: "text",
	tagSymbol: "symbol",
	tagFloat:  "number",
	tagInt:    "number",
	tagBool:   "bool",
	tagSlice:  "list",
}

//
// Constructors
//

func NewNil() Scmer { return Scmer{tag: tagNil} }

func NewBool(b bool) Scmer {
	if b {
		return Scmer{tag: tagBool, bits: 1}
	}
	return Scmer{tag: tagBool}
}

func NewInt(i int64) Scmer { return Scmer{tag: tagInt, bits: uint64(i)} }

func NewFloat(f float64) Scmer { return Scmer{tag: tagFloat, bits: math.Float64bits(f)} }

// NewString creates a text atom.
func NewString(s string) Scmer { return Scmer{tag: tagString, str: s} }

func NewSymbol(sym string) Scmer { return Scmer{tag: tagSymbol, str: sym} }

// NewSlice wraps the given elements into a list. The slice is not copied;
// callers hand over ownership.
func NewSlice(slice []Scmer) Scmer {
	if slice == nil {
		slice = []Scmer{}
	}
	return Scmer{tag: tagSlice, list: slice}
}

func List(a ...Scmer) Scmer {
	return NewSlice(append([]Scmer{}, a...))
}

// FromAny converts plain Go values into Scmer.
func FromAny(v any) Scmer {
	switch vv := v.(type) {
	case Scmer:
		return vv
	case nil:
		return NewNil()
	case bool:
		return NewBool(vv)
	case int:
		return NewInt(int64(vv))
	case int64:
		return NewInt(vv)
	case float64:
		return NewFloat(vv)
	case string:
		return NewString(vv)
	case []Scmer:
		return NewSlice(vv)
	case []any:
		l := make([]Scmer, len(vv))
		for i, x := range vv {
			l[i] = FromAny(x)
		}
		return NewSlice(l)
	}
	panic("FromAny: unsupported type")
}

//
// Accessors
//

// TypeName is the name used in mismatch messages and documentation.
func (s Scmer) TypeName() string { return tagNames[s.tag] }

func (s Scmer) IsNil() bool { return s.tag == tagNil }

func (s Scmer) IsBool() bool { return s.tag == tagBool }

func (s Scmer) IsInt() bool { return s.tag == tagInt }

func (s Scmer) IsFloat() bool { return s.tag == tagFloat }

func (s Scmer) IsNumber() bool { return s.tag == tagInt || s.tag == tagFloat }

func (s Scmer) IsString() bool { return s.tag == tagString }

func (s Scmer) IsSymbol() bool { return s.tag == tagSymbol }

func (s Scmer) SymbolEquals(name string) bool {
	return s.tag == tagSymbol && s.str == name
}

func (s Scmer) IsSlice() bool { return s.tag == tagSlice }

// Bool reports the truthiness of a value: nil, #f, 0, "" and () are false.
func (s Scmer) Bool() bool {
	switch s.tag {
	case tagNil:
		return false
	case tagBool:
		return s.bits != 0
	case tagInt:
		return int64(s.bits) != 0
	case tagFloat:
		return math.Float64frombits(s.bits) != 0.0
	case tagString:
		return s.str != ""
	case tagSlice:
		return len(s.list) > 0
	default:
		return true
	}
}

func (s Scmer) Int() int64 {
	switch s.tag {
	case tagInt:
		return int64(s.bits)
	case tagFloat:
		return int64(math.Float64frombits(s.bits))
	case tagBool:
		return int64(s.bits)
	case tagString, tagSymbol:
		v, err := strconv.ParseInt(s.str, 10, 64)
		if err != nil {
			return 0
		}
		return v
	}
	return 0
}

func (s Scmer) Float() float64 {
	switch s.tag {
	case tagFloat:
		return math.Float64frombits(s.bits)
	case tagInt:
		return float64(int64(s.bits))
	case tagBool:
		return float64(s.bits)
	case tagString, tagSymbol:
		v, err := strconv.ParseFloat(s.str, 64)
		if err != nil {
			return 0.0
		}
		return v
	}
	return 0.0
}

// String returns the raw text of an atom. Lists are rendered by the
// package level String function.
func (s Scmer) String() string {
	switch s.tag {
	case tagString, tagSymbol:
		return s.str
	case tagInt:
		return strconv.FormatInt(int64(s.bits), 10)
	case tagFloat:
		return strconv.FormatFloat(math.Float64frombits(s.bits), 'g', -1, 64)
	case tagBool:
		if s.bits != 0 {
			return "#t"
		}
		return "#f"
	case tagNil:
		return "nil"
	default:
		return String(s)
	}
}

// Slice returns the elements of a list. It panics on atoms.
func (s Scmer) Slice() []Scmer {
	if s.tag != tagSlice {
		panic("not slice")
	}
	return s.list
}

func symbolName(v Scmer) (string, bool) {
	if v.tag == tagSymbol {
		return v.str, true
	}
	return "", false
}
