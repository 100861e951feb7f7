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
	"fmt"
	"io"
	"os"
)

const DefaultMaxDepth = 10000

type Options struct {
	Output   io.Writer  // target of print, os.Stdout if nil
	Debug    io.Writer  // receives "Calling <op> with <args>" lines if set
	Trace    *Tracefile // receives one duration event per builtin call if set
	MaxDepth int        // DefaultMaxDepth if <= 0
	Registry *Registry  // Builtins if nil
}

// Interpreter evaluates trees against a registry. It is not safe for
// concurrent use; create one per goroutine.
type Interpreter struct {
	registry *Registry
	out      io.Writer
	debug    io.Writer
	trace    *Tracefile
	maxDepth int
	depth    int
}

func New(opts Options) *Interpreter {
	in := &Interpreter{
		registry: opts.Registry,
		out:      opts.Output,
		debug:    opts.Debug,
		trace:    opts.Trace,
		maxDepth: opts.MaxDepth,
	}
	if in.registry == nil {
		in.registry = Builtins
	}
	if in.out == nil {
		in.out = os.Stdout
	}
	if in.maxDepth <= 0 {
		in.maxDepth = DefaultMaxDepth
	}
	return in
}

func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Eval evaluates a top-level expression. Atoms and the empty list evaluate
// to themselves, a non-empty list is a call on its head.
func (in *Interpreter) Eval(expr Scmer, env *Env) (Scmer, error) {
	if expr.IsSlice() {
		if l := expr.Slice(); len(l) > 0 {
			return in.evaluate(l[0], l[1:], env)
		}
	}
	return expr, nil
}

// EvalString parses and evaluates exactly one expression.
func (in *Interpreter) EvalString(source, text string) (Scmer, error) {
	expr, err := Read(source, text)
	if err != nil {
		return NewNil(), err
	}
	return in.Eval(expr, nil)
}

// EvalAll evaluates each top-level expression of text in order and hands
// the results to each. It stops at the first syntax or fatal error.
func (in *Interpreter) EvalAll(source, text string, each func(Scmer) error) error {
	tokens, err := Tokenize(source, text)
	if err != nil {
		return err
	}
	for _, group := range SplitTopLevel(tokens) {
		expr, err := NewParser(group).Parse()
		if err != nil {
			return err
		}
		result, err := in.Eval(expr, nil)
		if err != nil {
			return err
		}
		if each != nil {
			if err := each(result); err != nil {
				return err
			}
		}
	}
	return nil
}

func (in *Interpreter) evaluate(head Scmer, args []Scmer, env *Env) (Scmer, error) {
	in.depth++
	defer func() { in.depth-- }()
	if in.depth > in.maxDepth {
		return NewNil(), fmt.Errorf("%w (%d)", ErrDepthExceeded, in.maxDepth)
	}

	name, ok := symbolName(head)
	if !ok {
		return inert(head, args), nil
	}
	if in.debug != nil {
		fmt.Fprintln(in.debug, "Calling", name, "with", String(NewSlice(args)))
	}
	switch name {
	case "quote":
		if len(args) != 1 {
			return inert(head, args), nil
		}
		return args[0], nil
	case "let":
		return in.let(head, args, env)
	}

	def, ok := in.registry.Lookup(name)
	if !ok || def.Fn == nil {
		// unknown operators construct data
		return inert(head, args), nil
	}
	evaluated, err := in.evalSequence(args, env)
	if err != nil {
		return NewNil(), err
	}
	return in.invoke(def, head, evaluated)
}

// evalSequence evaluates each argument left to right: non-empty lists are
// calls, everything else stays as it is.
func (in *Interpreter) evalSequence(items []Scmer, env *Env) ([]Scmer, error) {
	result := make([]Scmer, len(items))
	for i, item := range items {
		if item.IsSlice() && len(item.Slice()) > 0 {
			l := item.Slice()
			v, err := in.evaluate(l[0], l[1:], env)
			if err != nil {
				return nil, err
			}
			result[i] = v
		} else {
			result[i] = item
		}
	}
	return result, nil
}

// invoke runs the validation step and the builtin. A *Mismatch from
// either one turns the call back into data; other errors are fatal.
func (in *Interpreter) invoke(def *Declaration, head Scmer, args []Scmer) (Scmer, error) {
	if m := def.check(args); m != nil {
		return inert(head, args), nil
	}
	var result Scmer
	var err error
	if in.trace != nil {
		in.trace.Duration(def.Name, "builtin", func() {
			result, err = def.Fn(in, args...)
		})
	} else {
		result, err = def.Fn(in, args...)
	}
	if err != nil {
		if _, ok := err.(*Mismatch); ok {
			return inert(head, args), nil
		}
		return NewNil(), err
	}
	return result, nil
}

// let substitutes one binding into its body; the binding frame only lives
// for the duration of this call.
func (in *Interpreter) let(head Scmer, args []Scmer, env *Env) (Scmer, error) {
	switch len(args) {
	case 1:
		evaluated, err := in.evalSequence(args, env)
		if err != nil {
			return NewNil(), err
		}
		return evaluated[0], nil
	case 2:
		name, value, ok := letBinding(args[0])
		if !ok {
			return inert(head, args), nil
		}
		scope := env.Bind(name, value)
		body := Substitute(args[1], scope)
		if body.IsSlice() && len(body.Slice()) > 0 {
			l := body.Slice()
			return in.evaluate(l[0], l[1:], scope)
		}
		return body, nil
	}
	return inert(head, args), nil
}

// inert rebuilds [head] ++ args as a fresh data list.
func inert(head Scmer, args []Scmer) Scmer {
	result := make([]Scmer, 0, len(args)+1)
	result = append(result, head)
	return NewSlice(append(result, args...))
}
