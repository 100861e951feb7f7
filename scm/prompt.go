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
	"io"
	"runtime/debug"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

type ReplOptions struct {
	HistoryFile string
	Stdin       io.ReadCloser // terminal if nil
	Stdout      io.Writer     // terminal if nil
}

// session holds the state between two prompt lines.
type session struct {
	in      *Interpreter
	out     io.Writer
	pending string // unfinished input waiting for a matching )
}

// feed handles one line of input and returns the next prompt.
func (s *session) feed(line string) string {
	text := s.pending + line
	if s.pending == "" && line == "" {
		return newprompt
	}
	code, err := Read("user prompt", text)
	if errors.Is(err, ErrUnexpectedEOF) {
		s.pending = text + "\n"
		return contprompt
	}
	s.pending = ""
	if err != nil {
		fmt.Fprintln(s.out, err)
		return newprompt
	}
	s.run(code)
	return newprompt
}

func (s *session) run(code Scmer) {
	// anti-panic func
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(s.out, "panic:", r, string(debug.Stack()))
		}
	}()
	if code.IsSlice() && len(code.Slice()) > 0 && code.Slice()[0].SymbolEquals("help") {
		args := code.Slice()[1:]
		name := ""
		if len(args) > 0 {
			name = args[0].String()
		}
		if err := s.in.registry.Help(s.out, name); err != nil {
			fmt.Fprintln(s.out, err)
		}
		return
	}
	result, err := s.in.Eval(code, nil)
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	fmt.Fprint(s.out, resultprompt)
	fmt.Fprintln(s.out, String(result))
}

// Repl reads expressions from the terminal until EOF or ^C on an empty line.
func (in *Interpreter) Repl(opts ReplOptions) error {
	cfg := &readline.Config{
		Prompt:            newprompt,
		HistoryFile:       opts.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	}
	if opts.Stdin != nil {
		cfg.Stdin = opts.Stdin
	}
	if opts.Stdout != nil {
		cfg.Stdout = opts.Stdout
	}
	l, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()

	s := &session{in: in, out: l.Stdout()}
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if s.pending == "" && len(line) == 0 {
				return nil
			}
			s.pending = ""
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		l.SetPrompt(s.feed(line))
	}
}
