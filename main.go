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
/*
	minilisp: a minimal lisp with a bottom-up parser

	usage: minilisp [flags] [script.lisp ...]
*/
package main

import "os"
import "io"
import "fmt"
import "flag"
import "context"
import "syscall"
import "log/slog"
import "os/signal"
import "github.com/docker/go-units"
import "github.com/launix-de/minilisp/scm"

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return fmt.Sprint(*i)
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit; it returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("minilisp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var commands arrayFlags
	fs.Var(&commands, "c", "Execute lisp expression (repeatable)")
	debug := fs.Bool("debug", false, "Print a line for every call before it is evaluated")
	trace := fs.Bool("trace", false, "Write a chrome trace file to $MINILISP_TRACEDIR")
	watch := fs.Bool("watch", false, "Run the scripts again whenever they change on disk")
	maxDepth := fs.Int("max-depth", scm.DefaultMaxDepth, "Maximum nesting of calls during evaluation")
	maxSource := fs.String("max-source", "4MiB", "Maximum size of a script file")
	docs := fs.String("docs", "", "Write Markdown documentation of all builtins into this folder and exit")
	history := fs.String("history", ".minilisp-history.tmp", "History file of the interactive prompt")
	verbose := fs.Bool("v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	scripts := fs.Args()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	limit, err := units.RAMInBytes(*maxSource)
	if err != nil {
		log.Error("invalid -max-source", "value", *maxSource, "err", err)
		return 2
	}

	if *docs != "" {
		if err := scm.WriteDocumentation(*docs); err != nil {
			log.Error("writing documentation failed", "err", err)
			return 1
		}
		log.Info("documentation written", "folder", *docs, "functions", scm.Builtins.Len())
		return 0
	}

	opts := scm.Options{Output: stdout, MaxDepth: *maxDepth}
	if *debug {
		opts.Debug = stderr
	}
	if *trace {
		t, path, err := scm.OpenTrace(os.Getenv("MINILISP_TRACEDIR"))
		if err != nil {
			log.Error("cannot create trace file", "err", err)
			return 1
		}
		defer func() {
			if err := t.Close(); err != nil {
				log.Error("trace file incomplete", "file", path, "err", err)
			}
		}()
		log.Info("tracing", "file", path)
		opts.Trace = t
	}
	in := scm.New(opts)

	for _, script := range scripts {
		log.Debug("loading", "script", script)
		if err := runScript(in, script, limit, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			if !*watch {
				return 1
			}
		}
	}
	for _, command := range commands {
		log.Debug("executing", "command", command)
		if err := in.EvalAll("command line", command, printResult(stdout)); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	if *watch {
		if len(scripts) == 0 {
			log.Error("-watch needs at least one script")
			return 2
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := watchScripts(ctx, in, scripts, limit, stdout, stderr, log); err != nil {
			log.Error("watch failed", "err", err)
			return 1
		}
		return 0
	}

	if len(scripts) == 0 && len(commands) == 0 {
		fmt.Fprint(stdout, `minilisp Copyright (C) 2023-2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

    Type (help) to show help

`)
		if err := in.Repl(scm.ReplOptions{HistoryFile: *history}); err != nil {
			log.Error("prompt failed", "err", err)
			return 1
		}
	}
	return 0
}

func printResult(w io.Writer) func(scm.Scmer) error {
	return func(v scm.Scmer) error {
		_, err := fmt.Fprintln(w, scm.String(v))
		return err
	}
}

// runScript evaluates every top-level expression of a file and prints
// each result.
func runScript(in *scm.Interpreter, filename string, limit int64, stdout io.Writer) error {
	info, err := os.Stat(filename)
	if err != nil {
		return err
	}
	if info.Size() > limit {
		return fmt.Errorf("%s: file is %s, limit is %s", filename, units.HumanSize(float64(info.Size())), units.HumanSize(float64(limit)))
	}
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return in.EvalAll(filename, string(bytes), printResult(stdout))
}
