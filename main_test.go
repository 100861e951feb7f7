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
package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/launix-de/minilisp/scm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lisp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCommands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", "(+ 1 2)", "-c", "(list 1 2) (foo)"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "3\n(1 2)\n(foo)\n", stdout.String())
}

func TestRunScript(t *testing.T) {
	script := writeScript(t, "; demo\n(print (list 1 2))\n(let ((x 5)) (+ x 1))\n(/ 1 0)\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{script}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "(1 2)\nnil\n6\nundefined\n", stdout.String())
}

func TestRunSyntaxError(t *testing.T) {
	script := writeScript(t, "(+ 1 2)\n(1 2)\n(+ 3 4)\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{script}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "3\n", stdout.String())
	assert.Contains(t, stderr.String(), "script.lisp:2:2: syntax error")

	stdout.Reset()
	stderr.Reset()
	code = run([]string{"-c", "(+ 1"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unexpected end of input")
}

func TestRunFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nonexisting"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-max-source", "lots", "-c", "1"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-watch", "-c", "1"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.lisp")}, &stdout, &stderr))
}

func TestRunMaxSource(t *testing.T) {
	script := writeScript(t, "(list 1 2 3 4 5 6 7 8 9 10)")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-max-source", "10B", script}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "limit is 10B")
	assert.Empty(t, stdout.String())

	stderr.Reset()
	assert.Equal(t, 0, run([]string{"-max-source", "1KiB", script}, &stdout, &stderr), stderr.String())
	assert.Equal(t, "(1 2 3 4 5 6 7 8 9 10)\n", stdout.String())
}

func TestRunMaxDepth(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-max-depth", "2", "-c", "(list (list (list 1)))"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "maximum evaluation depth exceeded")
}

func TestRunDebug(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-debug", "-c", "(+ 1 (* 2 3))"}, &stdout, &stderr))
	assert.Equal(t, "7\n", stdout.String())
	assert.Contains(t, stderr.String(), "Calling + with (1 (* 2 3))\nCalling * with (2 3)\n")
}

func TestRunTrace(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MINILISP_TRACEDIR", dir)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-trace", "-v", "-c", "(+ 1 2)"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stderr.String(), "tracing")

	files, err := filepath.Glob(filepath.Join(dir, "trace_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "[{"))
	assert.True(t, strings.HasSuffix(string(content), "}]"))
}

func TestRunDocs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-docs", dir}, &stdout, &stderr), stderr.String())
	assert.FileExists(t, filepath.Join(dir, "index.md"))
	assert.FileExists(t, filepath.Join(dir, "lists.md"))
}

// syncBuffer is written by the watch loop and read by the test.
type syncBuffer struct {
	m sync.Mutex
	b bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.m.Lock()
	defer s.m.Unlock()
	return s.b.String()
}

func TestWatchScripts(t *testing.T) {
	script := writeScript(t, "(+ 1 2)")

	var stdout syncBuffer
	in := scm.New(scm.Options{Output: &stdout})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchScripts(ctx, in, []string{script}, 1<<20, &stdout, &stdout, log)
	}()

	// the watcher is registered asynchronously; keep touching the file until a run shows up
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(script, []byte("(* 6 7)"), 0o644)
		return strings.Contains(stdout.String(), "42\n")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}
