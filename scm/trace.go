/*
Copyright (C) 2024-2026  Carl-Philip Hänsch

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

import "io"
import "os"
import "sync"
import "time"
import "path/filepath"
import "encoding/json"
import "github.com/google/uuid"

// Tracefile writes events in the chrome trace format
// (load it in chrome://tracing or ui.perfetto.dev).
type Tracefile struct {
	isFirst bool
	file    io.WriteCloser
	m       sync.Mutex
	start   time.Time
	err     error // first write error, reported by Close
}

type traceEvent struct {
	Name  string `json:"name"`
	Cat   string `json:"cat"`
	Ph    string `json:"ph"`
	Ts    int64  `json:"ts"`
	Pid   int    `json:"pid"`
	Tid   int    `json:"tid"`
	Scope string `json:"s"`
}

// OpenTrace creates trace_<uuid>.json in dir and returns its path.
func OpenTrace(dir string) (*Tracefile, string, error) {
	path := filepath.Join(dir, "trace_"+uuid.NewString()+".json")
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	return NewTrace(f), path, nil
}

func NewTrace(file io.WriteCloser) *Tracefile {
	result := &Tracefile{file: file, isFirst: true, start: time.Now()}
	result.write([]byte("["))
	return result
}

func (t *Tracefile) write(b []byte) {
	if t.err != nil {
		return
	}
	_, t.err = t.file.Write(b)
}

func (t *Tracefile) Close() error {
	t.m.Lock()
	defer t.m.Unlock()
	t.write([]byte("]"))
	if err := t.file.Close(); t.err == nil {
		t.err = err
	}
	return t.err
}

func (t *Tracefile) Duration(name string, cat string, f func()) {
	t.EventHalf(name, cat, "B", 0, 0)
	defer t.EventHalf(name, cat, "E", 0, 0)
	f()
}

func (t *Tracefile) Event(name string, cat string, typ string) {
	t.EventHalf(name, cat, typ, 0, 0)
}

func (t *Tracefile) EventHalf(name string, cat string, typ string, tid int, pid int) {
	t.EventFull(name, cat, typ, time.Since(t.start).Microseconds(), tid, pid)
}

/*
EventFull appends one event.

	@name string function
	@cat string comma separated categories (for filtering)
	@typ B/E for begin/end, X for events
	@ts timestamp in microseconds
*/
func (t *Tracefile) EventFull(name string, cat string, typ string, ts int64, tid int, pid int) {
	b, _ := json.Marshal(traceEvent{name, cat, typ, ts, pid, tid, "g"})
	t.m.Lock()
	defer t.m.Unlock()
	if t.isFirst {
		t.isFirst = false
	} else {
		t.write([]byte(",\n"))
	}
	t.write(b)
}
