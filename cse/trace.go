/*
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

package cse

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Tracefile is a Chrome trace-event-format JSON sink, one event per
// reduction rule fired, ported from memcp's scm/trace.go. Writes are
// mutex-guarded since a future concurrent caller of Evaluate (each
// with its own Env chain, see SPEC_FULL's concurrency note) could
// plausibly share a single trace sink.
type Tracefile struct {
	isFirst bool
	file    io.WriteCloser
	m       sync.Mutex
}

var traceStart = time.Now()

// NewTrace wraps an already-open file in a Tracefile, writing the
// opening "[" of the JSON array immediately.
func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	return &Tracefile{file: file, isFirst: true}
}

// OpenTraceFile creates path and returns a ready Tracefile, mirroring
// SetTrace's file-naming convention in the teacher (there: an
// env-var-configurable directory plus a unix-timestamp name).
func OpenTraceFile(path string) (*Tracefile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return NewTrace(f), nil
}

// DefaultTraceFileName returns a timestamped file name in the style of
// memcp's SetTrace, placed in the directory named by RPAL_CSE_TRACEDIR
// (the current directory when it is unset).
func DefaultTraceFileName() string {
	return filepath.Join(os.Getenv("RPAL_CSE_TRACEDIR"), "trace_"+fmt.Sprint(time.Now().Unix())+".json")
}

// Close writes the closing "]" and closes the underlying file.
func (t *Tracefile) Close() {
	t.file.Write([]byte("]"))
	t.file.Close()
}

// Event records an instantaneous trace event for a fired reduction
// rule; the Machine passes the rule's short name ("gamma", "beta", ...)
// as name and "reduction" as cat.
func (t *Tracefile) Event(name, cat string) {
	t.EventFull(name, cat, "i", time.Since(traceStart).Microseconds())
}

func (t *Tracefile) EventFull(name, cat, typ string, ts int64) {
	t.m.Lock()
	defer t.m.Unlock()
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	t.file.Write([]byte("{\"name\": "))
	b, _ := json.Marshal(name)
	t.file.Write(b)
	t.file.Write([]byte(", \"cat\": "))
	b, _ = json.Marshal(cat)
	t.file.Write(b)
	t.file.Write([]byte(", \"ph\": \""))
	t.file.Write([]byte(typ))
	t.file.Write([]byte("\", \"ts\": "))
	b, _ = json.Marshal(ts)
	t.file.Write(b)
	t.file.Write([]byte(", \"pid\": 0, \"tid\": 0, \"s\": \"g\"}"))
}
