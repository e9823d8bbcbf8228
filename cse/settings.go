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

import "github.com/dc0d/onexit"

// SettingsT mirrors the shape of memcp's storage.SettingsT, trimmed to
// the knobs this evaluator actually has: whether to trace reduction
// rules, and where to write the trace file.
type SettingsT struct {
	Trace     bool
	TraceFile string
}

var Settings = SettingsT{Trace: false, TraceFile: ""}

var activeTrace *Tracefile

// InitSettings applies Settings, opening (or closing) the trace sink
// as needed, and registers an exit hook that flushes and closes the
// trace file regardless of which exit path the process takes -
// exactly the role onexit.Register plays in storage.InitSettings.
func InitSettings() error {
	if activeTrace != nil {
		activeTrace.Close()
		activeTrace = nil
	}
	if Settings.Trace {
		path := Settings.TraceFile
		if path == "" {
			path = DefaultTraceFileName()
		}
		t, err := OpenTraceFile(path)
		if err != nil {
			return err
		}
		activeTrace = t
	}
	onexit.Register(func() {
		if activeTrace != nil {
			activeTrace.Close()
			activeTrace = nil
		}
	})
	return nil
}

// ActiveTrace returns the currently open trace sink, or nil if tracing
// is off.
func ActiveTrace() *Tracefile {
	return activeTrace
}
