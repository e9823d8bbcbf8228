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

package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestRunEvalFlagPrintsResult(t *testing.T) {
	evalExpr = `(gamma Print (+ 2 3))`
	traceFlag = false
	traceFile = ""
	repl = false

	out := captureStdout(t, func() {
		if err := runRun(nil, nil); err != nil {
			t.Fatalf("runRun error: %v", err)
		}
	})
	if out != "5" {
		t.Fatalf("got %q, want %q", out, "5")
	}
}

func TestRunRequiresFileOrEvalFlag(t *testing.T) {
	evalExpr = ""
	traceFlag = false
	traceFile = ""
	repl = false

	if err := runRun(nil, nil); err == nil {
		t.Fatal("expected an error when neither a file nor -e is given")
	}
}

func TestRunReportsParseError(t *testing.T) {
	evalExpr = `(gamma f)`
	traceFlag = false
	traceFile = ""
	repl = false

	if err := runRun(nil, nil); err == nil {
		t.Fatal("expected a parse error for a malformed gamma")
	}
}
