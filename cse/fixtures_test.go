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

package cse_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/rpal-lang/rpal-cse/cse"
	"github.com/rpal-lang/rpal-cse/sexpr"
)

// TestFixtures runs the on-disk scenario programs under testdata/fixtures,
// the same sources the CLI's documentation and the scenario tests in
// eval_test.go construct inline, guarding against the two drifting apart.
func TestFixtures(t *testing.T) {
	want := map[string]string{
		"scenario1_print_arith.sexpr":     "5",
		"scenario2_sum_multibind.sexpr":   "15",
		"scenario3_factorial_ystar.sexpr": "120",
		"scenario4_conc.sexpr":            "hello world",
		"scenario5_tuple_select.sexpr":    "2",
		"scenario6_string_eq.sexpr":       "yes",
	}
	for name, expected := range want {
		t.Run(name, func(t *testing.T) {
			path := "../testdata/fixtures/" + name
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile(%s): %v", path, err)
			}
			n, err := sexpr.Read(name, string(content))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			var out bytes.Buffer
			if _, err := cse.Evaluate(n, &out); err != nil {
				t.Fatalf("evaluation error: %v", err)
			}
			if out.String() != expected {
				t.Fatalf("got %q, want %q", out.String(), expected)
			}
		})
	}
}
