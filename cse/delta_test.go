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
	"testing"

	"github.com/rpal-lang/rpal-cse/ast"
)

func TestCompileGammaOrdersRandBeforeRatorBeforeGamma(t *testing.T) {
	n := ast.Gamma{Fn: ast.Ident{Name: "f"}, Arg: ast.Ident{Name: "x"}}
	seq, _, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(seq) != 3 {
		t.Fatalf("expected 3 control items, got %d: %#v", len(seq), seq)
	}
	if c, ok := seq[0].(CName); !ok || c.Name != "x" {
		t.Fatalf("expected rand (x) first, got %#v", seq[0])
	}
	if c, ok := seq[1].(CName); !ok || c.Name != "f" {
		t.Fatalf("expected rator (f) second, got %#v", seq[1])
	}
	if _, ok := seq[2].(CGamma); !ok {
		t.Fatalf("expected CGamma last, got %#v", seq[2])
	}
}

func TestCompileBinOpOrdersRightBeforeLeftBeforeOp(t *testing.T) {
	n := ast.BinOp{Op: ast.OpPlus, Left: ast.Ident{Name: "a"}, Right: ast.Ident{Name: "b"}}
	seq, _, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if c, ok := seq[0].(CName); !ok || c.Name != "b" {
		t.Fatalf("expected right operand (b) first, got %#v", seq[0])
	}
	if c, ok := seq[1].(CName); !ok || c.Name != "a" {
		t.Fatalf("expected left operand (a) second, got %#v", seq[1])
	}
	if op, ok := seq[2].(OpToken); !ok || op.Op != ast.OpPlus {
		t.Fatalf("expected OpPlus marker last, got %#v", seq[2])
	}
}

func TestCompileAugOrdersElemBeforeTupleBeforeMarker(t *testing.T) {
	n := ast.Aug{Tuple: ast.Ident{Name: "t"}, Elem: ast.Ident{Name: "e"}}
	seq, _, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if c, ok := seq[0].(CName); !ok || c.Name != "e" {
		t.Fatalf("expected elem (e) first, got %#v", seq[0])
	}
	if c, ok := seq[1].(CName); !ok || c.Name != "t" {
		t.Fatalf("expected tuple (t) second, got %#v", seq[1])
	}
	if op, ok := seq[2].(OpToken); !ok || op.Op != ast.OpAug {
		t.Fatalf("expected OpAug marker last, got %#v", seq[2])
	}
}

func TestCompileTauIsLeftToRight(t *testing.T) {
	n := ast.Tau{Elems: []ast.Node{ast.Ident{Name: "a"}, ast.Ident{Name: "b"}, ast.Ident{Name: "c"}}}
	seq, _, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if c, ok := seq[i].(CName); !ok || c.Name != w {
			t.Fatalf("element %d: expected %s, got %#v", i, w, seq[i])
		}
	}
	if tf, ok := seq[3].(CTupleFormer); !ok || tf.N != 3 {
		t.Fatalf("expected CTupleFormer{N:3} last, got %#v", seq[3])
	}
}

func TestCompileLambdaRejectsEmptyParams(t *testing.T) {
	n := ast.Lambda{Params: nil, Body: ast.IntLit{Value: 1}}
	_, _, err := Compile(n)
	if err == nil {
		t.Fatal("expected an error for a zero-parameter lambda")
	}
	if ee, ok := err.(*EvalError); !ok || ee.Code != ErrMalformedAST {
		t.Fatalf("expected a malformed-ast EvalError, got %v", err)
	}
}

func TestCompileNestedLambdaBodyIndices(t *testing.T) {
	inner := ast.Lambda{Params: []string{"y"}, Body: ast.Ident{Name: "y"}}
	outer := ast.Lambda{Params: []string{"x"}, Body: inner}
	_, bodies, err := Compile(outer)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 compiled bodies (outer + inner), got %d", len(bodies))
	}
}
