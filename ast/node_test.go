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

package ast

import "testing"

func TestOpString(t *testing.T) {
	cases := map[Op]string{
		OpPlus: "+", OpMinus: "-", OpMult: "*", OpDiv: "/", OpExp: "**",
		OpLs: "ls", OpLe: "le", OpGr: "gr", OpGe: "ge",
		OpEq: "eq", OpNe: "ne", OpNot: "not", OpNeg: "neg", OpAug: "aug",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestOpStringUnknown(t *testing.T) {
	if got := Op(999).String(); got != "?op?" {
		t.Errorf("unknown Op.String() = %q, want ?op?", got)
	}
}

// Every node type must satisfy Node; this is a compile-time check more
// than a runtime one, but exercising the marker methods keeps them
// from silently going unreferenced.
func TestNodeMarkers(t *testing.T) {
	nodes := []Node{
		Ident{Name: "x"},
		IntLit{Value: 1},
		StrLit{Value: "s"},
		TruthLit{Value: true},
		NilLit{},
		DummyLit{},
		Lambda{Params: []string{"x"}, Body: Ident{Name: "x"}},
		Gamma{Fn: Ident{Name: "f"}, Arg: Ident{Name: "x"}},
		Cond{Test: TruthLit{Value: true}, Then: IntLit{Value: 1}, Else: IntLit{Value: 2}},
		Tau{Elems: []Node{IntLit{Value: 1}}},
		Aug{Tuple: NilLit{}, Elem: IntLit{Value: 1}},
		YStar{Fn: Ident{Name: "f"}},
		BinOp{Op: OpPlus, Left: IntLit{Value: 1}, Right: IntLit{Value: 2}},
		UnOp{Op: OpNeg, Operand: IntLit{Value: 1}},
	}
	if len(nodes) != 14 {
		t.Fatalf("expected 14 node kinds, got %d", len(nodes))
	}
}
