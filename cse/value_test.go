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

import "testing"

func TestValueCopyTupleIsDeep(t *testing.T) {
	inner := NewTuple([]Value{NewInt(1), NewInt(2)})
	outer := NewTuple([]Value{inner, NewInt(3)})

	cp := outer.Copy()
	cp.Tuple()[0].Tuple()[0] = NewInt(99)

	if outer.Tuple()[0].Tuple()[0].Int() != 1 {
		t.Fatalf("mutating a copy leaked into the original: got %d, want 1", outer.Tuple()[0].Tuple()[0].Int())
	}
}

func TestValueCopyClosureSharesEnv(t *testing.T) {
	env := NewEnv(nil)
	env.Bind("x", NewInt(1))
	env.Seal()

	l := NewLambda([]string{"y"}, 0, env)
	cp := l.Copy()

	if cp.Lambda().Env != l.Lambda().Env {
		t.Fatal("Copy must share the captured Env by reference, not duplicate it")
	}
	if &cp.Lambda().Params[0] == &l.Lambda().Params[0] {
		t.Fatal("Copy must not alias the Params slice backing array")
	}
}

func TestValueAccessorPanicsOnKindMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic reading Int() off a string Value")
		}
	}()
	NewStr("x").Int()
}

func TestNewEtaRequiresLambda(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected NewEta to panic on a non-lambda argument")
		}
		ee, ok := r.(*EvalError)
		if !ok || ee.Code != ErrMalformedAST {
			t.Fatalf("expected a malformed-ast EvalError, got %v", r)
		}
	}()
	NewEta(NewInt(1))
}

func TestIsFunction(t *testing.T) {
	env := NewEnv(nil)
	env.Seal()
	lambda := NewLambda([]string{"x"}, 0, env)
	cases := []struct {
		v    Value
		want bool
	}{
		{NewInt(1), false},
		{NewStr("s"), false},
		{lambda, true},
		{NewEta(lambda), true},
		{NewBuiltin("Print"), true},
	}
	for _, c := range cases {
		if got := c.v.IsFunction(); got != c.want {
			t.Errorf("IsFunction(%s) = %v, want %v", c.v.Kind(), got, c.want)
		}
	}
}
