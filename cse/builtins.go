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
	"io"
	"sort"
	"strconv"
)

// Builtin is one reserved-identifier entry, grounded on memcp's
// Declaration/Declare/Help trio in scm/declare.go: a name, a one-line
// doc string surfaced by a help command, an arity, and the Go function
// backing it. Fn receives the evaluator so side-effecting builtins
// (Print) can reach its output writer, the way memcp's NewFuncEnv
// builtins receive the current *Env.
type Builtin struct {
	Name  string
	Doc   string
	Arity int
	Fn    func(m *Machine, args []Value) Value
}

var builtinTable = make(map[string]*Builtin)

func declare(b *Builtin, names ...string) {
	for _, n := range names {
		cp := *b
		cp.Name = n
		builtinTable[n] = &cp
	}
}

// IsReserved reports whether name is a reserved built-in identifier
// (spec.md §6's reserved identifier set, plus the supplemented
// synonyms below).
func IsReserved(name string) bool {
	_, ok := builtinTable[name]
	return ok
}

// LookupBuiltin returns the builtin registered under name, if any.
func LookupBuiltin(name string) (*Builtin, bool) {
	b, ok := builtinTable[name]
	return b, ok
}

// Builtins returns every reserved identifier in name order, for a help
// listing in the style of memcp's scm.Help.
func Builtins() []*Builtin {
	names := make([]string, 0, len(builtinTable))
	for n := range builtinTable {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Builtin, len(names))
	for i, n := range names {
		out[i] = builtinTable[n]
	}
	return out
}

func checkArity(m *Machine, name string, args []Value, want int) {
	if len(args) != want {
		panic(newError(ErrArityError, "%s expects %d argument(s), got %d", name, want, len(args)))
	}
}

func init() {
	declare(&Builtin{Doc: "true if the argument is an integer", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Isinteger", a, 1)
		return NewTruth(a[0].IsInt())
	}}, "Isinteger")

	declare(&Builtin{Doc: "true if the argument is a string", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Isstring", a, 1)
		return NewTruth(a[0].IsStr())
	}}, "Isstring")

	declare(&Builtin{Doc: "true if the argument is a tuple", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Istuple", a, 1)
		return NewTruth(a[0].IsTuple())
	}}, "Istuple")

	declare(&Builtin{Doc: "true if the argument is dummy", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Isdummy", a, 1)
		return NewTruth(a[0].IsDummy())
	}}, "Isdummy")

	declare(&Builtin{Doc: "true if the argument is a truthvalue", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Istruthvalue", a, 1)
		return NewTruth(a[0].IsTruth())
	}}, "Istruthvalue")

	declare(&Builtin{Doc: "true if the argument is a lambda, eta, or builtin", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Isfunction", a, 1)
		return NewTruth(a[0].IsFunction())
	}}, "Isfunction")

	declare(&Builtin{Doc: "first character of a string (empty string on empty input)", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Stem", a, 1)
		s := mustStr(a[0], "Stem")
		if s == "" {
			return NewStr("")
		}
		return NewStr(s[:1])
	}}, "Stem")

	declare(&Builtin{Doc: "all but the first character of a string", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Stern", a, 1)
		s := mustStr(a[0], "Stern")
		if s == "" {
			return NewStr("")
		}
		return NewStr(s[1:])
	}}, "Stern")

	declare(&Builtin{Doc: "decimal string rendering of an integer", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "ItoS", a, 1)
		return NewStr(strconv.FormatInt(mustInt(a[0], "ItoS"), 10))
	}}, "ItoS")

	declare(&Builtin{Doc: "arity of a tuple", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Order", a, 1)
		return NewInt(int64(len(mustTuple(a[0], "Order"))))
	}}, "Order")

	declare(&Builtin{Doc: "true if the tuple argument has arity 0", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Null", a, 1)
		return NewTruth(len(mustTuple(a[0], "Null")) == 0)
	}}, "Null", "Isempty")

	declare(&Builtin{Doc: "writes the canonical printed form of the argument to standard output and returns dummy", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "Print", a, 1)
		io.WriteString(m.out, Print(a[0]))
		return NewDummy()
	}}, "Print", "print")

	declare(&Builtin{Doc: "unary arithmetic negation, callable as an identifier", Arity: 1, Fn: func(m *Machine, a []Value) Value {
		checkArity(m, "neg", a, 1)
		return NewInt(-mustInt(a[0], "neg"))
	}}, "neg")

	// Conc/conc/Stconc are reserved here so Rule 1 recognizes the name
	// and pushes Builtin("Conc"), but the curried two-argument
	// application itself is handled directly in the Gamma dispatch
	// (see evalBuiltinGamma in eval.go), consuming one extra Gamma
	// marker from the control stack the way spec.md §4.5 describes.
	declare(&Builtin{Doc: "string concatenation, curried: (Conc a) b", Arity: 2}, "Conc", "conc", "Stconc")

	declare(&Builtin{Doc: "the call-by-value fixed-point combinator", Arity: 1}, "Y*")
}

func mustStr(v Value, who string) string {
	if !v.IsStr() {
		panic(newError(ErrTypeError, "%s expects a string, got %s", who, v.Kind()))
	}
	return v.Str()
}

func mustInt(v Value, who string) int64 {
	if !v.IsInt() {
		panic(newError(ErrTypeError, "%s expects an integer, got %s", who, v.Kind()))
	}
	return v.Int()
}

func mustTuple(v Value, who string) []Value {
	if !v.IsTuple() {
		panic(newError(ErrTypeError, "%s expects a tuple, got %s", who, v.Kind()))
	}
	return v.Tuple()
}
