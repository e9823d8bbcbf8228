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

	"github.com/rpal-lang/rpal-cse/ast"
)

// Option configures a single Evaluate call.
type Option func(*Machine)

// WithTracer attaches a JSON event sink; every fired reduction rule
// emits one event to it. A nil tracer (the default) costs nothing.
func WithTracer(t *Tracefile) Option {
	return func(m *Machine) { m.tracer = t }
}

// Machine holds everything one Evaluate call owns: the lambda-body
// table produced by the Delta compiler, the shared value stack (Rule
// 3's lambda application recurses while retaining this same stack, per
// spec.md §4.3/§5), the output writer Print writes to, and an optional
// tracer.
type Machine struct {
	bodies [][]ControlItem // indexed by lambda index, not popped in order
	out    io.Writer
	values valueStack
	tracer *Tracefile
}

// Evaluate is the CSE machine's public entry point: it compiles root
// with the Delta compiler and runs it to completion, writing Print
// output to stdout and returning the final Value the spec's
// value-stack-balance property guarantees is alone on the stack when
// a well-typed program terminates.
func Evaluate(root ast.Node, stdout io.Writer, opts ...Option) (result Value, err error) {
	rootSeq, bodies, cerr := Compile(root)
	if cerr != nil {
		return Value{}, cerr
	}
	m := &Machine{bodies: bodies, out: stdout}
	for _, o := range opts {
		o(m)
	}
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EvalError); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()
	env := NewEnv(nil)
	env.Seal()
	m.run(rootSeq, env)
	if m.values.len() != 1 {
		panic(newError(ErrMalformedAST, "value stack holds %d values at completion, expected 1", m.values.len()))
	}
	return m.values.pop(), nil
}

func (m *Machine) trace(rule string) {
	if m.tracer != nil {
		m.tracer.Event(rule, "reduction")
	}
}

// run loads seq onto a fresh control stack and reduces it to
// completion against env, leaving exactly one new Value on the shared
// value stack. Rule 3's lambda-application branch calls run
// recursively with a new env and a new control stack while this same
// *Machine (and hence the same value stack) is reused - the only
// stateful sharing between nested activations, per spec.md §5.
func (m *Machine) run(seq []ControlItem, env *Env) {
	cs := newControlStack(seq)
	for {
		item, ok := cs.pop()
		if !ok {
			return
		}
		switch it := item.(type) {
		case CLiteral:
			m.trace("literal")
			m.values.push(it.Value)
		case CName:
			m.evalName(it.Name, env)
		case CLambdaForm:
			m.trace("lambda")
			m.values.push(NewLambda(it.Params, it.Body, env))
		case CGamma:
			m.evalGamma(cs)
		case CBeta:
			m.evalBeta(cs, it)
		case CTupleFormer:
			m.evalTupleFormer(it.N)
		case OpToken:
			m.evalOp(it.Op)
		default:
			panic(newError(ErrMalformedAST, "unknown control item %T", item))
		}
	}
}

// Rule 1.
func (m *Machine) evalName(name string, env *Env) {
	m.trace("name")
	if v, ok := env.Lookup(name); ok {
		m.values.push(v)
		return
	}
	if IsReserved(name) {
		m.values.push(NewBuiltin(name))
		return
	}
	panic(newError(ErrUndeclaredIdentifier, "undeclared identifier %q", name))
}

// Rule 3.
func (m *Machine) evalGamma(cs *controlStack) {
	m.trace("gamma")
	rator := m.values.pop()
	rand := m.values.pop()
	switch rator.Kind() {
	case KindLambda:
		m.applyLambda(rator.Lambda(), rand)
	case KindEta:
		// Push back rand, then the Eta, then its inner Lambda, so V
		// reads top-down Lambda, Eta, rand; then queue two Gamma
		// markers so the first unrolls L applied to the Eta (its own
		// "self"), and the second applies that result to rand.
		inner := rator.EtaLambda()
		m.values.push(rand)
		m.values.push(rator)
		m.values.push(NewLambda(inner.Params, inner.Body, inner.Env))
		cs.pushSeq([]ControlItem{CGamma{}, CGamma{}})
	case KindTuple:
		if !rand.IsInt() {
			panic(newError(ErrArityError, "tuple selection index must be an integer, got %s", rand.Kind()))
		}
		elems := rator.Tuple()
		k := rand.Int()
		if k < 1 || int(k) > len(elems) {
			panic(newError(ErrArityError, "tuple selection index %d out of range for arity %d", k, len(elems)))
		}
		m.values.push(elems[k-1])
	case KindBuiltin:
		m.evalBuiltinGamma(cs, rator.BuiltinName(), rand)
	default:
		panic(newError(ErrApplicationError, "gamma applied to a non-function value of kind %s", rator.Kind()))
	}
}

func (m *Machine) applyLambda(c *Closure, rand Value) {
	e2 := NewEnv(c.Env)
	if len(c.Params) == 1 {
		e2.Bind(c.Params[0], rand)
	} else {
		if !rand.IsTuple() {
			panic(newError(ErrArityError, "lambda with %d bound variables requires a tuple argument, got %s", len(c.Params), rand.Kind()))
		}
		elems := rand.Tuple()
		if len(elems) != len(c.Params) {
			panic(newError(ErrArityError, "lambda expects a %d-tuple, got a %d-tuple", len(c.Params), len(elems)))
		}
		for i, p := range c.Params {
			e2.Bind(p, elems[i])
		}
	}
	e2.Seal()
	m.run(m.bodies[c.Body], e2)
}

func (m *Machine) evalBuiltinGamma(cs *controlStack, name string, rand Value) {
	switch name {
	case "Y*":
		if !rand.IsLambda() {
			panic(newError(ErrApplicationError, "Y* applied to a non-lambda value of kind %s", rand.Kind()))
		}
		m.values.push(NewEta(rand))
	case "Conc", "conc", "Stconc":
		// Curried: consume the pending outer Gamma directly rather
		// than building a partial-application closure, per spec.md
		// §4.5's note that Conc is "implemented by consuming one
		// extra Gamma from C before popping the second operand".
		a := mustStr(rand, name)
		next, ok := cs.pop()
		if !ok {
			panic(newError(ErrArityError, "%s applied to only one argument", name))
		}
		if _, isGamma := next.(CGamma); !isGamma {
			panic(newError(ErrArityError, "%s must be applied to two arguments in sequence", name))
		}
		b := mustStr(m.values.pop(), name)
		m.values.push(NewStr(a + b))
	default:
		b, ok := LookupBuiltin(name)
		if !ok || b.Fn == nil {
			panic(newError(ErrApplicationError, "builtin %q is not directly callable", name))
		}
		m.values.push(b.Fn(m, []Value{rand}))
	}
}

// Rule 4.
func (m *Machine) evalBeta(cs *controlStack, b CBeta) {
	m.trace("beta")
	cond := m.values.pop()
	if !cond.IsTruth() {
		panic(newError(ErrTypeError, "beta condition must be a truthvalue, got %s", cond.Kind()))
	}
	if cond.Truth() {
		cs.pushSeq(b.Then)
	} else {
		cs.pushSeq(b.Else)
	}
}

// Rule 5.
func (m *Machine) evalTupleFormer(n int) {
	m.trace("tau")
	elems := make([]Value, n)
	for i := n - 1; i >= 0; i-- {
		elems[i] = m.values.pop()
	}
	m.values.push(NewTuple(elems))
}

// Rules 6-10: binary arithmetic/equality/logical, aug, unary.
func (m *Machine) evalOp(op ast.Op) {
	m.trace(op.String())
	switch op {
	case ast.OpPlus, ast.OpMinus, ast.OpMult, ast.OpDiv, ast.OpExp,
		ast.OpLs, ast.OpLe, ast.OpGr, ast.OpGe:
		m.evalArith(op)
	case ast.OpEq, ast.OpNe:
		m.evalEquality(op)
	case ast.OpOr, ast.OpAnd:
		m.evalLogical(op)
	case ast.OpAug:
		m.evalAug()
	case ast.OpNeg:
		a := m.values.pop()
		m.values.push(NewInt(-mustInt(a, "neg")))
	case ast.OpNot:
		a := m.values.pop()
		if !a.IsTruth() {
			panic(newError(ErrTypeError, "not expects a truthvalue, got %s", a.Kind()))
		}
		m.values.push(NewTruth(!a.Truth()))
	default:
		panic(newError(ErrMalformedAST, "unknown operator %v", op))
	}
}

func (m *Machine) evalArith(op ast.Op) {
	a := m.values.pop()
	b := m.values.pop()
	av := mustInt(a, op.String())
	bv := mustInt(b, op.String())
	switch op {
	case ast.OpPlus:
		m.values.push(NewInt(av + bv))
	case ast.OpMinus:
		m.values.push(NewInt(av - bv))
	case ast.OpMult:
		m.values.push(NewInt(av * bv))
	case ast.OpDiv:
		if bv == 0 {
			panic(newError(ErrArithmeticError, "division by zero"))
		}
		m.values.push(NewInt(av / bv))
	case ast.OpExp:
		m.values.push(NewInt(intPow(av, bv)))
	case ast.OpLs:
		m.values.push(NewTruth(av < bv))
	case ast.OpLe:
		m.values.push(NewTruth(av <= bv))
	case ast.OpGr:
		m.values.push(NewTruth(av > bv))
	case ast.OpGe:
		m.values.push(NewTruth(av >= bv))
	}
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		panic(newError(ErrArithmeticError, "negative exponent %d", exp))
	}
	var result int64 = 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

func (m *Machine) evalEquality(op ast.Op) {
	a := m.values.pop()
	b := m.values.pop()
	var eq bool
	switch {
	case a.IsTruth() && b.IsTruth():
		eq = a.Truth() == b.Truth()
	case a.IsInt() && b.IsInt():
		eq = a.Int() == b.Int()
	case a.IsStr() && b.IsStr():
		eq = a.Str() == b.Str()
	default:
		panic(newError(ErrTypeError, "cannot compare %s with %s", a.Kind(), b.Kind()))
	}
	if op == ast.OpNe {
		eq = !eq
	}
	m.values.push(NewTruth(eq))
}

func (m *Machine) evalLogical(op ast.Op) {
	a := m.values.pop()
	b := m.values.pop()
	if !a.IsTruth() || !b.IsTruth() {
		panic(newError(ErrTypeError, "%s expects two truthvalues, got %s and %s", op, a.Kind(), b.Kind()))
	}
	var result bool
	if op == ast.OpOr {
		result = a.Truth() || b.Truth()
	} else {
		result = a.Truth() && b.Truth()
	}
	m.values.push(NewTruth(result))
}

// Rule 9.
func (m *Machine) evalAug() {
	a := m.values.pop()
	b := m.values.pop()
	if !a.IsTuple() {
		panic(newError(ErrTypeError, "aug expects a tuple as its left operand, got %s", a.Kind()))
	}
	elems := a.Tuple()
	out := make([]Value, len(elems)+1)
	copy(out, elems)
	out[len(elems)] = b
	m.values.push(NewTuple(out))
}
