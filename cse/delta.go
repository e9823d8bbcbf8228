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

import "github.com/rpal-lang/rpal-cse/ast"

// DeltaCompiler walks a standardized ast.Node tree and flattens it
// into control sequences, one per lambda body plus the root. It holds
// the single growing table of compiled bodies the way memcp's own
// tree-walkers (readFrom in the teacher's s-expression reader) thread
// one mutable cursor/accumulator through recursive descent instead of
// stitching results back together from return values alone.
type DeltaCompiler struct {
	bodies [][]ControlItem
}

// Compile flattens root into a root control sequence plus the table
// of lambda bodies it references by index. It never panics across its
// own boundary: a malformed tree is reported as an *EvalError with
// code malformed-ast.
func Compile(root ast.Node) (rootSeq []ControlItem, bodies [][]ControlItem, err error) {
	d := &DeltaCompiler{}
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EvalError); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()
	rootSeq = d.compile(root)
	bodies = d.bodies
	return
}

func (d *DeltaCompiler) compile(n ast.Node) []ControlItem {
	switch t := n.(type) {
	case ast.Ident:
		return []ControlItem{CName{Name: t.Name}}
	case ast.IntLit:
		return []ControlItem{CLiteral{Value: NewInt(t.Value)}}
	case ast.StrLit:
		return []ControlItem{CLiteral{Value: NewStr(t.Value)}}
	case ast.TruthLit:
		return []ControlItem{CLiteral{Value: NewTruth(t.Value)}}
	case ast.NilLit:
		return []ControlItem{CLiteral{Value: NewTuple(nil)}}
	case ast.DummyLit:
		return []ControlItem{CLiteral{Value: NewDummy()}}
	case ast.Lambda:
		return d.compileLambda(t)
	case ast.Gamma:
		return d.compileGamma(t)
	case ast.Cond:
		return d.compileCond(t)
	case ast.Tau:
		return d.compileTau(t)
	case ast.Aug:
		return d.compileAug(t)
	case ast.YStar:
		return d.compileYStar(t)
	case ast.BinOp:
		return d.compileBinOp(t)
	case ast.UnOp:
		return d.compileUnOp(t)
	default:
		panic(newError(ErrMalformedAST, "unrecognized standardized AST node %T", n))
	}
}

func (d *DeltaCompiler) compileLambda(l ast.Lambda) []ControlItem {
	if len(l.Params) == 0 {
		panic(newError(ErrMalformedAST, "lambda with no bound variables"))
	}
	for i, p := range l.Params {
		for _, q := range l.Params[:i] {
			if p == q {
				panic(newError(ErrMalformedAST, "lambda binds %q more than once", p))
			}
		}
	}
	idx := len(d.bodies)
	d.bodies = append(d.bodies, nil) // reserve slot so nested lambdas get higher indices
	body := d.compile(l.Body)
	d.bodies[idx] = body
	params := make([]string, len(l.Params))
	copy(params, l.Params)
	return []ControlItem{CLambdaForm{Params: params, Body: idx}}
}

// compileGamma emits rand code, then rator code, then Gamma, so that
// by the time Gamma fires, V holds the operator value on top and the
// operand value immediately below it.
func (d *DeltaCompiler) compileGamma(g ast.Gamma) []ControlItem {
	seq := d.compile(g.Arg)
	seq = append(seq, d.compile(g.Fn)...)
	seq = append(seq, CGamma{})
	return seq
}

func (d *DeltaCompiler) compileCond(c ast.Cond) []ControlItem {
	seq := d.compile(c.Test)
	then := d.compile(c.Then)
	els := d.compile(c.Else)
	seq = append(seq, CBeta{Then: then, Else: els})
	return seq
}

// compileTau compiles elements left-to-right: the first element is
// evaluated (and pushed) first, so it ends up deepest on V, matching
// Rule 5's "first element is the deepest of the popped values".
func (d *DeltaCompiler) compileTau(t ast.Tau) []ControlItem {
	seq := make([]ControlItem, 0, len(t.Elems)+1)
	for _, e := range t.Elems {
		seq = append(seq, d.compile(e)...)
	}
	seq = append(seq, CTupleFormer{N: len(t.Elems)})
	return seq
}

// compileAug emits elem code, then tuple code, then the Aug marker,
// so the Tuple operand ends up on top of V as Rule 9 requires.
func (d *DeltaCompiler) compileAug(a ast.Aug) []ControlItem {
	seq := d.compile(a.Elem)
	seq = append(seq, d.compile(a.Tuple)...)
	seq = append(seq, OpToken{Op: ast.OpAug})
	return seq
}

// compileYStar treats "Y* fn" as the application of the reserved
// builtin identifier Y* to fn, following the same rand-then-rator
// ordering as any other Gamma.
func (d *DeltaCompiler) compileYStar(y ast.YStar) []ControlItem {
	seq := d.compile(y.Fn)
	seq = append(seq, CName{Name: "Y*"})
	seq = append(seq, CGamma{})
	return seq
}

// compileBinOp emits right operand code, then left operand code, then
// the operator marker, so the left operand ends up on top of V,
// matching Rule 6/7/8's "pop a, then b; a is the left operand".
func (d *DeltaCompiler) compileBinOp(b ast.BinOp) []ControlItem {
	seq := d.compile(b.Right)
	seq = append(seq, d.compile(b.Left)...)
	seq = append(seq, OpToken{Op: b.Op})
	return seq
}

func (d *DeltaCompiler) compileUnOp(u ast.UnOp) []ControlItem {
	seq := d.compile(u.Operand)
	seq = append(seq, OpToken{Op: u.Op})
	return seq
}
