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

// ControlItem is one element of a compiled control sequence. Unlike
// the teacher's single node type that doubles as both AST and control
// item, ControlItem is its own closed variant set, distinct from both
// ast.Node and Value: the control stack never holds a Value, and the
// value stack never holds a ControlItem.
type ControlItem interface {
	controlItem()
}

// OpToken tags one of the binary/unary operator markers of §3's
// control-item set.
type OpToken struct {
	Op ast.Op
}

// CLiteral pushes a pre-evaluated constant Value directly.
type CLiteral struct {
	Value Value
}

// CName looks an identifier up in the current environment, falling
// back to the builtin table.
type CName struct {
	Name string
}

// CGamma is the application marker.
type CGamma struct{}

// CBeta carries the two pre-compiled branches of a standardized
// conditional; exactly one is spliced onto the control stack per
// activation, chosen by the Truth value Rule 4 pops.
type CBeta struct {
	Then []ControlItem
	Else []ControlItem
}

// CLambdaForm is emitted at a lambda's position in its enclosing
// sequence; reducing it captures the then-current environment by
// reference into a new Lambda Value (Rule 2).
type CLambdaForm struct {
	Params []string
	Body   int // index into DeltaCompiler's body table
}

// CTupleFormer assembles the top N values of the value stack (deepest
// first) into a Tuple; N==0 yields the empty tuple.
type CTupleFormer struct {
	N int
}

func (OpToken) controlItem()      {}
func (CLiteral) controlItem()     {}
func (CName) controlItem()        {}
func (CGamma) controlItem()       {}
func (CBeta) controlItem()        {}
func (CLambdaForm) controlItem()  {}
func (CTupleFormer) controlItem() {}
