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

// valueStack is the LIFO stack of Values accumulated during
// evaluation; its top is the slice's last element, the idiomatic Go
// convention for a slice-backed stack (push/pop are both O(1)
// amortized, unlike prepending to the front).
type valueStack struct {
	items []Value
}

func (s *valueStack) push(v Value) {
	s.items = append(s.items, v)
}

func (s *valueStack) pop() Value {
	if len(s.items) == 0 {
		panic(newError(ErrMalformedAST, "value stack underflow"))
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

func (s *valueStack) len() int {
	return len(s.items)
}

// controlStack is the LIFO stack of control items driving reduction.
// Its top is also the slice's last element; pushSeq loads a whole
// control sequence so that its first element is the next item popped.
type controlStack struct {
	items []ControlItem
}

func newControlStack(seq []ControlItem) *controlStack {
	c := &controlStack{}
	c.pushSeq(seq)
	return c
}

func (c *controlStack) pushSeq(seq []ControlItem) {
	for i := len(seq) - 1; i >= 0; i-- {
		c.items = append(c.items, seq[i])
	}
}

func (c *controlStack) pop() (ControlItem, bool) {
	if len(c.items) == 0 {
		return nil, false
	}
	item := c.items[len(c.items)-1]
	c.items = c.items[:len(c.items)-1]
	return item, true
}

func (c *controlStack) empty() bool {
	return len(c.items) == 0
}
