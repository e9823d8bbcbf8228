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
	"strconv"
	"strings"
)

var printEscaper = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// Print renders v in the language's canonical printed form, per
// spec.md §4.5: integers as decimal, strings with \n and \t expanded,
// tuples as "(e1, e2, ...)" (nil for the empty tuple), truthvalues as
// true/false, closures as "[lambda closure: firstvar: idx]"/"[eta
// closure: firstvar: idx]", and dummy as "dummy".
func Print(v Value) string {
	switch v.Kind() {
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindStr:
		return printEscaper.Replace(v.Str())
	case KindTruth:
		if v.Truth() {
			return "true"
		}
		return "false"
	case KindDummy:
		return "dummy"
	case KindTuple:
		elems := v.Tuple()
		if len(elems) == 0 {
			return "nil"
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = Print(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindLambda:
		c := v.Lambda()
		return "[lambda closure: " + firstVar(c) + ": " + strconv.Itoa(c.Body) + "]"
	case KindEta:
		c := v.EtaLambda()
		return "[eta closure: " + firstVar(c) + ": " + strconv.Itoa(c.Body) + "]"
	case KindBuiltin:
		return v.BuiltinName()
	default:
		return "?"
	}
}

func firstVar(c *Closure) string {
	if len(c.Params) == 0 {
		return ""
	}
	return c.Params[0]
}
