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

import "fmt"

// ErrorCode classifies a fatal evaluation error.
type ErrorCode string

const (
	ErrTypeError             ErrorCode = "type-error"
	ErrUndeclaredIdentifier  ErrorCode = "undeclared-identifier"
	ErrArityError            ErrorCode = "arity-error"
	ErrApplicationError      ErrorCode = "application-error"
	ErrArithmeticError       ErrorCode = "arithmetic-error"
	ErrMalformedAST          ErrorCode = "malformed-ast"
)

// EvalError is the one Go error type every fatal condition of the
// machine surfaces as. LambdaIndex, when >= 0, names the Delta-compiled
// lambda body active when the error fired — the closest stand-in this
// machine has for a source line, since no lexer carries positions here.
type EvalError struct {
	Code        ErrorCode
	Message     string
	LambdaIndex int
}

func (e *EvalError) Error() string {
	if e.LambdaIndex >= 0 {
		return fmt.Sprintf("%s (in lambda #%d): %s", e.Code, e.LambdaIndex, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, a ...any) *EvalError {
	return &EvalError{Code: code, Message: fmt.Sprintf(format, a...), LambdaIndex: -1}
}
