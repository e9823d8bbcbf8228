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

package cmd

import (
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rpal-lang/rpal-cse/cse"
	"github.com/rpal-lang/rpal-cse/sexpr"
)

const (
	newPrompt  = "\033[32m>\033[0m "
	contPrompt = "\033[32m.\033[0m "
)

// Repl runs an interactive loop, one standardized-AST expression per
// submission. An input with unbalanced parentheses keeps reading
// continuation lines instead of erroring, the same accommodation
// memcp's scm.Repl makes for its own "expecting matching )" parse
// failure.
func Repl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".rpal-cse-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		root, perr := sexpr.Read("repl", line)
		if perr != nil {
			if pe, ok := perr.(*sexpr.ParseError); ok && pe.Msg == "expecting matching )" {
				oldline = line + "\n"
				l.SetPrompt(contPrompt)
				continue
			}
			printParseError(perr)
			oldline = ""
			l.SetPrompt(newPrompt)
			continue
		}

		var opts []cse.Option
		if t := cse.ActiveTrace(); t != nil {
			opts = append(opts, cse.WithTracer(t))
		}
		result, eerr := cse.Evaluate(root, os.Stdout, opts...)
		if eerr != nil {
			printEvalError(eerr)
		} else {
			color.New(color.FgRed).Print("= ")
			color.New(color.FgWhite).Println(cse.Print(result))
		}
		oldline = ""
		l.SetPrompt(newPrompt)
	}
}
