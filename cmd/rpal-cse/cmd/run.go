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
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rpal-lang/rpal-cse/cse"
	"github.com/rpal-lang/rpal-cse/sexpr"
)

var (
	evalExpr  string
	traceFlag bool
	traceFile string
	repl      bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a standardized RPAL tree",
	Long: `Evaluate reads one standardized-AST expression, in the s-expression
notation described in the project documentation, from a file or an
inline string, and prints the machine's Print output.

Examples:
  rpal-cse run program.sexpr
  rpal-cse run -e '(gamma Print (+ 2 3))'
  rpal-cse run --repl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline expression instead of reading a file")
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "record a Chrome trace-event JSON file of every fired reduction rule")
	runCmd.Flags().StringVar(&traceFile, "trace-file", "", "trace output path (default: timestamped, under $RPAL_CSE_TRACEDIR)")
	runCmd.Flags().BoolVar(&repl, "repl", false, "start an interactive read-eval-print loop instead")
}

func runRun(_ *cobra.Command, args []string) error {
	cse.Settings.Trace = traceFlag
	cse.Settings.TraceFile = traceFile
	if err := cse.InitSettings(); err != nil {
		return exitError("failed to initialize trace sink: %w", err)
	}

	if repl {
		Repl()
		return nil
	}

	var source, input string
	switch {
	case evalExpr != "":
		source, input = "<eval>", evalExpr
	case len(args) == 1:
		source = args[0]
		content, err := os.ReadFile(source)
		if err != nil {
			return exitError("failed to read file %s: %w", source, err)
		}
		input = string(content)
	default:
		return exitError("either provide a file path or use -e for an inline expression")
	}

	root, err := sexpr.Read(source, input)
	if err != nil {
		printParseError(err)
		return err
	}

	var opts []cse.Option
	if t := cse.ActiveTrace(); t != nil {
		opts = append(opts, cse.WithTracer(t))
	}
	result, err := cse.Evaluate(root, os.Stdout, opts...)
	if err != nil {
		printEvalError(err)
		return err
	}
	if verbose {
		fmt.Fprintln(os.Stderr, color.CyanString("result: %s", cse.Print(result)))
	}
	return nil
}

func printParseError(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("parse error: %v", err))
}

func printEvalError(err error) {
	if ee, ok := err.(*cse.EvalError); ok {
		fmt.Fprintln(os.Stderr, color.RedString("%s: %s", ee.Code, ee.Message))
		return
	}
	fmt.Fprintln(os.Stderr, color.RedString("evaluation error: %v", err))
}
