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

	"github.com/spf13/cobra"

	"github.com/rpal-lang/rpal-cse/cse"
)

// Named "builtins" rather than "help" because cobra already reserves
// that name for its own generated help command.
var builtinsCmd = &cobra.Command{
	Use:   "builtins [name]",
	Short: "List reserved identifiers, or describe one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuiltins,
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}

func runBuiltins(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Reserved identifiers:")
		fmt.Println()
		for _, b := range cse.Builtins() {
			fmt.Printf("  %-10s %s\n", b.Name, b.Doc)
		}
		return nil
	}
	b, ok := cse.LookupBuiltin(args[0])
	if !ok {
		return exitError("no such reserved identifier: %s", args[0])
	}
	fmt.Printf("%s\n\n%s\n\narity: %d\n", b.Name, b.Doc, b.Arity)
	return nil
}
