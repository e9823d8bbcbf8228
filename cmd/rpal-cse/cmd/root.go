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

// Package cmd wires the rpal-cse binary's cobra commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rpal-cse",
	Short: "A Control-Stack-Environment machine for standardized RPAL trees",
	Long: `rpal-cse reads an already-standardized RPAL abstract syntax tree in
a fixed s-expression notation and reduces it with a Control-Stack-
Environment machine.

It does not parse surface RPAL syntax or perform standardization
(let/where/within/and/rec elimination): its input is the tree those
phases would have produced.`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitError(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}
