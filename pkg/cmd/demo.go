// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"strconv"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/consensys/go-bitvec/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo [flags]",
	Short: "print a table of sample operations.",
	Long:  `Evaluate each supported operation on fixed sample inputs and print the results as a table.`,
	Args:  checkArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := demoTable()
		if err != nil {
			return err
		}
		//
		table.AnsiEscapes(getFlag(cmd, "ansi-escapes"))
		//
		return table.Print(cmd.OutOrStdout())
	},
}

// Construct the table of sample operations.
func demoTable() (*termio.TablePrinter, error) {
	var (
		lhs    = bitvec.Vector{1, 0, 1, 1}
		rhs    = bitvec.Vector{1, 0, 0, 1}
		table  = termio.NewTablePrinter(3)
		result = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	)
	//
	header := table.AddRow("operation", "operands", "result")
	for col := uint(0); col < 3; col++ {
		table.SetEscape(col, header, termio.NewAnsiEscape().Bold())
	}
	// Conversions
	decimal := bitvec.Vector{1, 1, 0, 0}
	table.AddRow("decimal", decimal.String(), strconv.FormatUint(uint64(bitvec.ToNumber(decimal)), 10))
	table.AddRow("binary", "174", bitvec.FromNumber(174).String())
	// Logical operators
	for _, name := range []string{"and", "or", "xor"} {
		op := operations[name]
		//
		bits, err := op.apply(lhs, rhs)
		if err != nil {
			return nil, err
		}
		//
		table.AddRow(name, fmt.Sprintf("%s %s %s", lhs, op.symbol, rhs), bits.String())
	}
	//
	table.AddRow("not", fmt.Sprintf("~%s", lhs), bitvec.Not(lhs).String())
	// Arithmetic
	for _, pair := range [][2]bitvec.Vector{{{1}, {1}}, {{1, 1, 1}, {1, 0, 1, 0, 0}}} {
		table.AddRow("add", fmt.Sprintf("%s + %s", pair[0], pair[1]), bitvec.Add(pair[0], pair[1]).String())
	}
	// Highlight results
	for row := header + 1; row < table.Height(); row++ {
		table.SetEscape(2, row, result)
	}
	//
	log.Debugf("evaluated %d sample operations", table.Height()-1)
	//
	return table, nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
