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
package termio

import (
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  Columns are
// fixed on construction, whilst rows are appended as they arrive.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new (empty) table with the given number of
// columns.
func NewTablePrinter(columns uint) *TablePrinter {
	return &TablePrinter{make([]uint, columns), nil, nil, true}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		for j, col := range row {
			escape := p.escapes[i][j]
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				builder.WriteString(escape)
			}
			// Left-align all but the last column
			if j+1 < len(row) {
				fmt.Fprintf(&builder, "%-*s", int(p.widths[j]), col)
			} else {
				builder.WriteString(col)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && escape != "" {
				builder.WriteString(ResetAnsiEscape().Build())
			}
			//
			if j+1 < len(row) {
				builder.WriteString(" | ")
			}
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(out, builder.String())
	//
	return err
}
