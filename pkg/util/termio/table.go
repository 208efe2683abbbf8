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

// TablePrinter is useful for printing tables to the terminal.  Rows are added
// one at a time, and column widths grow to fit the widest cell seen so far.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]AnsiEscape
	enableEscapes bool
}

// NewTablePrinter constructs a new (empty) table with a given number of
// columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil, nil, true}
}

// Width returns the number of columns in this table.
func (p *TablePrinter) Width() uint {
	return uint(len(p.widths))
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
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
	p.escapes = append(p.escapes, make([]AnsiEscape, len(vals)))
	// Done
	return uint(len(p.rows) - 1)
}

// SetEscape set the escape to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible escape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Print the table to a given writer.  The first column is left aligned, whilst
// all others are right aligned.
func (p *TablePrinter) Print(w io.Writer) error {
	var line strings.Builder
	//
	for i, row := range p.rows {
		line.Reset()
		//
		for j, col := range row {
			var cell string
			//
			if j == 0 {
				cell = fmt.Sprintf("%-*s", p.widths[j], col)
			} else {
				cell = fmt.Sprintf(" %*s", p.widths[j], col)
			}
			// Apply colour (if applicable)
			if p.enableEscapes {
				cell = p.escapes[i][j].Wrap(cell)
			}
			//
			line.WriteString(cell)
		}
		//
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	//
	return nil
}
