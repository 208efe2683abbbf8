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
	"iter"
	"os"

	"github.com/consensys/go-mif/pkg/mif"
	"github.com/consensys/go-mif/pkg/util/collection/run"
	"github.com/consensys/go-mif/pkg/util/termio"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] mif_file",
	Short: "inspect a memory initialisation file.",
	Long: `Inspect a memory initialisation file, reporting its header, the size of its
	 decoded buffer and how many addresses are explicitly assigned.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			unassigned = GetFlag(cmd, "unassigned")
			limit      = GetUint(cmd, "limit")
			escapes    = !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
			memory     = ReadMemoryFile(args[0])
		)
		//
		table := summarise(memory)
		table.AnsiEscapes(escapes)
		//
		if err := table.Print(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(EXIT_IO)
		}
		//
		if unassigned {
			printUnassigned(memory, limit)
		}
	},
}

// Summarise the header and coverage of a memory as a table.
func summarise(memory *mif.Memory) *termio.TablePrinter {
	var (
		header   = memory.Header()
		table    = termio.NewTablePrinter(2)
		coverage = memory.Coverage()
		percent  = float64(coverage) * 100 / float64(header.Depth)
	)
	//
	table.AddRow(mif.WIDTH_FIELD, fmt.Sprintf("%d", header.Width))
	table.AddRow(mif.DEPTH_FIELD, fmt.Sprintf("%d", header.Depth))
	table.AddRow(mif.ADDRESS_RADIX_FIELD, header.AddressRadix.String())
	table.AddRow(mif.DATA_RADIX_FIELD, header.DataRadix.String())
	table.AddRow("BITS", fmt.Sprintf("%d", header.Bits()))
	table.AddRow("WORDS", fmt.Sprintf("%d", len(memory.Words())))
	row := table.AddRow("COVERAGE", fmt.Sprintf("%d/%d (%.1f%%)", coverage, header.Depth, percent))
	// Highlight partial coverage
	if coverage == header.Depth {
		table.SetEscape(1, row, termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
	} else {
		table.SetEscape(1, row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
	}
	//
	return table
}

// Print ranges of addresses which are not assigned by any assignment, up to a
// given limit (where zero means no limit).
func printUnassigned(memory *mif.Memory, limit uint) {
	var (
		count uint
		addr  = mif.AddressFormatter(memory.Header().AddressRadix, memory.Width())
	)
	//
	for _, r := range run.Group(assignment(memory)) {
		if r.Key {
			continue
		} else if limit != 0 && count == limit {
			fmt.Println("...")
			return
		} else if r.Len() == 1 {
			fmt.Printf("unassigned %s\n", addr(r.Start))
		} else {
			fmt.Printf("unassigned [%s..%s]\n", addr(r.Start), addr(r.End))
		}
		//
		count++
	}
}

// Enumerate whether or not each address of a memory is assigned.
func assignment(memory *mif.Memory) iter.Seq2[uint64, bool] {
	return func(yield func(uint64, bool) bool) {
		for i := range memory.Depth() {
			if !yield(i, memory.Assigned(i)) {
				return
			}
		}
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolP("unassigned", "u", false, "list addresses which are not assigned.")
	inspectCmd.Flags().Uint("limit", 32, "maximum number of unassigned ranges to list (0 for no limit).")
	inspectCmd.Flags().Bool("no-colour", false, "disable coloured output.")
}
