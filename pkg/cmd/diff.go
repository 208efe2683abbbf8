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
	"os"
	"strings"

	"github.com/consensys/go-mif/pkg/util/diff"
	"github.com/consensys/go-mif/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] mif_file mif_file",
	Short: "compare the contents of two memory initialisation files.",
	Long: `Compare the contents of two memory initialisation files.  Both files are decoded
	 and then encoded again in a canonical form, such that differences in formatting,
	 comments or radix are ignored.  Exits with a non-zero code if they differ.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			context = GetFlag(cmd, "context")
			address = GetRadix(cmd, "address-radix")
			data    = GetRadix(cmd, "data-radix")
			escapes = !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
			lhs     = ReadMemoryFile(args[0])
			rhs     = ReadMemoryFile(args[1])
		)
		// Encode canonically
		lhsText := encodeMemory(lhs, address, data)
		rhsText := encodeMemory(rhs, address, data)
		//
		diffs := diff.Do(lhsText, rhsText)
		//
		if diff.IsEqual(diffs) {
			log.Infof("%s and %s are identical", args[0], args[1])
			return
		}
		//
		fmt.Printf("--- %s\n+++ %s\n", args[0], args[1])
		//
		for _, line := range strings.SplitAfter(diff.Format(diffs, context), "\n") {
			fmt.Print(colourLine(line, escapes))
		}
		//
		os.Exit(EXIT_VERIFY)
	},
}

// Colour a line of a diff according to whether it was inserted or deleted.
func colourLine(line string, escapes bool) string {
	var escape = termio.NewAnsiEscape()
	//
	switch {
	case !escapes:
		return line
	case strings.HasPrefix(line, "-"):
		escape = escape.FgColour(termio.TERM_RED)
	case strings.HasPrefix(line, "+"):
		escape = escape.FgColour(termio.TERM_GREEN)
	}
	//
	return escape.Wrap(line)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().BoolP("context", "c", false, "show unchanged lines as well.")
	diffCmd.Flags().Bool("no-colour", false, "disable coloured output.")
	diffCmd.Flags().String("address-radix", "HEX", "radix used for addresses in the canonical form.")
	diffCmd.Flags().String("data-radix", "HEX", "radix used for data values in the canonical form.")
}
