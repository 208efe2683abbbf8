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

	"github.com/consensys/go-mif/pkg/mif"
	"github.com/consensys/go-mif/pkg/util"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] binary_file",
	Short: "encode raw binary data as a memory initialisation file.",
	Long: `Encode a file of raw binary data as a memory initialisation file.  The file is
	 interpreted as an array of elements of the given type, held in native byte order,
	 with one element per address.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			typeName = GetString(cmd, "type")
			output   = GetString(cmd, "output")
			address  = GetRadix(cmd, "address-radix")
			data     = GetRadix(cmd, "data-radix")
			stats    = util.NewPerfStats()
		)
		// Find element type
		elementType := mif.LookupType(typeName)
		if elementType == nil {
			fmt.Printf("unknown type \"%s\" (expected one of %s)\n", typeName, strings.Join(mif.Types(), ", "))
			os.Exit(EXIT_UNKNOWN)
		}
		//
		raw := ReadRawFile(args[0])
		// Refuse to produce output which cannot be decoded again
		if err := checkEncodable(args[0], raw); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(EXIT_IO)
		}
		//
		if output == "" {
			if err := elementType.EncodeTo(os.Stdout, raw, address, data); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(EXIT_IO)
			}
		} else {
			text, err := elementType.Encode(raw, address, data)
			if err != nil {
				fmt.Println(err)
				os.Exit(EXIT_IO)
			}
			//
			WriteOutputFile(output, []byte(text))
		}
		//
		stats.Log("Encoding memory")
		stats.LogThroughput("Encoding memory", len(raw))
	},
}

// An empty buffer would be encoded with DEPTH=0, which is not a valid memory.
func checkEncodable(filename string, raw []byte) error {
	if len(raw) == 0 {
		return fmt.Errorf("%s: cannot encode an empty file (DEPTH must be positive)", filename)
	}
	//
	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("type", "t", "uint8", fmt.Sprintf("element type (one of %s).", strings.Join(mif.Types(), ", ")))
	encodeCmd.Flags().StringP("output", "o", "", "specify output file (defaults to stdout).")
	encodeCmd.Flags().String("address-radix", "HEX", "radix used for addresses.")
	encodeCmd.Flags().String("data-radix", "HEX", "radix used for data values.")
}
