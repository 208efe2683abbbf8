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

	"github.com/consensys/go-mif/pkg/util"
	"github.com/consensys/go-mif/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] mif_file",
	Short: "decode a memory initialisation file into raw binary data.",
	Long: `Decode a memory initialisation file into a flat buffer of binary data, where
	 each word occupies exactly WIDTH bits.  The buffer is written as a sequence of 64bit
	 words in native byte order.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			output = GetString(cmd, "output")
			force  = GetFlag(cmd, "force")
			stats  = util.NewPerfStats()
		)
		// Decode memory
		memory := ReadMemoryFile(args[0])
		stats.Log("Decoding memory")
		stats.LogThroughput("Decoding memory", len(memory.Bytes()))
		log.Debugf("decoded %s (%d words)", memory.Header(), len(memory.Words()))
		//
		if output != "" {
			WriteOutputFile(output, memory.Bytes())
			return
		} else if !force && termio.IsTerminal(os.Stdout) {
			fmt.Println("refusing to write binary data to a terminal (use --force to override)")
			os.Exit(EXIT_USAGE)
		}
		//
		if _, err := os.Stdout.Write(memory.Bytes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(EXIT_IO)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("output", "o", "", "specify output file (defaults to stdout).")
	decodeCmd.Flags().BoolP("force", "f", false, "write binary data even when stdout is a terminal.")
}
