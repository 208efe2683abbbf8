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
	"slices"

	"github.com/consensys/go-mif/pkg/mif"
	"github.com/consensys/go-mif/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] mif_file",
	Short: "check a memory initialisation file survives encoding.",
	Long: `Check that decoding a memory initialisation file, encoding the result and
	 then decoding that again produces exactly the same memory.  By default, the
	 radixes of the original file are used for encoding.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			all    = GetFlag(cmd, "all-radixes")
			memory = ReadMemoryFile(args[0])
			header = memory.Header()
			stats  = util.NewPerfStats()
			failed bool
		)
		//
		if !all {
			failed = !checkRoundTrip(memory, header.AddressRadix, header.DataRadix)
		} else {
			for _, address := range mif.Radixes {
				for _, data := range mif.Radixes {
					failed = !checkRoundTrip(memory, address, data) || failed
				}
			}
		}
		//
		stats.Log("Verifying memory")
		//
		if failed {
			os.Exit(EXIT_VERIFY)
		}
		//
		fmt.Printf("%s: ok\n", args[0])
	},
}

// Check that a memory is unchanged by encoding it with a given pair of radixes
// and decoding the result.
func checkRoundTrip(memory *mif.Memory, address mif.Radix, data mif.Radix) bool {
	text := encodeMemory(memory, address, data)
	//
	log.Debugf("verifying with ADDRESS_RADIX=%s, DATA_RADIX=%s", address, data)
	//
	decoded, err := mif.DecodeString(text)
	//
	switch {
	case err != nil:
		fmt.Printf("re-decoding with %s/%s failed: %s\n", address, data, err)
	case decoded.Width() != memory.Width() || decoded.Depth() != memory.Depth():
		fmt.Printf("re-decoding with %s/%s changed shape to %dx%d\n", address, data,
			decoded.Width(), decoded.Depth())
	case !slices.Equal(decoded.Words(), memory.Words()):
		fmt.Printf("re-decoding with %s/%s changed contents\n", address, data)
	default:
		return true
	}
	//
	return false
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().BoolP("all-radixes", "a", false, "verify with every combination of radixes.")
}
