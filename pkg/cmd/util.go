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
	"path/filepath"
	"strings"

	"github.com/consensys/go-mif/pkg/mif"
	"github.com/consensys/go-mif/pkg/util/file"
	"github.com/consensys/go-mif/pkg/util/source"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EXIT_USAGE indicates the command line was malformed.
const EXIT_USAGE = 1

// EXIT_IO indicates a file could not be read or written.
const EXIT_IO = 2

// EXIT_UNKNOWN indicates an unknown element type or radix was requested.
const EXIT_UNKNOWN = 3

// EXIT_SYNTAX indicates a memory initialisation file was malformed.
const EXIT_SYNTAX = 4

// EXIT_VERIFY indicates a check performed by the command failed.
const EXIT_VERIFY = 5

// Filesystem through which all files are read and written.  Filenames are made
// absolute before use.
var filesystem billy.Filesystem = osfs.New("/")

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetRadix gets an expected radix (e.g. "HEX"), or exits if the named radix is
// unknown.
func GetRadix(cmd *cobra.Command, flag string) mif.Radix {
	name := GetString(cmd, flag)
	//
	radix, ok := mif.ParseRadix(strings.ToUpper(name))
	if !ok {
		fmt.Printf("unknown radix \"%s\" (expected one of %v)\n", name, mif.Radixes)
		os.Exit(EXIT_UNKNOWN)
	}
	//
	return radix
}

// Configure logging based on the persistent verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// ReadRawFile reads the (uncompressed) contents of a given file, or exits if
// an error arises.
func ReadRawFile(filename string) []byte {
	_, bytes, err := file.ReadAndUncompress(filesystem, absolute(filename))
	// Handle error
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	//
	return bytes
}

// ReadMemoryFile reads and decodes a given memory initialisation file.  Syntax
// errors are reported with the offending line highlighted, after which this
// exits.
func ReadMemoryFile(filename string) *mif.Memory {
	var (
		bytes = ReadRawFile(filename)
		err   *mif.Error
	)
	//
	log.Debugf("decoding %s", filename)
	//
	memory, e := mif.Decode(bytes)
	// Handle error
	if errors.As(e, &err) {
		printSyntaxError(err.SyntaxError(source.NewSourceFile(filename, bytes)))
		os.Exit(EXIT_SYNTAX)
	} else if e != nil {
		fmt.Println(e)
		os.Exit(EXIT_SYNTAX)
	}
	//
	return memory
}

// WriteOutputFile writes some contents to a given file, compressing them
// according to its extension, or exits if an error arises.
func WriteOutputFile(filename string, contents []byte) {
	if err := file.CompressAndWrite(filesystem, absolute(filename), contents); err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
}

// Encode the contents of a memory, or exits if this is not possible.
func encodeMemory(memory *mif.Memory, address mif.Radix, data mif.Radix) string {
	text, err := memory.Encode(address, data)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_UNKNOWN)
	}
	//
	return text
}

func absolute(filename string) string {
	abs, err := filepath.Abs(filename)
	//
	if err != nil {
		fmt.Println(errors.Wrapf(err, "resolving %s", filename))
		os.Exit(EXIT_IO)
	}
	//
	return abs
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}
