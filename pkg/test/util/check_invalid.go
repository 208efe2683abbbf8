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
package util

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/consensys/go-mif/pkg/mif"
	"github.com/consensys/go-mif/pkg/util/source"
)

// CheckInvalid checks that a given memory initialisation file fails to decode,
// reporting exactly the error given by its "--error" attribute.
func CheckInvalid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/invalid/%s.mif", TestDir, test)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Decode source file to produce errors
	actual := decodeErrors(srcfile)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError)
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	// Check file did not decode!
	checkExpectedErrors(t, srcfile, actual, expected)
}

// Decode a given source file, returning the error (if any) as a syntax error.
func decodeErrors(srcfile *source.File) []source.SyntaxError {
	var err *mif.Error
	//
	if _, e := mif.Decode(srcfile.Contents()); errors.As(e, &err) {
		return []source.SyntaxError{*err.SyntaxError(srcfile)}
	}
	//
	return nil
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []source.SyntaxError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have decoded\n", srcfile.Filename())
	}
	//
	failed := false
	// Construct initial message
	msg := fmt.Sprintf("Error %s\n", srcfile.Filename())
	// Pad out with what received
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) {
			// Check whether message OK
			if expected[i].Message() == actual[i].Message() && expected[i].Span() == actual[i].Span() {
				continue
			}
		}
		// Indicate error arose
		failed = true
		//
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s\n", msg, errorToString(actual[i]))
		}
		//
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s\n", msg, errorToString(expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

func readSourceFile(t *testing.T, filename string) *source.File {
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

// Convert an error into a useful human readable string.
func errorToString(err source.SyntaxError) string {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	//
	return fmt.Sprintf("%s:%d:%d-%d %s", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
}
