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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/consensys/go-mif/pkg/util/source"
)

// ERROR_ATTRIBUTE is the prefix of a comment line describing an error which
// decoding a test file is expected to report.
const ERROR_ATTRIBUTE = "--error"

// WORDS_ATTRIBUTE is the prefix of a comment line giving the next 64bit storage
// word (in hex) which decoding a test file is expected to produce.
const WORDS_ATTRIBUTE = "--words"

// Expected errors have the form "--error:LINE:START-END:MESSAGE", where
// columns are numbered from 1 and END is exclusive.
var errorRegex = regexp.MustCompile(`^--error:([0-9]+):([0-9]+)-([0-9]+):(.*)$`)

// Extract the syntax error from a given line in the source file.
func extractSyntaxError(lineno int, lines []source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, ERROR_ATTRIBUTE) {
		return false, source.SyntaxError{}, nil
	}
	//
	matches := errorRegex.FindStringSubmatch(contents)
	if matches == nil {
		return true, source.SyntaxError{}, fmt.Errorf("malformed expected error \"%s\", should be e.g. \"--error:X:Y-Z:msg\"",
			contents)
	}
	// Regex guarantees these are integers
	line, _ := strconv.Atoi(matches[1])
	start, _ := strconv.Atoi(matches[2])
	end, _ := strconv.Atoi(matches[3])
	//
	span, err := determineFileSpan(line, start, end, lines)
	//
	return true, *srcfile.SyntaxError(span, matches[4]), err
}

// Extract an expected storage word from a given line in the source file.
func extractWord(lineno int, lines []source.Line, _ *source.File) (bool, uint64, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, WORDS_ATTRIBUTE+":") {
		return false, 0, nil
	}
	//
	word, err := strconv.ParseUint(contents[len(WORDS_ATTRIBUTE)+1:], 16, 64)
	//
	return true, word, err
}

// Determine the span that the given line and columns correspond to.  We need
// the lines themselves so that the computed span includes the starting offset
// of the relevant line.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	// Sanity checks
	if lineno == 0 || lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	} else if start == 0 || end < start {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (columns numbered from 1)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Subtract one from each since column numbering starts from 1.
	start--
	end--
	//
	if start >= line.Length() || end > line.Length() {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", lineno, start, end)
	}
	//
	return source.NewSpan(start+line.Start(), end+line.Start()), nil
}
