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
	"strings"
)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal.  An escape is built up from one or more numeric attributes, such as
// a foreground colour or boldness.
type AnsiEscape struct {
	codes []uint
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs a reset term.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// BoldAnsiEscape constructs a bold term.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{1}}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(30 + col)
}

// BgColour sets the background colour
func (p AnsiEscape) BgColour(col uint) AnsiEscape {
	return p.with(40 + col)
}

// Build constructs the final escape.  An empty escape builds to the empty
// string.
func (p AnsiEscape) Build() string {
	if len(p.codes) == 0 {
		return ""
	}
	//
	codes := make([]string, len(p.codes))
	//
	for i, c := range p.codes {
		codes[i] = fmt.Sprintf("%d", c)
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";"))
}

// Wrap surrounds a given piece of text with this escape, followed by a reset.
func (p AnsiEscape) Wrap(text string) string {
	if len(p.codes) == 0 {
		return text
	}
	//
	return p.Build() + text + ResetAnsiEscape().Build()
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	codes := make([]uint, len(p.codes), len(p.codes)+1)
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, code)}
}
