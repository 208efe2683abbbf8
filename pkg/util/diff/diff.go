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
// Package diff computes line based differences between two texts.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Do computes the (line based) differences between a source and destination
// text.  Lines are compared as a whole, rather than character by character.
func Do(src, dst string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	wSrc, wDst, lines := dmp.DiffLinesToRunes(src, dst)
	diffs := dmp.DiffMainRunes(wSrc, wDst, false)
	//
	return dmp.DiffCharsToLines(diffs, lines)
}

// IsEqual checks whether a set of differences contains only equalities.
func IsEqual(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return false
		}
	}
	//
	return true
}

// Format renders a set of differences in the style of a unified diff body,
// with each line prefixed by "-", "+" or " ".  When context is false, lines
// which are equal are omitted.
func Format(diffs []diffmatchpatch.Diff, context bool) string {
	var text strings.Builder
	//
	for _, d := range diffs {
		var prefix string
		//
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			if !context {
				continue
			}
			//
			prefix = " "
		}
		//
		for _, line := range splitLines(d.Text) {
			text.WriteString(prefix)
			text.WriteString(line)
			text.WriteString("\n")
		}
	}
	//
	return text.String()
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	// Drop empty remainder following a final newline
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	//
	return lines
}
