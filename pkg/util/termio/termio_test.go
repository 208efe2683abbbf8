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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Escape_00(t *testing.T) {
	assert.Equal(t, "", NewAnsiEscape().Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
	assert.Equal(t, "\033[1m", BoldAnsiEscape().Build())
}

func Test_Escape_01(t *testing.T) {
	escape := BoldAnsiEscape().FgColour(TERM_RED)
	//
	assert.Equal(t, "\033[1;31m", escape.Build())
	assert.Equal(t, "\033[1;31;42m", escape.BgColour(TERM_GREEN).Build())
	// Original escape unchanged
	assert.Equal(t, "\033[1;31m", escape.Build())
}

func Test_Escape_02(t *testing.T) {
	assert.Equal(t, "text", NewAnsiEscape().Wrap("text"))
	assert.Equal(t, "\033[32mtext\033[0m", NewAnsiEscape().FgColour(TERM_GREEN).Wrap("text"))
}

func Test_Table_00(t *testing.T) {
	var (
		buf   strings.Builder
		table = NewTablePrinter(2)
	)
	//
	table.AddRow("WIDTH", "8")
	table.AddRow("DEPTH", "256")
	table.AddRow("DATA_RADIX", "HEX")
	//
	require.NoError(t, table.Print(&buf))
	assert.Equal(t, "WIDTH        8\nDEPTH      256\nDATA_RADIX HEX\n", buf.String())
	assert.Equal(t, uint(3), table.Height())
	assert.Equal(t, "256", table.Get(1, 1))
}

func Test_Table_01(t *testing.T) {
	var (
		buf   strings.Builder
		table = NewTablePrinter(2)
	)
	//
	row := table.AddRow("a", "b")
	table.SetEscape(1, row, NewAnsiEscape().FgColour(TERM_RED))
	//
	require.NoError(t, table.Print(&buf))
	assert.Equal(t, "a\033[31m b\033[0m\n", buf.String())
	// Disable escapes
	buf.Reset()
	table.AnsiEscapes(false)
	require.NoError(t, table.Print(&buf))
	assert.Equal(t, "a b\n", buf.String())
}

func Test_Table_02(t *testing.T) {
	table := NewTablePrinter(2)
	//
	assert.Panics(t, func() { table.AddRow("a") })
}
