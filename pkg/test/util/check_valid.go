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
	"slices"
	"testing"

	"github.com/consensys/go-mif/pkg/mif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the valid and invalid memory initialisation files are found.
const TestDir = "../../testdata"

// CheckValid checks that a given memory initialisation file decodes into
// exactly the storage words given by its "--words" attributes.  Furthermore,
// unless words are too wide to encode, the decoded memory must survive being
// encoded and decoded again under every combination of radixes.
func CheckValid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/valid/%s.mif", TestDir, test)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	//
	expected, errs := ExtractAttributes(srcfile, extractWord)
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(expected) == 0 {
		t.Fatalf("missing any expected words for %s", filename)
	}
	//
	memory, err := mif.Decode(srcfile.Contents())
	require.NoError(t, err, filename)
	assert.Equal(t, expected, memory.Words(), filename)
	//
	if memory.Width() <= 64 {
		checkReencoding(t, filename, memory)
	}
}

func checkReencoding(t *testing.T, filename string, memory *mif.Memory) {
	for _, address := range mif.Radixes {
		for _, data := range mif.Radixes {
			text, err := memory.Encode(address, data)
			require.NoError(t, err)
			//
			decoded, err := mif.DecodeString(text)
			require.NoError(t, err, "%s (%s/%s)", filename, address, data)
			//
			assert.Equal(t, memory.Header().Width, decoded.Header().Width)
			assert.Equal(t, memory.Header().Depth, decoded.Header().Depth)
			assert.True(t, slices.Equal(memory.Words(), decoded.Words()), "%s (%s/%s)", filename, address, data)
		}
	}
}
