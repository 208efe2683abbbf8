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
package run

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Run_00(t *testing.T) {
	checkGroup(t, []uint{})
}

func Test_Run_01(t *testing.T) {
	checkGroup(t, []uint{5}, Run[uint]{0, 0, 5})
}

func Test_Run_02(t *testing.T) {
	checkGroup(t, []uint{5, 5, 5, 2, 2}, Run[uint]{0, 2, 5}, Run[uint]{3, 4, 2})
}

func Test_Run_03(t *testing.T) {
	checkGroup(t, []uint{1, 2, 1, 2}, Run[uint]{0, 0, 1}, Run[uint]{1, 1, 2}, Run[uint]{2, 2, 1}, Run[uint]{3, 3, 2})
}

func Test_Run_04(t *testing.T) {
	// No lookahead merging across a key change
	checkGroup(t, []uint{7, 7, 3, 7, 7}, Run[uint]{0, 1, 7}, Run[uint]{2, 2, 3}, Run[uint]{3, 4, 7})
}

func Test_Run_05(t *testing.T) {
	// Gaps in the indices prevent merging, even when keys match.
	pairs := pairsOf([]uint64{0, 1, 3, 4, 10}, []string{"a", "a", "a", "a", "b"})
	runs := Group(pairs)
	//
	assert.Equal(t, []Run[string]{{0, 1, "a"}, {3, 4, "a"}, {10, 10, "b"}}, runs)
}

func Test_Run_06(t *testing.T) {
	var grouper Grouper[int]
	//
	_, ok := grouper.Push(0, 1)
	assert.False(t, ok)
	_, ok = grouper.Push(1, 1)
	assert.False(t, ok)
	//
	r, ok := grouper.Push(2, 4)
	assert.True(t, ok)
	assert.Equal(t, Run[int]{0, 1, 1}, r)
	assert.Equal(t, uint64(2), r.Len())
	//
	r, ok = grouper.Flush()
	assert.True(t, ok)
	assert.Equal(t, Run[int]{2, 2, 4}, r)
	// Flush resets
	_, ok = grouper.Flush()
	assert.False(t, ok)
}

func Test_Run_07(t *testing.T) {
	// Every pair ends up in exactly one run
	keys := []uint{0, 0, 1, 1, 1, 0, 2, 2, 2, 2, 3}
	total := uint64(0)
	//
	for _, r := range Group(Enumerate(keys)) {
		for i := r.Start; i <= r.End; i++ {
			assert.Equal(t, keys[i], r.Key)
		}
		//
		total += r.Len()
	}
	//
	assert.Equal(t, uint64(len(keys)), total)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkGroup(t *testing.T, keys []uint, expected ...Run[uint]) {
	runs := Group(Enumerate(keys))
	//
	if len(expected) == 0 {
		assert.Empty(t, runs)
	} else {
		assert.Equal(t, expected, runs)
	}
}

func pairsOf[K comparable](indices []uint64, keys []K) iter.Seq2[uint64, K] {
	return func(yield func(uint64, K) bool) {
		for i := range indices {
			if !yield(indices[i], keys[i]) {
				return
			}
		}
	}
}
