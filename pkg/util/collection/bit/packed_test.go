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
package bit

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Packed_00(t *testing.T) {
	checkPackedSize(t, 1, 1, 1)
	checkPackedSize(t, 8, 8, 1)
	checkPackedSize(t, 8, 9, 2)
	checkPackedSize(t, 64, 3, 3)
	checkPackedSize(t, 3, 22, 2)
	checkPackedSize(t, 128, 2, 4)
}

func Test_Packed_01(t *testing.T) {
	// 8bit words fill a storage word from the bottom up
	checkPacked(t, 8, []uint64{0x01, 0x02, 0x03, 0x04}, []uint64{0x04030201})
}

func Test_Packed_02(t *testing.T) {
	// Values are masked to width
	checkPacked(t, 4, []uint64{0x1F, 0xF2}, []uint64{0x2F})
}

func Test_Packed_03(t *testing.T) {
	// A 3bit word straddling a storage boundary (bits 63..65)
	values := make([]uint64, 22)
	values[21] = 0b111
	//
	checkPacked(t, 3, values, []uint64{1 << 63, 0b11})
}

func Test_Packed_04(t *testing.T) {
	// 48bit words straddle boundaries
	checkPacked(t, 48, []uint64{0xAAAA_BBBB_CCCC, 0x1111_2222_3333},
		[]uint64{0x3333_AAAA_BBBB_CCCC, 0x1111_2222})
}

func Test_Packed_05(t *testing.T) {
	checkPacked(t, 64, []uint64{math.MaxUint64, 1}, []uint64{math.MaxUint64, 1})
}

func Test_Packed_06(t *testing.T) {
	// Wide words receive values in their lowest 64 bits
	checkPacked(t, 100, []uint64{math.MaxUint64, 7}, []uint64{math.MaxUint64, 7 << 36, 0, 0})
}

func Test_Packed_07(t *testing.T) {
	// Or combines rather than overwrites
	p := NewPacked(4, 2)
	p.Or(1, 0b0101)
	p.Or(1, 0b1010)
	p.Or(0, 0b0001)
	//
	assert.Equal(t, uint64(0b1111), p.Get(1))
	assert.Equal(t, uint64(0b0001), p.Get(0))
	assert.Equal(t, []uint64{0xF1}, p.Words())
}

func Test_Packed_08(t *testing.T) {
	p := NewPacked(16, 4)
	p.Or(0, 0x0201)
	//
	bytes := p.Bytes()
	assert.Len(t, bytes, 8)
	assert.Equal(t, uint64(0x0201), binary.NativeEndian.Uint64(bytes))
}

func Test_Packed_09(t *testing.T) {
	// Wide words are written limb by limb
	p := NewPacked(72, 2)
	p.Or(0, 0, 1)
	p.Or(1, math.MaxUint64, 0xFFFF)
	//
	assert.Equal(t, []uint64{0, 0xFFFF_FFFF_FFFF_FF01, 0xFFFF}, p.Words())
	assert.Equal(t, uint64(0), p.Get(0))
	assert.Equal(t, uint64(math.MaxUint64), p.Get(1))
}

func Test_Packed_10(t *testing.T) {
	// Limbs beyond the width are discarded
	p := NewPacked(8, 1)
	p.Or(0, 0x1FF, 0xFF)
	//
	assert.Equal(t, []uint64{0xFF}, p.Words())
}

func Test_Mask_00(t *testing.T) {
	assert.Equal(t, uint64(0), Mask(0))
	assert.Equal(t, uint64(1), Mask(1))
	assert.Equal(t, uint64(0xFF), Mask(8))
	assert.Equal(t, uint64(math.MaxUint64>>1), Mask(63))
	assert.Equal(t, uint64(math.MaxUint64), Mask(64))
	assert.Equal(t, uint64(math.MaxUint64), Mask(65))
}

// ============================================================================
// Helpers
// ============================================================================

func checkPackedSize(t *testing.T, width uint, count uint64, words int) {
	p := NewPacked(width, count)
	//
	assert.Equal(t, width, p.Width())
	assert.Equal(t, count, p.Len())
	assert.Len(t, p.Words(), words)
}

func checkPacked(t *testing.T, width uint, values []uint64, words []uint64) {
	p := NewPacked(width, uint64(len(values)))
	//
	for i, v := range values {
		p.Or(uint64(i), v)
	}
	// Check storage layout
	assert.Equal(t, words, p.Words())
	// Check values read back (masked)
	for i, v := range values {
		assert.Equal(t, v&Mask(min(width, 64)), p.Get(uint64(i)), "index %d", i)
	}
}
