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
package mif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry_00(t *testing.T) {
	expected := []string{"uint8", "int8", "uint16", "int16", "uint32", "int32", "uint64", "int64", "float32", "float64"}
	//
	assert.Equal(t, expected, Types())
	//
	for _, name := range expected {
		typ := LookupType(name)
		require.NotNil(t, typ, name)
		assert.Equal(t, name, typ.Name())
	}
	//
	assert.Nil(t, LookupType("int128"))
}

func Test_Registry_01(t *testing.T) {
	values := []int8{-2, 2, -3, -1, 2, 0}
	text, err := LookupType("int8").Encode(ToBytes(values), HEX, UNS)
	//
	require.NoError(t, err)
	assert.Equal(t, Encode(values, Int8, HEX, UNS), text)
}

func Test_Registry_02(t *testing.T) {
	values := []float64{1.5, -0.25, 1.5}
	text, err := LookupType("float64").Encode(ToBytes(values), BIN, HEX)
	//
	require.NoError(t, err)
	assert.Equal(t, Encode(values, Float64, BIN, HEX), text)
	assert.Equal(t, uint(8), LookupType("float64").Size())
}

func Test_Registry_03(t *testing.T) {
	// Partial elements are rejected
	_, err := LookupType("uint32").Encode([]byte{1, 2, 3, 4, 5}, UNS, UNS)
	assert.Error(t, err)
}

func Test_Registry_04(t *testing.T) {
	values := []uint16{0, 1, 0xffff}
	raw := ToBytes(values)
	//
	assert.Len(t, raw, 6)
	//
	back, err := FromBytes[uint16](raw)
	require.NoError(t, err)
	assert.Equal(t, values, back)
}

func Test_Registry_05(t *testing.T) {
	// Decoded memory bytes encode back to the same memory
	memory, err := DecodeString("WIDTH=16; DEPTH=4; ADDRESS_RADIX=UNS; DATA_RADIX=HEX; CONTENT BEGIN 0: 1234 FFFF 0 8000; END;")
	require.NoError(t, err)
	//
	text, err := LookupType("uint16").Encode(memory.Bytes(), UNS, HEX)
	require.NoError(t, err)
	//
	again, err := DecodeString(text)
	require.NoError(t, err)
	assert.Equal(t, memory.Values(), again.Values())
}
