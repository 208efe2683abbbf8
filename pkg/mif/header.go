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

import "fmt"

// WIDTH_FIELD is the header attribute giving the bitwidth of one word.
const WIDTH_FIELD = "WIDTH"

// DEPTH_FIELD is the header attribute giving the number of words.
const DEPTH_FIELD = "DEPTH"

// ADDRESS_RADIX_FIELD is the header attribute giving the radix of addresses.
const ADDRESS_RADIX_FIELD = "ADDRESS_RADIX"

// DATA_RADIX_FIELD is the header attribute giving the radix of data values.
const DATA_RADIX_FIELD = "DATA_RADIX"

// Header describes the shape of a memory, along with the numeral bases used for
// its addresses and data.
type Header struct {
	// Radix used for addresses.
	AddressRadix Radix
	// Radix used for data values.
	DataRadix Radix
	// Bitwidth of a single word (always positive).
	Width uint
	// Number of words (always positive).
	Depth uint64
}

// Bits returns the total number of bits of memory described by this header.
func (h Header) Bits() uint64 {
	return uint64(h.Width) * h.Depth
}

func (h Header) String() string {
	return fmt.Sprintf("%s=%d;%s=%d;%s=%s;%s=%s;", WIDTH_FIELD, h.Width, DEPTH_FIELD, h.Depth,
		ADDRESS_RADIX_FIELD, h.AddressRadix, DATA_RADIX_FIELD, h.DataRadix)
}
