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
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-mif/pkg/util/collection/bit"
)

// Memory is the result of decoding a memory initialisation file.  This consists
// of the header along with the contents of memory, packed into a flat buffer of
// exactly width*depth bits.  Every bit not explicitly assigned is zero.
type Memory struct {
	header Header
	// Packed contents of memory
	buffer bit.Packed
	// Addresses assigned at least once.  This grows on demand, rather than
	// being sized by the declared depth.
	assigned *bitset.BitSet
}

// NewMemory constructs a zero-filled memory of the shape given by a header.
func NewMemory(header Header) *Memory {
	return &Memory{
		header,
		bit.NewPacked(header.Width, header.Depth),
		bitset.New(0),
	}
}

// Header returns the header of this memory.
func (p *Memory) Header() Header {
	return p.header
}

// Width returns the bitwidth of each word in this memory.
func (p *Memory) Width() uint {
	return p.header.Width
}

// Depth returns the number of words in this memory.
func (p *Memory) Depth() uint64 {
	return p.header.Depth
}

// Word returns (the lowest 64 bits of) the word at a given address.
func (p *Memory) Word(address uint64) uint64 {
	return p.buffer.Get(address)
}

// Values returns (the lowest 64 bits of) every word in this memory, in address
// order.
func (p *Memory) Values() []uint64 {
	values := make([]uint64, p.header.Depth)
	//
	for i := range values {
		values[i] = p.buffer.Get(uint64(i))
	}
	//
	return values
}

// Words returns the packed contents of this memory as 64bit storage words.
// Observe that this is not a copy.
func (p *Memory) Words() []uint64 {
	return p.buffer.Words()
}

// Bytes returns the packed contents of this memory as raw bytes, using the
// native byte order.
func (p *Memory) Bytes() []byte {
	return p.buffer.Bytes()
}

// Assigned checks whether a given address was assigned by at least one
// assignment.
func (p *Memory) Assigned(address uint64) bool {
	return p.assigned.Test(uint(address))
}

// Coverage returns the number of distinct addresses which were assigned.
func (p *Memory) Coverage() uint64 {
	return uint64(p.assigned.Count())
}

// Assign applies a given assignment to this memory.  Values are combined with
// any value already present using bitwise OR, rather than overwriting it.  The
// assignment is assumed to lie within the bounds of this memory.
func (p *Memory) Assign(assignment *Assignment) {
	for addr, value := range assignment.Words() {
		p.buffer.Or(addr, value...)
		p.assigned.Set(uint(addr))
	}
}
