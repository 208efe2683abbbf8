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
)

// Packed is a fixed-size array of words, each of which has the same (arbitrary)
// bitwidth, packed contiguously into 64bit storage words.  The iᵗʰ word occupies
// bits [i*width, (i+1)*width) of the storage, where bit k of a storage word
// holds bit (64*index)+k.  Thus, a word can straddle two adjacent storage
// words.
type Packed struct {
	// Bitwidth of each word
	width uint
	// Number of words
	count uint64
	// Underlying storage
	words []uint64
}

// NewPacked constructs a zero-filled array of count words of the given
// bitwidth.  The storage consists of exactly ceil(width*count / 64) words.
func NewPacked(width uint, count uint64) Packed {
	nbits := uint64(width) * count
	//
	return Packed{width, count, make([]uint64, (nbits+63)/64)}
}

// Width returns the bitwidth of each word.
func (p *Packed) Width() uint {
	return p.width
}

// Len returns the number of words in this array.
func (p *Packed) Len() uint64 {
	return p.count
}

// Or combines a given value into the word at a given index using bitwise OR.
// The value is given as 64bit limbs in little-endian order, and is masked to the
// bitwidth of this array, hence any higher bits are silently discarded.
func (p *Packed) Or(index uint64, limbs ...uint64) {
	offset := index * uint64(p.width)
	//
	for i, limb := range limbs {
		lo := uint64(i) * 64
		//
		if lo >= uint64(p.width) {
			return
		}
		//
		p.or(offset+lo, limb, uint(min(uint64(p.width)-lo, 64)))
	}
}

// Combine the lowest n bits of a value into storage at a given bit offset.
func (p *Packed) or(offset uint64, value uint64, n uint) {
	var (
		word = offset / 64
		bit  = offset % 64
	)
	// Mask value
	value &= Mask(n)
	// Write low part
	p.words[word] |= value << bit
	// Write high part (if value straddles two storage words)
	if bit+uint64(n) > 64 {
		p.words[word+1] |= value >> (64 - bit)
	}
}

// Get returns (the lowest 64 bits of) the word at a given index.
func (p *Packed) Get(index uint64) uint64 {
	var (
		n      = min(p.width, 64)
		offset = index * uint64(p.width)
		word   = offset / 64
		bit    = offset % 64
		value  = p.words[word] >> bit
	)
	//
	if bit+uint64(n) > 64 {
		value |= p.words[word+1] << (64 - bit)
	}
	//
	return value & Mask(n)
}

// Words returns the underlying storage words.  Observe that this is not a copy.
func (p *Packed) Words() []uint64 {
	return p.words
}

// Bytes returns the underlying storage reinterpreted as bytes in the native
// byte order of this machine.
func (p *Packed) Bytes() []byte {
	bytes := make([]byte, 8*len(p.words))
	//
	for i, w := range p.words {
		binary.NativeEndian.PutUint64(bytes[i*8:], w)
	}
	//
	return bytes
}

// Mask returns a word whose lowest n bits are set.
func Mask(n uint) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	//
	return (uint64(1) << n) - 1
}
