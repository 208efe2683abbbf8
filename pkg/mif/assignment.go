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
	"fmt"
	"iter"
	"math/bits"
)

// AddressSpec identifies the address(es) targeted by an assignment.  This is
// either a Single address or an (inclusive) Range of addresses.
type AddressSpec interface {
	// First returns the first address targeted.
	First() uint64
	fmt.Stringer
}

// Single is an address spec targeting a single (starting) address.  When more
// than one value is assigned, they are written to consecutive addresses from
// this address onwards.
type Single struct {
	Address uint64
}

// First implementation for AddressSpec interface.
func (p *Single) First() uint64 {
	return p.Address
}

func (p *Single) String() string {
	return fmt.Sprintf("%d", p.Address)
}

// Range is an address spec targeting every address in [From, To].  Values are
// assigned to addresses by cycling through them, hence a short pattern can fill
// a long range.
type Range struct {
	From uint64
	To   uint64
}

// First implementation for AddressSpec interface.
func (p *Range) First() uint64 {
	return p.From
}

func (p *Range) String() string {
	return fmt.Sprintf("[%d..%d]", p.From, p.To)
}

// Literal is the bit pattern of a data literal, held as 64bit limbs in
// little-endian order.  A literal has one limb for every 64 bits (or part
// thereof) of the declared WIDTH.
type Literal []uint64

// Replace this literal with its two's complement.
func (p Literal) negate() {
	var carry uint64 = 1
	//
	for i, limb := range p {
		p[i], carry = bits.Add64(^limb, carry, 0)
	}
}

// Assignment assigns one or more values to the address(es) given by its address
// spec.
type Assignment struct {
	Address AddressSpec
	Values  []Literal
}

// Words returns the (address, value) pairs resulting from this assignment, in
// ascending address order.  A range whose start exceeds its end produces
// nothing.
func (p *Assignment) Words() iter.Seq2[uint64, Literal] {
	return func(yield func(uint64, Literal) bool) {
		switch a := p.Address.(type) {
		case *Single:
			for i, v := range p.Values {
				if !yield(a.Address+uint64(i), v) {
					return
				}
			}
		case *Range:
			n := uint64(len(p.Values))
			//
			for addr := a.From; addr <= a.To; addr++ {
				if !yield(addr, p.Values[(addr-a.From)%n]) || addr == a.To {
					return
				}
			}
		default:
			panic("unknown address spec")
		}
	}
}
