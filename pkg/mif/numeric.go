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
	"math"

	"github.com/consensys/go-mif/pkg/util/collection/bit"
)

// Numeric describes the capabilities needed to encode values of some fixed
// width numeric type T: its bitwidth, a projection onto its unsigned bit pattern
// and (optionally) a projection onto its signed value.  Types without a signed
// projection are rendered as unsigned even under DEC.
type Numeric[T any] struct {
	// Name of the type (e.g. "int8")
	name string
	// Bitwidth of the type
	width uint
	// Unsigned bit pattern of a value (only the lowest width bits can be set).
	bits func(T) uint64
	// Signed value (nil for unsigned types).
	signed func(T) int64
}

// NewNumeric constructs a numeric capability for a given type.  The signed
// projection may be nil, in which case values are always unsigned.
func NewNumeric[T any](name string, width uint, bits func(T) uint64, signed func(T) int64) Numeric[T] {
	if width == 0 || width > 64 {
		panic(fmt.Sprintf("invalid bitwidth %d", width))
	}
	//
	return Numeric[T]{name, width, bits, signed}
}

// Name returns the name of the underlying type.
func (p Numeric[T]) Name() string {
	return p.name
}

// Width returns the bitwidth of the underlying type.
func (p Numeric[T]) Width() uint {
	return p.width
}

// Bits returns the unsigned bit pattern of a given value.
func (p Numeric[T]) Bits(value T) uint64 {
	return p.bits(value)
}

// IsSigned determines whether or not values of this type have a signed
// interpretation.
func (p Numeric[T]) IsSigned() bool {
	return p.signed != nil
}

// Signed returns the signed value of a given value, or its bit pattern when the
// type is unsigned.
func (p Numeric[T]) Signed(value T) int64 {
	if p.signed == nil {
		return int64(p.bits(value))
	}
	//
	return p.signed(value)
}

// Uint8 is the capability of uint8 values.
var Uint8 = NewNumeric("uint8", 8, func(v uint8) uint64 { return uint64(v) }, nil)

// Uint16 is the capability of uint16 values.
var Uint16 = NewNumeric("uint16", 16, func(v uint16) uint64 { return uint64(v) }, nil)

// Uint32 is the capability of uint32 values.
var Uint32 = NewNumeric("uint32", 32, func(v uint32) uint64 { return uint64(v) }, nil)

// Uint64 is the capability of uint64 values.
var Uint64 = NewNumeric("uint64", 64, func(v uint64) uint64 { return v }, nil)

// Int8 is the capability of int8 values.
var Int8 = NewNumeric("int8", 8, func(v int8) uint64 { return uint64(uint8(v)) },
	func(v int8) int64 { return int64(v) })

// Int16 is the capability of int16 values.
var Int16 = NewNumeric("int16", 16, func(v int16) uint64 { return uint64(uint16(v)) },
	func(v int16) int64 { return int64(v) })

// Int32 is the capability of int32 values.
var Int32 = NewNumeric("int32", 32, func(v int32) uint64 { return uint64(uint32(v)) },
	func(v int32) int64 { return int64(v) })

// Int64 is the capability of int64 values.
var Int64 = NewNumeric("int64", 64, func(v int64) uint64 { return uint64(v) },
	func(v int64) int64 { return v })

// Float32 is the capability of float32 values.  Floating point values are only
// ever exposed through their raw bit pattern, which under DEC is read as a
// signed integer.
var Float32 = NewNumeric("float32", 32, func(v float32) uint64 { return uint64(math.Float32bits(v)) },
	func(v float32) int64 { return int64(int32(math.Float32bits(v))) })

// Float64 is the capability of float64 values.  Floating point values are only
// ever exposed through their raw bit pattern, which under DEC is read as a
// signed integer.
var Float64 = NewNumeric("float64", 64, func(v float64) uint64 { return math.Float64bits(v) },
	func(v float64) int64 { return int64(math.Float64bits(v)) })

// Word returns the capability of raw words of an arbitrary bitwidth (up to 64
// bits) held in a uint64.  Under DEC words are read in two's complement form.
func Word(width uint) Numeric[uint64] {
	var (
		mask  = bit.Mask(width)
		shift = 64 - width
	)
	//
	return NewNumeric(fmt.Sprintf("u%d", width), width,
		func(v uint64) uint64 { return v & mask },
		func(v uint64) int64 { return int64(v<<shift) >> shift })
}
