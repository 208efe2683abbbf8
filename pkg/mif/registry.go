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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Type is an element type which can be encoded directly from a raw buffer of
// bytes, as arises at a binding boundary (e.g. reading a binary file, or a typed
// array handed over by some host language).  The raw buffer holds the values
// in native byte order.
type Type struct {
	name string
	// Size (in bytes) of one element.
	size uint
	// Encoder for raw buffers of this type.
	encode func(w io.Writer, raw []byte, address Radix, data Radix) error
}

// Name returns the name of this type (e.g. "int16").
func (p *Type) Name() string {
	return p.name
}

// Size returns the size (in bytes) of one element of this type.
func (p *Type) Size() uint {
	return p.size
}

// Encode reinterprets a raw buffer as an array of elements of this type, and
// renders it as a memory initialisation file.  This fails only if the buffer
// does not hold a whole number of elements.
func (p *Type) Encode(raw []byte, address Radix, data Radix) (string, error) {
	var builder strings.Builder
	//
	if err := p.EncodeTo(&builder, raw, address, data); err != nil {
		return "", err
	}
	//
	return builder.String(), nil
}

// EncodeTo reinterprets a raw buffer as an array of elements of this type, and
// renders it as a memory initialisation file onto a given writer.
func (p *Type) EncodeTo(w io.Writer, raw []byte, address Radix, data Radix) error {
	return p.encode(w, raw, address, data)
}

// Available element types
var types = []Type{
	register(Uint8),
	register(Int8),
	register(Uint16),
	register(Int16),
	register(Uint32),
	register(Int32),
	register(Uint64),
	register(Int64),
	register(Float32),
	register(Float64),
}

// Types returns the names of all registered element types.
func Types() []string {
	names := make([]string, len(types))
	//
	for i := range types {
		names[i] = types[i].name
	}
	//
	return names
}

// LookupType finds the registered element type with the given name, or
// returns nil if there is none.
func LookupType(name string) *Type {
	for i := range types {
		if types[i].name == name {
			return &types[i]
		}
	}
	//
	return nil
}

func register[T constraints.Integer | constraints.Float](numeric Numeric[T]) Type {
	encode := func(w io.Writer, raw []byte, address Radix, data Radix) error {
		values, err := FromBytes[T](raw)
		//
		if err != nil {
			return err
		}
		//
		return EncodeTo(w, values, numeric, address, data)
	}
	//
	return Type{numeric.Name(), numeric.Width() / 8, encode}
}

// FromBytes reinterprets a raw buffer (in native byte order) as an array of
// fixed size numeric values.
func FromBytes[T constraints.Integer | constraints.Float](raw []byte) ([]T, error) {
	var size = binary.Size(T(0))
	//
	if size <= 0 {
		return nil, fmt.Errorf("%T is not a fixed size type", T(0))
	} else if len(raw)%size != 0 {
		return nil, fmt.Errorf("buffer of %d bytes is not a whole number of %T values", len(raw), T(0))
	}
	//
	values := make([]T, len(raw)/size)
	//
	if err := binary.Read(bytes.NewReader(raw), binary.NativeEndian, values); err != nil {
		return nil, err
	}
	//
	return values, nil
}

// ToBytes converts an array of fixed size numeric values into a raw buffer (in
// native byte order).
func ToBytes[T constraints.Integer | constraints.Float](values []T) []byte {
	raw, err := binary.Append(nil, binary.NativeEndian, values)
	// Only possible for non-fixed size types
	if err != nil {
		panic(err)
	}
	//
	return raw
}
