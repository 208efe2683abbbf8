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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-mif/pkg/util/collection/run"
)

// Encode renders an array of values as a memory initialisation file, using the
// given radixes for addresses and data.  The depth of the memory is the number
// of values, and its width is that of the numeric type.  Contiguous addresses
// holding the same value are collapsed into a single address range.
func Encode[T any](values []T, numeric Numeric[T], address Radix, data Radix) string {
	var builder strings.Builder
	// Writing to a strings.Builder cannot fail
	_ = EncodeTo(&builder, values, numeric, address, data)
	//
	return builder.String()
}

// EncodeTo renders an array of values as a memory initialisation file onto a
// given writer.  Errors can only arise from the writer itself.
func EncodeTo[T any](w io.Writer, values []T, numeric Numeric[T], address Radix, data Radix) error {
	var (
		out     = bufio.NewWriter(w)
		width   = numeric.Width()
		signed  = data == DEC && numeric.IsSigned()
		addrFmt = AddressFormatter(address, width)
		dataFmt = ValueFormatter(data, width, signed)
		grouper run.Grouper[uint64]
	)
	// Header
	fmt.Fprintf(out, "%s=%d;\n", DEPTH_FIELD, len(values))
	fmt.Fprintf(out, "%s=%d;\n", WIDTH_FIELD, width)
	fmt.Fprintf(out, "%s=%s;\n", ADDRESS_RADIX_FIELD, address)
	fmt.Fprintf(out, "%s=%s;\n", DATA_RADIX_FIELD, data)
	fmt.Fprintln(out, "CONTENT BEGIN")
	// Content
	for i, v := range values {
		key := numeric.Bits(v)
		//
		if signed {
			key = uint64(numeric.Signed(v))
		}
		//
		if r, ok := grouper.Push(uint64(i), key); ok {
			writeRun(out, r, addrFmt, dataFmt)
		}
	}
	//
	if r, ok := grouper.Flush(); ok {
		writeRun(out, r, addrFmt, dataFmt)
	}
	//
	fmt.Fprintln(out, "END;")
	//
	return out.Flush()
}

// Encode renders the contents of this memory using the given radixes.  This
// is only possible for memories whose words are at most 64 bits wide.
func (p *Memory) Encode(address Radix, data Radix) (string, error) {
	if p.header.Width > 64 {
		return "", fmt.Errorf("cannot encode %d-bit words (at most 64 bits supported)", p.header.Width)
	}
	//
	return Encode(p.Values(), Word(p.header.Width), address, data), nil
}

func writeRun(out io.Writer, r run.Run[uint64], addrFmt Formatter, dataFmt Formatter) {
	if r.Len() == 1 {
		fmt.Fprintf(out, "%s:%s;\n", addrFmt(r.Start), dataFmt(r.Key))
	} else {
		fmt.Fprintf(out, "[%s..%s]:%s;\n", addrFmt(r.Start), addrFmt(r.End), dataFmt(r.Key))
	}
}
