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
	"strconv"
	"strings"
)

// Formatter renders the key of a value (or an address) as a string under some
// radix.
type Formatter func(key uint64) string

// Padding returns the number of digits to which values of a given bitwidth are
// zero padded under a given radix.  Decimal radixes are never padded.
func Padding(radix Radix, width uint) int {
	switch radix {
	case BIN:
		return int(width)
	case OCT:
		return int(width/3) + 1
	case HEX:
		return int((width + 3) / 4)
	default:
		return 0
	}
}

// AddressFormatter returns the formatter for addresses under a given radix.
// Addresses are always unsigned, and are padded according to the bitwidth of
// the data.
func AddressFormatter(radix Radix, width uint) Formatter {
	return unsignedFormatter(radix, Padding(radix, width))
}

// ValueFormatter returns the formatter for data values of a given bitwidth
// under a given radix.  Under DEC, keys of signed types hold their signed value
// and are rendered as such.
func ValueFormatter(radix Radix, width uint, signed bool) Formatter {
	if radix == DEC && signed {
		return func(key uint64) string {
			return strconv.FormatInt(int64(key), 10)
		}
	}
	//
	return unsignedFormatter(radix, Padding(radix, width))
}

func unsignedFormatter(radix Radix, padding int) Formatter {
	var base = int(radix.Base())
	//
	return func(key uint64) string {
		str := strconv.FormatUint(key, base)
		//
		if radix == HEX {
			str = strings.ToUpper(str)
		}
		//
		if len(str) < padding {
			str = strings.Repeat("0", padding-len(str)) + str
		}
		//
		return str
	}
}
