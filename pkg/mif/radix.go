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

// Radix identifies the numeral base used to read or render a literal in a
// memory initialisation file.
type Radix uint8

const (
	// UNS signals unsigned decimal.
	UNS Radix = iota
	// BIN signals binary.
	BIN
	// OCT signals octal.
	OCT
	// DEC signals signed decimal.  As an address radix this is a synonym for
	// UNS, since addresses have no sign.
	DEC
	// HEX signals hexadecimal (digits in either case).
	HEX
)

// Radixes lists every known radix, in declaration order.
var Radixes = []Radix{UNS, BIN, OCT, DEC, HEX}

// All valid digits across all radixes.  The digits of a given radix are always
// a prefix of this string.
const digits = "0123456789abcdefABCDEF"

// Base returns the numeral base of this radix.
func (r Radix) Base() uint {
	switch r {
	case BIN:
		return 2
	case OCT:
		return 8
	case HEX:
		return 16
	default:
		return 10
	}
}

// Digits returns the alphabet of characters which are valid digits under this
// radix.  For hexadecimal both lower and upper case letters are included, so
// that literals may mix case.
func (r Radix) Digits() string {
	switch r {
	case BIN:
		return digits[:2]
	case OCT:
		return digits[:8]
	case HEX:
		return digits
	default:
		return digits[:10]
	}
}

// Digit returns the numeric value of a given character under this radix, or
// false if it is not a valid digit.
func (r Radix) Digit(c byte) (uint64, bool) {
	var d uint64
	//
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	//
	return d, d < uint64(r.Base())
}

// IsDecimal checks whether this radix is one of the two decimal radixes.
// Decimal literals are never zero padded.
func (r Radix) IsDecimal() bool {
	return r == UNS || r == DEC
}

func (r Radix) String() string {
	switch r {
	case UNS:
		return "UNS"
	case BIN:
		return "BIN"
	case OCT:
		return "OCT"
	case DEC:
		return "DEC"
	case HEX:
		return "HEX"
	default:
		return fmt.Sprintf("Radix(%d)", uint8(r))
	}
}

// ParseRadix returns the radix with the given display keyword (e.g. "HEX"), or
// false if no such radix exists.
func ParseRadix(keyword string) (Radix, bool) {
	for _, r := range Radixes {
		if r.String() == keyword {
			return r, true
		}
	}
	//
	return UNS, false
}
