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
package lex

import (
	"strings"
)

// Scanner is a function which attempts to match a prefix of the given input,
// returning the number of bytes matched.  A return of zero indicates no match.
type Scanner func(input []byte) uint

// And combines zero or more scanners such that the resulting scanner succeeds if
// all of the scanners succeed, matching as much as the longest of them.  Observe
// that every scanner is applied from the same starting position.
func And(scanners ...Scanner) Scanner {
	return func(input []byte) uint {
		n := uint(0)

		for _, scanner := range scanners {
			m := scanner(input)
			if m == 0 {
				// fail
				return 0
			}
			//
			n = max(n, m)
		}
		//
		return n
	}
}

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Scanners are tried from left to right, and the
// first match wins.
func Or(scanners ...Scanner) Scanner {
	return func(input []byte) uint {
		for _, scanner := range scanners {
			if n := scanner(input); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of bytes, one after the other in their given
// order.
func Unit(chars ...byte) Scanner {
	return String(string(chars))
}

// String accepts a given string exactly (i.e. case sensitively).
func String(s string) Scanner {
	return func(input []byte) uint {
		if len(input) < len(s) || string(input[:len(s)]) != s {
			return 0
		}
		//
		return uint(len(s))
	}
}

// Within accepts any byte within a given (inclusive) range.
func Within(lowest byte, highest byte) Scanner {
	return func(input []byte) uint {
		if len(input) != 0 && lowest <= input[0] && input[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// OneOf accepts any single byte from a given set.
func OneOf(chars string) Scanner {
	return func(input []byte) uint {
		if len(input) != 0 && strings.IndexByte(chars, input[0]) >= 0 {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches zero or more repetitions of a given scanner.
func Many(scanner Scanner) Scanner {
	return func(input []byte) uint {
		index := uint(0)
		//
		for index < uint(len(input)) {
			n := scanner(input[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// Until matches everything up to (but not including) the first occurrence of a
// given byte, or the end of the input.
func Until(end byte) Scanner {
	return func(input []byte) uint {
		if i := strings.IndexByte(string(input), end); i >= 0 {
			return uint(i)
		}
		//
		return uint(len(input))
	}
}

// Between matches an opening byte, followed by everything up to and including
// the next closing byte.  If no closing byte is found, then this fails.
func Between(open byte, close byte) Scanner {
	return func(input []byte) uint {
		if len(input) == 0 || input[0] != open {
			return 0
		} else if i := strings.IndexByte(string(input[1:]), close); i >= 0 {
			return uint(i + 2)
		}
		// unterminated
		return 0
	}
}

// Sequence matches all the scanners in order, where each scanner starts
// immediately after the previous one ended.  Every scanner must match a
// non-empty portion of the input.
func Sequence(scanners ...Scanner) Scanner {
	return func(input []byte) uint {
		n := uint(0)
		//
		for _, scanner := range scanners {
			m := scanner(input[min(n, uint(len(input))):])
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// Eof matches the end of the input.  Since a scanner must always match at least
// one byte to succeed, this reports a match of length one.
func Eof() Scanner {
	return func(input []byte) uint {
		if len(input) == 0 {
			return 1
		}
		//
		return 0
	}
}
