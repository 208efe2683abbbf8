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
	"math/bits"
	"strconv"

	"github.com/consensys/go-mif/pkg/util/source"
	"github.com/consensys/go-mif/pkg/util/source/lex"
)

// MAX_MEMORY_BITS bounds the size of memory which can be decoded (512MiB), since
// all of it is allocated up front.
const MAX_MEMORY_BITS uint64 = 1 << 32

// Decode parses a memory initialisation file, producing the memory it
// describes.  Decoding either succeeds completely or fails with an *Error,
// in which case no memory is returned.
//
// Literals wider than the declared WIDTH are silently truncated to their
// lowest WIDTH bits, and repeated assignments to the same address are combined
// with bitwise OR.
func Decode(text []byte) (*Memory, error) {
	memory, err := NewParser(text).Parse()
	//
	if err != nil {
		return nil, err
	}
	//
	return memory, nil
}

// DecodeString is a convenience wrapper around Decode.
func DecodeString(text string) (*Memory, error) {
	return Decode([]byte(text))
}

// Parser is a parser for memory initialisation files.
type Parser struct {
	text   []byte
	tokens []lex.Token
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given input text.
func NewParser(text []byte) *Parser {
	return &Parser{text, nil, 0}
}

// Parse the input into a memory, or produce an error.
func (p *Parser) Parse() (*Memory, *Error) {
	var (
		header Header
		memory *Memory
		err    *Error
	)
	// Convert input into tokens
	if p.tokens, err = Lex(p.text); err != nil {
		return nil, err
	}
	// Read header attributes
	if header, err = p.parseHeader(); err != nil {
		return nil, err
	}
	// Allocate memory
	memory = NewMemory(header)
	// Parse content block
	if err = p.parseContent(memory); err != nil {
		return nil, err
	}
	//
	return memory, nil
}

// Header attributes can be given in any order, any number of times, with the
// last occurrence of an attribute taking precedence.
func (p *Parser) parseHeader() (Header, *Error) {
	var (
		header                      Header
		width, depth, arad, drad    bool
		widthSpan, depthSpan, token source.Span
		err                         *Error
	)
	//
	for p.lookahead().Kind == WORD && !p.follows("CONTENT") {
		name := p.next()
		//
		switch p.string(name) {
		case WIDTH_FIELD:
			var w uint64
			if w, token, err = p.parseHeaderNumber(32); err == nil {
				header.Width, widthSpan, width = uint(w), token, true
			}
		case DEPTH_FIELD:
			if header.Depth, token, err = p.parseHeaderNumber(64); err == nil {
				depthSpan, depth = token, true
			}
		case ADDRESS_RADIX_FIELD:
			if header.AddressRadix, err = p.parseHeaderRadix(); err == nil {
				arad = true
			}
		case DATA_RADIX_FIELD:
			if header.DataRadix, err = p.parseHeaderRadix(); err == nil {
				drad = true
			}
		default:
			err = p.unexpected(name, "expected header attribute or CONTENT")
		}
		//
		if err != nil {
			return header, err
		}
	}
	// Check all fields were given
	span := p.lookahead().Span
	//
	switch {
	case !width:
		return header, missingHeaderField(WIDTH_FIELD, span)
	case !depth:
		return header, missingHeaderField(DEPTH_FIELD, span)
	case !arad:
		return header, missingHeaderField(ADDRESS_RADIX_FIELD, span)
	case !drad:
		return header, missingHeaderField(DATA_RADIX_FIELD, span)
	}
	// Sanity check overall size
	if hi, lo := bits.Mul64(uint64(header.Width), header.Depth); hi != 0 || lo > MAX_MEMORY_BITS {
		msg := fmt.Sprintf("expected memory of at most %d bits (WIDTH=%d)", MAX_MEMORY_BITS, header.Width)
		return header, newError(MALFORMED_LITERAL, depthSpan, msg)
	} else if header.Width == 0 {
		return header, newError(MALFORMED_LITERAL, widthSpan, "expected positive WIDTH")
	} else if header.Depth == 0 {
		return header, newError(MALFORMED_LITERAL, depthSpan, "expected positive DEPTH")
	}
	//
	return header, nil
}

// Parse "= n ;" where n is an unsigned decimal integer of the given bitsize.
func (p *Parser) parseHeaderNumber(bitsize int) (uint64, source.Span, *Error) {
	var (
		token lex.Token
		err   *Error
	)
	//
	if _, err = p.expect(EQUALS, "expected '='"); err != nil {
		return 0, token.Span, err
	} else if token, err = p.expect(WORD, "expected unsigned integer"); err != nil {
		return 0, token.Span, err
	}
	//
	n, perr := strconv.ParseUint(p.string(token), 10, bitsize)
	//
	if perr != nil {
		return 0, token.Span, newError(MALFORMED_LITERAL, token.Span, "expected unsigned integer")
	} else if _, err = p.expect(SEMICOLON, "expected ';'"); err != nil {
		return 0, token.Span, err
	}
	//
	return n, token.Span, nil
}

// Parse "= r ;" where r is a radix keyword.
func (p *Parser) parseHeaderRadix() (Radix, *Error) {
	var (
		token lex.Token
		err   *Error
	)
	//
	if _, err = p.expect(EQUALS, "expected '='"); err != nil {
		return UNS, err
	} else if token, err = p.expect(WORD, "expected radix (UNS, BIN, OCT, DEC or HEX)"); err != nil {
		return UNS, err
	}
	//
	radix, ok := ParseRadix(p.string(token))
	//
	if !ok {
		return UNS, p.unexpected(token, "expected radix (UNS, BIN, OCT, DEC or HEX)")
	} else if _, err = p.expect(SEMICOLON, "expected ';'"); err != nil {
		return UNS, err
	}
	//
	return radix, nil
}

// Parse "CONTENT BEGIN ... END;" applying each assignment to the given memory
// as it is encountered.
func (p *Parser) parseContent(memory *Memory) *Error {
	var err *Error
	//
	if err = p.expectKeyword("CONTENT"); err != nil {
		return err
	} else if err = p.expectKeyword("BEGIN"); err != nil {
		return err
	}
	//
	for !p.follows("END") {
		var assignment *Assignment
		//
		if assignment, err = p.parseAssignment(memory.Header()); err != nil {
			return err
		}
		//
		memory.Assign(assignment)
	}
	//
	if err = p.expectKeyword("END"); err != nil {
		return err
	} else if _, err = p.expect(SEMICOLON, "expected ';'"); err != nil {
		return err
	}
	// Nothing else permitted
	_, err = p.expect(END_OF, "expected end of file")
	//
	return err
}

// Parse an assignment of one or more values to a given address (or address
// range), such as "0 : 1 2 3;" or "[0..7] : 0;".  The assignment is checked to
// lie within the bounds of memory.
func (p *Parser) parseAssignment(header Header) (*Assignment, *Error) {
	var (
		addr   AddressSpec
		start  = p.lookahead()
		limbs  = (header.Width + 63) / 64
		values []Literal
		spans  []source.Span
		err    *Error
	)
	//
	if addr, err = p.parseAddressSpec(header.AddressRadix); err != nil {
		return nil, err
	} else if _, err = p.expect(COLON, "expected ':'"); err != nil {
		return nil, err
	}
	// Parse one or more values
	for (p.lookahead().Kind == WORD && !p.follows("END")) || p.lookahead().Kind == MINUS {
		var (
			value Literal
			span  = p.lookahead().Span
		)
		//
		if value, _, err = p.parseLiteral(header.DataRadix, MALFORMED_LITERAL, limbs); err != nil {
			return nil, err
		}
		//
		values = append(values, value)
		spans = append(spans, span)
	}
	//
	if len(values) == 0 {
		return nil, p.unexpected(p.lookahead(), "expected data literal")
	} else if _, err = p.expect(SEMICOLON, "expected ';'"); err != nil {
		return nil, err
	}
	// Check bounds
	switch a := addr.(type) {
	case *Single:
		if a.Address >= header.Depth {
			return nil, p.addressOutOfBounds(start.Span, a.Address, header.Depth)
		} else if n := uint64(len(values)); n > header.Depth-a.Address {
			last := header.Depth - a.Address
			return nil, p.addressOutOfBounds(spans[last], a.Address+last, header.Depth)
		}
	case *Range:
		if a.From > a.To {
			return nil, newError(MALFORMED_ADDRESS, start.Span,
				fmt.Sprintf("expected range start (%d) not to exceed range end (%d)", a.From, a.To))
		} else if a.To >= header.Depth {
			return nil, p.addressOutOfBounds(start.Span, a.To, header.Depth)
		}
	}
	//
	return &Assignment{addr, values}, nil
}

// Parse either a single address "a", or an address range "[a..b]".
func (p *Parser) parseAddressSpec(radix Radix) (AddressSpec, *Error) {
	var (
		from, to uint64
		err      *Error
	)
	//
	if kind := p.lookahead().Kind; kind == WORD || kind == MINUS {
		if from, err = p.parseAddress(radix); err != nil {
			return nil, err
		}
		//
		return &Single{from}, nil
	} else if _, err = p.expect(LBRACKET, "expected address, address range or END"); err != nil {
		return nil, err
	} else if from, err = p.parseAddress(radix); err != nil {
		return nil, err
	} else if _, err = p.expect(DOTDOT, "expected '..'"); err != nil {
		return nil, err
	} else if to, err = p.parseAddress(radix); err != nil {
		return nil, err
	} else if _, err = p.expect(RBRACKET, "expected ']'"); err != nil {
		return nil, err
	}
	//
	return &Range{from, to}, nil
}

// Parse an address under a given radix.  Unlike data literals, addresses are
// never truncated.
func (p *Parser) parseAddress(radix Radix) (uint64, *Error) {
	token := p.lookahead()
	//
	value, overflow, err := p.parseLiteral(radix, MALFORMED_ADDRESS, 1)
	//
	if err != nil {
		return 0, err
	} else if overflow {
		return 0, newError(MALFORMED_ADDRESS, token.Span, "expected address of at most 64 bits")
	}
	//
	return value[0], nil
}

// Parse a literal under a given radix into the given number of limbs, reporting
// errors of the given kind.  A leading "-" is only permitted for data literals
// under DEC, in which case the literal's two's complement bit pattern is
// produced.  The returned flag indicates whether digits were lost because the
// literal did not fit into the limbs.
func (p *Parser) parseLiteral(radix Radix, kind ErrorKind, limbs uint) (Literal, bool, *Error) {
	var (
		minus    = p.lookahead()
		negative = p.match(MINUS)
		token    lex.Token
		err      *Error
	)
	//
	if negative && (radix != DEC || kind != MALFORMED_LITERAL) {
		return nil, false, newError(kind, minus.Span, fmt.Sprintf("expected unsigned %s literal", radix))
	} else if token, err = p.expect(WORD, "expected literal"); err != nil {
		return nil, false, err
	}
	//
	value, overflow, err := p.number(token, radix, kind, limbs)
	//
	if err == nil && negative {
		value.negate()
	}
	//
	return value, overflow, err
}

// Convert a token into a number under a given radix.  Digits are accumulated
// modulo 2^(64*limbs), hence the lowest bits of an oversized literal are always
// correct.
func (p *Parser) number(token lex.Token, radix Radix, kind ErrorKind, limbs uint) (Literal, bool, *Error) {
	var (
		base     = uint64(radix.Base())
		value    = make(Literal, limbs)
		overflow = false
		start    = token.Span.Start()
	)
	//
	for i, c := range p.text[start:token.Span.End()] {
		digit, ok := radix.Digit(c)
		//
		if !ok {
			span := source.NewSpan(start+i, start+i+1)
			msg := fmt.Sprintf("expected %s digit (one of %s)", radix, radix.Digits())
			//
			return nil, false, newError(kind, span, msg)
		}
		// value = (value * base) + digit
		carry := digit
		//
		for j, limb := range value {
			hi, lo := bits.Mul64(limb, base)
			lo, k := bits.Add64(lo, carry, 0)
			value[j], carry = lo, hi+k
		}
		//
		overflow = overflow || carry != 0
	}
	//
	return value, overflow, nil
}

func (p *Parser) addressOutOfBounds(span source.Span, address uint64, depth uint64) *Error {
	return newError(MALFORMED_ADDRESS, span, fmt.Sprintf("expected address below DEPTH=%d (was %d)", depth, address))
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.text[start:end])
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Next returns the next token, and advances past it.
func (p *Parser) next() lex.Token {
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint, msg string) (lex.Token, *Error) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.unexpected(lookahead, msg)
	}
	//
	p.index++
	//
	return lookahead, nil
}

// ExpectKeyword returns an error if the next token is not the given keyword.
func (p *Parser) expectKeyword(keyword string) *Error {
	if !p.follows(keyword) {
		return p.unexpected(p.lookahead(), fmt.Sprintf("expected %s", keyword))
	}
	//
	p.index++
	//
	return nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks whether the next token is a given keyword.
func (p *Parser) follows(keyword string) bool {
	lookahead := p.lookahead()
	return lookahead.Kind == WORD && p.string(lookahead) == keyword
}

func (p *Parser) unexpected(token lex.Token, msg string) *Error {
	return newError(UNEXPECTED_TOKEN, token.Span, msg)
}
