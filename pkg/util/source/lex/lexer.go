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
	"slices"

	"github.com/consensys/go-mif/pkg/util/source"
)

// Token associates a kind with a given range of bytes in the input being
// lexed.
type Token struct {
	Kind uint
	Span source.Span
}

// Rule associates all inputs matched by a given scanner with a token kind.
type Rule struct {
	Scanner Scanner
	Kind    uint
}

// Lexer provides a top-level construct for tokenising a given input.  Rules
// are tried in order at each position, with the first match producing the next
// token.  Tokens whose kinds have been marked as skipped (e.g. whitespace) are
// consumed but never produced.
type Lexer struct {
	input []byte
	index int
	rules []Rule
	skip  []uint
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer(input []byte, rules ...Rule) *Lexer {
	return &Lexer{input, 0, rules, nil}
}

// Skip marks one or more token kinds as skipped, returning the lexer itself.
func (p *Lexer) Skip(kinds ...uint) *Lexer {
	p.skip = append(p.skip, kinds...)
	return p
}

// Index returns the current position within the input.
func (p *Lexer) Index() int {
	return p.index
}

// Remaining determines how many bytes of the input were left unmatched.
func (p *Lexer) Remaining() uint {
	return uint(max(0, len(p.input)-p.index))
}

// Next returns the next (non-skipped) token and advances the lexer past it.  If
// no rule matches at the current position, or the end of the input has already
// been passed, then this returns false and the lexer does not advance.
func (p *Lexer) Next() (Token, bool) {
	for p.index <= len(p.input) {
		token, ok := p.match()
		//
		if !ok {
			break
		} else if token.Span.Length() == 0 {
			// End of input
			p.index++
		} else {
			p.index = token.Span.End()
		}
		//
		if !slices.Contains(p.skip, token.Kind) {
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect is a convenience function which lexes all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer) Collect() []Token {
	var tokens []Token
	//
	for token, ok := p.Next(); ok; token, ok = p.Next() {
		tokens = append(tokens, token)
	}
	//
	return tokens
}

// Find the first rule matching at the current position.
func (p *Lexer) match() (Token, bool) {
	for _, r := range p.rules {
		if n := r.Scanner(p.input[p.index:]); n > 0 {
			end := min(len(p.input), p.index+int(n))
			//
			return Token{r.Kind, source.NewSpan(p.index, end)}, true
		}
	}
	//
	return Token{}, false
}
