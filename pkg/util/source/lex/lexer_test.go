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
	"testing"

	"github.com/consensys/go-mif/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "", 0, token(END_OF, 0, 0))
}

func TestLexer_01(t *testing.T) {
	checkLexer(t, "[", 0, token(LBRACKET, 0, 1), token(END_OF, 1, 1))
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "[]", 0, token(LBRACKET, 0, 1), token(RBRACKET, 1, 2), token(END_OF, 2, 2))
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "x", 1)
}

func TestLexer_04(t *testing.T) {
	checkLexer(t, "[ ]", 0, token(LBRACKET, 0, 1), token(WSPACE, 1, 2), token(RBRACKET, 2, 3), token(END_OF, 3, 3))
}

func TestLexer_05(t *testing.T) {
	checkLexer(t, "[\t\n]", 0, token(LBRACKET, 0, 1), token(WSPACE, 1, 3), token(RBRACKET, 3, 4), token(END_OF, 4, 4))
}

func TestLexer_06(t *testing.T) {
	checkLexer(t, "1", 0, token(NUMBER, 0, 1), token(END_OF, 1, 1))
}

func TestLexer_07(t *testing.T) {
	checkLexer(t, "123", 0, token(NUMBER, 0, 3), token(END_OF, 3, 3))
}

func TestLexer_08(t *testing.T) {
	checkLexer(t, "[0..7]", 0, token(LBRACKET, 0, 1), token(NUMBER, 1, 2), token(DOTDOT, 2, 4),
		token(NUMBER, 4, 5), token(RBRACKET, 5, 6), token(END_OF, 6, 6))
}

func TestLexer_09(t *testing.T) {
	checkLexer(t, "%abc% 1", 0, token(COMMENT, 0, 5), token(WSPACE, 5, 6), token(NUMBER, 6, 7), token(END_OF, 7, 7))
}

func TestLexer_10(t *testing.T) {
	// unterminated comment leaves remainder
	checkLexer(t, "1%ab", 3, token(NUMBER, 0, 1))
}

func TestLexer_11(t *testing.T) {
	checkLexer(t, "BEGIN", 0, token(KEYWORD, 0, 5), token(END_OF, 5, 5))
}

func TestLexer_12(t *testing.T) {
	// Unknown text stops the lexer
	checkLexer(t, "12 x", 1, token(NUMBER, 0, 2), token(WSPACE, 2, 3))
}

func TestLexerSkip_00(t *testing.T) {
	lexer := NewLexer([]byte("%abc% [ 1 ]"), rules...).Skip(WSPACE, COMMENT)
	//
	assert.Equal(t, []Token{token(LBRACKET, 6, 7), token(NUMBER, 8, 9), token(RBRACKET, 10, 11),
		token(END_OF, 11, 11)}, lexer.Collect())
	assert.Equal(t, uint(0), lexer.Remaining())
	// Nothing further
	_, ok := lexer.Next()
	assert.False(t, ok)
}

func TestLexerSkip_01(t *testing.T) {
	lexer := NewLexer([]byte(" 1 %2"), rules...).Skip(WSPACE)
	//
	assert.Equal(t, []Token{token(NUMBER, 1, 2)}, lexer.Collect())
	assert.Equal(t, 3, lexer.Index())
	assert.Equal(t, uint(2), lexer.Remaining())
}

func TestScannerSequence(t *testing.T) {
	rule := Sequence(Unit('a'), Unit('b'), Unit('c'))
	//
	assert.Equal(t, uint(0), rule([]byte("acc")))
	assert.Equal(t, uint(0), rule([]byte("abb")))
	assert.Equal(t, uint(0), rule([]byte("ab")))
	assert.Equal(t, uint(3), rule([]byte("abcd")))
}

func TestScannerBetween(t *testing.T) {
	rule := Between('%', '%')
	//
	assert.Equal(t, uint(2), rule([]byte("%%")))
	assert.Equal(t, uint(7), rule([]byte("% abc %def")))
	assert.Equal(t, uint(0), rule([]byte("% abc")))
	assert.Equal(t, uint(0), rule([]byte("abc%")))
}

func TestScannerString(t *testing.T) {
	rule := String("END")
	//
	assert.Equal(t, uint(3), rule([]byte("END;")))
	assert.Equal(t, uint(0), rule([]byte("EN")))
	assert.Equal(t, uint(0), rule([]byte("end")))
}

func TestScannerUntil(t *testing.T) {
	rule := And(String("--"), Until('\n'))
	//
	assert.Equal(t, uint(5), rule([]byte("-- ab\ncd")))
	assert.Equal(t, uint(4), rule([]byte("-- a")))
	assert.Equal(t, uint(0), rule([]byte("- a\n")))
}

func TestScannerOneOf(t *testing.T) {
	rule := Many(OneOf("01"))
	//
	assert.Equal(t, uint(4), rule([]byte("0110")))
	assert.Equal(t, uint(2), rule([]byte("102")))
	assert.Equal(t, uint(0), rule([]byte("2")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACKET uint = 2
const RBRACKET uint = 3
const NUMBER uint = 4
const COMMENT uint = 5
const KEYWORD uint = 6
const DOTDOT uint = 7

// lexing rules
var rules = []Rule{
	{Between('%', '%'), COMMENT},
	{Unit('['), LBRACKET},
	{Unit(']'), RBRACKET},
	{String(".."), DOTDOT},
	{String("BEGIN"), KEYWORD},
	{Many(OneOf(" \t\n")), WSPACE},
	{Many(Within('0', '9')), NUMBER},
	{Eof(), END_OF},
}

func token(kind uint, start int, end int) Token {
	return Token{kind, source.NewSpan(start, end)}
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	lexer := NewLexer([]byte(input), rules...)
	// Apply lexer
	tokens := lexer.Collect()
	//
	assert.Equal(t, expected, nilIfEmpty(tokens))
	assert.Equal(t, remainder, lexer.Remaining(), "unmatched input")
}

func nilIfEmpty(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}
	//
	return tokens
}
