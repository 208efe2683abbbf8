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
	"github.com/consensys/go-mif/pkg/util/source"
	"github.com/consensys/go-mif/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "-- ... \n" or "% ... %"
const COMMENT uint = 2

// EQUALS signals "="
const EQUALS uint = 3

// SEMICOLON signals ";"
const SEMICOLON uint = 4

// COLON signals ":"
const COLON uint = 5

// LBRACKET signals "["
const LBRACKET uint = 6

// RBRACKET signals "]"
const RBRACKET uint = 7

// DOTDOT signals ".."
const DOTDOT uint = 8

// MINUS signals "-"
const MINUS uint = 9

// WORD signals a run of letters, digits and underscores.  This covers both
// keywords (e.g. "WIDTH") and literals in every radix, since which digits are
// valid is only known once the header has been read.
const WORD uint = 10

// Rule for describing whitespace
var whitespace = lex.Many(lex.OneOf(" \t\r\n"))

// Rule for describing words
var word = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Single line comments start with '--' and continue until a newline or EOF.
var lineComment = lex.And(lex.String("--"), lex.Until('\n'))

// Multi-line comments are enclosed in '%' (and cannot contain '%').
var blockComment = lex.Between('%', '%')

// lexing rules
var rules = []lex.Rule{
	{Scanner: lineComment, Kind: COMMENT},
	{Scanner: blockComment, Kind: COMMENT},
	{Scanner: lex.Unit('='), Kind: EQUALS},
	{Scanner: lex.Unit(';'), Kind: SEMICOLON},
	{Scanner: lex.Unit(':'), Kind: COLON},
	{Scanner: lex.Unit('['), Kind: LBRACKET},
	{Scanner: lex.Unit(']'), Kind: RBRACKET},
	{Scanner: lex.String(".."), Kind: DOTDOT},
	{Scanner: lex.Unit('-'), Kind: MINUS},
	{Scanner: whitespace, Kind: WHITESPACE},
	{Scanner: word, Kind: WORD},
	{Scanner: lex.Eof(), Kind: END_OF},
}

// Lex a given input into a sequence of zero or more tokens, whilst discarding
// whitespace and comments.  The final token is always END_OF.
func Lex(input []byte) ([]lex.Token, *Error) {
	var (
		lexer = lex.NewLexer(input, rules...).Skip(WHITESPACE, COMMENT)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := lexer.Index()
		span := source.NewSpan(start, start+1)
		//
		if input[start] == '%' {
			return nil, newError(UNTERMINATED_COMMENT, span, "expected closing '%'")
		}
		//
		return nil, newError(UNEXPECTED_TOKEN, span, "unknown text encountered")
	}
	//
	return tokens, nil
}
