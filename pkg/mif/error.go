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

	"github.com/consensys/go-mif/pkg/util/source"
)

// ErrorKind classifies the reasons for which decoding can fail.
type ErrorKind uint8

// MISSING_HEADER_FIELD signals that one of the four header attributes was never
// given.
const MISSING_HEADER_FIELD ErrorKind = 0

// MALFORMED_LITERAL signals a data (or header) literal which is not valid under
// its radix.
const MALFORMED_LITERAL ErrorKind = 1

// MALFORMED_ADDRESS signals an address which is not valid under the address
// radix, or which does not identify a word of the memory.
const MALFORMED_ADDRESS ErrorKind = 2

// UNTERMINATED_COMMENT signals a "%" comment with no closing "%".
const UNTERMINATED_COMMENT ErrorKind = 3

// UNEXPECTED_TOKEN signals that something other than what was expected was
// encountered.
const UNEXPECTED_TOKEN ErrorKind = 4

func (k ErrorKind) String() string {
	switch k {
	case MISSING_HEADER_FIELD:
		return "missing header field"
	case MALFORMED_LITERAL:
		return "malformed literal"
	case MALFORMED_ADDRESS:
		return "malformed address"
	case UNTERMINATED_COMMENT:
		return "unterminated comment"
	case UNEXPECTED_TOKEN:
		return "unexpected token"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error is the (only) error returned from decoding.  It records what kind of
// failure arose, the byte span of the input at which it arose and a
// description of what was expected there.
type Error struct {
	kind ErrorKind
	span source.Span
	// Header field name (only for MISSING_HEADER_FIELD)
	field string
	// Description of what was expected.
	msg string
}

// Kind returns the category of this error.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Offset returns the byte offset into the input at which this error arose.
func (e *Error) Offset() int {
	return e.span.Start()
}

// Span returns the byte span of the input covered by this error.
func (e *Error) Span() source.Span {
	return e.span
}

// Field returns the name of the missing header field, or "" when this is not
// a MISSING_HEADER_FIELD error.
func (e *Error) Field() string {
	return e.field
}

// Message returns the description of what was expected.
func (e *Error) Message() string {
	return e.msg
}

// SyntaxError converts this error into a syntax error over a given source
// file, such that it can be reported with the offending line highlighted.
func (e *Error) SyntaxError(srcfile *source.File) *source.SyntaxError {
	return srcfile.SyntaxError(e.span, fmt.Sprintf("%s: %s", e.kind, e.msg))
}

func (e *Error) Error() string {
	if e.kind == MISSING_HEADER_FIELD {
		return fmt.Sprintf("%s %s", e.kind, e.field)
	}
	//
	return fmt.Sprintf("%s at offset %d: %s", e.kind, e.span.Start(), e.msg)
}

func missingHeaderField(field string, span source.Span) *Error {
	return &Error{MISSING_HEADER_FIELD, span, field, fmt.Sprintf("expected %s=...;", field)}
}

func newError(kind ErrorKind, span source.Span, msg string) *Error {
	return &Error{kind, span, "", msg}
}
