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
package test

import (
	"testing"

	"github.com/consensys/go-mif/pkg/test/util"
)

func Test_Valid_Basic_01(t *testing.T) {
	util.CheckValid(t, "basic_01")
}

func Test_Valid_Comments_01(t *testing.T) {
	util.CheckValid(t, "comments_01")
}

func Test_Valid_Empty_01(t *testing.T) {
	util.CheckValid(t, "empty_01")
}

func Test_Valid_Or_01(t *testing.T) {
	util.CheckValid(t, "or_01")
}

func Test_Valid_Range_01(t *testing.T) {
	util.CheckValid(t, "range_01")
}

func Test_Valid_Signed_01(t *testing.T) {
	util.CheckValid(t, "signed_01")
}

func Test_Valid_Straddle_01(t *testing.T) {
	util.CheckValid(t, "straddle_01")
}

func Test_Valid_Truncate_01(t *testing.T) {
	util.CheckValid(t, "truncate_01")
}

func Test_Valid_Wide_01(t *testing.T) {
	util.CheckValid(t, "wide_01")
}
