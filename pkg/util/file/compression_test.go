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
package file

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/suite"
)

type CompressionSuite struct {
	suite.Suite
}

func TestCompressionSuite(t *testing.T) {
	suite.Run(t, new(CompressionSuite))
}

const contents = "WIDTH=8;\nDEPTH=1;\nADDRESS_RADIX=UNS;\nDATA_RADIX=UNS;\nCONTENT BEGIN\n0:1;\nEND;\n"

func (s *CompressionSuite) TestCompressionOf() {
	s.Equal(NONE, CompressionOf("rom.mif"))
	s.Equal(GZIP, CompressionOf("rom.mif.gz"))
	s.Equal(ZSTD, CompressionOf("rom.mif.zst"))
	s.Equal(ZSTD, CompressionOf("rom.mif.zstd"))
	s.Equal("rom.mif", StripCompression("rom.mif.gz"))
	s.Equal("rom.mif", StripCompression("rom.mif"))
}

func (s *CompressionSuite) TestRoundTrip() {
	for _, name := range []string{"rom.mif", "rom.mif.gz", "rom.mif.zst"} {
		fs := memfs.New()
		//
		s.NoError(CompressAndWrite(fs, name, []byte(contents)))
		// Check raw contents are compressed as expected
		raw, err := ReadFile(fs, name)
		s.NoError(err)
		s.Equal(CompressionOf(name), DetectCompression(raw), name)
		//
		stripped, data, err := ReadAndUncompress(fs, name)
		s.NoError(err)
		s.Equal("rom.mif", stripped)
		s.Equal(contents, string(data), name)
	}
}

func (s *CompressionSuite) TestDetectByContent() {
	// Compression is detected from the contents, not the filename
	fs := memfs.New()
	compressed, err := Compress(ZSTD, []byte(contents))
	s.NoError(err)
	s.NoError(WriteFile(fs, "rom.mif", compressed))
	//
	_, data, err := ReadAndUncompress(fs, "rom.mif")
	s.NoError(err)
	s.Equal(contents, string(data))
}

func (s *CompressionSuite) TestMissingFile() {
	_, _, err := ReadAndUncompress(memfs.New(), "missing.mif")
	s.Error(err)
}

func (s *CompressionSuite) TestCorrupt() {
	fs := memfs.New()
	s.NoError(WriteFile(fs, "rom.mif.gz", []byte{0x1f, 0x8b, 0x00}))
	//
	_, _, err := ReadAndUncompress(fs, "rom.mif.gz")
	s.Error(err)
}
