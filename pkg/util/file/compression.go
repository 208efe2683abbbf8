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
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Compression identifies the (optional) compression applied to the contents of
// a file.
type Compression uint8

// NONE signals uncompressed contents.
const NONE Compression = 0

// GZIP signals gzip compressed contents.
const GZIP Compression = 1

// ZSTD signals zstandard compressed contents.
const ZSTD Compression = 2

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func (c Compression) String() string {
	switch c {
	case GZIP:
		return "gzip"
	case ZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// CompressionOf determines the compression implied by the extension of a
// filename (i.e. ".gz" or ".zst").
func CompressionOf(filename string) Compression {
	switch path.Ext(filename) {
	case ".gz":
		return GZIP
	case ".zst", ".zstd":
		return ZSTD
	default:
		return NONE
	}
}

// DetectCompression determines the compression of some contents from their
// leading magic number.
func DetectCompression(contents []byte) Compression {
	switch {
	case bytes.HasPrefix(contents, gzipMagic):
		return GZIP
	case bytes.HasPrefix(contents, zstdMagic):
		return ZSTD
	default:
		return NONE
	}
}

// StripCompression removes any compression extension from a filename, such that
// e.g. "rom.mif.gz" becomes "rom.mif".
func StripCompression(filename string) string {
	if CompressionOf(filename) != NONE {
		return strings.TrimSuffix(filename, path.Ext(filename))
	}
	//
	return filename
}

// ReadAndUncompress reads a given file, uncompressing its contents when they
// are compressed.  This returns the filename with any compression extension
// removed, along with the (uncompressed) contents.
func ReadAndUncompress(fs billy.Filesystem, filename string) (string, []byte, error) {
	contents, err := ReadFile(fs, filename)
	//
	if err != nil {
		return filename, nil, err
	}
	//
	compression := DetectCompression(contents)
	log.Debugf("read %d bytes from %s (compression %s)", len(contents), filename, compression)
	//
	contents, err = Uncompress(compression, contents)
	//
	return StripCompression(filename), contents, errors.Wrapf(err, "uncompressing %s", filename)
}

// CompressAndWrite writes some contents to a given file, compressing them
// according to the extension of the filename.
func CompressAndWrite(fs billy.Filesystem, filename string, contents []byte) error {
	compression := CompressionOf(filename)
	//
	contents, err := Compress(compression, contents)
	if err != nil {
		return errors.Wrapf(err, "compressing %s", filename)
	}
	//
	log.Debugf("writing %d bytes to %s (compression %s)", len(contents), filename, compression)
	//
	return WriteFile(fs, filename, contents)
}

// ReadFile reads the entire contents of a given file.
func ReadFile(fs billy.Filesystem, filename string) ([]byte, error) {
	f, err := fs.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	//
	defer f.Close()
	//
	contents, err := io.ReadAll(f)
	//
	return contents, errors.Wrapf(err, "reading %s", filename)
}

// WriteFile replaces the contents of a given file (creating it if necessary).
func WriteFile(fs billy.Filesystem, filename string, contents []byte) error {
	f, err := fs.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	//
	if _, err = f.Write(contents); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", filename)
	}
	//
	return errors.Wrapf(f.Close(), "closing %s", filename)
}

// Compress some contents using a given compression.
func Compress(compression Compression, contents []byte) ([]byte, error) {
	switch compression {
	case GZIP:
		var buf bytes.Buffer
		//
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(contents); err != nil {
			return nil, err
		} else if err := w.Close(); err != nil {
			return nil, err
		}
		//
		return buf.Bytes(), nil
	case ZSTD:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		//
		defer enc.Close()
		//
		return enc.EncodeAll(contents, nil), nil
	default:
		return contents, nil
	}
}

// Uncompress some contents which were compressed using a given compression.
func Uncompress(compression Compression, contents []byte) ([]byte, error) {
	switch compression {
	case GZIP:
		r, err := gzip.NewReader(bytes.NewReader(contents))
		if err != nil {
			return nil, err
		}
		//
		defer r.Close()
		//
		return io.ReadAll(r)
	case ZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		//
		defer dec.Close()
		//
		return dec.DecodeAll(contents, nil)
	default:
		return contents, nil
	}
}
