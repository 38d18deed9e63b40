// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package decompressor detects compressed RDF documents by their magic bytes.
package decompressor

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// New wraps r with a gzip, bzip2 or zstd decoder if the stream starts with
// the matching magic bytes, and returns a buffered r otherwise. An empty
// stream yields io.EOF.
func New(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	buf, err := br.Peek(len(zstdMagic))
	if err != nil && (err != io.EOF || len(buf) == 0) {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(buf, gzipMagic):
		return gzip.NewReader(br)
	case bytes.HasPrefix(buf, bzip2Magic):
		return io.NopCloser(bzip2.NewReader(br)), nil
	case bytes.HasPrefix(buf, zstdMagic):
		d, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
	return io.NopCloser(br), nil
}
