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

package decompressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const doc = "<http://example.org/A> <http://www.w3.org/2002/07/owl#equivalentClass> <http://example.org/B> .\n"

func gzipped(t testing.TB, s string) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstded(t testing.TB, s string) []byte {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// "cayley data\n" compressed with bzip2 -9.
var bzip2Data = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xb5, 0x4b, 0xe3, 0xc4, 0x00, 0x00,
	0x02, 0xd1, 0x80, 0x00, 0x10, 0x40, 0x00, 0x2e, 0x04, 0x04, 0x20, 0x20, 0x00, 0x31, 0x06, 0x4c,
	0x41, 0x4c, 0x1e, 0xa7, 0xa9, 0x2a, 0x18, 0x26, 0xb1, 0xc2, 0xee, 0x48, 0xa7, 0x0a, 0x12, 0x16,
	0xa9, 0x7c, 0x78, 0x80,
}

func TestDecompress(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		exp   string
	}{
		{name: "plain", input: []byte(doc), exp: doc},
		{name: "short plain", input: []byte("<a"), exp: "<a"},
		{name: "gzip", input: gzipped(t, doc), exp: doc},
		{name: "zstd", input: zstded(t, doc), exp: doc},
		{name: "bzip2", input: bzip2Data, exp: "cayley data\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := New(bytes.NewReader(c.input))
			require.NoError(t, err)
			defer r.Close()
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, c.exp, string(got))
		})
	}
}

func TestDecompressErrors(t *testing.T) {
	_, err := New(strings.NewReader(""))
	require.ErrorIs(t, err, io.EOF)

	_, err = New(strings.NewReader("\x1f\x8bnot gzip\n"))
	require.ErrorIs(t, err, gzip.ErrHeader)

	r, err := New(strings.NewReader("BZhnot bzip2\n"))
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	require.Error(t, err)
}
