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

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const equivalence = `<http://example.org/A> <http://www.w3.org/2002/07/owl#equivalentClass> <http://example.org/B> .
`

const unknownPredicate = `<http://example.org/a> <http://example.org/p> <http://example.org/b> .
`

func post(t *testing.T, h http.Handler, url, body string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) translateResponse {
	var out translateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestTranslate(t *testing.T) {
	h := NewHandler(nil)
	rec := post(t, h, "/api/v1/translate", equivalence, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	id := rec.Header().Get("X-Request-Id")
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), parsed.Version())

	out := decode(t, rec)
	require.Equal(t, []string{
		"EquivalentClasses(<http://example.org/A> <http://example.org/B>)",
	}, out.Axioms)
	require.Equal(t, map[string]int{"EquivalentClasses": 1}, out.Counts)
	require.Equal(t, 1, out.Stats.Triples)
	require.Equal(t, 1, out.Stats.Streamed)
}

func TestTranslateStrictResidue(t *testing.T) {
	h := NewHandler(nil)
	rec := post(t, h, "/api/v1/translate?strict=true", unknownPredicate, map[string]string{
		"X-Request-Id": "req-1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	out := decode(t, rec)
	require.Empty(t, out.Axioms)
	require.Len(t, out.Residue, 1)
	assert.Equal(t, "no registered handler", out.Residue[0].Reason)

	rec = post(t, h, "/api/v1/translate", unknownPredicate, nil)
	out = decode(t, rec)
	require.Empty(t, out.Residue)
	require.Equal(t, 1, out.Dropped)
}

func TestTranslateGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := io.WriteString(zw, equivalence)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	h := NewHandler(nil)
	rec := post(t, h, "/api/v1/translate?output=functional", buf.String(), map[string]string{
		"Content-Type": "application/n-quads",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Ontology(\nEquivalentClasses(<http://example.org/A> <http://example.org/B>)\n)\n", rec.Body.String())
}

func TestTranslateEmptyBody(t *testing.T) {
	rec := post(t, NewHandler(nil), "/api/v1/translate", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode(t, rec).Axioms)
}

func TestTranslateBadRequests(t *testing.T) {
	h := NewHandler(nil)
	cases := []struct {
		url  string
		body string
		hdr  map[string]string
		code int
	}{
		{url: "/api/v1/translate?strict=maybe", body: equivalence, code: http.StatusBadRequest},
		{url: "/api/v1/translate?max_sweeps=-1", body: equivalence, code: http.StatusBadRequest},
		{url: "/api/v1/translate?blank_nodes=shuffle", body: equivalence, code: http.StatusBadRequest},
		{url: "/api/v1/translate?format=turtle-ish", body: equivalence, code: http.StatusUnsupportedMediaType},
		{url: "/api/v1/translate", body: "<http://example.org/a> <http://example.org/p>\n", code: http.StatusBadRequest},
	}
	for _, c := range cases {
		rec := post(t, h, c.url, c.body, c.hdr)
		require.Equal(t, c.code, rec.Code, c.url)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"), c.url)
		require.Contains(t, rec.Body.String(), `"error"`, c.url)
	}
}

func TestTranslateBodyLimit(t *testing.T) {
	h := NewHandler(&Config{MaxBody: 16})
	rec := post(t, h, "/api/v1/translate", equivalence, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := NewHandler(nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	post(t, h, "/api/v1/translate", equivalence, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "owlrdf_")
}

func TestCORS(t *testing.T) {
	h := NewHandler(nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/translate", nil)
	req.Header.Set("Origin", "http://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "http://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestTranslateCache(t *testing.T) {
	h := NewHandler(&Config{CacheSize: 4})
	rec := post(t, h, "/api/v1/translate?output=functional", equivalence, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-Cache"))
	first := rec.Body.String()

	rec = post(t, h, "/api/v1/translate?output=functional", equivalence, nil)
	require.Equal(t, "hit", rec.Header().Get("X-Cache"))
	require.Equal(t, first, rec.Body.String())

	rec = post(t, h, "/api/v1/translate?output=functional&strict=true", equivalence, nil)
	require.Empty(t, rec.Header().Get("X-Cache"))

	rec = post(t, h, "/api/v1/translate?output=functional&blank_nodes=fresh", equivalence, nil)
	require.Empty(t, rec.Header().Get("X-Cache"))
	rec = post(t, h, "/api/v1/translate?output=functional&blank_nodes=fresh", equivalence, nil)
	require.Empty(t, rec.Header().Get("X-Cache"))
}
