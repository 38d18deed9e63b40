package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/consumer"
	"github.com/cayleygraph/owlrdf/internal"
	"github.com/cayleygraph/owlrdf/internal/decompressor"
	"github.com/cayleygraph/owlrdf/owl"
)

type residueJSON struct {
	Triple string `json:"triple"`
	Reason string `json:"reason"`
	Error  string `json:"error,omitempty"`
}

type ontologyJSON struct {
	IRI         string   `json:"iri,omitempty"`
	VersionIRI  string   `json:"version_iri,omitempty"`
	Imports     []string `json:"imports,omitempty"`
	Annotations []string `json:"annotations,omitempty"`
}

type translateResponse struct {
	Ontology ontologyJSON   `json:"ontology"`
	Axioms   []string       `json:"axioms"`
	Residue  []residueJSON  `json:"residue,omitempty"`
	Dropped  int            `json:"dropped"`
	Stats    consumer.Stats `json:"stats"`
	Counts   map[string]int `json:"counts"`
}

func newTranslateResponse(res *consumer.Result) *translateResponse {
	out := &translateResponse{
		Axioms:  make([]string, 0, len(res.Axioms)),
		Dropped: res.Dropped,
		Stats:   res.Stats,
		Counts:  make(map[string]int),
		Ontology: ontologyJSON{
			IRI:        string(res.Ontology.IRI),
			VersionIRI: string(res.Ontology.VersionIRI),
		},
	}
	for _, imp := range res.Ontology.Imports {
		out.Ontology.Imports = append(out.Ontology.Imports, string(imp))
	}
	for _, a := range res.Ontology.Annotations {
		out.Ontology.Annotations = append(out.Ontology.Annotations, a.String())
	}
	for _, ax := range res.Axioms {
		out.Axioms = append(out.Axioms, ax.String())
		out.Counts[ax.Type.String()]++
	}
	for _, u := range res.Residue {
		r := residueJSON{Triple: u.Triple.String(), Reason: u.Reason.String()}
		if u.Err != nil {
			r.Error = u.Err.Error()
		}
		out.Residue = append(out.Residue, r)
	}
	return out
}

// sessionConfig applies the strict, max_sweeps and blank_nodes query
// parameters to the server defaults.
func (api *API) sessionConfig(r *http.Request) (consumer.Config, error) {
	cfg := api.config.Translate
	q := r.URL.Query()
	if v := q.Get("strict"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid strict parameter: %w", err)
		}
		cfg.Strict = b
	}
	if v := q.Get("max_sweeps"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid max_sweeps parameter: %q", v)
		}
		cfg.MaxSweeps = n
	}
	if v := q.Get("blank_nodes"); v != "" {
		p, err := consumer.ParseBlankNodePolicy(v)
		if err != nil {
			return cfg, err
		}
		cfg.BlankNodes = p
	}
	return cfg, nil
}

type cachedResponse struct {
	contentType string
	body        []byte
}

func cacheKey(cfg consumer.Config, typ, output string, body []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%t\x00%d\x00%s\x00%s\x00%s\x00", cfg.Strict, cfg.MaxSweeps, cfg.BlankNodes, typ, output)
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// ServeV1Translate translates the request body. The document format is
// taken from the format query parameter or the Content-Type header, and
// compressed bodies are detected automatically. The response is JSON, or
// functional-style syntax with output=functional.
func (api *API) ServeV1Translate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cfg, err := api.sessionConfig(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	output := r.URL.Query().Get("output")
	typ := r.URL.Query().Get("format")
	if typ == "" {
		typ, _, _ = strings.Cut(r.Header.Get("Content-Type"), ";")
		typ = strings.TrimSpace(typ)
		if typ == "text/plain" || typ == "application/octet-stream" {
			typ = ""
		}
	}
	var body io.Reader = r.Body
	if api.config.MaxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, api.config.MaxBody)
	}
	id := RequestID(r.Context())

	// Fresh blank node identities differ between runs, so those responses
	// are never cached.
	key := ""
	if api.cache != nil && cfg.BlankNodes != consumer.Fresh {
		data, err := io.ReadAll(body)
		if err != nil {
			jsonResponse(w, http.StatusBadRequest, err)
			return
		}
		key = cacheKey(cfg, typ, output, data)
		if c, ok := api.cache.Get(key); ok {
			mCacheHits.Inc()
			w.Header().Set("Content-Type", c.contentType)
			w.Header().Set("X-Cache", "hit")
			w.WriteHeader(http.StatusOK)
			w.Write(c.body)
			return
		}
		body = bytes.NewReader(data)
	}

	ctx := r.Context()
	if api.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, api.config.Timeout)
		defer cancel()
	}
	var res *consumer.Result
	dr, err := decompressor.New(body)
	switch {
	case err == io.EOF:
		res, err = consumer.NewSession(cfg).EndModel(ctx)
	case err != nil:
		jsonResponse(w, http.StatusBadRequest, err)
		return
	default:
		defer dr.Close()
		var qr quad.ReadCloser
		qr, err = internal.NewReader(dr, "", typ)
		if err != nil {
			jsonResponse(w, http.StatusUnsupportedMediaType, err)
			return
		}
		defer qr.Close()
		res, err = consumer.Translate(ctx, qr, cfg)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		jsonResponse(w, http.StatusServiceUnavailable, err)
		return
	} else if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	if clog.V(1) {
		clog.Infof("[%s] translated %d triples into %d axioms", id, res.Stats.Triples, len(res.Axioms))
	}

	var buf bytes.Buffer
	c := cachedResponse{contentType: "application/json"}
	if output == "functional" {
		c.contentType = "text/owl-functional"
		err = owl.WriteFunctional(&buf, &res.Ontology, res.Axioms)
	} else {
		err = json.NewEncoder(&buf).Encode(newTranslateResponse(res))
	}
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, err)
		return
	}
	c.body = buf.Bytes()
	if key != "" {
		api.cache.Put(key, c)
	}
	w.Header().Set("Content-Type", c.contentType)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(c.body); err != nil {
		clog.Errorf("[%s] write response: %v", id, err)
	}
}
