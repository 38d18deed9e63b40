package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/consumer"
	"github.com/cayleygraph/owlrdf/internal/decompressor"
)

// DefaultFormat is used when the format can be detected neither from its
// name nor from the document extension.
const DefaultFormat = "nquads"

// Load translates the document at path, which may be a local file or an
// http(s) URL. See NewReader for format selection.
func Load(ctx context.Context, path, typ string, cfg consumer.Config) (*consumer.Result, error) {
	rc, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	qr, err := NewReader(rc, path, typ)
	if err != nil {
		return nil, err
	}
	defer qr.Close()
	res, err := consumer.Translate(ctx, &tripleLogger{Reader: qr}, cfg)
	if err != nil {
		return res, fmt.Errorf("translate %q: %w", path, err)
	}
	return res, nil
}

// Open fetches or opens the document at path and decompresses it.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("no document given")
	}
	var r io.ReadCloser
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "file" || u.Scheme == "" {
		// Don't alter relative URL path or non-URL path parameter.
		if err == nil && u.Scheme != "" {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %q: %w", path, err)
		}
		r = f
	} else {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("could not get resource <%s>: %w", u, err)
		}
		if res.StatusCode/100 != 2 {
			res.Body.Close()
			return nil, fmt.Errorf("could not get resource <%s>: %s", u, res.Status)
		}
		r = res.Body
	}
	d, err := decompressor.New(r)
	if err != nil {
		r.Close()
		if err == io.EOF {
			return io.NopCloser(strings.NewReader("")), nil
		}
		return nil, fmt.Errorf("decompress %q: %w", path, err)
	}
	return &stackedCloser{ReadCloser: d, under: r}, nil
}

type stackedCloser struct {
	io.ReadCloser
	under io.Closer
}

func (c *stackedCloser) Close() error {
	err := c.ReadCloser.Close()
	if err2 := c.under.Close(); err == nil {
		err = err2
	}
	return err
}

// NewReader returns a triple reader for r. The format is taken from typ,
// which may be a format name or a MIME type, then from the extension of
// path ignoring compression suffixes, and defaults to N-Quads. The name
// "nquads-raw" reads N-Quads without unescaping literals.
func NewReader(r io.Reader, path, typ string) (quad.ReadCloser, error) {
	switch typ {
	case "nquads-raw":
		return nquads.NewReader(r, true), nil
	case "nquads", "nq", "nt":
		return nquads.NewReader(r, false), nil
	}
	f := Format(path, typ)
	if f == nil {
		return nil, fmt.Errorf("unknown quad format %q", typ)
	} else if f.Reader == nil {
		return nil, fmt.Errorf("decoding of %q is not supported", f.Name)
	}
	return f.Reader(r), nil
}

// Format resolves the document format. It returns nil only if typ is set
// and names no registered format.
func Format(path, typ string) *quad.Format {
	if typ != "" {
		if f := quad.FormatByName(typ); f != nil {
			return f
		}
		if i := strings.IndexByte(typ, ';'); i >= 0 {
			typ = typ[:i]
		}
		return quad.FormatByMime(strings.TrimSpace(typ))
	}
	ext := filepath.Ext(path)
	switch ext {
	case ".gz", ".bz2", ".zst":
		ext = filepath.Ext(strings.TrimSuffix(path, ext))
	}
	if f := quad.FormatByExt(ext); f != nil {
		return f
	}
	return quad.FormatByName(DefaultFormat)
}

type tripleLogger struct {
	cnt int
	quad.Reader
}

func (r *tripleLogger) ReadQuad() (quad.Quad, error) {
	q, err := r.Reader.ReadQuad()
	if err == nil {
		r.cnt++
		if clog.V(2) && r.cnt%10000 == 0 {
			clog.Infof("Read %d triples.", r.cnt)
		}
	} else if err == io.EOF && clog.V(1) {
		clog.Infof("Read %d triples in total.", r.cnt)
	}
	return q, err
}
