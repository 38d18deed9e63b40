package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/owlrdf/clog"
)

// statusWriter wraps http.ResponseWriter and captures the written status code
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
	w.code = code
}

// getAddress returns the address of the incoming request
func getAddress(req *http.Request) string {
	addr := req.Header.Get("X-Real-IP")
	if addr == "" {
		addr = req.Header.Get("X-Forwarded-For")
		if addr == "" {
			addr = req.RemoteAddr
		}
	}
	return addr
}

type requestIDKey struct{}

// RequestID returns the id assigned to the request by LogRequest.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogRequest assigns a request id, taken from the X-Request-Id header or
// minted as a UUIDv7, and logs the request and its response status.
func LogRequest(handler httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		start := time.Now()
		id := req.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.Must(uuid.NewV7()).String()
		}
		w.Header().Set("X-Request-Id", id)
		req = req.WithContext(context.WithValue(req.Context(), requestIDKey{}, id))
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		clog.Infof("[%s] started %s %s for %s", id, req.Method, req.URL.Path, getAddress(req))
		handler(sw, req, params)
		clog.Infof("[%s] completed %v %s %s in %v", id, sw.code, http.StatusText(sw.code), req.URL.Path, time.Since(start))
	}
}
