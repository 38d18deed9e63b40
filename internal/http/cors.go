package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// CORSFunc adds CORS headers for requests that carry an Origin.
func CORSFunc(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	if origin := req.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Accept, Content-Type, Content-Length, Content-Encoding, Accept-Encoding, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")
	}
}

// CORS wraps a route with CORSFunc.
func CORS(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		CORSFunc(w, req, params)
		h(w, req, params)
	}
}
