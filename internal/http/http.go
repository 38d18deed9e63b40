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

// Package http serves the translation engine over HTTP.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/consumer"
	"github.com/cayleygraph/owlrdf/internal/lru"
)

var mCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "owlrdf_http_cache_hits",
	Help: "Number of translation responses served from the cache.",
})

// Config holds the server defaults. Requests may override the translation
// mode with query parameters.
type Config struct {
	// Translate is the session configuration used when a request sets nothing.
	Translate consumer.Config
	// Timeout bounds a single translation. Zero means no limit.
	Timeout time.Duration
	// MaxBody limits the request body size in bytes. Zero means no limit.
	MaxBody int64
	// CacheSize is the number of translation responses kept for repeated
	// documents. Zero disables the cache.
	CacheSize int
}

type API struct {
	config *Config
	cache  *lru.Cache[cachedResponse]
}

func (api *API) APIv1(r *httprouter.Router) {
	r.POST("/api/v1/translate", CORS(LogRequest(api.ServeV1Translate)))
}

// NewHandler returns the router serving the translation API, the health
// check and the metrics endpoint.
func NewHandler(cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}
	r := httprouter.New()
	api := &API{config: cfg}
	if cfg.CacheSize > 0 {
		api.cache = lru.New[cachedResponse](cfg.CacheSize)
	}
	r.OPTIONS("/*path", CORSFunc)
	api.APIv1(r)
	r.GET("/health", HandleHealth)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// SetupRoutes registers the API on the default mux.
func SetupRoutes(cfg *Config) {
	http.Handle("/", NewHandler(cfg))
}

// Serve listens on addr until the server fails.
func Serve(addr string, cfg *Config) error {
	clog.Infof("listening on %s, web interface at http://%s", addr, addr)
	return http.ListenAndServe(addr, NewHandler(cfg))
}

func jsonResponse(w http.ResponseWriter, code int, err interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error": `))
	data, _ := json.Marshal(fmt.Sprint(err))
	w.Write(data)
	w.Write([]byte(`}`))
}
