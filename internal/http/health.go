package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// HandleHealth answers health checks with 204.
func HandleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusNoContent)
}
