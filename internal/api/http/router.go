package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, verifier SessionVerifier) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r, verifier)
	// AllowAll rather than Default: the API is driven by browser clients
	// and uses PUT and DELETE, which Default's preflight would reject.
	return cors.AllowAll().Handler(r)
}
