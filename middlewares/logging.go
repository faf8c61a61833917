package middlewares

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Logging writes one Apache combined-format line per request to out.
func Logging(out io.Writer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return handlers.CombinedLoggingHandler(out, next)
	}
}

// RequireJSON rejects POST and PUT requests whose Content-Type is not application/json.
func RequireJSON(next http.HandlerFunc) http.Handler {
	return handlers.ContentTypeHandler(next, "application/json")
}
