package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/shampooches/GroomingBookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth guards the salon management routes with a shared token.
// An empty configured token disables the routes entirely rather than
// leaving them open.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, "Admin authorization required.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
