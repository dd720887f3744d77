package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Middleware rejects requests that do not carry a verifiable
// `Authorization: Bearer <token>` header.
func Middleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "Unauthorized", http.StatusForbidden)
				return
			}
			if _, err := v.Verify(r.Context(), token); err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("token rejected")
				http.Error(w, "Unauthorized", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
