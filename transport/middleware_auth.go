package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/item-location/application/operator"
	"github.com/muhammadheryan/item-location/constant"
	utilsContext "github.com/muhammadheryan/item-location/utils/context"
	"github.com/muhammadheryan/item-location/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using OperatorApp.
// It allows public endpoints (like /login, /swagger/, the metrics path) without token.
func AuthMiddleware(operatorApp operator.OperatorApp, publicPaths ...string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			if isPublicPath(r.URL.Path, publicPaths) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			session, err := operatorApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed the operator session into context
			ctx := utilsContext.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string, extra []string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" {
		return true
	}
	for _, p := range extra {
		if p != "" && path == p {
			return true
		}
	}

	return false
}
