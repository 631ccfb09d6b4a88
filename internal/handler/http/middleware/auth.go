package middleware

import (
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired verifies the access token and stashes the raw bearer in the
// request context so upstream calls can forward it.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			ctx := upstream.WithToken(r.Context(), jwtauth.TokenFromHeader(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
