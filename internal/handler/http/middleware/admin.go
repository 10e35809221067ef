package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/auth"
	"github.com/tapatrack/tapatrack-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminID extracts the authenticated admin's ID from the request token.
func AdminID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}

	id, _ := claims["admin_id"].(string)
	return id
}
