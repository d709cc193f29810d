package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paracal/paracal-backend-go/internal/domain/auth"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
	"github.com/paracal/paracal-backend-go/internal/pkg/jwt"
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
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}
		if role, _ := claims["role"].(string); role != jwt.RoleAdmin {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
