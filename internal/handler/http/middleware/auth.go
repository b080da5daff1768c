package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a verified access token. The
// token itself is verified and parsed by jwtauth.Verifier upstream.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "missing access token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "invalid access token")
				return
			}
			if userID, _ := claims["user_id"].(string); userID == "" {
				response.Unauthorized(w, "invalid access token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromRequest rebuilds the acting employee from the verified token
// claims. Must run behind AuthRequired.
func ActorFromRequest(r *http.Request) employee.Actor {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return employee.Actor{}
	}

	actor := employee.Actor{}
	if v, ok := claims["user_id"].(string); ok {
		actor.ID = v
	}
	if v, ok := claims["employee_id"].(string); ok {
		actor.DisplayID = v
	}
	if v, ok := claims["name"].(string); ok {
		actor.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = employee.Role(v)
	}
	return actor
}
