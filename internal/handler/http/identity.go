package http

import (
	"net/http"

	"github.com/educenter/backoffice-go/internal/domain/auth"
	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// identityFromRequest rebuilds the caller's identity tuple from the access
// token claims.
func identityFromRequest(r *http.Request) (user.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Identity{}, auth.ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return user.Identity{}, auth.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	department, _ := claims["department"].(string)
	position, _ := claims["position"].(string)

	return user.Identity{
		ID:         id,
		Role:       user.Role(role),
		Department: department,
		Position:   position,
	}, nil
}
