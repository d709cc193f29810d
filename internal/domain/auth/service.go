package auth

import (
	"context"
)

type AuthService interface {
	// Login checks the admin PIN and issues an admin access token.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
