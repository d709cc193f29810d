package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/paracal/paracal-backend-go/internal/domain/auth"
	"github.com/paracal/paracal-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	pinHash    []byte
	jwtService jwt.Service
}

func NewAuthService(pinHash string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		pinHash:    []byte(pinHash),
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword(a.pinHash, []byte(req.PIN)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Warn("Admin login rejected")
			return auth.TokenResponse{}, auth.ErrInvalidPIN
		}
		return auth.TokenResponse{}, fmt.Errorf("compare admin PIN: %w", err)
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate admin token: %w", err)
	}

	slog.Info("Admin logged in")
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
