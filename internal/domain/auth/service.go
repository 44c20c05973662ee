package auth

import "context"

// Service defines the auth service interface
type Service interface {
	Login(ctx context.Context, req LoginRequest) (resp LoginResponse, refreshToken string, refreshExpiresAt int64, err error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
