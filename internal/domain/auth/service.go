package auth

import "context"

type AuthService interface {
	// Login authenticates by employee identifier and issues a session token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
