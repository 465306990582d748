package auth

import "context"

// AuthService authenticates employees and issues access tokens. This is a
// deliberately small surface: password login only, no refresh tokens, no
// external identity providers.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
