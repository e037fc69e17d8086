// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"errors"
	"log/slog"

	"todo_backend/internal/config"
	"todo_backend/internal/platform/auth"
	"todo_backend/internal/platform/firebase"
)

// NewTokenVerifier creates a TokenVerifier implementation.
// If Firebase credentials are configured, it returns the Admin SDK-backed
// verifier. Otherwise, it falls back to local HS256 verification for
// development, using JWT_SECRET.
func NewTokenVerifier(ctx context.Context, cfg *config.Config) (auth.TokenVerifier, error) {
	if cfg.FirebaseCredentials != "" {
		return firebase.NewVerifier(ctx, cfg.FirebaseCredentials)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("neither FIREBASE_CREDENTIALS nor JWT_SECRET is set")
	}
	slog.Warn("FIREBASE_CREDENTIALS is not set. Falling back to local HS256 token verification.")
	return auth.NewHS256Verifier(cfg.JWTSecret), nil
}
