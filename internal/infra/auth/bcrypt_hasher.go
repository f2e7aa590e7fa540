// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// MinBcryptCost is the lowest work factor accepted for stored credentials.
const MinBcryptCost = 10

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	logger *slog.Logger
}

// HasherParams holds dependencies for the hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewBcryptHasher builds the hasher with the configured cost.
func NewBcryptHasher(params HasherParams) service.PasswordHasher {
	cost := bcrypt.DefaultCost + 2
	if params.Config != nil && params.Config.Auth != nil {
		cost = params.Config.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, params.Logger)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost, clamped to
// [MinBcryptCost, bcrypt.MaxCost].
func NewBcryptHasherWithCost(cost int, logger *slog.Logger) service.PasswordHasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &bcryptHasher{cost: cost, logger: logger}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true
	}

	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		h.logger.Error("Malformed credential hash", slog.Any("error", err))
	}

	return false
}
