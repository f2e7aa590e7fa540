package service

import (
	"context"

	"lifeline/internal/domain/entity"
)

// CredentialVerifier decides whether a presented password unlocks a profile.
type CredentialVerifier interface {
	Verify(ctx context.Context, profile *entity.Profile, credential string) bool
}
