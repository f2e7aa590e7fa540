// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile has the requested ID.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository defines the storage contract shared by the durable and fallback backends.
type ProfileRepository interface {
	// Insert assigns the ID, sets both timestamps and persists the profile.
	// The passed entity is updated in place with the generated values.
	Insert(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile, or ErrProfileNotFound.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)

	// Update replaces the mutable fields and bumps UpdatedAt. ID and CreatedAt never change.
	Update(ctx context.Context, id string, update *entity.ProfileUpdate) error

	// Delete removes the profile together with its asset metadata.
	Delete(ctx context.Context, id string) error

	// SetAssetReference attaches the stored QR image to the profile.
	SetAssetReference(ctx context.Context, id string, asset *entity.ProfileAsset) error

	// List returns every profile, newest first.
	List(ctx context.Context) ([]*entity.Profile, error)
}
