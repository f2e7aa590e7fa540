// Package memory is the process-local profile store used when no database is configured.
// Everything is lost on restart.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entity.Profile
	assets   map[string][]*entity.ProfileAsset
	now      func() time.Time
}

// NewProfileRepository creates an empty in-memory store.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{
		profiles: make(map[string]*entity.Profile),
		assets:   make(map[string][]*entity.ProfileAsset),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (repo *profileRepository) Insert(_ context.Context, profile *entity.Profile) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate profile id")
	}

	now := repo.now()
	profile.ID = id.String()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.profiles[profile.ID] = cloneProfile(profile)

	return nil
}

func (repo *profileRepository) FindByID(_ context.Context, id string) (*entity.Profile, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	profile, ok := repo.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(profile), nil
}

func (repo *profileRepository) Update(_ context.Context, id string, update *entity.ProfileUpdate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	profile, ok := repo.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}

	updated := cloneProfile(profile)
	update.Apply(updated, repo.now())
	// Apply shares the caller's pointers.
	repo.profiles[id] = cloneProfile(updated)

	return nil
}

func (repo *profileRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.profiles[id]; !ok {
		return repository.ErrProfileNotFound
	}

	delete(repo.profiles, id)
	delete(repo.assets, id)

	return nil
}

func (repo *profileRepository) SetAssetReference(_ context.Context, id string, asset *entity.ProfileAsset) error {
	assetID, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate asset id")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	profile, ok := repo.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}

	now := repo.now()
	asset.ID = assetID.String()
	asset.ProfileID = id
	asset.CreatedAt = now

	url := asset.URL
	profile.QRCodeURL = &url
	profile.UpdatedAt = now

	stored := *asset
	repo.assets[id] = append(repo.assets[id], &stored)

	return nil
}

func (repo *profileRepository) List(_ context.Context) ([]*entity.Profile, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	profiles := make([]*entity.Profile, 0, len(repo.profiles))
	for _, profile := range repo.profiles {
		profiles = append(profiles, cloneProfile(profile))
	}

	// UUIDv7 IDs sort by creation time.
	slices.SortFunc(profiles, func(a, b *entity.Profile) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})

	return profiles, nil
}

func cloneProfile(profile *entity.Profile) *entity.Profile {
	cloned := *profile
	cloned.MedicalConditions = cloneText(profile.MedicalConditions)
	cloned.Allergies = cloneText(profile.Allergies)
	cloned.Medications = cloneText(profile.Medications)
	cloned.QRCodeURL = cloneText(profile.QRCodeURL)

	return &cloned
}

func cloneText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
