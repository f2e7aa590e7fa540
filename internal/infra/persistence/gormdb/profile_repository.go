package gormdb

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Insert persists a new profile and copies the generated ID and timestamps back.
func (repo *profileRepository) Insert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.ID = ""

	if err := repo.db.WithContext(ctx).Omit("QRCodes").Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "duplicate profile id")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by its ID.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// Update replaces the mutable columns and bumps updated_at.
func (repo *profileRepository) Update(ctx context.Context, id string, update *entity.ProfileUpdate) error {
	columns := map[string]any{
		"name":               update.Name,
		"phone":              update.Phone,
		"blood_group":        update.BloodGroup.String(),
		"emergency_contact":  update.EmergencyContact,
		"medical_conditions": update.MedicalConditions,
		"allergies":          update.Allergies,
		"medications":        update.Medications,
		"updated_at":         repo.now(),
	}
	if update.PasswordHash != nil {
		columns["password_hash"] = *update.PasswordHash
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Delete removes a profile; qr_codes rows go with it through the FK cascade.
func (repo *profileRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SetAssetReference points the profile at its stored image and records the asset metadata.
func (repo *profileRepository) SetAssetReference(ctx context.Context, id string, asset *entity.ProfileAsset) error {
	assetURL := asset.URL

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"qr_code_url": assetURL,
			"updated_at":  repo.now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set profile asset reference")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	qrM := &model.QRCodeModel{
		ProfileID: id,
		AssetData: asset.Data,
		AssetURL:  assetURL,
	}
	if err := repo.db.WithContext(ctx).Create(qrM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record asset metadata")
	}

	asset.ID = qrM.ID
	asset.ProfileID = id
	asset.CreatedAt = qrM.CreatedAt

	return nil
}

// List returns every profile, newest first.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&profileModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

func (repo *profileRepository) now() time.Time {
	return repo.db.NowFunc()
}

func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:                profile.ID,
		Name:              profile.Name,
		Phone:             profile.Phone,
		BloodGroup:        profile.BloodGroup.String(),
		PasswordHash:      profile.PasswordHash,
		EmergencyContact:  profile.EmergencyContact,
		MedicalConditions: profile.MedicalConditions,
		Allergies:         profile.Allergies,
		Medications:       profile.Medications,
		QRCodeURL:         profile.QRCodeURL,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:                profileM.ID,
		Name:              profileM.Name,
		Phone:             profileM.Phone,
		BloodGroup:        entity.BloodGroup(profileM.BloodGroup),
		PasswordHash:      profileM.PasswordHash,
		EmergencyContact:  profileM.EmergencyContact,
		MedicalConditions: profileM.MedicalConditions,
		Allergies:         profileM.Allergies,
		Medications:       profileM.Medications,
		QRCodeURL:         profileM.QRCodeURL,
		CreatedAt:         profileM.CreatedAt,
		UpdatedAt:         profileM.UpdatedAt,
	}
}
