// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pngContentType = "image/png"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	verifier    service.CredentialVerifier
	qrcode      service.QRCodeService
	storage     service.AssetStorage
	baseURL     string
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Hasher      service.PasswordHasher
	Verifier    service.CredentialVerifier
	QRCode      service.QRCodeService
	Storage     service.AssetStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		baseURL = params.Config.QRCode.BaseURL
	}

	return &profileService{
		profileRepo: params.ProfileRepo,
		hasher:      params.Hasher,
		verifier:    params.Verifier,
		qrcode:      params.QRCode,
		storage:     params.Storage,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile validates and stores a profile, then generates its QR code.
// QR failures are reported as warnings; the profile is kept either way.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*usecase.CreateProfileOutput, error) {
	fields := profileFields{
		Name:             input.Name,
		Phone:            input.Phone,
		BloodGroup:       input.BloodGroup,
		EmergencyContact: input.EmergencyContact,
	}
	bloodGroup, err := fields.validate(input.Password, true)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash credential", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	profile := &entity.Profile{
		Name:              strings.TrimSpace(input.Name),
		Phone:             strings.TrimSpace(input.Phone),
		BloodGroup:        bloodGroup,
		EmergencyContact:  strings.TrimSpace(input.EmergencyContact),
		MedicalConditions: entity.OptionalText(input.MedicalConditions),
		Allergies:         entity.OptionalText(input.Allergies),
		Medications:       entity.OptionalText(input.Medications),
		PasswordHash:      hash,
	}
	if err := srv.profileRepo.Insert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to insert profile")
	}

	srv.log(ctx).Info("Profile created", slog.String("profileID", profile.ID))

	output := &usecase.CreateProfileOutput{ProfileID: profile.ID}
	output.QRCodeURL, output.Warnings = srv.attachQRCode(ctx, profile.ID)

	return output, nil
}

// attachQRCode encodes, uploads and records the profile's QR code. Every step is best-effort.
func (srv *profileService) attachQRCode(ctx context.Context, profileID string) (string, []usecase.Warning) {
	profileURL := srv.profileURL(profileID)

	image, err := srv.qrcode.Encode(profileURL, service.QRCodeOptions{})
	if err != nil {
		return "", []usecase.Warning{srv.warn(ctx, profileID, usecase.StepEncode, err)}
	}

	assetURL, err := srv.storage.Upload(ctx, entity.AssetKey(profileID), image.PNG, pngContentType)
	if err != nil {
		return image.DataURL(), []usecase.Warning{srv.warn(ctx, profileID, usecase.StepUpload, err)}
	}

	asset := &entity.ProfileAsset{
		ProfileID: profileID,
		Data:      profileURL,
		URL:       assetURL,
	}
	if err := srv.profileRepo.SetAssetReference(ctx, profileID, asset); err != nil {
		return assetURL, []usecase.Warning{srv.warn(ctx, profileID, usecase.StepAttach, err)}
	}

	return assetURL, nil
}

// GetProfile returns the external view of a profile.
func (srv *profileService) GetProfile(ctx context.Context, id string) (*usecase.ProfileView, error) {
	profile, err := srv.findProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewProfileView(profile), nil
}

// UpdateProfile replaces the editable fields after verifying the current credential.
func (srv *profileService) UpdateProfile(ctx context.Context, id string, input *usecase.UpdateProfileInput) error {
	fields := profileFields{
		Name:             input.Name,
		Phone:            input.Phone,
		BloodGroup:       input.BloodGroup,
		EmergencyContact: input.EmergencyContact,
	}
	bloodGroup, err := fields.validate("", false)
	if err != nil {
		return err
	}

	profile, err := srv.findProfile(ctx, id)
	if err != nil {
		return err
	}

	if !srv.verifier.Verify(ctx, profile, input.Password) {
		srv.log(ctx).Warn("Rejected profile update", slog.String("profileID", id))

		return domainerrors.ErrInvalidCredential
	}

	update := &entity.ProfileUpdate{
		Name:              strings.TrimSpace(input.Name),
		Phone:             strings.TrimSpace(input.Phone),
		BloodGroup:        bloodGroup,
		EmergencyContact:  strings.TrimSpace(input.EmergencyContact),
		MedicalConditions: entity.OptionalText(input.MedicalConditions),
		Allergies:         entity.OptionalText(input.Allergies),
		Medications:       entity.OptionalText(input.Medications),
	}

	if input.NewPassword != "" {
		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash new credential", slog.String("profileID", id), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		update.PasswordHash = &hash
	}

	if err := srv.profileRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated",
		slog.String("profileID", id),
		slog.Bool("credentialChanged", update.PasswordHash != nil),
	)

	return nil
}

// DeleteProfile removes a profile and, best-effort, its stored QR image.
func (srv *profileService) DeleteProfile(ctx context.Context, id, password string) (*usecase.DeleteProfileOutput, error) {
	if password == "" {
		return nil, domainerrors.ErrCredentialRequired
	}

	profile, err := srv.findProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if !srv.verifier.Verify(ctx, profile, password) {
		srv.log(ctx).Warn("Rejected profile deletion", slog.String("profileID", id))

		return nil, domainerrors.ErrInvalidCredential
	}

	output := &usecase.DeleteProfileOutput{}
	if err := srv.storage.Remove(ctx, entity.AssetKey(id)); err != nil {
		output.Warnings = append(output.Warnings, srv.warn(ctx, id, usecase.StepRemoveAsset, err))
	}

	if err := srv.profileRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to delete profile")
	}

	srv.log(ctx).Info("Profile deleted", slog.String("profileID", id))

	return output, nil
}

// VerifyCredential reports whether password unlocks the profile. Nothing is mutated.
func (srv *profileService) VerifyCredential(ctx context.Context, id, password string) (bool, error) {
	profile, err := srv.findProfile(ctx, id)
	if err != nil {
		return false, err
	}

	return srv.verifier.Verify(ctx, profile, password), nil
}

// ListProfiles returns every stored profile.
func (srv *profileService) ListProfiles(ctx context.Context) ([]*usecase.ProfileView, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	views := make([]*usecase.ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, usecase.NewProfileView(profile))
	}

	return views, nil
}

// RenderProfileCode re-encodes the canonical URL of an existing profile.
func (srv *profileService) RenderProfileCode(ctx context.Context, id string) (*entity.QRImage, error) {
	if _, err := srv.findProfile(ctx, id); err != nil {
		return nil, err
	}

	image, err := srv.qrcode.Encode(srv.profileURL(id), service.QRCodeOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode profile QR code")
	}

	return image, nil
}

func (srv *profileService) findProfile(ctx context.Context, id string) (*entity.Profile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile id is required")
	}

	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func (srv *profileService) profileURL(id string) string {
	return srv.baseURL + "/profile/" + id
}

func (srv *profileService) warn(ctx context.Context, profileID, step string, err error) usecase.Warning {
	srv.log(ctx).Error("Secondary step failed",
		slog.String("profileID", profileID),
		slog.String("step", step),
		slog.Any("error", err),
	)

	return usecase.Warning{Step: step, Message: err.Error()}
}

// profileFields are the required fields shared by create and update.
type profileFields struct {
	Name             string
	Phone            string
	BloodGroup       string
	EmergencyContact string
}

// validate reports every missing required field at once, then checks the blood group.
func (f profileFields) validate(password string, requirePassword bool) (entity.BloodGroup, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"phone", f.Phone},
		{"bloodGroup", f.BloodGroup},
		{"emergencyContact", f.EmergencyContact},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if requirePassword && password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	bloodGroup, ok := entity.ParseBloodGroup(f.BloodGroup)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("invalid bloodGroup " + f.BloodGroup)
	}

	return bloodGroup, nil
}
