// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
)

// ProfileUsecase defines the profile lifecycle: create, read, credential-gated update and delete.
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*CreateProfileOutput, error)
	GetProfile(ctx context.Context, id string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, id string, input *UpdateProfileInput) error
	DeleteProfile(ctx context.Context, id, password string) (*DeleteProfileOutput, error)
	VerifyCredential(ctx context.Context, id, password string) (bool, error)
	ListProfiles(ctx context.Context) ([]*ProfileView, error)
	// RenderProfileCode re-encodes the canonical URL of an existing profile.
	RenderProfileCode(ctx context.Context, id string) (*entity.QRImage, error)
}

// --- Input DTOs ---

// CreateProfileInput defines the data required to register a profile.
type CreateProfileInput struct {
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	BloodGroup        string `json:"bloodGroup" validate:"required,bloodgroup"`
	Password          string `json:"password" validate:"required"`
	EmergencyContact  string `json:"emergencyContact" validate:"required"`
	MedicalConditions string `json:"medicalConditions,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	Medications       string `json:"medications,omitempty"`
}

// UpdateProfileInput replaces the editable fields. Password is the current
// credential; NewPassword, when set, replaces it.
type UpdateProfileInput struct {
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	BloodGroup        string `json:"bloodGroup" validate:"required,bloodgroup"`
	EmergencyContact  string `json:"emergencyContact" validate:"required"`
	MedicalConditions string `json:"medicalConditions,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	Medications       string `json:"medications,omitempty"`
	Password          string `json:"password"`
	NewPassword       string `json:"newPassword,omitempty"`
}

// --- Output DTOs ---

// Warning reports a secondary step that failed without failing the operation.
type Warning struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// Warning steps.
const (
	StepEncode      = "encode_qr"
	StepUpload      = "upload_qr"
	StepAttach      = "attach_qr"
	StepRemoveAsset = "remove_qr"
)

// CreateProfileOutput is the result of CreateProfile.
type CreateProfileOutput struct {
	ProfileID string `json:"profileId"`
	// QRCodeURL is the stored image URL, or a data URL when only encoding succeeded.
	QRCodeURL string    `json:"qrCodeUrl"`
	Warnings  []Warning `json:"warnings,omitempty"`
}

// DeleteProfileOutput is the result of DeleteProfile.
type DeleteProfileOutput struct {
	Warnings []Warning `json:"warnings,omitempty"`
}

// ProfileView is the external representation of a profile. It never carries the credential hash.
type ProfileView struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	BloodGroup        string    `json:"bloodGroup"`
	EmergencyContact  string    `json:"emergencyContact"`
	MedicalConditions *string   `json:"medicalConditions"`
	Allergies         *string   `json:"allergies"`
	Medications       *string   `json:"medications"`
	QRCodeURL         *string   `json:"qrCodeUrl"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewProfileView maps a stored profile to its external representation.
func NewProfileView(p *entity.Profile) *ProfileView {
	return &ProfileView{
		ID:                p.ID,
		Name:              p.Name,
		Phone:             p.Phone,
		BloodGroup:        p.BloodGroup.String(),
		EmergencyContact:  p.EmergencyContact,
		MedicalConditions: p.MedicalConditions,
		Allergies:         p.Allergies,
		Medications:       p.Medications,
		QRCodeURL:         p.QRCodeURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
