// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// BloodGroup is one of the eight ABO/Rh blood groups.
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
)

// BloodGroups lists every valid BloodGroup.
var BloodGroups = []BloodGroup{
	BloodGroupAPositive, BloodGroupANegative,
	BloodGroupBPositive, BloodGroupBNegative,
	BloodGroupABPositive, BloodGroupABNegative,
	BloodGroupOPositive, BloodGroupONegative,
}

// String returns the string representation of the BloodGroup.
func (b BloodGroup) String() string {
	return string(b)
}

// IsValid checks if the BloodGroup is one of the known values.
func (b BloodGroup) IsValid() bool {
	switch b {
	case BloodGroupAPositive, BloodGroupANegative,
		BloodGroupBPositive, BloodGroupBNegative,
		BloodGroupABPositive, BloodGroupABNegative,
		BloodGroupOPositive, BloodGroupONegative:
		return true
	default:
		return false
	}
}

// ParseBloodGroup normalises user input such as " ab+ " into a BloodGroup.
func ParseBloodGroup(raw string) (BloodGroup, bool) {
	group := BloodGroup(strings.ToUpper(strings.TrimSpace(raw)))

	return group, group.IsValid()
}

// Profile is an emergency-contact and medical record reachable through a QR code.
type Profile struct {
	ID                string
	Name              string
	Phone             string
	BloodGroup        BloodGroup
	EmergencyContact  string
	MedicalConditions *string
	Allergies         *string
	Medications       *string

	// PasswordHash protects every mutation; it must never leave the service layer.
	PasswordHash string

	// QRCodeURL stays nil until an image has been generated and stored.
	QRCodeURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileUpdate carries the replaceable fields of a profile.
type ProfileUpdate struct {
	Name              string
	Phone             string
	BloodGroup        BloodGroup
	EmergencyContact  string
	MedicalConditions *string
	Allergies         *string
	Medications       *string

	// PasswordHash replaces the stored hash when non-nil.
	PasswordHash *string
}

// Apply copies the update onto the profile. ID and CreatedAt are left untouched.
func (u *ProfileUpdate) Apply(p *Profile, now time.Time) {
	p.Name = u.Name
	p.Phone = u.Phone
	p.BloodGroup = u.BloodGroup
	p.EmergencyContact = u.EmergencyContact
	p.MedicalConditions = u.MedicalConditions
	p.Allergies = u.Allergies
	p.Medications = u.Medications
	if u.PasswordHash != nil {
		p.PasswordHash = *u.PasswordHash
	}
	p.UpdatedAt = now
}

// ProfileAsset is the metadata of a generated QR image.
type ProfileAsset struct {
	ID        string
	ProfileID string
	// Data is the payload encoded in the image, the canonical profile URL.
	Data      string
	URL       string
	CreatedAt time.Time
}

// AssetKey is the object-store key of a profile's QR image.
func AssetKey(profileID string) string {
	return "qr-" + profileID + ".png"
}

// OptionalText turns blank free text into nil so it is stored as NULL.
func OptionalText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}

// TextValue dereferences optional text, returning "" for nil.
func TextValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
