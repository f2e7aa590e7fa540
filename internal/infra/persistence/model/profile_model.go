package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
type ProfileModel struct {
	ID                string  `gorm:"type:varchar(36);primaryKey"`
	Name              string  `gorm:"type:varchar(255);not null"`
	Phone             string  `gorm:"type:varchar(50);not null"`
	BloodGroup        string  `gorm:"type:varchar(3);not null"`
	PasswordHash      string  `gorm:"type:varchar(255);not null"`
	EmergencyContact  string  `gorm:"type:text;not null"`
	MedicalConditions *string `gorm:"type:text"`
	Allergies         *string `gorm:"type:text"`
	Medications       *string `gorm:"type:text"`
	QRCodeURL         *string `gorm:"column:qr_code_url;type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	QRCodes []QRCodeModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// BeforeCreate assigns a time-ordered ID. Generated in Go so sqlite and postgres behave alike.
func (m *ProfileModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != "" {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate profile id")
	}
	m.ID = id.String()

	return nil
}

// QRCodeModel is the GORM-specific struct for the 'qr_codes' table.
// Rows hold metadata only; the image lives in object storage.
type QRCodeModel struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	ProfileID string `gorm:"type:varchar(36);not null;index"`
	AssetData string `gorm:"type:text;not null"`
	AssetURL  string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (QRCodeModel) TableName() string {
	return "qr_codes"
}

func (m *QRCodeModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != "" {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate qr code id")
	}
	m.ID = id.String()

	return nil
}
