package service

import (
	"lifeline/internal/domain/entity"
)

// QRCodeOptions tunes a single encoding. Zero values fall back to the service defaults.
type QRCodeOptions struct {
	Width  int
	Margin *int
	// Foreground and Background are #RRGGBB colours.
	Foreground string
	Background string
	// Level is the recovery level: L, M, Q or H.
	Level string
}

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// Encode renders payload as a PNG QR code. Identical input yields identical bytes.
	Encode(payload string, opts QRCodeOptions) (*entity.QRImage, error)
}
