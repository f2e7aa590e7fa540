package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// LinkUsecase encodes arbitrary payloads as QR images.
type LinkUsecase interface {
	EncodeLink(ctx context.Context, input *EncodeLinkInput) (*entity.QRImage, error)
}

// EncodeLinkInput defines a standalone QR generation request.
type EncodeLinkInput struct {
	Data   string `json:"data"`
	Width  int    `json:"width,omitempty" validate:"omitempty,min=21,max=2048"`
	Margin *int   `json:"margin,omitempty" validate:"omitempty,min=0,max=40"`
	// Dark and Light are #RRGGBB colours.
	Dark  string `json:"dark,omitempty" validate:"omitempty,hexcolor"`
	Light string `json:"light,omitempty" validate:"omitempty,hexcolor"`
	Level string `json:"level,omitempty" validate:"omitempty,oneof=L M Q H"`
}
