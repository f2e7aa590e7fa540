package impl

import (
	"context"
	"log/slog"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// linkService implements the LinkUsecase interface.
type linkService struct {
	qrcode service.QRCodeService
	logger *slog.Logger
}

// NewLinkService is the constructor for linkService.
func NewLinkService(qrcode service.QRCodeService, logger *slog.Logger) usecase.LinkUsecase {
	return &linkService{
		qrcode: qrcode,
		logger: logger,
	}
}

// EncodeLink renders input.Data as a QR image. Nothing is stored.
func (srv *linkService) EncodeLink(ctx context.Context, input *usecase.EncodeLinkInput) (*entity.QRImage, error) {
	if input == nil || input.Data == "" {
		return nil, domainerrors.ErrQRPayloadEmpty
	}

	image, err := srv.qrcode.Encode(input.Data, service.QRCodeOptions{
		Width:      input.Width,
		Margin:     input.Margin,
		Foreground: input.Dark,
		Background: input.Light,
		Level:      input.Level,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to encode link",
			slog.Int("payloadLength", len(input.Data)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to encode link")
	}

	return image, nil
}
