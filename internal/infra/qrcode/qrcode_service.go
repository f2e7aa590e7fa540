// Package qrcode renders scannable profile links as PNG images.
package qrcode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	defaultWidth      = 256
	defaultMargin     = 2
	defaultForeground = "#000000"
	defaultBackground = "#FFFFFF"
	// maxWidth bounds caller supplied widths so a single request cannot allocate huge images.
	maxWidth = 2048
)

// Defaults holds the options applied when a request leaves them unset.
type Defaults struct {
	Width      int
	Margin     int
	Foreground string
	Background string
	Level      string
}

type qrcodeService struct {
	defaults Defaults
}

// QRCodeParams holds dependencies for the encoder, injected by Fx.
type QRCodeParams struct {
	fx.In

	Config *config.Config
}

// NewQRCodeService creates a new QR code service instance from config.
func NewQRCodeService(params QRCodeParams) service.QRCodeService {
	defaults := Defaults{}
	if params.Config != nil && params.Config.QRCode != nil {
		qr := params.Config.QRCode
		defaults = Defaults{
			Width:      qr.Size,
			Margin:     qr.Margin,
			Foreground: qr.Foreground,
			Background: qr.Background,
			Level:      qr.ErrorCorrectionLevel,
		}
	}

	return NewQRCodeServiceWithDefaults(defaults)
}

// NewQRCodeServiceWithDefaults creates an encoder with explicit defaults; zero fields use built-in values.
func NewQRCodeServiceWithDefaults(defaults Defaults) service.QRCodeService {
	if defaults.Width <= 0 {
		defaults.Width = defaultWidth
	}
	if defaults.Margin <= 0 {
		defaults.Margin = defaultMargin
	}
	if defaults.Foreground == "" {
		defaults.Foreground = defaultForeground
	}
	if defaults.Background == "" {
		defaults.Background = defaultBackground
	}
	if _, ok := parseLevel(defaults.Level); !ok {
		defaults.Level = "M"
	}

	return &qrcodeService{defaults: defaults}
}

// Encode renders payload as a PNG QR code.
func (s *qrcodeService) Encode(payload string, opts service.QRCodeOptions) (*entity.QRImage, error) {
	if payload == "" {
		return nil, domainerrors.ErrQRPayloadEmpty
	}

	width := opts.Width
	if width <= 0 {
		width = s.defaults.Width
	}
	if width > maxWidth {
		width = maxWidth
	}

	margin := s.defaults.Margin
	if opts.Margin != nil && *opts.Margin >= 0 {
		margin = *opts.Margin
	}

	levelName := opts.Level
	if levelName == "" {
		levelName = s.defaults.Level
	}
	level, ok := parseLevel(levelName)
	if !ok {
		return nil, domainerrors.ErrQREncodingFailed.WithDetails("unknown error correction level " + strconv.Quote(levelName))
	}

	foreground, err := parseHexColor(firstNonEmpty(opts.Foreground, s.defaults.Foreground))
	if err != nil {
		return nil, domainerrors.ErrQREncodingFailed.WithDetails(err.Error())
	}
	background, err := parseHexColor(firstNonEmpty(opts.Background, s.defaults.Background))
	if err != nil {
		return nil, domainerrors.ErrQREncodingFailed.WithDetails(err.Error())
	}

	code, err := qrcode.New(payload, level)
	if err != nil {
		// go-qrcode reports "content too long to encode" once the level's capacity is exceeded.
		return nil, errors.Wrap(domainerrors.ErrQREncodingFailed.WithDetails(err.Error()), "qrcode.New")
	}
	code.DisableBorder = true

	img := render(code.Bitmap(), width, margin, foreground, background)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(domainerrors.ErrQREncodingFailed.WithDetails(err.Error()), "png.Encode")
	}

	return &entity.QRImage{
		PNG:     buf.Bytes(),
		Payload: payload,
		Width:   img.Bounds().Dx(),
	}, nil
}

// render scales the module bitmap into a width x width image with a margin measured in modules.
// When the requested width is smaller than one pixel per module the image grows to fit.
func render(bitmap [][]bool, width, margin int, fg, bg color.Color) *image.Paletted {
	modules := len(bitmap) + 2*margin
	scale := width / modules
	if scale < 1 {
		scale = 1
	}
	size := width
	if modules*scale > size {
		size = modules * scale
	}
	offset := (size-modules*scale)/2 + margin*scale

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{bg, fg})
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0, y0 := offset+x*scale, offset+y*scale
			for py := y0; py < y0+scale; py++ {
				for px := x0; px < x0+scale; px++ {
					img.SetColorIndex(px, py, 1)
				}
			}
		}
	}

	return img
}

func parseLevel(level string) (qrcode.RecoveryLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L":
		return qrcode.Low, true
	case "M":
		return qrcode.Medium, true
	case "Q":
		return qrcode.High, true
	case "H":
		return qrcode.Highest, true
	default:
		return qrcode.Medium, false
	}
}

// parseHexColor accepts #RRGGBB and the #RGB shorthand.
func parseHexColor(value string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	if len(raw) != 6 {
		return color.RGBA{}, errors.Errorf("invalid colour %q, want #RRGGBB", value)
	}

	rgb, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Errorf("invalid colour %q, want #RRGGBB", value)
	}

	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
