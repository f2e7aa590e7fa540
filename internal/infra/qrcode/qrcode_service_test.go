package qrcode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"lifeline/config"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileURL = "http://localhost:3000/profile/0190b7a4-8f5e-7c1a-9d2b-3e4f5a6b7c8d"

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	return img
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()

	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func containsColor(img image.Image, want color.Color) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if sameColor(img.At(x, y), want) {
				return true
			}
		}
	}

	return false
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(QRCodeParams{Config: &config.Config{
				QRCode: &config.QRCodeConfig{Size: 256, Margin: 2, ErrorCorrectionLevel: tt.level},
			}})
			require.NotNil(t, svc)

			qr, err := svc.Encode(profileURL, service.QRCodeOptions{})
			require.NoError(t, err)
			assert.NotEmpty(t, qr.PNG)
		})
	}
}

func TestQRCodeService_Encode(t *testing.T) {
	svc := NewQRCodeServiceWithDefaults(Defaults{})

	qr, err := svc.Encode(profileURL, service.QRCodeOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, qr.PNG)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qr.PNG[:4])
	assert.Equal(t, profileURL, qr.Payload)
	assert.Equal(t, 256, qr.Width)
	assert.True(t, strings.HasPrefix(qr.DataURL(), "data:image/png;base64,"))

	img := decode(t, qr.PNG)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
	assert.True(t, sameColor(img.At(0, 0), color.White), "margin is painted with the background")
	assert.True(t, containsColor(img, color.Black))
}

func TestQRCodeService_Encode_Deterministic(t *testing.T) {
	svc := NewQRCodeServiceWithDefaults(Defaults{})
	margin := 4
	opts := service.QRCodeOptions{Width: 300, Margin: &margin, Foreground: "#112233", Level: "Q"}

	first, err := svc.Encode(profileURL, opts)
	require.NoError(t, err)
	second, err := svc.Encode(profileURL, opts)
	require.NoError(t, err)

	assert.Equal(t, first.PNG, second.PNG)
}

func TestQRCodeService_Encode_DifferentSizes(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"Small QR", 128, 128},
		{"Medium QR", 256, 256},
		{"Large QR", 512, 512},
		{"Clamped QR", 10000, maxWidth},
		{"Too small grows to fit", 10, 29},
	}

	svc := NewQRCodeServiceWithDefaults(Defaults{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr, err := svc.Encode("https://example.com", service.QRCodeOptions{Width: tt.width})
			require.NoError(t, err)

			img := decode(t, qr.PNG)
			assert.Equal(t, tt.want, img.Bounds().Dx())
			assert.Equal(t, tt.want, qr.Width)
		})
	}
}

func TestQRCodeService_Encode_Colours(t *testing.T) {
	svc := NewQRCodeServiceWithDefaults(Defaults{})
	red := color.RGBA{R: 0xff, A: 0xff}
	yellow := color.RGBA{R: 0xff, G: 0xff, A: 0xff}

	qr, err := svc.Encode(profileURL, service.QRCodeOptions{Foreground: "#FF0000", Background: "#ffff00"})
	require.NoError(t, err)

	img := decode(t, qr.PNG)
	assert.True(t, sameColor(img.At(0, 0), yellow))
	assert.True(t, containsColor(img, red))
	assert.False(t, containsColor(img, color.Black))
}

func TestQRCodeService_Encode_MarginChangesOutput(t *testing.T) {
	svc := NewQRCodeServiceWithDefaults(Defaults{})
	zero, wide := 0, 8

	noMargin, err := svc.Encode(profileURL, service.QRCodeOptions{Margin: &zero})
	require.NoError(t, err)
	wideMargin, err := svc.Encode(profileURL, service.QRCodeOptions{Margin: &wide})
	require.NoError(t, err)

	assert.NotEqual(t, noMargin.PNG, wideMargin.PNG)
}

func TestQRCodeService_Encode_Errors(t *testing.T) {
	svc := NewQRCodeServiceWithDefaults(Defaults{})

	tests := []struct {
		name    string
		payload string
		opts    service.QRCodeOptions
		wantErr error
	}{
		{"empty payload", "", service.QRCodeOptions{}, domainerrors.ErrQRPayloadEmpty},
		{"over capacity", strings.Repeat("a", 3000), service.QRCodeOptions{Level: "H"}, domainerrors.ErrQREncodingFailed},
		{"malformed foreground", profileURL, service.QRCodeOptions{Foreground: "black"}, domainerrors.ErrQREncodingFailed},
		{"malformed background", profileURL, service.QRCodeOptions{Background: "#GGGGGG"}, domainerrors.ErrQREncodingFailed},
		{"unknown level", profileURL, service.QRCodeOptions{Level: "X"}, domainerrors.ErrQREncodingFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr, err := svc.Encode(tt.payload, tt.opts)
			require.Error(t, err)
			assert.Nil(t, qr)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1A2b3C")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, c)

	c, err = parseHexColor("#f0a")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}, c)

	_, err = parseHexColor("#12345")
	assert.Error(t, err)
}
