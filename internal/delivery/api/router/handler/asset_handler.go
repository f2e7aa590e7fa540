package handler

import (
	"net/http"
	"regexp"

	"lifeline/internal/delivery/api/response"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"

	"github.com/labstack/echo/v4"
)

var assetKeyPattern = regexp.MustCompile(`^qr-[A-Za-z0-9-]+\.png$`)

// AssetHandler streams stored QR images
type AssetHandler struct {
	storage service.AssetStorage
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(storage service.AssetStorage) *AssetHandler {
	return &AssetHandler{storage: storage}
}

// ServeQRCode handles GET /qr-codes/:file
func (h *AssetHandler) ServeQRCode(c echo.Context) error {
	key := c.Param("file")
	if !assetKeyPattern.MatchString(key) {
		return response.HandleAppError(c, domainerrors.ErrAssetNotFound)
	}

	reader, err := h.storage.Open(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Stream(http.StatusOK, "image/png", reader)
}
