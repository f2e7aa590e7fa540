package handler

import (
	"net/http"

	"lifeline/internal/delivery/api/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LinkHandler serves standalone QR generation
type LinkHandler struct {
	linkUC usecase.LinkUsecase
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(linkUC usecase.LinkUsecase) *LinkHandler {
	return &LinkHandler{linkUC: linkUC}
}

// GenerateQR encodes the posted data and returns it as a data URL
func (h *LinkHandler) GenerateQR(c echo.Context) error {
	var req usecase.EncodeLinkInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	image, err := h.linkUC.EncodeLink(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"qrCodeUrl": image.DataURL()})
}
