package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"lifeline/internal/delivery/api/response"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// DeleteProfileRequest represents the request body for deleting a profile
type DeleteProfileRequest struct {
	Password string `json:"password"`
}

// VerifyPasswordRequest represents the request body for checking a profile password
type VerifyPasswordRequest struct {
	ProfileID string `json:"profileId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// CreateProfile handles profile registration
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req usecase.CreateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.profileUC.CreateProfile(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// GetProfile handles GET /api/profiles/:id and GET /api/profiles?id=
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		id = c.QueryParam("id")
	}
	if strings.TrimSpace(id) == "" {
		return response.BadRequest(c, "MISSING_ID", "Profile ID is required")
	}

	view, err := h.profileUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"profile": view})
}

// UpdateProfile handles credential-gated profile edits
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.profileUC.UpdateProfile(c.Request().Context(), c.Param("id"), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"success": true})
}

// DeleteProfile handles credential-gated profile deletion
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	var req DeleteProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid delete input")
	}

	output, err := h.profileUC.DeleteProfile(c.Request().Context(), c.Param("id"), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := map[string]any{"success": true}
	if len(output.Warnings) > 0 {
		data["warnings"] = output.Warnings
	}

	return response.Success(c, http.StatusOK, data)
}

// VerifyPassword checks a profile password without changing anything
func (h *ProfileHandler) VerifyPassword(c echo.Context) error {
	var req VerifyPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ok, err := h.profileUC.VerifyCredential(c.Request().Context(), req.ProfileID, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredential)
	}

	return response.Success(c, http.StatusOK, map[string]any{"success": true})
}

// DownloadQRCode returns the profile QR code as a PNG attachment
func (h *ProfileHandler) DownloadQRCode(c echo.Context) error {
	id := c.Param("id")

	image, err := h.profileUC.RenderProfileCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "qr_code_"+id+".png"))

	return c.Blob(http.StatusOK, "image/png", image.PNG)
}

// ListProfiles is the debug listing; only registered when debug routes are enabled
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	views, err := h.profileUC.ListProfiles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":    len(views),
		"profiles": views,
	})
}
