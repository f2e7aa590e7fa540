package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	mockUsecase "lifeline/internal/mocks/usecase"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const createBody = `{"name":"Jane Doe","phone":"+15551234567","bloodGroup":"O-","password":"s3cret!","emergencyContact":"John Doe, Spouse, +15559876543"}`

func newProfileTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profileUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.POST("/api/profiles", h.CreateProfile)
	e.GET("/api/profiles", h.GetProfile)
	e.GET("/api/profiles/:id", h.GetProfile)
	e.PUT("/api/profiles/:id", h.UpdateProfile)
	e.DELETE("/api/profiles/:id", h.DeleteProfile)
	e.GET("/api/profiles/:id/qr", h.DownloadQRCode)
	e.POST("/api/auth/verify-password", h.VerifyPassword)
	e.GET("/api/debug/profiles", h.ListProfiles)

	return e, profileUC
}

func newTestView(id string) *usecase.ProfileView {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	return &usecase.ProfileView{
		ID:               id,
		Name:             "Jane Doe",
		Phone:            "+15551234567",
		BloodGroup:       "O-",
		EmergencyContact: "John Doe, Spouse, +15559876543",
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func TestProfileHandler_CreateProfile(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProfileInput) bool {
			return in.Name == "Jane Doe" && in.BloodGroup == "O-" && in.Password == "s3cret!"
		})).
		Return(&usecase.CreateProfileOutput{ProfileID: "p-1", QRCodeURL: "http://localhost:3000/qr-codes/qr-p-1.png"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/profiles", createBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out map[string]any
	decodeData(t, rec, &out)
	assert.Equal(t, "p-1", out["profileId"])
	assert.Equal(t, "http://localhost:3000/qr-codes/qr-p-1.png", out["qrCodeUrl"])
	assert.NotContains(t, out, "warnings")
}

func TestProfileHandler_CreateProfile_WithWarnings(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().CreateProfile(mock.Anything, mock.Anything).
		Return(&usecase.CreateProfileOutput{
			ProfileID: "p-1",
			Warnings:  []usecase.Warning{{Step: usecase.StepUpload, Message: "bucket unavailable"}},
		}, nil)

	rec := doRequest(e, http.MethodPost, "/api/profiles", createBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out usecase.CreateProfileOutput
	decodeData(t, rec, &out)
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, usecase.StepUpload, out.Warnings[0].Step)
}

func TestProfileHandler_GetProfile(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "path parameter", target: "/api/profiles/p-1"},
		{name: "query parameter", target: "/api/profiles?id=p-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, profileUC := newProfileTestServer(t)
			profileUC.EXPECT().GetProfile(mock.Anything, "p-1").Return(newTestView("p-1"), nil)

			rec := doRequest(e, http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var out struct {
				Profile map[string]any `json:"profile"`
			}
			decodeData(t, rec, &out)
			assert.Equal(t, "p-1", out.Profile["id"])
			assert.Equal(t, "Jane Doe", out.Profile["name"])
			assert.NotContains(t, out.Profile, "passwordHash")
			assert.NotContains(t, out.Profile, "password")
		})
	}
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().
		UpdateProfile(mock.Anything, "p-1", mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Password == "s3cret!" && in.NewPassword == "n3w" && in.BloodGroup == "A+"
		})).
		Return(nil)

	body := `{"name":"Jane Doe","phone":"+15551234567","bloodGroup":"A+","emergencyContact":"John","password":"s3cret!","newPassword":"n3w"}`
	rec := doRequest(e, http.MethodPut, "/api/profiles/p-1", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	decodeData(t, rec, &out)
	assert.Equal(t, true, out["success"])
}

func TestProfileHandler_DeleteProfile(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().DeleteProfile(mock.Anything, "p-1", "s3cret!").Return(&usecase.DeleteProfileOutput{}, nil)

	rec := doRequest(e, http.MethodDelete, "/api/profiles/p-1", `{"password":"s3cret!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	decodeData(t, rec, &out)
	assert.Equal(t, true, out["success"])
	assert.NotContains(t, out, "warnings")
}

func TestProfileHandler_DeleteProfile_WithWarnings(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().DeleteProfile(mock.Anything, "p-1", "s3cret!").
		Return(&usecase.DeleteProfileOutput{
			Warnings: []usecase.Warning{{Step: usecase.StepRemoveAsset, Message: "bucket unavailable"}},
		}, nil)

	rec := doRequest(e, http.MethodDelete, "/api/profiles/p-1", `{"password":"s3cret!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Success  bool              `json:"success"`
		Warnings []usecase.Warning `json:"warnings"`
	}
	decodeData(t, rec, &out)
	assert.True(t, out.Success)
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, usecase.StepRemoveAsset, out.Warnings[0].Step)
}

func TestProfileHandler_VerifyPassword(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().VerifyCredential(mock.Anything, "p-1", "s3cret!").Return(true, nil)

	rec := doRequest(e, http.MethodPost, "/api/auth/verify-password", `{"profileId":"p-1","password":"s3cret!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	decodeData(t, rec, &out)
	assert.Equal(t, true, out["success"])
}

func TestProfileHandler_DownloadQRCode(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	png := []byte("\x89PNG\r\n\x1a\n")
	profileUC.EXPECT().RenderProfileCode(mock.Anything, "p-1").
		Return(&entity.QRImage{PNG: png, Payload: "http://localhost:3000/profile/p-1", Width: 256}, nil)

	rec := doRequest(e, http.MethodGet, "/api/profiles/p-1/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="qr_code_p-1.png"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_ListProfiles(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().ListProfiles(mock.Anything).
		Return([]*usecase.ProfileView{newTestView("p-2"), newTestView("p-1")}, nil)

	rec := doRequest(e, http.MethodGet, "/api/debug/profiles", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Count    int                    `json:"count"`
		Profiles []*usecase.ProfileView `json:"profiles"`
	}
	decodeData(t, rec, &out)
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Profiles, 2)
	assert.Equal(t, "p-2", out.Profiles[0].ID)
}
