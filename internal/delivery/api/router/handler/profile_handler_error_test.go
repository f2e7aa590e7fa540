package handler

import (
	"net/http"
	"testing"

	domainerrors "lifeline/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_CreateProfile_MalformedBody(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/profiles", `{"name":`)

	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	profileUC.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
}

func TestProfileHandler_CreateProfile_MissingFields(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/profiles", `{"name":"Jane Doe","bloodGroup":"X+"}`)

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, string(env.Error.Details), "phone")
	assert.Contains(t, string(env.Error.Details), "bloodGroup")
	assert.Contains(t, string(env.Error.Details), "password")
	profileUC.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
}

func TestProfileHandler_CreateProfile_StoreFailure(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().CreateProfile(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert profile"))

	rec := doRequest(e, http.MethodPost, "/api/profiles", createBody)

	env := requireErrorCode(t, rec, http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED")
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestProfileHandler_GetProfile_MissingID(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/profiles", "")

	requireErrorCode(t, rec, http.StatusBadRequest, "MISSING_ID")
	profileUC.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().GetProfile(mock.Anything, "missing").Return(nil, domainerrors.ErrProfileNotFound)

	rec := doRequest(e, http.MethodGet, "/api/profiles/missing", "")

	requireErrorCode(t, rec, http.StatusNotFound, "PROFILE_NOT_FOUND")
}

func TestProfileHandler_UpdateProfile_Errors(t *testing.T) {
	body := `{"name":"Jane Doe","phone":"+15551234567","bloodGroup":"A+","emergencyContact":"John","password":"wrong"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "wrong credential", err: domainerrors.ErrInvalidCredential, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIAL"},
		{name: "not found", err: domainerrors.ErrProfileNotFound, wantStatus: http.StatusNotFound, wantCode: "PROFILE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, profileUC := newProfileTestServer(t)
			profileUC.EXPECT().UpdateProfile(mock.Anything, "p-1", mock.Anything).Return(tt.err)

			rec := doRequest(e, http.MethodPut, "/api/profiles/p-1", body)

			requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestProfileHandler_UpdateProfile_InvalidBloodGroup(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	body := `{"name":"Jane Doe","phone":"+15551234567","bloodGroup":"Z","emergencyContact":"John","password":"s3cret!"}`
	rec := doRequest(e, http.MethodPut, "/api/profiles/p-1", body)

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, string(env.Error.Details), "bloodGroup")
	profileUC.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileHandler_DeleteProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "missing credential", err: domainerrors.ErrCredentialRequired, wantStatus: http.StatusBadRequest, wantCode: "CREDENTIAL_REQUIRED"},
		{name: "wrong credential", err: domainerrors.ErrInvalidCredential, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIAL"},
		{name: "not found", err: domainerrors.ErrProfileNotFound, wantStatus: http.StatusNotFound, wantCode: "PROFILE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, profileUC := newProfileTestServer(t)
			profileUC.EXPECT().DeleteProfile(mock.Anything, "p-1", mock.Anything).Return(nil, tt.err)

			rec := doRequest(e, http.MethodDelete, "/api/profiles/p-1", `{"password":"x"}`)

			requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestProfileHandler_VerifyPassword_Mismatch(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().VerifyCredential(mock.Anything, "p-1", "wrong").Return(false, nil)

	rec := doRequest(e, http.MethodPost, "/api/auth/verify-password", `{"profileId":"p-1","password":"wrong"}`)

	env := requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIAL")
	assert.Empty(t, env.Error.Details)
}

func TestProfileHandler_VerifyPassword_MissingFields(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/auth/verify-password", `{"profileId":"p-1"}`)

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, string(env.Error.Details), "password")
	profileUC.AssertNotCalled(t, "VerifyCredential", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileHandler_VerifyPassword_NotFound(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().VerifyCredential(mock.Anything, "missing", "x").Return(false, domainerrors.ErrProfileNotFound)

	rec := doRequest(e, http.MethodPost, "/api/auth/verify-password", `{"profileId":"missing","password":"x"}`)

	requireErrorCode(t, rec, http.StatusNotFound, "PROFILE_NOT_FOUND")
}

func TestProfileHandler_DownloadQRCode_NotFound(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().RenderProfileCode(mock.Anything, "missing").Return(nil, domainerrors.ErrProfileNotFound)

	rec := doRequest(e, http.MethodGet, "/api/profiles/missing/qr", "")

	requireErrorCode(t, rec, http.StatusNotFound, "PROFILE_NOT_FOUND")
	require.Empty(t, rec.Header().Get("Content-Disposition"))
}

func TestProfileHandler_UnexpectedError(t *testing.T) {
	e, profileUC := newProfileTestServer(t)

	profileUC.EXPECT().GetProfile(mock.Anything, "p-1").Return(nil, errors.New("boom"))

	rec := doRequest(e, http.MethodGet, "/api/profiles/p-1", "")

	requireErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "boom")
}
