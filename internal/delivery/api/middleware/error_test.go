package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "lifeline/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/profiles/p-1", nil), rec)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body, logs.String()
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body, _ := handle(t, domainerrors.ErrValidationFailed.WithDetails("missing required fields: name"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "missing required fields: name", body.Error.Details)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	rec, body, _ := handle(t, errors.Wrap(domainerrors.ErrProfileNotFound, "get profile"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	tests := []struct {
		err      *echo.HTTPError
		wantCode string
	}{
		{err: echo.ErrNotFound, wantCode: "NOT_FOUND"},
		{err: echo.ErrMethodNotAllowed, wantCode: "METHOD_NOT_ALLOWED"},
		{err: echo.ErrStatusRequestEntityTooLarge, wantCode: "REQUEST_ENTITY_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			rec, body, _ := handle(t, tt.err)

			assert.Equal(t, tt.err.Code, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body, logs := handle(t, errors.New("db password is hunter2"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Contains(t, logs, "Unhandled error")
}

func TestHTTPErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", httpErrorCode(http.StatusBadRequest))
	assert.Equal(t, "HTTP_ERROR", httpErrorCode(499))
}
