package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/storage"
	mockService "lifeline/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAssetTestServer(h *AssetHandler) *echo.Echo {
	e := newTestEcho()
	e.GET("/qr-codes/:file", h.ServeQRCode)

	return e
}

func TestAssetHandler_ServeQRCode(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := storage.NewBlobStorage(bucket, "http://localhost:3000/qr-codes", newDiscardLogger())
	png := []byte("\x89PNG\r\n\x1a\nbody")
	_, err := store.Upload(context.Background(), "qr-p-1.png", png, "image/png")
	require.NoError(t, err)

	e := newAssetTestServer(NewAssetHandler(store))
	rec := doRequest(e, http.MethodGet, "/qr-codes/qr-p-1.png", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAssetHandler_ServeQRCode_NotFound(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := storage.NewBlobStorage(bucket, "http://localhost:3000/qr-codes", newDiscardLogger())
	e := newAssetTestServer(NewAssetHandler(store))

	rec := doRequest(e, http.MethodGet, "/qr-codes/qr-missing.png", "")

	requireErrorCode(t, rec, http.StatusNotFound, "ASSET_NOT_FOUND")
}

func TestAssetHandler_ServeQRCode_RejectsForeignKeys(t *testing.T) {
	assets := mockService.NewMockAssetStorage(t)
	e := newAssetTestServer(NewAssetHandler(assets))

	for _, file := range []string{"notes.txt", "qr-..png.bak", "qr-p-1.png.exe"} {
		rec := doRequest(e, http.MethodGet, "/qr-codes/"+file, "")
		requireErrorCode(t, rec, http.StatusNotFound, "ASSET_NOT_FOUND")
	}
	assets.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestAssetHandler_ServeQRCode_StorageFailure(t *testing.T) {
	assets := mockService.NewMockAssetStorage(t)
	e := newAssetTestServer(NewAssetHandler(assets))

	assets.EXPECT().Open(mock.Anything, "qr-p-1.png").Return(nil, domainerrors.ErrStorageFailed)

	rec := doRequest(e, http.MethodGet, "/qr-codes/qr-p-1.png", "")

	requireErrorCode(t, rec, http.StatusInternalServerError, "STORAGE_FAILED")
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	for _, backend := range []repository.Backend{repository.BackendDurable, repository.BackendFallback} {
		t.Run(backend.String(), func(t *testing.T) {
			e := newTestEcho()
			e.GET("/health", NewHealthHandler(backend).HealthCheck)

			rec := doRequest(e, http.MethodGet, "/health", "")

			require.Equal(t, http.StatusOK, rec.Code)
			var out map[string]string
			decodeData(t, rec, &out)
			assert.Equal(t, "ok", out["status"])
			assert.Equal(t, backend.String(), out["backend"])
		})
	}
}
