package storage

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"

	domainerrors "lifeline/internal/domain/errors"
)

// InlineStorage is used when no bucket is configured: the returned URL embeds
// the asset itself, so nothing is kept server side.
type InlineStorage struct {
	logger *slog.Logger
}

func NewInlineStorage(logger *slog.Logger) *InlineStorage {
	return &InlineStorage{logger: logger}
}

func (s *InlineStorage) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	s.logger.Debug("Asset kept inline", slog.String("key", key))

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Open always fails: inline assets are only reachable through their data URL.
func (s *InlineStorage) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, domainerrors.ErrAssetNotFound
}

func (s *InlineStorage) Remove(context.Context, string) error {
	return nil
}
