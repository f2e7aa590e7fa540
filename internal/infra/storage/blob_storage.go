package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	domainerrors "lifeline/internal/domain/errors"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// BlobStorage stores assets in a gocloud bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage wraps an opened bucket. publicBaseURL prefixes keys in returned URLs.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *BlobStorage {
	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *BlobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=3600",
	})
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageFailed.WithDetails(err.Error()), "upload "+key)
	}

	s.logger.Debug("Asset uploaded",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

func (s *BlobStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, domainerrors.ErrAssetNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrStorageFailed.WithDetails(err.Error()), "open "+key)
	}

	return reader, nil
}

func (s *BlobStorage) Remove(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(domainerrors.ErrStorageFailed.WithDetails(err.Error()), "remove "+key)
	}

	return nil
}

// validateKey keeps keys flat; assets never live in nested prefixes.
func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return errors.Wrapf(domainerrors.ErrStorageFailed, "invalid object key %q", key)
	}

	return nil
}
