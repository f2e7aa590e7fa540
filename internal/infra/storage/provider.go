// Package storage keeps generated QR images in an object store.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"lifeline/config"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes: file://, mem://, s3://, gs://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// StorageParams holds dependencies for AssetStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAssetStorage creates an AssetStorage based on configuration
func NewAssetStorage(params StorageParams) (service.AssetStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	// Without a bucket images travel inline as data URLs
	if cfg == nil || strings.TrimSpace(cfg.BucketURL) == "" {
		logger.Info("Object storage not configured, using inline data URLs")

		return NewInlineStorage(logger), nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", redactURL(cfg.BucketURL))
	}
	logger.Info("Using object storage for QR codes",
		slog.String("bucket", redactURL(cfg.BucketURL)),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	storage := NewBlobStorage(bucket, cfg.PublicBaseURL, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing object storage bucket")

			return bucket.Close()
		},
	})

	return storage, nil
}

// redactURL drops query parameters, which may carry credentials for some drivers.
func redactURL(raw string) string {
	if idx := strings.IndexByte(raw, '?'); idx >= 0 {
		return raw[:idx]
	}

	return raw
}
