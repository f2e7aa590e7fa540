package service

import (
	"context"
	"io"
)

// AssetStorage keeps generated QR images outside the relational store.
type AssetStorage interface {
	// Upload stores data under key and returns the URL the asset can be fetched from.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Open streams a stored asset. Returns errors.ErrAssetNotFound for unknown keys.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Remove deletes the asset; removing an unknown key is not an error.
	Remove(ctx context.Context, key string) error
}
