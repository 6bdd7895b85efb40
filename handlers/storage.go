package handlers

import (
	"context"

	"sas-quotation/config"
)

// ObjectStore uploads a named byte stream to durable storage and returns a
// public retrieval URL. Callers guarantee path uniqueness (timestamp+name).
type ObjectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// NewObjectStore picks the storage backend for the current environment:
// Google Cloud Storage in production, local disk for development.
func NewObjectStore(ctx context.Context, cfg *config.Settings) (ObjectStore, error) {
	if cfg.UseGCS {
		return NewGCSStore(ctx, cfg.GCSBucket)
	}
	return NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL), nil
}
