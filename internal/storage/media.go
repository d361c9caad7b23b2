package storage

import (
	"context"
	"io"
)

// MediaStore persists service images. Upload returns the public URL and
// the asset id used for later deletion.
type MediaStore interface {
	Upload(ctx context.Context, r io.Reader) (url, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// Discard is used when no bucket is configured (and in tests): services
// simply end up without images.
type Discard struct{}

func (Discard) Upload(ctx context.Context, r io.Reader) (string, string, error) {
	return "", "", nil
}

func (Discard) Delete(ctx context.Context, publicID string) error {
	return nil
}
