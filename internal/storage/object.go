package storage

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get and Metadata when the key does not exist.
var ErrNotFound = errors.New("object not found")

// Object is a flat key/value object store holding artifacts, manifest
// backups and latest-record pointers. Implementations exist for the local
// filesystem and S3.
type Object interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte, contentType string, metadata map[string]string) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Metadata(ctx context.Context, key string) (map[string]string, error)
}
