package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

type fileStore struct {
	dir string
}

var _ Object = &fileStore{}

// NewFileStore stores objects as files under dir, mirroring the object key
// hierarchy. Metadata rides in a sidecar json file next to each object.
func NewFileStore(dir string) *fileStore {
	return &fileStore{dir}
}

func (fls *fileStore) fpath(key string) string {
	return filepath.Join(fls.dir, filepath.FromSlash(key))
}

func (fls *fileStore) metaPath(key string) string {
	return fls.fpath(key) + ".meta.json"
}

func (fls *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	hclog.FromContext(ctx).Debug("Reading object file", "key", key)

	raw, err := os.ReadFile(fls.fpath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%s", fls.fpath(key))
	}

	return raw, errors.Wrapf(err, "fail to read %s", fls.fpath(key))
}

func (fls *fileStore) Put(ctx context.Context, key string, body []byte, contentType string, metadata map[string]string) error {
	hclog.FromContext(ctx).Debug("Writing object file", "key", key)

	fpath := fls.fpath(key)
	err := os.MkdirAll(filepath.Dir(fpath), 0755)
	if err != nil {
		return errors.Wrapf(err, "fail to create directory for %s", fpath)
	}

	err = os.WriteFile(fpath, body, 0644)
	if err != nil {
		return errors.Wrapf(err, "fail to write %s", fpath)
	}

	if len(metadata) == 0 {
		return nil
	}

	data, err := json.Marshal(metadata)
	if err != nil {
		return errors.Wrap(err, "fail to marshal object metadata")
	}

	err = os.WriteFile(fls.metaPath(key), data, 0644)
	return errors.Wrapf(err, "fail to write metadata of %s", fpath)
}

func (fls *fileStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(fls.fpath(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, errors.Wrapf(err, "fail to stat %s", fls.fpath(key))
	}

	return true, nil
}

func (fls *fileStore) Delete(ctx context.Context, key string) error {
	hclog.FromContext(ctx).Debug("Deleting object file", "key", key)

	err := os.Remove(fls.fpath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return errors.Wrapf(err, "fail to remove %s", fls.fpath(key))
	}

	err = os.Remove(fls.metaPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return errors.Wrapf(err, "fail to remove metadata of %s", fls.fpath(key))
}

func (fls *fileStore) Metadata(ctx context.Context, key string) (map[string]string, error) {
	exists, err := fls.Exists(ctx, key)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, errors.Wrapf(ErrNotFound, "%s", fls.fpath(key))
	}

	raw, err := os.ReadFile(fls.metaPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "fail to read metadata of %s", fls.fpath(key))
	}

	var metadata map[string]string
	err = json.Unmarshal(raw, &metadata)

	return metadata, errors.Wrapf(err, "fail to parse metadata of %s", fls.fpath(key))
}
