package layerstore

import (
	"context"
	"encoding/json"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/storage"
)

// Store persists publication records on top of an object store.
type Store struct {
	storage storage.Object
}

func New(storage storage.Object) *Store {
	return &Store{storage}
}

// LatestRecord loads the latest-record pointer for the given tool.
// Missing pointer yields ErrRecordNotFound; an existing but undecodable
// pointer yields ErrRecordUnreadable so callers can fail open.
func (s *Store) LatestRecord(ctx context.Context, tool string) (*Record, error) {
	hclog.FromContext(ctx).Debug("Loading latest publication record", "tool", tool)

	raw, err := s.storage.Get(ctx, LatestRecordKey(tool))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errors.Wrapf(ErrRecordNotFound, "no record for tool %s", tool)
	}

	if err != nil {
		return nil, errors.Wrap(err, "fail to load latest publication record")
	}

	var record Record
	err = json.Unmarshal(raw, &record)
	if err != nil {
		return nil, errors.Wrapf(ErrRecordUnreadable, "fail to decode latest record for tool %s: %v", tool, err)
	}

	return &record, nil
}

// VersionedManifest returns the manifest bytes backed up with a specific
// published version.
func (s *Store) VersionedManifest(ctx context.Context, version int64, manifestName string) ([]byte, error) {
	return s.storage.Get(ctx, ManifestKey(version, manifestName))
}

// SaveRecord persists the manifest backup and publication record under the
// version-keyed prefix, then updates the latest pointer. The pointer write
// comes last: if it fails after the versioned writes succeeded, the publish
// is reported as incomplete via ErrIncompleteRecord so future change
// detection is not silently poisoned.
func (s *Store) SaveRecord(ctx context.Context, record *Record, manifestName string, manifest []byte) error {
	logger := hclog.FromContext(ctx)
	logger.Debug("Saving publication record",
		"layer", record.LayerName, "version", record.Version, "tool", record.Tool)

	record.ManifestKey = ManifestKey(record.Version, manifestName)

	err := s.storage.Put(ctx, record.ManifestKey, manifest, "text/plain", nil)
	if err != nil {
		return errors.Wrap(err, "fail to back up manifest for published version")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "fail to marshal publication record")
	}

	err = s.storage.Put(ctx, RecordKey(record.Version), data, "application/json", nil)
	if err != nil {
		return errors.Wrap(err, "fail to save versioned publication record")
	}

	err = s.storage.Put(ctx, LatestRecordKey(record.Tool), data, "application/json", nil)
	if err != nil {
		return errors.Wrapf(ErrIncompleteRecord,
			"version %d of layer %s is published but the latest pointer was not updated: %v",
			record.Version, record.LayerName, err)
	}

	return nil
}

// DeleteVersionRecord removes the versioned backup of a pruned layer
// version. The latest pointer is left alone, pruning never touches the most
// recent version.
func (s *Store) DeleteVersionRecord(ctx context.Context, version int64, manifestName string) error {
	hclog.FromContext(ctx).Debug("Deleting publication record", "version", version)

	err := s.storage.Delete(ctx, ManifestKey(version, manifestName))
	if err != nil {
		return errors.Wrap(err, "fail to delete versioned manifest backup")
	}

	return errors.Wrap(
		s.storage.Delete(ctx, RecordKey(version)),
		"fail to delete versioned publication record",
	)
}
