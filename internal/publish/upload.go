package publish

import (
	"context"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/layerstore"
	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/pack"
	"github.com/layerforge/layerforge/internal/storage"
)

// Upload stages the packaged layer.zip in the object store for the
// publish_layer_version call. The manifest fingerprint recorded at packaging
// time travels along as object metadata; the publisher later uses it for the
// stale-artifact check. Uploading refuses to stage an archive whose
// fingerprint already disagrees with the current manifest.
func Upload(ctx context.Context, store storage.Object, l *layout.PathLayout, currentFingerprint string) error {
	logger := hclog.FromContext(ctx)

	staged, err := pack.StagedFingerprint(l)
	if err != nil {
		return errors.Wrap(err, "packaged layer carries no fingerprint, run package first")
	}

	if staged != currentFingerprint {
		return errors.Wrapf(ErrStaleArtifact,
			"packaged fingerprint %s, current manifest fingerprint %s; rebuild and repackage",
			staged, currentFingerprint)
	}

	body, err := os.ReadFile(l.LayerZipPath())
	if err != nil {
		return errors.Wrapf(err, "fail to read %s", l.LayerZipPath())
	}

	logger.Info("Uploading layer artifact",
		"zip", l.LayerZipPath(), "key", layerstore.StagingKey(), "bytes", len(body))

	err = store.Put(ctx, layerstore.StagingKey(), body, "application/zip", map[string]string{
		FingerprintMetadataKey: staged,
	})

	return errors.Wrap(err, "fail to upload staged layer artifact")
}
