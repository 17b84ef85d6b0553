package publish

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/layerstore"
	"github.com/layerforge/layerforge/internal/manifest"
	"github.com/layerforge/layerforge/internal/storage"
)

// ErrStaleArtifact means the staged layer.zip was packed from a different
// manifest state than the one on disk. Publishing it would associate a
// fingerprint with artifact bytes it did not produce, so the caller must
// rebuild and repackage first.
var ErrStaleArtifact = errors.New("staged artifact does not match current manifest")

// FingerprintMetadataKey is the object metadata key carrying the manifest
// fingerprint of a staged artifact.
const FingerprintMetadataKey = "layer-fingerprint"

// ArtifactLocator resolves a storage key into the bucket/key pair the
// Lambda API needs to reference a staged archive.
type ArtifactLocator interface {
	BucketKey(key string) (string, string)
}

// Deployment is the immutable result of one publish attempt.
type Deployment struct {
	LayerName   string
	Version     int64
	VersionARN  string
	ManifestKey string
	Skipped     bool
	Reason      string
}

// Publisher runs the consistency check, the change-detection gate and the
// conditional publication of a new layer version.
type Publisher struct {
	LayerName string
	Tool      string
	Runtime   string
	Arch      string

	Store   *layerstore.Store
	Storage storage.Object
	Locator ArtifactLocator
	Lambda  lambda.Client
}

// Run publishes a new layer version when the dependency state changed, and
// reports a skip otherwise. m is the current manifest, raw its verbatim
// bytes for backup, manifestName its file name (requirements.txt etc).
func (p *Publisher) Run(ctx context.Context, m *manifest.Manifest, raw []byte, manifestName string) (*Deployment, error) {
	logger := hclog.FromContext(ctx)

	current, err := manifest.Fingerprint(m)
	if err != nil {
		return nil, err
	}

	if err := p.checkStagedArtifact(ctx, current); err != nil {
		return nil, err
	}

	prev, prevErr := p.Store.LatestRecord(ctx, p.Tool)

	decision, err := ShouldPublish(current, prev, prevErr)
	if err != nil {
		return nil, err
	}

	if !decision.Publish {
		logger.Info("No change detected, skipping publication",
			"layer", p.LayerName, "reason", decision.Reason)

		return &Deployment{
			LayerName:   p.LayerName,
			Version:     prev.Version,
			VersionARN:  prev.VersionARN,
			ManifestKey: prev.ManifestKey,
			Skipped:     true,
			Reason:      decision.Reason,
		}, nil
	}

	logger.Info("Publishing new layer version", "layer", p.LayerName, "reason", decision.Reason)

	bucket, key := p.Locator.BucketKey(layerstore.StagingKey())
	version, err := p.Lambda.PublishLayerVersion(
		ctx, p.LayerName, bucket, key, p.Runtime, p.Arch,
		"manifest fingerprint "+current,
	)
	if err != nil {
		return nil, errors.Wrap(err, "fail to publish layer version")
	}

	record := &layerstore.Record{
		LayerName:   p.LayerName,
		Version:     version.Version,
		VersionARN:  version.ARN,
		Fingerprint: current,
		Tool:        p.Tool,
		PublishedAt: time.Now().UTC(),
	}

	if err := p.Store.SaveRecord(ctx, record, manifestName, raw); err != nil {
		// the version exists in Lambda at this point, surface loudly
		// instead of pretending nothing happened
		return nil, errors.Wrapf(err, "layer %s version %d published", p.LayerName, version.Version)
	}

	logger.Info("Published layer version",
		"layer", p.LayerName, "version", version.Version, "arn", version.ARN)

	return &Deployment{
		LayerName:   p.LayerName,
		Version:     version.Version,
		VersionARN:  version.ARN,
		ManifestKey: record.ManifestKey,
		Reason:      decision.Reason,
	}, nil
}

// checkStagedArtifact verifies the referential integrity between the staged
// archive and the current manifest before any version is created.
func (p *Publisher) checkStagedArtifact(ctx context.Context, current string) error {
	metadata, err := p.Storage.Metadata(ctx, layerstore.StagingKey())
	if errors.Is(err, storage.ErrNotFound) {
		return errors.Wrap(err, "no staged layer artifact found, run package and upload first")
	}

	if err != nil {
		return errors.Wrap(err, "fail to inspect staged layer artifact")
	}

	staged, ok := metadata[FingerprintMetadataKey]
	if !ok || staged == "" {
		return errors.Wrap(ErrStaleArtifact, "staged artifact carries no fingerprint, re-upload it")
	}

	if staged != current {
		return errors.Wrapf(ErrStaleArtifact,
			"staged fingerprint %s, current manifest fingerprint %s; rebuild and repackage",
			staged, current)
	}

	return nil
}
