package publish

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/layerstore"
	"github.com/layerforge/layerforge/internal/manifest"
	"github.com/layerforge/layerforge/internal/storage"
	lambdamock "github.com/layerforge/layerforge/mocks/internal_/lambda"
	storagemock "github.com/layerforge/layerforge/mocks/internal_/storage"
)

type staticLocator struct{}

func (staticLocator) BucketKey(key string) (string, string) {
	return "test-bucket", "layers/" + key
}

func testManifest(t *testing.T) (*manifest.Manifest, []byte, string) {
	t.Helper()

	raw := []byte("idna==3.4 --hash=sha256:cccc\n")
	m, err := manifest.ParseRequirements(raw, "python3.11", "x86_64")
	require.NoError(t, err)

	fingerprint, err := manifest.Fingerprint(m)
	require.NoError(t, err)

	return m, raw, fingerprint
}

func newPublisher(store *storagemock.Object, client *lambdamock.Client) *Publisher {
	return &Publisher{
		LayerName: "my-layer",
		Tool:      "pip",
		Runtime:   "python3.11",
		Arch:      "x86_64",
		Store:     layerstore.New(store),
		Storage:   store,
		Locator:   staticLocator{},
		Lambda:    client,
	}
}

func TestPublisher_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a new version when no record exists", func(t *testing.T) {
		m, raw, fingerprint := testManifest(t)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Metadata(mock.Anything, layerstore.StagingKey()).
			Return(map[string]string{FingerprintMetadataKey: fingerprint}, nil)
		store.EXPECT().
			Get(mock.Anything, layerstore.LatestRecordKey("pip")).
			Return(nil, storage.ErrNotFound)
		store.EXPECT().
			Put(mock.Anything, layerstore.ManifestKey(7, "requirements.txt"), raw, "text/plain", mock.Anything).
			Return(nil)
		store.EXPECT().
			Put(mock.Anything, layerstore.RecordKey(7), mock.Anything, "application/json", mock.Anything).
			Return(nil)
		store.EXPECT().
			Put(mock.Anything, layerstore.LatestRecordKey("pip"), mock.Anything, "application/json", mock.Anything).
			Return(nil)

		client := lambdamock.NewClient(t)
		client.EXPECT().
			PublishLayerVersion(mock.Anything, "my-layer", "test-bucket", "layers/layer/layer.zip",
				"python3.11", "x86_64", mock.Anything).
			Return(&lambda.LayerVersion{Version: 7, ARN: "arn:aws:lambda:::layer:my-layer:7"}, nil)

		deployment, err := newPublisher(store, client).Run(ctx, m, raw, "requirements.txt")
		require.NoError(t, err)

		assert.False(t, deployment.Skipped)
		assert.Equal(t, int64(7), deployment.Version)
		assert.Equal(t, "arn:aws:lambda:::layer:my-layer:7", deployment.VersionARN)
		assert.Equal(t, layerstore.ManifestKey(7, "requirements.txt"), deployment.ManifestKey)
	})

	t.Run("skips publication when the fingerprint is unchanged", func(t *testing.T) {
		m, raw, fingerprint := testManifest(t)

		prev, err := json.Marshal(&layerstore.Record{
			LayerName:   "my-layer",
			Version:     3,
			VersionARN:  "arn:aws:lambda:::layer:my-layer:3",
			Fingerprint: fingerprint,
			Tool:        "pip",
		})
		require.NoError(t, err)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Metadata(mock.Anything, layerstore.StagingKey()).
			Return(map[string]string{FingerprintMetadataKey: fingerprint}, nil)
		store.EXPECT().
			Get(mock.Anything, layerstore.LatestRecordKey("pip")).
			Return(prev, nil)

		client := lambdamock.NewClient(t)

		deployment, err := newPublisher(store, client).Run(ctx, m, raw, "requirements.txt")
		require.NoError(t, err)

		assert.True(t, deployment.Skipped)
		assert.Equal(t, int64(3), deployment.Version)
		client.AssertNotCalled(t, "PublishLayerVersion")
	})

	t.Run("publishes when the previous record is corrupt", func(t *testing.T) {
		m, raw, fingerprint := testManifest(t)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Metadata(mock.Anything, layerstore.StagingKey()).
			Return(map[string]string{FingerprintMetadataKey: fingerprint}, nil)
		store.EXPECT().
			Get(mock.Anything, layerstore.LatestRecordKey("pip")).
			Return([]byte("{not json"), nil)
		store.EXPECT().
			Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil)

		client := lambdamock.NewClient(t)
		client.EXPECT().
			PublishLayerVersion(mock.Anything, "my-layer", mock.Anything, mock.Anything,
				mock.Anything, mock.Anything, mock.Anything).
			Return(&lambda.LayerVersion{Version: 1, ARN: "arn:1"}, nil)

		deployment, err := newPublisher(store, client).Run(ctx, m, raw, "requirements.txt")
		require.NoError(t, err)
		assert.False(t, deployment.Skipped)
	})

	t.Run("refuses a staged artifact packed from a different manifest", func(t *testing.T) {
		m, raw, _ := testManifest(t)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Metadata(mock.Anything, layerstore.StagingKey()).
			Return(map[string]string{FingerprintMetadataKey: "something-else"}, nil)

		client := lambdamock.NewClient(t)

		_, err := newPublisher(store, client).Run(ctx, m, raw, "requirements.txt")
		assert.ErrorIs(t, err, ErrStaleArtifact)
	})

	t.Run("refuses a staged artifact without a fingerprint", func(t *testing.T) {
		m, raw, _ := testManifest(t)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Metadata(mock.Anything, layerstore.StagingKey()).
			Return(map[string]string{}, nil)

		client := lambdamock.NewClient(t)

		_, err := newPublisher(store, client).Run(ctx, m, raw, "requirements.txt")
		assert.ErrorIs(t, err, ErrStaleArtifact)
	})

	t.Run("errors when no artifact is staged at all", func(t *testing.T) {
		m, raw, _ := testManifest(t)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Metadata(mock.Anything, layerstore.StagingKey()).
			Return(nil, storage.ErrNotFound)

		client := lambdamock.NewClient(t)

		_, err := newPublisher(store, client).Run(ctx, m, raw, "requirements.txt")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("surfaces an incomplete record after a successful publish", func(t *testing.T) {
		m, raw, fingerprint := testManifest(t)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Metadata(mock.Anything, layerstore.StagingKey()).
			Return(map[string]string{FingerprintMetadataKey: fingerprint}, nil)
		store.EXPECT().
			Get(mock.Anything, layerstore.LatestRecordKey("pip")).
			Return(nil, storage.ErrNotFound)
		store.EXPECT().
			Put(mock.Anything, layerstore.ManifestKey(2, "requirements.txt"), mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		store.EXPECT().
			Put(mock.Anything, layerstore.RecordKey(2), mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		store.EXPECT().
			Put(mock.Anything, layerstore.LatestRecordKey("pip"), mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		client := lambdamock.NewClient(t)
		client.EXPECT().
			PublishLayerVersion(mock.Anything, mock.Anything, mock.Anything, mock.Anything,
				mock.Anything, mock.Anything, mock.Anything).
			Return(&lambda.LayerVersion{Version: 2, ARN: "arn:2"}, nil)

		_, err := newPublisher(store, client).Run(ctx, m, raw, "requirements.txt")
		assert.ErrorIs(t, err, layerstore.ErrIncompleteRecord)
	})
}
