package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/layerstore"
	lambdamock "github.com/layerforge/layerforge/mocks/internal_/lambda"
	storagemock "github.com/layerforge/layerforge/mocks/internal_/storage"
)

func TestPrune_Run(t *testing.T) {
	ctx := context.Background()

	versions := func(ages ...time.Duration) []*lambda.LayerVersion {
		now := time.Now()
		out := make([]*lambda.LayerVersion, len(ages))
		for i, age := range ages {
			out[i] = &lambda.LayerVersion{
				Version:   int64(i + 1),
				CreatedAt: now.Add(-age),
			}
		}
		return out
	}

	t.Run("deletes everything beyond the keep bound, oldest included", func(t *testing.T) {
		store := storagemock.NewObject(t)
		client := lambdamock.NewClient(t)

		client.EXPECT().
			ListLayerVersions(mock.Anything, "my-layer").
			Return(versions(72*time.Hour, 48*time.Hour, 24*time.Hour, time.Hour), nil)

		// versions 4 and 3 survive, 2 and 1 go
		for _, v := range []int64{2, 1} {
			client.EXPECT().DeleteLayerVersion(mock.Anything, "my-layer", v).Return(nil)
			store.EXPECT().Delete(mock.Anything, layerstore.ManifestKey(v, "requirements.txt")).Return(nil)
			store.EXPECT().Delete(mock.Anything, layerstore.RecordKey(v)).Return(nil)
		}

		deleted, err := NewPrune("my-layer", "pip", 2, 0, store, client).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 1}, deleted)
	})

	t.Run("older-than protects recent versions beyond the keep bound", func(t *testing.T) {
		store := storagemock.NewObject(t)
		client := lambdamock.NewClient(t)

		client.EXPECT().
			ListLayerVersions(mock.Anything, "my-layer").
			Return(versions(96*time.Hour, 2*time.Hour, time.Hour), nil)

		// only version 1 is both beyond keep=1 and older than 24h
		client.EXPECT().DeleteLayerVersion(mock.Anything, "my-layer", int64(1)).Return(nil)
		store.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)

		deleted, err := NewPrune("my-layer", "pip", 1, 24*time.Hour, store, client).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, deleted)
	})

	t.Run("never deletes when everything fits the keep bound", func(t *testing.T) {
		store := storagemock.NewObject(t)
		client := lambdamock.NewClient(t)

		client.EXPECT().
			ListLayerVersions(mock.Anything, "my-layer").
			Return(versions(24*time.Hour), nil)

		deleted, err := NewPrune("my-layer", "pip", 3, 0, store, client).Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, deleted)
		client.AssertNotCalled(t, "DeleteLayerVersion")
	})

	t.Run("rejects keep below one", func(t *testing.T) {
		store := storagemock.NewObject(t)
		client := lambdamock.NewClient(t)

		_, err := NewPrune("my-layer", "pip", 0, 0, store, client).Run(ctx)
		assert.Error(t, err)
	})

	t.Run("reports versions deleted before a failure", func(t *testing.T) {
		store := storagemock.NewObject(t)
		client := lambdamock.NewClient(t)

		client.EXPECT().
			ListLayerVersions(mock.Anything, "my-layer").
			Return(versions(72*time.Hour, 48*time.Hour, time.Hour), nil)

		client.EXPECT().DeleteLayerVersion(mock.Anything, "my-layer", int64(2)).Return(nil)
		store.EXPECT().Delete(mock.Anything, layerstore.ManifestKey(2, "requirements.txt")).Return(nil)
		store.EXPECT().Delete(mock.Anything, layerstore.RecordKey(2)).Return(nil)

		client.EXPECT().DeleteLayerVersion(mock.Anything, "my-layer", int64(1)).Return(assert.AnError)

		deleted, err := NewPrune("my-layer", "pip", 1, 0, store, client).Run(ctx)
		assert.Error(t, err)
		assert.Equal(t, []int64{2}, deleted)
	})
}
