package layerstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/layerforge/layerforge/internal/storage"
	storagemock "github.com/layerforge/layerforge/mocks/internal_/storage"
)

func TestStore_LatestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the decoded record", func(t *testing.T) {
		want := &Record{
			LayerName:   "my-layer",
			Version:     5,
			VersionARN:  "arn:aws:lambda:::layer:my-layer:5",
			Fingerprint: "aaaa1111",
			Tool:        "poetry",
			PublishedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		raw, err := json.Marshal(want)
		require.NoError(t, err)

		obj := storagemock.NewObject(t)
		obj.EXPECT().
			Get(mock.Anything, LatestRecordKey("poetry")).
			Return(raw, nil)

		got, err := New(obj).LatestRecord(ctx, "poetry")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("maps a missing pointer to ErrRecordNotFound", func(t *testing.T) {
		obj := storagemock.NewObject(t)
		obj.EXPECT().
			Get(mock.Anything, LatestRecordKey("pip")).
			Return(nil, storage.ErrNotFound)

		_, err := New(obj).LatestRecord(ctx, "pip")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("maps an undecodable pointer to ErrRecordUnreadable", func(t *testing.T) {
		obj := storagemock.NewObject(t)
		obj.EXPECT().
			Get(mock.Anything, LatestRecordKey("pip")).
			Return([]byte("{truncated"), nil)

		_, err := New(obj).LatestRecord(ctx, "pip")
		assert.ErrorIs(t, err, ErrRecordUnreadable)
	})

	t.Run("passes through other storage failures", func(t *testing.T) {
		obj := storagemock.NewObject(t)
		obj.EXPECT().
			Get(mock.Anything, LatestRecordKey("pip")).
			Return(nil, assert.AnError)

		_, err := New(obj).LatestRecord(ctx, "pip")
		assert.NotErrorIs(t, err, ErrRecordNotFound)
		assert.NotErrorIs(t, err, ErrRecordUnreadable)
		assert.Error(t, err)
	})
}

func TestStore_SaveRecord(t *testing.T) {
	ctx := context.Background()

	record := func() *Record {
		return &Record{
			LayerName:   "my-layer",
			Version:     12,
			VersionARN:  "arn:aws:lambda:::layer:my-layer:12",
			Fingerprint: "aaaa1111",
			Tool:        "uv",
		}
	}

	t.Run("writes backup and record before the latest pointer", func(t *testing.T) {
		var order []string

		obj := storagemock.NewObject(t)
		obj.EXPECT().
			Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, key string, _ []byte, _ string, _ map[string]string) {
				order = append(order, key)
			}).
			Return(nil)

		r := record()
		err := New(obj).SaveRecord(ctx, r, "uv.lock", []byte("lock-bytes"))
		require.NoError(t, err)

		assert.Equal(t, []string{
			ManifestKey(12, "uv.lock"),
			RecordKey(12),
			LatestRecordKey("uv"),
		}, order)
		assert.Equal(t, ManifestKey(12, "uv.lock"), r.ManifestKey)
	})

	t.Run("reports an incomplete record when the pointer write fails", func(t *testing.T) {
		obj := storagemock.NewObject(t)
		obj.EXPECT().
			Put(mock.Anything, ManifestKey(12, "uv.lock"), mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		obj.EXPECT().
			Put(mock.Anything, RecordKey(12), mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		obj.EXPECT().
			Put(mock.Anything, LatestRecordKey("uv"), mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		err := New(obj).SaveRecord(ctx, record(), "uv.lock", []byte("lock-bytes"))
		assert.ErrorIs(t, err, ErrIncompleteRecord)
	})

	t.Run("does not touch the pointer when the backup fails", func(t *testing.T) {
		obj := storagemock.NewObject(t)
		obj.EXPECT().
			Put(mock.Anything, ManifestKey(12, "uv.lock"), mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		err := New(obj).SaveRecord(ctx, record(), "uv.lock", []byte("lock-bytes"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrIncompleteRecord)
		obj.AssertNotCalled(t, "Put", mock.Anything, LatestRecordKey("uv"),
			mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStore_DeleteVersionRecord(t *testing.T) {
	ctx := context.Background()

	obj := storagemock.NewObject(t)
	obj.EXPECT().Delete(mock.Anything, ManifestKey(4, "requirements.txt")).Return(nil)
	obj.EXPECT().Delete(mock.Anything, RecordKey(4)).Return(nil)

	err := New(obj).DeleteVersionRecord(ctx, 4, "requirements.txt")
	assert.NoError(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "layer/layer.zip", StagingKey())
	assert.Equal(t, "layer/000001", VersionPrefix(1))
	assert.Equal(t, "layer/000123/poetry.lock", ManifestKey(123, "poetry.lock"))
	assert.Equal(t, "layer/000123/record.json", RecordKey(123))
	assert.Equal(t, "layer/last-record-pip.json", LatestRecordKey("pip"))
	assert.Equal(t, "source/1.2.3/source.zip", SourceKey("1.2.3"))

	// zero padding keeps version prefixes in lexicographic order
	assert.True(t, VersionPrefix(9) < VersionPrefix(10))
}
