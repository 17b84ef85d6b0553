package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/layerforge/layerforge/internal/layerstore"
	"github.com/layerforge/layerforge/internal/layout"
	storagemock "github.com/layerforge/layerforge/mocks/internal_/storage"
)

func TestTreeSHA256(t *testing.T) {
	write := func(t *testing.T, root, rel, content string) {
		t.Helper()
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	t.Run("identical trees hash identically", func(t *testing.T) {
		a, b := t.TempDir(), t.TempDir()
		for _, root := range []string{a, b} {
			write(t, root, "mypkg/__init__.py", "# pkg")
			write(t, root, "mypkg/api.py", "# api")
		}

		ha, err := TreeSHA256(a)
		require.NoError(t, err)
		hb, err := TreeSHA256(b)
		require.NoError(t, err)

		assert.Equal(t, ha, hb)
	})

	t.Run("content change changes the digest", func(t *testing.T) {
		a, b := t.TempDir(), t.TempDir()
		write(t, a, "mypkg/api.py", "# api")
		write(t, b, "mypkg/api.py", "# api v2")

		ha, err := TreeSHA256(a)
		require.NoError(t, err)
		hb, err := TreeSHA256(b)
		require.NoError(t, err)

		assert.NotEqual(t, ha, hb)
	})

	t.Run("rename changes the digest even with same content", func(t *testing.T) {
		a, b := t.TempDir(), t.TempDir()
		write(t, a, "mypkg/api.py", "# api")
		write(t, b, "mypkg/handlers.py", "# api")

		ha, err := TreeSHA256(a)
		require.NoError(t, err)
		hb, err := TreeSHA256(b)
		require.NoError(t, err)

		assert.NotEqual(t, ha, hb)
	})
}

func TestLatestVersion(t *testing.T) {
	t.Run("picks the highest semantic version", func(t *testing.T) {
		latest, err := LatestVersion([]string{"0.9.0", "0.10.1", "0.2.3"})
		require.NoError(t, err)
		assert.Equal(t, "0.10.1", latest)
	})

	t.Run("rejects malformed versions", func(t *testing.T) {
		_, err := LatestVersion([]string{"0.9.0", "not-a-version"})
		assert.Error(t, err)
	})

	t.Run("errors on an empty list", func(t *testing.T) {
		_, err := LatestVersion(nil)
		assert.Error(t, err)
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	packaged := func(t *testing.T) *layout.PathLayout {
		t.Helper()
		l := layout.New(filepath.Join(t.TempDir(), "pyproject.toml"))
		require.NoError(t, os.MkdirAll(l.SourceBuildDir(), 0755))
		require.NoError(t, os.WriteFile(l.SourceZipPath(), []byte("zip-bytes"), 0644))
		return l
	}

	t.Run("uploads under the version-numbered key", func(t *testing.T) {
		l := packaged(t)

		store := storagemock.NewObject(t)
		store.EXPECT().
			Put(mock.Anything, layerstore.SourceKey("1.2.3"), []byte("zip-bytes"), "application/zip",
				map[string]string{SHA256MetadataKey: "abcd"}).
			Return(nil)

		key, err := Upload(ctx, store, l, "1.2.3", "abcd")
		require.NoError(t, err)
		assert.Equal(t, "source/1.2.3/source.zip", key)
	})

	t.Run("rejects a non-semver version before touching storage", func(t *testing.T) {
		l := packaged(t)
		store := storagemock.NewObject(t)

		_, err := Upload(ctx, store, l, "latest", "abcd")
		assert.Error(t, err)
	})
}
