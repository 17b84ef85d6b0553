package pack

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerforge/layerforge/internal/layout"
)

func builtLayout(t *testing.T, files map[string]string) *layout.PathLayout {
	t.Helper()

	l := layout.New(filepath.Join(t.TempDir(), "pyproject.toml"))
	require.NoError(t, l.Mkdirs())

	for rel, content := range files {
		path := filepath.Join(l.ArtifactsDir(), filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return l
}

func zipNames(t *testing.T, path string) []string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)

	return names
}

func TestZipper_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("archives artifacts under the python prefix", func(t *testing.T) {
		l := builtLayout(t, map[string]string{
			"python/requests/__init__.py": "# requests",
			"python/idna/__init__.py":     "# idna",
		})

		err := NewZipper(l, nil).Run(ctx, "aaaa1111")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"python/idna/__init__.py",
			"python/requests/__init__.py",
		}, zipNames(t, l.LayerZipPath()))
	})

	t.Run("drops runtime-provided and tooling packages", func(t *testing.T) {
		l := builtLayout(t, map[string]string{
			"python/requests/__init__.py":              "# requests",
			"python/boto3/__init__.py":                 "# provided by the runtime",
			"python/botocore/__init__.py":              "# provided by the runtime",
			"python/pip/__init__.py":                   "# tooling",
			"python/pytest/__init__.py":                "# tooling",
			"python/setuptools-68.0.0.dist-info/WHEEL": "w",
		})

		err := NewZipper(l, nil).Run(ctx, "aaaa1111")
		require.NoError(t, err)

		assert.Equal(t, []string{"python/requests/__init__.py"}, zipNames(t, l.LayerZipPath()))
	})

	t.Run("honors extra exclusions", func(t *testing.T) {
		l := builtLayout(t, map[string]string{
			"python/requests/__init__.py": "# requests",
			"python/mylib/__init__.py":    "# excluded by config",
		})

		err := NewZipper(l, []string{"mylib"}).Run(ctx, "aaaa1111")
		require.NoError(t, err)

		assert.Equal(t, []string{"python/requests/__init__.py"}, zipNames(t, l.LayerZipPath()))
	})

	t.Run("does not drop packages whose name merely shares a prefix", func(t *testing.T) {
		l := builtLayout(t, map[string]string{
			"python/pipdeptree/__init__.py": "# not pip itself",
		})

		err := NewZipper(l, nil).Run(ctx, "aaaa1111")
		require.NoError(t, err)

		assert.Equal(t, []string{"python/pipdeptree/__init__.py"}, zipNames(t, l.LayerZipPath()))
	})

	t.Run("writes the fingerprint sidecar", func(t *testing.T) {
		l := builtLayout(t, map[string]string{"python/idna/__init__.py": "# idna"})

		err := NewZipper(l, nil).Run(ctx, "aaaa1111")
		require.NoError(t, err)

		staged, err := StagedFingerprint(l)
		require.NoError(t, err)
		assert.Equal(t, "aaaa1111", staged)
	})

	t.Run("errors when nothing was built", func(t *testing.T) {
		l := layout.New(filepath.Join(t.TempDir(), "pyproject.toml"))

		err := NewZipper(l, nil).Run(ctx, "aaaa1111")
		assert.Error(t, err)
	})
}

func TestZipDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "mypkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "mypkg", "__init__.py"), []byte("# pkg"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "mypkg", "api.py"), []byte("# api"), 0644))

	dst := filepath.Join(t.TempDir(), "source.zip")
	require.NoError(t, ZipDir(dst, root))

	assert.Equal(t, []string{"mypkg/__init__.py", "mypkg/api.py"}, zipNames(t, dst))
}
