package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	goversion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/cmdexec"
	"github.com/layerforge/layerforge/internal/layerstore"
	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/pack"
	"github.com/layerforge/layerforge/internal/storage"
)

// SHA256MetadataKey is the object metadata key carrying the digest of the
// built source tree.
const SHA256MetadataKey = "source-sha256"

// Build installs the project itself, without dependencies, into the source
// artifacts directory. Dependencies live in the layer, the source package
// carries only the application code.
func Build(ctx context.Context, exec cmdexec.CommandExecutor, pipBin string, l *layout.PathLayout) error {
	logger := hclog.FromContext(ctx)
	logger.Info("Building source artifacts", "dir", l.SourceArtifactsDir())

	if pipBin == "" {
		pipBin = "pip"
	}

	if err := os.RemoveAll(l.SourceBuildDir()); err != nil {
		return errors.Wrapf(err, "fail to clean %s", l.SourceBuildDir())
	}

	if err := os.MkdirAll(l.SourceArtifactsDir(), 0755); err != nil {
		return errors.Wrapf(err, "fail to create %s", l.SourceArtifactsDir())
	}

	exec.SetDir(l.ProjectRoot())
	code, err := exec.Run(pipBin,
		"install",
		l.ProjectRoot(),
		"--no-dependencies",
		"--target="+l.SourceArtifactsDir(),
	)

	return errors.Wrapf(err, "pip install exited with code %d", code)
}

// Package zips the built source tree and returns its sha256 digest.
func Package(ctx context.Context, l *layout.PathLayout) (string, error) {
	logger := hclog.FromContext(ctx)
	logger.Info("Packaging source artifacts", "zip", l.SourceZipPath())

	if err := pack.ZipDir(l.SourceZipPath(), l.SourceArtifactsDir()); err != nil {
		return "", errors.Wrap(err, "fail to zip source artifacts")
	}

	sha, err := TreeSHA256(l.SourceArtifactsDir())
	if err != nil {
		return "", err
	}

	logger.Info("Packaged source artifacts", "sha256", sha)

	return sha, nil
}

// Upload stores the source package under a version-numbered key, e.g.
// source/0.1.3/source.zip, with its tree digest attached as metadata.
// version must be a valid semantic version.
func Upload(ctx context.Context, store storage.Object, l *layout.PathLayout, version, sha string) (string, error) {
	logger := hclog.FromContext(ctx)

	if _, err := goversion.NewSemver(version); err != nil {
		return "", errors.Wrapf(err, "invalid source version %q", version)
	}

	body, err := os.ReadFile(l.SourceZipPath())
	if err != nil {
		return "", errors.Wrapf(err, "fail to read %s", l.SourceZipPath())
	}

	key := layerstore.SourceKey(version)
	logger.Info("Uploading source artifact", "key", key, "bytes", len(body))

	err = store.Put(ctx, key, body, "application/zip", map[string]string{
		SHA256MetadataKey: sha,
	})
	if err != nil {
		return "", errors.Wrap(err, "fail to upload source artifact")
	}

	return key, nil
}

// LatestVersion returns the highest semantic version among the given ones.
// Callers list uploaded source versions out of band; this picks the most
// recent without relying on upload timestamps.
func LatestVersion(versions []string) (string, error) {
	var latest *goversion.Version

	for _, raw := range versions {
		v, err := goversion.NewSemver(raw)
		if err != nil {
			return "", errors.Wrapf(err, "invalid source version %q", raw)
		}

		if latest == nil || v.GreaterThan(latest) {
			latest = v
		}
	}

	if latest == nil {
		return "", errors.New("no source versions")
	}

	return latest.Original(), nil
}

// TreeSHA256 computes a digest over every file in the tree, in lexical
// order, mixing in relative paths so renames change the digest.
func TreeSHA256(root string) (string, error) {
	h := sha256.New()

	err := filepath.Walk(root, func(fpath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, fpath)
		if err != nil {
			return errors.Wrapf(err, "fail to relativize %s", fpath)
		}

		io.WriteString(h, filepath.ToSlash(rel))
		h.Write([]byte{0})

		in, err := os.Open(fpath)
		if err != nil {
			return errors.Wrapf(err, "fail to open %s", fpath)
		}
		defer in.Close()

		_, err = io.Copy(h, in)
		return errors.Wrapf(err, "fail to hash %s", fpath)
	})
	if err != nil {
		return "", errors.Wrapf(err, "fail to hash tree %s", root)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
