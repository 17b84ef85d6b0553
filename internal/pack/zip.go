package pack

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/layout"
)

// DefaultIgnorePackages are excluded from layer archives: either the Lambda
// runtime already provides them or they are build/test tooling with no
// runtime value. Dropping them shrinks the layer and avoids shadowing the
// runtime's own copies.
var DefaultIgnorePackages = []string{
	"boto3",
	"botocore",
	"s3transfer",
	"urllib3",
	"setuptools",
	"pip",
	"wheel",
	"twine",
	"_pytest",
	"pytest",
}

// Zipper packages the artifacts directory into layer.zip with the python/
// prefix Lambda expects, and records which manifest fingerprint the archive
// was packed from.
type Zipper struct {
	layout         *layout.PathLayout
	ignorePackages []string
}

func NewZipper(l *layout.PathLayout, extraIgnore []string) *Zipper {
	ignore := make([]string, 0, len(DefaultIgnorePackages)+len(extraIgnore))
	ignore = append(ignore, DefaultIgnorePackages...)
	ignore = append(ignore, extraIgnore...)

	return &Zipper{layout: l, ignorePackages: ignore}
}

// Run writes layer.zip and its fingerprint sidecar. fingerprint is the
// digest of the manifest the artifacts were built from.
func (z *Zipper) Run(ctx context.Context, fingerprint string) error {
	logger := hclog.FromContext(ctx)
	logger.Info("Packaging layer artifacts", "zip", z.layout.LayerZipPath())

	if _, err := os.Stat(z.layout.PythonDir()); err != nil {
		return errors.Wrapf(err, "artifacts directory %s not found, run build first", z.layout.PythonDir())
	}

	out, err := os.Create(z.layout.LayerZipPath())
	if err != nil {
		return errors.Wrapf(err, "fail to create %s", z.layout.LayerZipPath())
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	err = writeTree(zw, z.layout.ArtifactsDir(), z.ignored)
	if err != nil {
		zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "fail to finalize layer zip")
	}

	err = os.WriteFile(z.layout.FingerprintPath(), []byte(fingerprint), 0644)
	return errors.Wrap(err, "fail to write layer fingerprint sidecar")
}

// ZipDir archives every file under root into dst, with entry names relative
// to root. Used for source packages, which take no exclusions.
func ZipDir(dst, root string) error {
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "fail to create %s", dst)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	if err := writeTree(zw, root, nil); err != nil {
		zw.Close()
		return err
	}

	return errors.Wrapf(zw.Close(), "fail to finalize %s", dst)
}

// writeTree walks root in lexical order so archives built from identical
// trees are laid out identically. skip, when non-nil, drops entries and
// whole directories by archive name.
func writeTree(zw *zip.Writer, root string, skip func(name string) bool) error {
	return filepath.Walk(root, func(fpath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, fpath)
		if err != nil {
			return errors.Wrapf(err, "fail to relativize %s", fpath)
		}

		if rel == "." {
			return nil
		}

		name := filepath.ToSlash(rel)

		if skip != nil && skip(name) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return errors.Wrapf(err, "fail to build zip header for %s", name)
		}

		header.Name = name
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return errors.Wrapf(err, "fail to create zip entry %s", name)
		}

		in, err := os.Open(fpath)
		if err != nil {
			return errors.Wrapf(err, "fail to open %s", fpath)
		}
		defer in.Close()

		_, err = io.Copy(w, in)
		return errors.Wrapf(err, "fail to write zip entry %s", name)
	})
}

// ignored reports whether an archive path belongs to an excluded package.
// Matching is rooted at python/: both the package directory and its
// .dist-info neighbors are dropped.
func (z *Zipper) ignored(name string) bool {
	rest, ok := strings.CutPrefix(name, "python/")
	if !ok {
		return false
	}

	top := rest
	if idx := strings.Index(rest, "/"); idx >= 0 {
		top = rest[:idx]
	}

	for _, pkg := range z.ignorePackages {
		if top == pkg || strings.HasPrefix(top, pkg+"-") || strings.HasPrefix(top, pkg+".") {
			return true
		}
	}

	return false
}

// StagedFingerprint reads the fingerprint sidecar written at packaging time.
func StagedFingerprint(l *layout.PathLayout) (string, error) {
	raw, err := os.ReadFile(l.FingerprintPath())
	if err != nil {
		return "", errors.Wrap(err, "fail to read layer fingerprint sidecar")
	}

	return strings.TrimSpace(string(raw)), nil
}
