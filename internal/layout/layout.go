package layout

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// PathLayout derives every local path of a layer build from the project
// manifest (pyproject.toml) location:
//
//	<root>/build/lambda/layer              scratch dir, wiped per build
//	<root>/build/lambda/layer/repo         staging copy of lock files
//	<root>/build/lambda/layer/artifacts    zip input root
//	<root>/build/lambda/layer/artifacts/python
//	<root>/build/lambda/layer/layer.zip
//
// The python/ subdirectory is the structure Lambda requires of layer
// archives.
type PathLayout struct {
	PyprojectPath string
}

func New(pyprojectPath string) *PathLayout {
	return &PathLayout{PyprojectPath: pyprojectPath}
}

func (l *PathLayout) ProjectRoot() string {
	return filepath.Dir(l.PyprojectPath)
}

func (l *PathLayout) BuildDir() string {
	return filepath.Join(l.ProjectRoot(), "build", "lambda", "layer")
}

func (l *PathLayout) LayerZipPath() string {
	return filepath.Join(l.BuildDir(), "layer.zip")
}

// FingerprintPath is a sidecar recording which manifest fingerprint the
// staged layer.zip was packed from. The publish step compares it against the
// freshly computed fingerprint to catch stale artifacts.
func (l *PathLayout) FingerprintPath() string {
	return l.LayerZipPath() + ".fingerprint"
}

// RepoDir is a temporary, project-shaped directory holding copies of the
// lock files so tool runs cannot touch the real repository.
func (l *PathLayout) RepoDir() string {
	return filepath.Join(l.BuildDir(), "repo")
}

func (l *PathLayout) ArtifactsDir() string {
	return filepath.Join(l.BuildDir(), "artifacts")
}

func (l *PathLayout) PythonDir() string {
	return filepath.Join(l.ArtifactsDir(), "python")
}

func (l *PathLayout) RequirementsPath() string {
	return filepath.Join(l.ProjectRoot(), "requirements.txt")
}

func (l *PathLayout) PoetryLockPath() string {
	return filepath.Join(l.ProjectRoot(), "poetry.lock")
}

func (l *PathLayout) UVLockPath() string {
	return filepath.Join(l.ProjectRoot(), "uv.lock")
}

func (l *PathLayout) SourceBuildDir() string {
	return filepath.Join(l.ProjectRoot(), "build", "lambda", "source")
}

func (l *PathLayout) SourceArtifactsDir() string {
	return filepath.Join(l.SourceBuildDir(), "artifacts")
}

func (l *PathLayout) SourceZipPath() string {
	return filepath.Join(l.SourceBuildDir(), "source.zip")
}

// Clean wipes the layer build directory so every build starts fresh.
func (l *PathLayout) Clean(ctx context.Context) error {
	hclog.FromContext(ctx).Debug("Cleaning layer build directory", "dir", l.BuildDir())

	err := os.RemoveAll(l.BuildDir())
	return errors.Wrapf(err, "fail to remove build directory %s", l.BuildDir())
}

// Mkdirs creates the staging and artifact directories.
func (l *PathLayout) Mkdirs() error {
	for _, dir := range []string{l.RepoDir(), l.PythonDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "fail to create directory %s", dir)
		}
	}

	return nil
}

// CopyIntoRepo copies a project file (pyproject.toml, lock file) into the
// staging repo directory, keeping its base name.
func (l *PathLayout) CopyIntoRepo(ctx context.Context, src string) error {
	dst := filepath.Join(l.RepoDir(), filepath.Base(src))
	hclog.FromContext(ctx).Debug("Copying file into staging repo", "src", src, "dst", dst)

	return copyFile(src, dst)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "fail to open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "fail to create %s", dst)
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return errors.Wrapf(err, "fail to copy %s to %s", src, dst)
}
