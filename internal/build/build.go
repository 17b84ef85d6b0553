package build

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/cmdexec"
	"github.com/layerforge/layerforge/internal/layout"
)

// Tool names line up with the values accepted by the project manifest.
const (
	ToolPip    = "pip"
	ToolPoetry = "poetry"
	ToolUV     = "uv"
)

// Builder builds layer artifacts into the canonical artifacts/python
// directory, either on the host or inside a runtime-matched container.
type Builder interface {
	Build(ctx context.Context) error
}

// Credentials authenticate against a private package index. They reach pip
// through --index-url and poetry/uv through their environment variable
// conventions.
type Credentials struct {
	IndexName string
	IndexURL  string
	Username  string
	Password  string
}

func (c *Credentials) envName() string {
	return strings.ToUpper(strings.ReplaceAll(c.IndexName, "-", "_"))
}

// Params is everything a build needs besides the tool choice.
type Params struct {
	Layout      *layout.PathLayout
	Runtime     string // e.g. python3.11
	Arch        string // x86_64 or arm64
	Credentials *Credentials
	Exec        cmdexec.CommandExecutor
}

// New picks the builder for a tool. bin overrides the tool executable for
// local builds; container builds always use the image's own tooling.
func New(tool string, params Params, bin string, inContainer bool) (Builder, error) {
	if inContainer {
		return NewContainerBuilder(params, tool), nil
	}

	switch tool {
	case ToolPip:
		return NewPipBuilder(params, bin), nil
	case ToolPoetry:
		return NewPoetryBuilder(params, bin), nil
	case ToolUV:
		return NewUVBuilder(params, bin), nil
	default:
		return nil, errors.Errorf("unknown build tool %q", tool)
	}
}

// pyVersion extracts "3.11" out of "python3.11".
func pyVersion(runtime string) string {
	return strings.TrimPrefix(runtime, "python")
}

func setupBuildDir(ctx context.Context, l *layout.PathLayout) error {
	logger := hclog.FromContext(ctx)
	logger.Debug("Setting up layer build directory", "dir", l.BuildDir())

	if err := l.Clean(ctx); err != nil {
		return errors.Wrap(err, "fail to clean build directory")
	}

	return errors.Wrap(l.Mkdirs(), "fail to create build directories")
}

// normalizeSitePackages moves a tool-specific site-packages directory into
// the canonical artifacts/python root, so packaging and fingerprinting never
// care which tool produced the install.
func normalizeSitePackages(ctx context.Context, sitePackages, pythonDir string) error {
	hclog.FromContext(ctx).Debug("Normalizing installed packages",
		"from", sitePackages, "to", pythonDir)

	if sitePackages == pythonDir {
		return nil
	}

	if _, err := os.Stat(sitePackages); err != nil {
		return errors.Wrapf(err, "site-packages directory %s not found", sitePackages)
	}

	if err := os.RemoveAll(pythonDir); err != nil {
		return errors.Wrapf(err, "fail to remove stale %s", pythonDir)
	}

	if err := os.MkdirAll(filepath.Dir(pythonDir), 0755); err != nil {
		return errors.Wrapf(err, "fail to create parent of %s", pythonDir)
	}

	err := os.Rename(sitePackages, pythonDir)
	return errors.Wrapf(err, "fail to move %s to %s", sitePackages, pythonDir)
}

// venvSitePackages is where poetry and uv place packages when the virtual
// environment lives inside the staging repo directory.
func venvSitePackages(l *layout.PathLayout, runtime string) string {
	return filepath.Join(l.RepoDir(), ".venv", "lib", runtime, "site-packages")
}

func runTool(exec cmdexec.CommandExecutor, dir, name string, args ...string) error {
	exec.SetDir(dir)

	code, err := exec.Run(name, args...)
	if err != nil {
		return errors.Wrapf(err, "%s exited with code %d", name, code)
	}

	return nil
}
