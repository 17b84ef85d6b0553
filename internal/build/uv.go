package build

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// uvBuilder installs the locked dependency set with uv sync into an
// in-project virtualenv, then normalizes the site-packages into
// artifacts/python.
type uvBuilder struct {
	params Params
	uvBin  string
}

var _ Builder = &uvBuilder{}

func NewUVBuilder(params Params, uvBin string) *uvBuilder {
	if uvBin == "" {
		uvBin = "uv"
	}

	return &uvBuilder{params: params, uvBin: uvBin}
}

func (b *uvBuilder) Build(ctx context.Context) error {
	logger := hclog.FromContext(ctx)
	logger.Info("Building layer artifacts with uv",
		"lock", b.params.Layout.UVLockPath())

	l := b.params.Layout

	if err := setupBuildDir(ctx, l); err != nil {
		return err
	}

	if err := l.CopyIntoRepo(ctx, l.PyprojectPath); err != nil {
		return errors.Wrap(err, "fail to copy pyproject.toml into staging repo")
	}

	if err := l.CopyIntoRepo(ctx, l.UVLockPath()); err != nil {
		return errors.Wrap(err, "fail to copy uv.lock into staging repo")
	}

	if creds := b.params.Credentials; creds != nil {
		logger.Debug("Setting up uv credentials", "index", creds.IndexName)
		b.params.Exec.SetEnv("UV_INDEX_"+creds.envName()+"_USERNAME", creds.Username)
		b.params.Exec.SetEnv("UV_INDEX_"+creds.envName()+"_PASSWORD", creds.Password)
	}

	err := runTool(b.params.Exec, l.RepoDir(), b.uvBin,
		"sync", "--frozen", "--no-dev", "--no-install-project")
	if err != nil {
		return errors.Wrap(err, "fail to run uv sync")
	}

	sitePackages := venvSitePackages(l, b.params.Runtime)
	return normalizeSitePackages(ctx, sitePackages, l.PythonDir())
}
