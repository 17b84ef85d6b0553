package build

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// poetryBuilder installs the locked dependency set with poetry into an
// in-project virtualenv inside the staging repo, then normalizes the
// site-packages into artifacts/python.
type poetryBuilder struct {
	params    Params
	poetryBin string
}

var _ Builder = &poetryBuilder{}

func NewPoetryBuilder(params Params, poetryBin string) *poetryBuilder {
	if poetryBin == "" {
		poetryBin = "poetry"
	}

	return &poetryBuilder{params: params, poetryBin: poetryBin}
}

func (b *poetryBuilder) Build(ctx context.Context) error {
	logger := hclog.FromContext(ctx)
	logger.Info("Building layer artifacts with poetry",
		"lock", b.params.Layout.PoetryLockPath())

	l := b.params.Layout

	if err := setupBuildDir(ctx, l); err != nil {
		return err
	}

	if err := l.CopyIntoRepo(ctx, l.PyprojectPath); err != nil {
		return errors.Wrap(err, "fail to copy pyproject.toml into staging repo")
	}

	if err := l.CopyIntoRepo(ctx, l.PoetryLockPath()); err != nil {
		return errors.Wrap(err, "fail to copy poetry.lock into staging repo")
	}

	// keep the virtualenv inside the staging repo so the site-packages
	// location is predictable
	err := runTool(b.params.Exec, l.RepoDir(), b.poetryBin,
		"config", "virtualenvs.in-project", "true", "--local")
	if err != nil {
		return errors.Wrap(err, "fail to configure poetry in-project virtualenv")
	}

	if creds := b.params.Credentials; creds != nil {
		logger.Debug("Setting up poetry credentials", "index", creds.IndexName)
		b.params.Exec.SetEnv("POETRY_HTTP_BASIC_"+creds.envName()+"_USERNAME", creds.Username)
		b.params.Exec.SetEnv("POETRY_HTTP_BASIC_"+creds.envName()+"_PASSWORD", creds.Password)
	}

	err = runTool(b.params.Exec, l.RepoDir(), b.poetryBin, "install", "--no-root")
	if err != nil {
		return errors.Wrap(err, "fail to run poetry install")
	}

	sitePackages := venvSitePackages(l, b.params.Runtime)
	return normalizeSitePackages(ctx, sitePackages, l.PythonDir())
}
