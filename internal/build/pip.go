package build

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// pipBuilder installs pre-resolved requirements.txt dependencies straight
// into the artifacts/python directory with pip --target.
type pipBuilder struct {
	params Params
	pipBin string
}

var _ Builder = &pipBuilder{}

func NewPipBuilder(params Params, pipBin string) *pipBuilder {
	if pipBin == "" {
		pipBin = "pip"
	}

	return &pipBuilder{params: params, pipBin: pipBin}
}

func (b *pipBuilder) Build(ctx context.Context) error {
	logger := hclog.FromContext(ctx)
	logger.Info("Building layer artifacts with pip",
		"requirements", b.params.Layout.RequirementsPath())

	if err := setupBuildDir(ctx, b.params.Layout); err != nil {
		return err
	}

	args := []string{
		"install",
		"-r", b.params.Layout.RequirementsPath(),
		"-t", b.params.Layout.PythonDir(),
	}

	if creds := b.params.Credentials; creds != nil {
		args = append(args, "--index-url", creds.IndexURL)
	}

	err := runTool(b.params.Exec, b.params.Layout.RepoDir(), b.pipBin, args...)
	return errors.Wrap(err, "fail to run pip install")
}
