package command

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/publish"
	"github.com/layerforge/layerforge/internal/storage"
)

// deployCommand is the composed package -> upload -> publish workflow. Each
// step fully completes before the next begins.
type deployCommand struct {
	layerName string
	tool      string
	runtime   string
	arch      string
	ignore    []string
	layout    *layout.PathLayout
	storage   storage.Object
	lambda    lambda.Client
}

func NewDeploy(
	layerName, tool, runtime, arch string,
	ignore []string,
	l *layout.PathLayout,
	store storage.Object,
	lambdaClient lambda.Client,
) *deployCommand {
	return &deployCommand{layerName, tool, runtime, arch, ignore, l, store, lambdaClient}
}

func (c *deployCommand) Run(ctx context.Context) (*publish.Deployment, error) {
	logger := hclog.FromContext(ctx)

	logger.Info("Deploying layer", "layer", c.layerName, "tool", c.tool)

	packCmd := NewPack(c.layout, c.tool, c.runtime, c.arch, c.ignore)
	if _, err := packCmd.Run(ctx); err != nil {
		return nil, err
	}

	uploadCmd := NewUpload(c.storage, c.layout, c.tool, c.runtime, c.arch)
	if err := uploadCmd.Run(ctx); err != nil {
		return nil, err
	}

	publishCmd := NewPublish(c.layerName, c.tool, c.runtime, c.arch, c.layout, c.storage, c.lambda)

	return publishCmd.Run(ctx)
}
