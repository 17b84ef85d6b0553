package command

import (
	"context"

	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/lambda"
)

type versionsCommand struct {
	layerName string
	lambda    lambda.Client
}

func NewVersions(layerName string, lambdaClient lambda.Client) *versionsCommand {
	return &versionsCommand{layerName, lambdaClient}
}

func (c *versionsCommand) Run(ctx context.Context) ([]*lambda.LayerVersion, error) {
	versions, err := c.lambda.ListLayerVersions(ctx, c.layerName)
	return versions, errors.Wrapf(err, "fail to list versions of layer %s", c.layerName)
}
