package command

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/validation"
)

// grantCommand grants another AWS account usage of a published layer
// version.
type grantCommand struct {
	layerName string
	lambda    lambda.Client
}

func NewGrant(layerName string, lambdaClient lambda.Client) *grantCommand {
	return &grantCommand{layerName, lambdaClient}
}

func (c *grantCommand) Run(ctx context.Context, version int64, accountID string) (string, error) {
	if !validation.IsValidAccountID(accountID) {
		return "", errors.Errorf("invalid AWS account id %q", accountID)
	}

	hclog.FromContext(ctx).Info("Granting layer access",
		"layer", c.layerName, "version", version, "account", accountID)

	statement, err := c.lambda.AddLayerVersionPermission(ctx, c.layerName, version, accountID)

	return statement, errors.Wrap(err, "fail to grant layer version permission")
}
