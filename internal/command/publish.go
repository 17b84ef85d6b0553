package command

import (
	"context"

	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/layerstore"
	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/manifest"
	"github.com/layerforge/layerforge/internal/publish"
	"github.com/layerforge/layerforge/internal/storage"
)

type publishCommand struct {
	layerName string
	tool      string
	runtime   string
	arch      string
	layout    *layout.PathLayout
	storage   storage.Object
	lambda    lambda.Client
}

func NewPublish(
	layerName, tool, runtime, arch string,
	l *layout.PathLayout,
	store storage.Object,
	lambdaClient lambda.Client,
) *publishCommand {
	return &publishCommand{layerName, tool, runtime, arch, l, store, lambdaClient}
}

func (c *publishCommand) Run(ctx context.Context) (*publish.Deployment, error) {
	locator, ok := c.storage.(publish.ArtifactLocator)
	if !ok {
		return nil, errors.New("publishing requires s3 storage, the Lambda API reads the staged archive from a bucket")
	}

	path, err := manifestPath(c.layout, c.tool)
	if err != nil {
		return nil, err
	}

	m, raw, err := manifest.Load(c.tool, path, c.runtime, c.arch)
	if err != nil {
		return nil, err
	}

	manifestName, err := manifest.FileName(c.tool)
	if err != nil {
		return nil, err
	}

	publisher := &publish.Publisher{
		LayerName: c.layerName,
		Tool:      c.tool,
		Runtime:   c.runtime,
		Arch:      c.arch,
		Store:     layerstore.New(c.storage),
		Storage:   c.storage,
		Locator:   locator,
		Lambda:    c.lambda,
	}

	return publisher.Run(ctx, m, raw, manifestName)
}
