package command

import (
	"context"

	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/build"
)

type buildCommand struct {
	builder build.Builder
}

func NewBuild(builder build.Builder) *buildCommand {
	return &buildCommand{builder}
}

func (c *buildCommand) Run(ctx context.Context) error {
	err := c.builder.Build(ctx)
	return errors.Wrap(err, "fail to build layer artifacts")
}
