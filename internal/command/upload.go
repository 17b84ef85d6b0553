package command

import (
	"context"

	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/publish"
	"github.com/layerforge/layerforge/internal/storage"
)

type uploadCommand struct {
	storage storage.Object
	layout  *layout.PathLayout
	tool    string
	runtime string
	arch    string
}

func NewUpload(store storage.Object, l *layout.PathLayout, tool, runtime, arch string) *uploadCommand {
	return &uploadCommand{store, l, tool, runtime, arch}
}

func (c *uploadCommand) Run(ctx context.Context) error {
	fingerprint, err := currentFingerprint(c.layout, c.tool, c.runtime, c.arch)
	if err != nil {
		return err
	}

	err = publish.Upload(ctx, c.storage, c.layout, fingerprint)
	return errors.Wrap(err, "fail to upload layer artifact")
}
