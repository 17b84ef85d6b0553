package command

import (
	"context"

	"github.com/layerforge/layerforge/internal/cmdexec"
	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/source"
	"github.com/layerforge/layerforge/internal/storage"
)

// sourceCommand builds, packages and uploads the Lambda source package,
// versioned by the project's own semantic version.
type sourceCommand struct {
	layout  *layout.PathLayout
	exec    cmdexec.CommandExecutor
	pipBin  string
	storage storage.Object
}

func NewSource(l *layout.PathLayout, exec cmdexec.CommandExecutor, pipBin string, store storage.Object) *sourceCommand {
	return &sourceCommand{l, exec, pipBin, store}
}

// Run returns the object key of the uploaded source package.
func (c *sourceCommand) Run(ctx context.Context, version string) (string, error) {
	if err := source.Build(ctx, c.exec, c.pipBin, c.layout); err != nil {
		return "", err
	}

	sha, err := source.Package(ctx, c.layout)
	if err != nil {
		return "", err
	}

	return source.Upload(ctx, c.storage, c.layout, version, sha)
}
