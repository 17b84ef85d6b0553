package command

import (
	"context"

	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/manifest"
	"github.com/layerforge/layerforge/internal/pack"
)

// packCommand zips the built artifacts and stamps the archive with the
// fingerprint of the manifest it was built from.
type packCommand struct {
	layout  *layout.PathLayout
	tool    string
	runtime string
	arch    string
	ignore  []string
}

func NewPack(l *layout.PathLayout, tool, runtime, arch string, ignore []string) *packCommand {
	return &packCommand{l, tool, runtime, arch, ignore}
}

func (c *packCommand) Run(ctx context.Context) (string, error) {
	fingerprint, err := currentFingerprint(c.layout, c.tool, c.runtime, c.arch)
	if err != nil {
		return "", err
	}

	zipper := pack.NewZipper(c.layout, c.ignore)
	if err := zipper.Run(ctx, fingerprint); err != nil {
		return "", errors.Wrap(err, "fail to package layer artifacts")
	}

	return fingerprint, nil
}

// currentFingerprint loads the tool's manifest from disk and fingerprints
// it.
func currentFingerprint(l *layout.PathLayout, tool, runtime, arch string) (string, error) {
	path, err := manifestPath(l, tool)
	if err != nil {
		return "", err
	}

	m, _, err := manifest.Load(tool, path, runtime, arch)
	if err != nil {
		return "", err
	}

	return manifest.Fingerprint(m)
}

func manifestPath(l *layout.PathLayout, tool string) (string, error) {
	switch tool {
	case "pip":
		return l.RequirementsPath(), nil
	case "poetry":
		return l.PoetryLockPath(), nil
	case "uv":
		return l.UVLockPath(), nil
	default:
		return "", errors.Errorf("unknown build tool %q", tool)
	}
}
