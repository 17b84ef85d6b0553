package command

import (
	"context"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/layerstore"
	"github.com/layerforge/layerforge/internal/manifest"
	"github.com/layerforge/layerforge/internal/storage"
)

// pruneCommand deletes superseded layer versions beyond a retention bound.
// The most recent keep versions always survive, and olderThan additionally
// protects anything younger than the cutoff. The latest version is never
// deleted regardless of flags.
type pruneCommand struct {
	layerName string
	tool      string
	keep      int
	olderThan time.Duration
	storage   storage.Object
	lambda    lambda.Client
}

func NewPrune(layerName, tool string, keep int, olderThan time.Duration, store storage.Object, lambdaClient lambda.Client) *pruneCommand {
	return &pruneCommand{layerName, tool, keep, olderThan, store, lambdaClient}
}

// Run returns the version numbers it deleted.
func (c *pruneCommand) Run(ctx context.Context) ([]int64, error) {
	logger := hclog.FromContext(ctx)

	if c.keep < 1 {
		return nil, errors.Errorf("keep must be at least 1, got %d", c.keep)
	}

	versions, err := c.lambda.ListLayerVersions(ctx, c.layerName)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to list versions of layer %s", c.layerName)
	}

	// newest first
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version > versions[j].Version
	})

	manifestName, err := manifest.FileName(c.tool)
	if err != nil {
		return nil, err
	}

	store := layerstore.New(c.storage)
	cutoff := time.Now().Add(-c.olderThan)

	var deleted []int64
	for i, v := range versions {
		if i < c.keep {
			continue
		}

		if c.olderThan > 0 && v.CreatedAt.After(cutoff) {
			continue
		}

		logger.Info("Pruning layer version", "layer", c.layerName, "version", v.Version)

		err := c.lambda.DeleteLayerVersion(ctx, c.layerName, v.Version)
		if err != nil {
			return deleted, err
		}

		err = store.DeleteVersionRecord(ctx, v.Version, manifestName)
		if err != nil {
			return deleted, errors.Wrapf(err, "version %d deleted from lambda", v.Version)
		}

		deleted = append(deleted, v.Version)
	}

	return deleted, nil
}
