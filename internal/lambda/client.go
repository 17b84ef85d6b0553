package lambda

import (
	"context"
	"time"
)

// LayerVersion is one immutable published version of a named layer.
type LayerVersion struct {
	Version    int64
	ARN        string
	CreatedAt  time.Time
	Runtimes   []string
	Archs      []string
	CodeSHA256 string
}

// Client is the compute-function management surface this tool consumes.
type Client interface {
	LatestLayerVersion(ctx context.Context, layerName string) (*LayerVersion, error)
	ListLayerVersions(ctx context.Context, layerName string) ([]*LayerVersion, error)
	PublishLayerVersion(ctx context.Context, layerName, bucket, key, runtime, arch, description string) (*LayerVersion, error)
	DeleteLayerVersion(ctx context.Context, layerName string, version int64) error
	AddLayerVersionPermission(ctx context.Context, layerName string, version int64, accountID string) (string, error)
}
