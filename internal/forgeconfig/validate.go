package forgeconfig

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/validation"
)

var runtimePattern = regexp.MustCompile(`^python3\.\d+$`)

func (c *Config) validate() error {
	if c.LayerName == "" {
		return errors.New("layerName is required")
	}

	if !validation.IsValidLayerName(c.LayerName) {
		return errors.Errorf("layerName %q is not a valid layer name", c.LayerName)
	}

	switch c.Tool {
	case "pip", "poetry", "uv":
	default:
		return errors.Errorf("tool must be one of pip, poetry, uv, got %q", c.Tool)
	}

	if !runtimePattern.MatchString(c.Runtime) {
		return errors.Errorf("runtime must look like python3.11, got %q", c.Runtime)
	}

	switch c.Arch {
	case "x86_64", "arm64":
	default:
		return errors.Errorf("arch must be x86_64 or arm64, got %q", c.Arch)
	}

	if c.Index != nil {
		if c.Index.Name == "" {
			return errors.New("index.name is required when an index is configured")
		}
		if c.Index.URL == "" {
			return errors.New("index.url is required when an index is configured")
		}
	}

	switch c.Storage.Type {
	case "local":
		if c.Storage.Dir == "" {
			return errors.New("storage.dir is required for local storage")
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return errors.New("storage.bucket is required for s3 storage")
		}
		if !validation.IsValidS3Bucket(c.Storage.Bucket) {
			return errors.Errorf("storage.bucket %q is not a valid bucket name", c.Storage.Bucket)
		}
		if c.Storage.Region == "" {
			return errors.New("storage.region is required for s3 storage")
		}
	default:
		return errors.Errorf("storage.type must be local or s3, got %q", c.Storage.Type)
	}

	return nil
}
