package manifest

import (
	"os"

	"github.com/pkg/errors"
)

// FileName maps a build tool to its dependency manifest file name.
func FileName(tool string) (string, error) {
	switch tool {
	case "pip":
		return "requirements.txt", nil
	case "poetry":
		return "poetry.lock", nil
	case "uv":
		return "uv.lock", nil
	default:
		return "", errors.Errorf("unknown build tool %q", tool)
	}
}

// Load reads and parses the manifest file of a tool. The raw bytes are
// returned alongside the parsed manifest because publication backs up the
// file verbatim.
func Load(tool, path, runtime, arch string) (*Manifest, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "fail to read manifest %s", path)
	}

	var m *Manifest
	switch tool {
	case "pip":
		m, err = ParseRequirements(raw, runtime, arch)
	case "poetry":
		m, err = ParsePoetryLock(raw, runtime, arch)
	case "uv":
		m, err = ParseUVLock(raw, runtime, arch)
	default:
		return nil, nil, errors.Errorf("unknown build tool %q", tool)
	}

	if err != nil {
		return nil, nil, err
	}

	return m, raw, nil
}
