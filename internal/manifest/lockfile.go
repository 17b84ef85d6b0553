package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type poetryLock struct {
	Package []struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Files   []struct {
			File string `toml:"file"`
			Hash string `toml:"hash"`
		} `toml:"files"`
	} `toml:"package"`
}

// ParsePoetryLock parses a poetry.lock file. Each locked package carries per
// distribution-file hashes; they are combined into a single content hash per
// entry so the manifest shape stays tool agnostic.
func ParsePoetryLock(raw []byte, runtime, arch string) (*Manifest, error) {
	var lock poetryLock
	if err := toml.Unmarshal(raw, &lock); err != nil {
		return nil, errors.Wrap(err, "fail to decode poetry.lock")
	}

	entries := make([]Entry, 0, len(lock.Package))
	for _, pkg := range lock.Package {
		hashes := make([]string, 0, len(pkg.Files))
		for _, f := range pkg.Files {
			hashes = append(hashes, f.Hash)
		}

		entries = append(entries, Entry{
			Name:    normalizeName(pkg.Name),
			Version: pkg.Version,
			Hash:    combineHashes(hashes),
		})
	}

	return New(entries, runtime, arch), nil
}

type uvLock struct {
	Package []struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Source  struct {
			Virtual  string `toml:"virtual"`
			Editable string `toml:"editable"`
		} `toml:"source"`
		Sdist struct {
			Hash string `toml:"hash"`
		} `toml:"sdist"`
		Wheels []struct {
			Hash string `toml:"hash"`
		} `toml:"wheels"`
	} `toml:"package"`
}

// ParseUVLock parses a uv.lock file. The project's own virtual/editable
// package is skipped since it is not installed into the layer
// (uv sync runs with --no-install-project).
func ParseUVLock(raw []byte, runtime, arch string) (*Manifest, error) {
	var lock uvLock
	if err := toml.Unmarshal(raw, &lock); err != nil {
		return nil, errors.Wrap(err, "fail to decode uv.lock")
	}

	var entries []Entry
	for _, pkg := range lock.Package {
		if pkg.Source.Virtual != "" || pkg.Source.Editable != "" {
			continue
		}

		var hashes []string
		if pkg.Sdist.Hash != "" {
			hashes = append(hashes, pkg.Sdist.Hash)
		}
		for _, w := range pkg.Wheels {
			if w.Hash != "" {
				hashes = append(hashes, w.Hash)
			}
		}

		entries = append(entries, Entry{
			Name:    normalizeName(pkg.Name),
			Version: pkg.Version,
			Hash:    combineHashes(hashes),
		})
	}

	return New(entries, runtime, arch), nil
}

// combineHashes folds a set of per-file hashes into one order-independent
// digest. A single hash passes through untouched so requirements.txt entries
// keep their original sha256 string.
func combineHashes(hashes []string) string {
	if len(hashes) == 0 {
		return ""
	}

	if len(hashes) == 1 {
		return hashes[0]
	}

	sorted := make([]string, len(hashes))
	copy(sorted, hashes)
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))

	return "sha256:" + hex.EncodeToString(sum[:])
}
