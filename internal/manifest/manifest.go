package manifest

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrInvalidManifest means the manifest cannot be used for change detection
// because one or more entries lack an exact version or a content hash.
var ErrInvalidManifest = errors.New("manifest is not deterministic")

// Entry is a single resolved dependency: exact version plus content hash.
type Entry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

// Manifest is the resolved dependency set of a layer together with the
// build parameters that affect the produced artifact.
type Manifest struct {
	Entries []Entry `json:"entries"`
	Runtime string  `json:"runtime"`
	Arch    string  `json:"arch"`
}

func New(entries []Entry, runtime, arch string) *Manifest {
	return &Manifest{Entries: entries, Runtime: runtime, Arch: arch}
}

// Validate checks that every entry carries an exact version and a hash.
// Loose constraints make fingerprint comparison meaningless, so they are
// rejected up front instead of producing a digest that lies.
func (m *Manifest) Validate() error {
	for _, e := range m.Entries {
		if e.Name == "" {
			return errors.Wrap(ErrInvalidManifest, "entry with empty package name")
		}

		if e.Version == "" {
			return errors.Wrapf(ErrInvalidManifest, "package %s has no pinned version", e.Name)
		}

		if e.Hash == "" {
			return errors.Wrapf(ErrInvalidManifest, "package %s has no content hash", e.Name)
		}
	}

	return nil
}

// sorted returns the entries in canonical order, leaving the manifest
// untouched. Lexicographic by name, then version, then hash.
func (m *Manifest) sorted() []Entry {
	entries := make([]Entry, len(m.Entries))
	copy(entries, m.Entries)

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Version != b.Version {
			return a.Version < b.Version
		}
		return a.Hash < b.Hash
	})

	return entries
}
