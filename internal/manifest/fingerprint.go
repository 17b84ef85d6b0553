package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Fingerprint computes a deterministic digest over the manifest entries and
// build parameters. Entries are canonicalized before hashing so that two
// manifests with the same content in different input order always map to the
// same digest.
func Fingerprint(m *Manifest) (string, error) {
	if err := m.Validate(); err != nil {
		return "", errors.Wrap(err, "fail to fingerprint manifest")
	}

	var sb strings.Builder
	for _, e := range m.sorted() {
		fmt.Fprintf(&sb, "%s==%s --hash=%s\n", e.Name, e.Version, e.Hash)
	}
	fmt.Fprintf(&sb, "runtime=%s\n", m.Runtime)
	fmt.Fprintf(&sb, "arch=%s\n", m.Arch)

	sum := sha256.Sum256([]byte(sb.String()))

	return hex.EncodeToString(sum[:]), nil
}
