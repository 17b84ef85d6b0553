package publish

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/layerforge/layerforge/internal/layerstore"
)

// Decision is the outcome of the change-detection gate together with a
// human-readable reason for it.
type Decision struct {
	Publish bool
	Reason  string
}

// ShouldPublish decides whether a new layer version is warranted. The cases
// form a total order:
//
//  1. never published before            -> publish
//  2. previous record unreadable        -> publish (fail open)
//  3. fingerprints equal                -> skip, no change detected
//  4. fingerprints differ               -> publish
//
// A missing or corrupt previous record must never be read as "unchanged":
// assuming no change there silently skips genuinely new versions.
func ShouldPublish(current string, prev *layerstore.Record, prevErr error) (Decision, error) {
	if errors.Is(prevErr, layerstore.ErrRecordNotFound) {
		return Decision{Publish: true, Reason: "no previous version published"}, nil
	}

	if errors.Is(prevErr, layerstore.ErrRecordUnreadable) {
		return Decision{
			Publish: true,
			Reason:  fmt.Sprintf("previous record unreadable, failing open: %v", prevErr),
		}, nil
	}

	if prevErr != nil {
		return Decision{}, errors.Wrap(prevErr, "fail to load previous publication record")
	}

	if prev.Fingerprint == "" {
		return Decision{Publish: true, Reason: "previous record has no fingerprint, failing open"}, nil
	}

	if prev.Fingerprint == current {
		return Decision{
			Publish: false,
			Reason:  fmt.Sprintf("dependencies unchanged since version %d", prev.Version),
		}, nil
	}

	return Decision{
		Publish: true,
		Reason:  fmt.Sprintf("dependencies changed since version %d", prev.Version),
	}, nil
}
