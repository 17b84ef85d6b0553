package layerstore

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Record associates a published layer version with the fingerprint of the
// dependency manifest that produced it. Records are immutable: a new version
// supersedes the previous one, it never rewrites it.
type Record struct {
	LayerName   string    `json:"layerName"`
	Version     int64     `json:"version"`
	VersionARN  string    `json:"versionArn"`
	Fingerprint string    `json:"fingerprint"`
	Tool        string    `json:"tool"`
	ManifestKey string    `json:"manifestKey"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ErrRecordNotFound means no layer version was ever published for this
// layer and tool.
var ErrRecordNotFound = errors.New("published layer record not found")

// ErrRecordUnreadable means a latest-record pointer exists but cannot be
// decoded. The change-detection gate treats it as "publish" (fail open)
// rather than silently skipping a genuinely new version.
var ErrRecordUnreadable = errors.New("published layer record unreadable")

// ErrIncompleteRecord means the layer version was published but recording
// it did not fully succeed, leaving change detection unreliable until the
// record is reconciled.
var ErrIncompleteRecord = errors.New("publication record incomplete")

// versionDigits pads version-numbered prefixes so they sort
// lexicographically, e.g. layer/000012/.
const versionDigits = 6

// Key layout inside the object store, one staging artifact plus one
// sub-prefix per published version:
//
//	layer/layer.zip                       staged artifact
//	layer/000001/<manifest file>          manifest backup for version 1
//	layer/000001/record.json              publication record for version 1
//	layer/last-record-<tool>.json         latest pointer, one per tool
func StagingKey() string {
	return "layer/layer.zip"
}

func VersionPrefix(version int64) string {
	return fmt.Sprintf("layer/%0*d", versionDigits, version)
}

func ManifestKey(version int64, manifestName string) string {
	return fmt.Sprintf("%s/%s", VersionPrefix(version), manifestName)
}

func RecordKey(version int64) string {
	return fmt.Sprintf("%s/record.json", VersionPrefix(version))
}

func LatestRecordKey(tool string) string {
	return fmt.Sprintf("layer/last-record-%s.json", tool)
}

func SourceKey(version string) string {
	return fmt.Sprintf("source/%s/source.zip", version)
}
