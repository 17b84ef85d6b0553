package validation

import "regexp"

var (
	// Lambda layer names: letters, digits, hyphens and underscores. 64
	// keeps the version-suffixed ARN under the API's 140 character bound.
	layerNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

	// virtual-hosted style bucket names only
	bucketPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

	accountIDPattern = regexp.MustCompile(`^\d{12}$`)
)

func IsValidLayerName(name string) bool {
	return layerNamePattern.MatchString(name)
}

func IsValidS3Bucket(bucketName string) bool {
	return bucketPattern.MatchString(bucketName)
}

func IsValidAccountID(accountID string) bool {
	return accountIDPattern.MatchString(accountID)
}
