package s3

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	liberrors "github.com/finch-technologies/lambda-utils/errors"
	"github.com/finch-technologies/lambda-utils/utils"
)

const (
	bucketEnv    = "S3_BUCKET"
	keyPrefixEnv = "S3_KEY_PREFIX"
)

// ParseURI splits an s3://bucket/key URI into bucket and key. Leading
// slashes are stripped from the key.
func ParseURI(uri string) (string, string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", "", liberrors.NewInvalidArgumentError("uri", fmt.Sprintf("not an S3 URI: %s", uri))
	}
	if parsed.Scheme != "s3" || parsed.Host == "" {
		return "", "", liberrors.NewInvalidArgumentError("uri", fmt.Sprintf("not an S3 URI: %s", uri))
	}
	return parsed.Host, strings.TrimLeft(parsed.Path, "/"), nil
}

// ToURI formats a bucket and key as an s3:// URI. Inverse of ParseURI
// for keys without leading slashes.
func ToURI(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}

// DefaultPath resolves the bucket and key for a filename from the
// options or the environment. The bucket comes from the options or
// S3_BUCKET and is required. The key prefix comes from the options or
// S3_KEY_PREFIX and is optional; when present it is joined to the
// filename with a single slash.
func DefaultPath(filename string, options ...PathOptions) (string, string, error) {
	var opts PathOptions
	if len(options) > 0 {
		opts = options[0]
	}

	bucket := utils.FirstValue(opts.Bucket, os.Getenv(bucketEnv))
	if bucket == "" {
		return "", "", liberrors.NewConfigurationError(bucketEnv)
	}

	key := strings.TrimLeft(filename, "/")
	if prefix := utils.FirstValue(opts.KeyPrefix, os.Getenv(keyPrefixEnv)); prefix != "" {
		key = strings.Trim(prefix, "/") + "/" + key
	}

	return bucket, key, nil
}
