package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client is the slice of the S3 API used by this package. The SDK
// client satisfies it; tests substitute their own.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObjectTagging(ctx context.Context, params *s3.GetObjectTaggingInput, optFns ...func(*s3.Options)) (*s3.GetObjectTaggingOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var _ Client = (*s3.Client)(nil)

// PathOptions override the S3_BUCKET and S3_KEY_PREFIX environment
// variables when resolving a default path.
type PathOptions struct {
	Bucket    string
	KeyPrefix string
}

type PutOptions struct {
	// Tags to assign to the object. Allowed characters for tags are
	// unicode letters, whitespace, numbers and + - = . _ : /
	Tags map[string]string
	// ACL defaults to private
	ACL s3types.ObjectCannedACL
}

// PutResult reports where a buffer was written and how many bytes it
// held, so callers can verify the write.
type PutResult struct {
	Bucket string
	Key    string
	Length int
}
