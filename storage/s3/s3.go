// Package s3 is a thin facade over S3 object operations, plus pure
// helpers for s3:// URIs and environment-driven default paths.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/finch-technologies/lambda-utils/clients"
	"github.com/finch-technologies/lambda-utils/log"
)

type Storage struct {
	client Client
}

// New returns an S3 facade backed by the cached S3 client.
func New(ctx context.Context, cache *clients.Cache) (*Storage, error) {
	client, err := cache.S3(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 client: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient returns a facade over an already-constructed client.
// Intended for tests and hosts that manage clients themselves.
func NewWithClient(client Client) *Storage {
	return &Storage{client: client}
}

// Exists checks whether an object exists at bucket/key. Any client
// error reads as false, so a missing object and a denied HeadObject
// are indistinguishable to the caller.
func (s *Storage) Exists(ctx context.Context, bucket, key string) bool {
	_, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// GetSize returns the size of the object at bucket/key, in bytes.
func (s *Storage) GetSize(ctx context.Context, bucket, key string) (int64, error) {
	response, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, err
	}
	return aws.ToInt64(response.ContentLength), nil
}

// GetBytes reads the full contents of the object at bucket/key.
func (s *Storage) GetBytes(ctx context.Context, bucket, key string) ([]byte, error) {
	log.Debugf("Reading from %s", ToURI(bucket, key))

	response, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	return io.ReadAll(response.Body)
}

// GetTags returns the object's tag set as a flat map. An empty tag set
// yields an empty, non-nil map.
func (s *Storage) GetTags(ctx context.Context, bucket, key string) (map[string]string, error) {
	log.Debugf("Reading tags from %s", ToURI(bucket, key))

	response, err := s.client.GetObjectTagging(ctx, &awss3.GetObjectTaggingInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}

	tags := make(map[string]string, len(response.TagSet))
	for _, tag := range response.TagSet {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return tags, nil
}

// PutBytes writes a buffer to bucket/key. Tags are sent as a
// URL-encoded tagging string and the ACL defaults to private. The
// caller is responsible for chunking payloads too large for a single
// PutObject.
func (s *Storage) PutBytes(ctx context.Context, buf []byte, bucket, key string, options ...PutOptions) (*PutResult, error) {
	var opts PutOptions
	if len(options) > 0 {
		opts = options[0]
	}

	log.Debugf("Writing %d bytes to %s", len(buf), ToURI(bucket, key))

	tagging := url.Values{}
	for k, v := range opts.Tags {
		tagging.Set(k, v)
	}

	acl := opts.ACL
	if acl == "" {
		acl = s3types.ObjectCannedACLPrivate
	}

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:  aws.String(bucket),
		Key:     aws.String(key),
		Body:    bytes.NewReader(buf),
		Tagging: aws.String(tagging.Encode()),
		ACL:     acl,
	})
	if err != nil {
		return nil, err
	}

	return &PutResult{Bucket: bucket, Key: key, Length: len(buf)}, nil
}

// Delete removes the object at bucket/key.
func (s *Storage) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", ToURI(bucket, key), err)
	}
	return nil
}
