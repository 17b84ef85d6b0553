package storage

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
)

type s3Store struct {
	svc    s3iface.S3API
	bucket string
	prefix string
}

var _ Object = &s3Store{}

func NewS3Store(bucket, prefix, region string) (*s3Store, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS session")
	}

	svc := s3.New(sess)

	return &s3Store{
		svc:    svc,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// NewS3StoreWithClient is used by callers that already hold a configured
// service client, tests included.
func NewS3StoreWithClient(svc s3iface.S3API, bucket, prefix string) *s3Store {
	return &s3Store{svc: svc, bucket: bucket, prefix: prefix}
}

func (s3s *s3Store) fullKey(key string) string {
	return path.Join(s3s.prefix, key)
}

func (s3s *s3Store) Get(ctx context.Context, key string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s3s.bucket),
		Key:    aws.String(s3s.fullKey(key)),
	}
	output, err := s3s.svc.GetObjectWithContext(ctx, input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, errors.Wrapf(ErrNotFound, "s3://%s/%s", s3s.bucket, s3s.fullKey(key))
		}

		return nil, errors.Wrapf(err, "fail to get object %s from s3", key)
	}

	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, errors.Wrap(err, "fail to read data from bucket object")
	}

	return data, nil
}

func (s3s *s3Store) Put(ctx context.Context, key string, body []byte, contentType string, metadata map[string]string) error {
	input := &s3.PutObjectInput{
		Body:   bytes.NewReader(body),
		Bucket: aws.String(s3s.bucket),
		Key:    aws.String(s3s.fullKey(key)),
	}

	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if len(metadata) > 0 {
		input.Metadata = make(map[string]*string, len(metadata))
		for k, v := range metadata {
			input.Metadata[k] = aws.String(v)
		}
	}

	_, err := s3s.svc.PutObjectWithContext(ctx, input)
	return errors.Wrapf(err, "fail to put object %s to s3", key)
}

func (s3s *s3Store) Exists(ctx context.Context, key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(s3s.bucket),
		Key:    aws.String(s3s.fullKey(key)),
	}

	_, err := s3s.svc.HeadObjectWithContext(ctx, input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return false, nil
		}

		return false, errors.Wrapf(err, "fail to head object %s on s3", key)
	}

	return true, nil
}

func (s3s *s3Store) Delete(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s3s.bucket),
		Key:    aws.String(s3s.fullKey(key)),
	}

	_, err := s3s.svc.DeleteObjectWithContext(ctx, input)
	return errors.Wrapf(err, "fail to delete object %s from s3", key)
}

func (s3s *s3Store) Metadata(ctx context.Context, key string) (map[string]string, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(s3s.bucket),
		Key:    aws.String(s3s.fullKey(key)),
	}

	output, err := s3s.svc.HeadObjectWithContext(ctx, input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return nil, errors.Wrapf(ErrNotFound, "s3://%s/%s", s3s.bucket, s3s.fullKey(key))
		}

		return nil, errors.Wrapf(err, "fail to head object %s on s3", key)
	}

	// the SDK title-cases metadata keys on the way back, normalize so
	// lookups behave the same across backends
	metadata := make(map[string]string, len(output.Metadata))
	for k, v := range output.Metadata {
		metadata[strings.ToLower(k)] = aws.StringValue(v)
	}

	return metadata, nil
}

// BucketKey returns the bucket and full object key, for callers that need to
// reference staged artifacts in AWS API calls.
func (s3s *s3Store) BucketKey(key string) (string, string) {
	return s3s.bucket, s3s.fullKey(key)
}
