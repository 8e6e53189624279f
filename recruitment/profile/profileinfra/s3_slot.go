package profileinfra

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/Abraxas-365/medjobb/recruitment/profile"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3API is the part of *s3.Client the slot uses
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Slot keeps the profile as one object in a bucket
type S3Slot struct {
	client S3API
	bucket string
	key    string
}

// NewS3Slot creates a slot over an existing client
func NewS3Slot(client S3API, bucket, key string) *S3Slot {
	return &S3Slot{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// Read downloads the object
func (s *S3Slot) Read(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, profile.ErrSlotEmpty()
		}
		return nil, s.unavailable(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, s.unavailable(err)
	}
	return data, nil
}

// Write replaces the object
func (s *S3Slot) Write(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return s.unavailable(err)
	}
	return nil
}

// Clear deletes the object. Deleting a missing key succeeds in S3.
func (s *S3Slot) Clear(ctx context.Context) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return s.unavailable(err)
	}
	return nil
}

func (s *S3Slot) unavailable(err error) error {
	return profile.ErrSlotUnavailable().
		WithDetail("bucket", s.bucket).
		WithDetail("key", s.key).
		WithCause(err)
}

func isNoSuchKey(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
