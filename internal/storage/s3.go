// Package storage wraps the S3 client used for direct-upload presigning and
// object downloads.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/pixelprompt/internal/config"
)

// Indirections around the AWS SDK so tests can substitute them.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in)
	}
)

// Object is a downloaded storage object together with the content type and
// length declared by the storage system.
type Object struct {
	Body        []byte
	ContentType string
	Size        int64
}

// Client provides presigned-URL issuance and object downloads against a
// single bucket. It is constructed once at cold start and is safe for
// concurrent use.
type Client struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucket        string
}

// NewClient builds an S3 client from the given config. When static
// credentials or a base endpoint are configured (MinIO in local runs) they
// take precedence over the default AWS credential chain.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
	})

	return &Client{
		s3Client:      client,
		presignClient: newS3PresignClient(client),
		bucket:        cfg.Bucket,
	}, nil
}

// PresignPut issues a presigned PUT URL scoped to the exact key, content type,
// and content length, valid for ttl.
func (c *Client) PresignPut(ctx context.Context, key, contentType string, contentLength int64, ttl time.Duration) (string, error) {
	req, err := presignPutObject(c.presignClient, ctx, &s3.PutObjectInput{
		Bucket:        &c.bucket,
		Key:           &key,
		ContentType:   &contentType,
		ContentLength: &contentLength,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign PUT object: %w", err)
	}
	return req.URL, nil
}

// PresignGet issues a presigned GET URL for the given key, valid for ttl.
func (c *Client) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := presignGetObject(c.presignClient, ctx, &s3.GetObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign GET object: %w", err)
	}
	return req.URL, nil
}

// Download fetches the full object body from the given bucket along with its
// declared content type and length.
func (c *Client) Download(ctx context.Context, bucket, key string) (*Object, error) {
	out, err := getObject(c.s3Client, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %q: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body %q: %w", key, err)
	}

	obj := &Object{
		Body:        body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}
	if obj.Size == 0 {
		obj.Size = int64(len(body))
	}
	return obj, nil
}
