package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"liveCrime/internal/config"
	"liveCrime/pkg/e"
)

// BlobStore keeps evidence payloads in an S3-compatible bucket
// (minio in local and dev environments).
type BlobStore struct {
	client *awss3.Client
	bucket string
	logger *slog.Logger
}

func NewBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKey,
			cfg.S3.SecretKey,
			"",
		)))
	if err != nil {
		return nil, e.Wrap("storage.s3.NewBlobStore", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3.BaseEndpoint)
		o.UsePathStyle = true
	})

	logger.Info("S3 blob store ready",
		slog.String("bucket", cfg.S3.Bucket),
		slog.String("endpoint", cfg.S3.BaseEndpoint),
	)

	return &BlobStore{
		client: client,
		bucket: cfg.S3.Bucket,
		logger: logger,
	}, nil
}

// StorageKey places each blob under a date prefix with a fresh uuid so
// identical filenames never collide.
func StorageKey(name string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("evidence/%d/%02d/%02d/%v/%s", d.Year(), d.Month(), d.Day(), uuid.New(), name)
}

func (b *BlobStore) Put(ctx context.Context, key, mime string, data []byte) error {
	input := &awss3.PutObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	}
	if mime != "" {
		input.ContentType = aws.String(mime)
	}

	if _, err := b.client.PutObject(ctx, input); err != nil {
		b.logger.Error("s3 put failed", slog.String("key", key), slog.Any("error", err))
		return e.Wrap("storage.s3.Put", err)
	}
	return nil
}

func (b *BlobStore) Delete(ctx context.Context, key string) error {
	if _, err := b.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	}); err != nil {
		b.logger.Error("s3 delete failed", slog.String("key", key), slog.Any("error", err))
		return e.Wrap("storage.s3.Delete", err)
	}
	return nil
}
