// Package storage keeps uploaded site images in MinIO.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/pkg/log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// presignExpiry is the lifetime of image links when no public base URL is configured.
const presignExpiry = 7 * 24 * time.Hour

// MinioClient is the shared MinIO client set by InitMinIO.
var MinioClient *minio.Client

// InitMinIO creates MinioClient and makes sure the bucket exists.
func InitMinIO(cfg config.MinIOConfig) error {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("create minio client: %w", err)
	}
	MinioClient = client

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", cfg.BucketName, err)
		}
		log.Infof("bucket '%s' created", cfg.BucketName)
	}
	log.Info("MinIO client initialized")
	return nil
}

// Bucket uploads objects into one bucket.
type Bucket struct {
	client        *minio.Client
	name          string
	publicBaseURL string
}

// NewBucket wraps client for the configured bucket.
func NewBucket(client *minio.Client, cfg config.MinIOConfig) *Bucket {
	return &Bucket{client: client, name: cfg.BucketName, publicBaseURL: cfg.PublicBaseURL}
}

// PutObject uploads reader and returns a URL the site can render.
func (b *Bucket) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := b.client.PutObject(ctx, b.name, objectName, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	if b.publicBaseURL != "" {
		return ObjectURL(b.publicBaseURL, b.name, objectName), nil
	}
	u, err := b.client.PresignedGetObject(ctx, b.name, objectName, presignExpiry, nil)
	if err != nil {
		log.Errorf("failed to presign %s: %v", objectName, err)
		return "", err
	}
	return u.String(), nil
}

// ObjectURL joins a public base URL, bucket and object name.
func ObjectURL(baseURL, bucket, objectName string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + strings.TrimLeft(objectName, "/")
}
