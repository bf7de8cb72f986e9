// Package minio provides a MinIO implementation of bucket.Lister for
// S3-compatible endpoints.
package minio

import (
	"context"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/koustreak/glacier-inventory/internal/bucket"
	"github.com/koustreak/glacier-inventory/internal/errs"
)

// Driver is a MinIO implementation of bucket.Lister.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	client *miniogo.Client
}

// New creates a MinIO client for cfg. No request is sent until ListBuckets.
func New(cfg *bucket.Config) (*Driver, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errs.New(errs.KindInvalidInput, "minio endpoint is required")
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, "failed to create minio client", err)
	}

	return &Driver{client: client}, nil
}

// ListBuckets returns all buckets accessible with the configured credentials.
func (d *Driver) ListBuckets(ctx context.Context) ([]bucket.Info, error) {
	raw, err := d.client.ListBuckets(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list buckets")
	}

	buckets := make([]bucket.Info, len(raw))
	for i, b := range raw {
		buckets[i] = bucket.Info{
			Name:      b.Name,
			CreatedAt: b.CreationDate,
		}
	}
	return buckets, nil
}
