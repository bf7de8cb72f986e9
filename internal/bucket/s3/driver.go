// Package s3 provides an AWS S3 implementation of bucket.Lister.
package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdks3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/koustreak/glacier-inventory/internal/bucket"
	"github.com/koustreak/glacier-inventory/internal/errs"
)

// Driver is an S3 implementation of bucket.Lister.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	client *sdks3.Client
}

// New builds an S3 client from cfg using the SDK default credential chain,
// or static credentials when both keys are set.
func New(ctx context.Context, cfg *bucket.Config) (*Driver, error) {
	if cfg == nil {
		return nil, errs.New(errs.KindInvalidInput, "bucket config is required")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, "failed to load aws config", err)
	}

	client := sdks3.NewFromConfig(awsCfg, func(o *sdks3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Driver{client: client}, nil
}

// ListBuckets pages through every bucket owned by the caller.
func (d *Driver) ListBuckets(ctx context.Context) ([]bucket.Info, error) {
	var buckets []bucket.Info

	paginator := sdks3.NewListBucketsPaginator(d.client, &sdks3.ListBucketsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, mapError(err, "failed to list buckets")
		}
		for _, b := range page.Buckets {
			buckets = append(buckets, bucket.Info{
				Name:      aws.ToString(b.Name),
				CreatedAt: aws.ToTime(b.CreationDate),
				Region:    aws.ToString(b.BucketRegion),
			})
		}
	}

	return buckets, nil
}
