// Package glacier provides an Amazon S3 Glacier implementation of
// archive.JobOutputReader.
//
// Usage:
//
//	cfg := archive.DefaultConfig("us-east-1")
//	client, err := glacier.New(ctx, cfg)
//	if err != nil { ... }
//
//	out, err := client.GetJobOutput(ctx, "demo-vault", jobID)
package glacier

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdkglacier "github.com/aws/aws-sdk-go-v2/service/glacier"

	"github.com/koustreak/glacier-inventory/internal/archive"
	"github.com/koustreak/glacier-inventory/internal/errs"
)

// Driver is a Glacier implementation of archive.JobOutputReader.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	client    *sdkglacier.Client
	accountID string
}

// New builds a Glacier client from cfg. Unlike a database driver it does not
// dial anything: the first network call happens on GetJobOutput.
func New(ctx context.Context, cfg *archive.Config) (*Driver, error) {
	if cfg == nil {
		return nil, errs.New(errs.KindInvalidInput, "archive config is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions(cfg)...)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, "failed to load aws config", err)
	}

	client := sdkglacier.NewFromConfig(awsCfg, func(o *sdkglacier.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewFromClient(client, cfg.AccountID), nil
}

// NewFromClient wraps an already configured SDK client.
func NewFromClient(client *sdkglacier.Client, accountID string) *Driver {
	if accountID == "" {
		accountID = "-"
	}
	return &Driver{client: client, accountID: accountID}
}

func loadOptions(cfg *archive.Config) []func(*awsconfig.LoadOptions) error {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts))
	}
	return opts
}

// --- archive.JobOutputReader implementation ---

// GetJobOutput issues a single GetJobOutput call for jobID in vault.
// The caller MUST call Close() on the returned output.
func (d *Driver) GetJobOutput(ctx context.Context, vault, jobID string) (archive.JobOutput, error) {
	out, err := d.client.GetJobOutput(ctx, &sdkglacier.GetJobOutputInput{
		AccountId: aws.String(d.accountID),
		VaultName: aws.String(vault),
		JobId:     aws.String(jobID),
	})
	if err != nil {
		return nil, mapError(err, "failed to get job output")
	}

	return archive.NewJobOutput(out.Body, &archive.JobOutputInfo{
		ContentType:  aws.ToString(out.ContentType),
		Checksum:     aws.ToString(out.Checksum),
		ContentRange: aws.ToString(out.ContentRange),
		Status:       int(out.Status),
	}), nil
}
