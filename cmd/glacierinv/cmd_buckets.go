package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koustreak/glacier-inventory/internal/bucket"
	"github.com/koustreak/glacier-inventory/internal/bucket/minio"
	"github.com/koustreak/glacier-inventory/internal/bucket/s3"
)

var bucketsProvider string

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List the buckets visible to the configured credentials",
	Long: `Lists bucket names, sorted, from AWS S3 or an S3-compatible MinIO endpoint.

Examples:
  glacierinv buckets
  glacierinv buckets --provider minio --output yaml`,
	Args: cobra.NoArgs,
	RunE: runBuckets,
}

func init() {
	rootCmd.AddCommand(bucketsCmd)

	bucketsCmd.Flags().StringVar(&bucketsProvider, "provider", "", "Override the configured provider (s3, minio)")
}

func runBuckets(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	bcfg := cfg.Buckets
	if bucketsProvider != "" {
		bcfg.Provider = bucket.Provider(bucketsProvider)
	}

	lister, err := newLister(ctx, &bcfg)
	if err != nil {
		return err
	}

	buckets, err := lister.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("list buckets: %w", err)
	}
	bucket.SortByName(buckets)

	log.With().Str("provider", string(bcfg.Provider)).Int("buckets", len(buckets)).Logger().Debug("buckets listed")

	r, _ := newRenderer(outputStyle)
	return r.buckets(cmd.OutOrStdout(), buckets)
}

func newLister(ctx context.Context, bcfg *bucket.Config) (bucket.Lister, error) {
	switch bcfg.Provider {
	case bucket.ProviderS3:
		return s3.New(ctx, bcfg)
	case bucket.ProviderMinIO:
		return minio.New(bcfg)
	default:
		return nil, fmt.Errorf("unsupported bucket provider %q", bcfg.Provider)
	}
}
