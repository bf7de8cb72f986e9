// Package bucket lists object-storage buckets.
//
// Providers (AWS S3, MinIO) implement Lister. Callers depend only on this
// package, never on a specific provider package.
//
// Usage:
//
//	cfg := bucket.DefaultConfig(bucket.ProviderS3)
//	lister, err := s3.New(ctx, cfg)
//	if err != nil { ... }
//
//	buckets, err := lister.ListBuckets(ctx)
package bucket

import (
	"context"
	"sort"
	"time"
)

// Lister enumerates the buckets visible to the configured credentials.
type Lister interface {
	ListBuckets(ctx context.Context) ([]Info, error)
}

// Info describes a storage bucket.
type Info struct {
	// Name is the bucket name.
	Name string `json:"name" yaml:"name"`

	// CreatedAt is when the bucket was created.
	// May be zero if the backend does not expose creation time.
	CreatedAt time.Time `json:"created_at,omitzero" yaml:"created_at,omitempty"`

	// Region is the bucket's region when the backend reports it.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// SortByName orders buckets by name in place.
func SortByName(buckets []Info) {
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Name < buckets[j].Name
	})
}
