package bucket

// Provider identifies the bucket storage backend.
type Provider string

const (
	ProviderS3    Provider = "s3"
	ProviderMinIO Provider = "minio"
)

// Config holds all settings needed to connect to a bucket storage backend.
type Config struct {
	// Provider is the storage backend (e.g. ProviderS3).
	Provider Provider

	// Endpoint is the storage server. For MinIO it is host:port
	// ("localhost:9000"); for S3 it is an optional URL override.
	Endpoint string

	// AccessKey is the access key ID. Empty means the SDK default chain (S3 only).
	AccessKey string

	// SecretKey is the secret access key.
	SecretKey string

	// UseSSL controls whether TLS is used for MinIO connections.
	UseSSL bool

	// Region is used by region-aware backends.
	Region string

	// UsePathStyle forces path-style addressing on S3-compatible endpoints.
	UsePathStyle bool
}

// DefaultConfig returns a config for provider with no endpoint override.
func DefaultConfig(provider Provider) *Config {
	return &Config{
		Provider: provider,
		Region:   "us-east-1",
		UseSSL:   true,
	}
}
