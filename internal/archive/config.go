package archive

// Config holds the settings needed to reach an archival service.
// Credential resolution stays with the SDK's default chain unless
// AccessKey and SecretKey are both set.
type Config struct {
	// Region is the AWS region the vaults live in (e.g. "us-east-1").
	Region string

	// AccountID scopes vault lookups. "-" means the account that owns the
	// credentials used to sign the request.
	AccountID string

	// Endpoint overrides the service endpoint URL.
	// Leave empty to use the regional AWS endpoint.
	Endpoint string

	// Profile selects a named profile from the shared AWS config files.
	Profile string

	// AccessKey and SecretKey set static credentials, bypassing the chain.
	AccessKey string
	SecretKey string

	// MaxAttempts caps SDK-level attempts per request. 0 keeps the SDK default.
	MaxAttempts int
}

// DefaultConfig returns a config for the given region with the caller's own account.
func DefaultConfig(region string) *Config {
	return &Config{
		Region:    region,
		AccountID: "-",
	}
}
