package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByName(t *testing.T) {
	buckets := []Info{{Name: "logs"}, {Name: "archive"}, {Name: "media"}}

	SortByName(buckets)

	assert.Equal(t, []Info{{Name: "archive"}, {Name: "logs"}, {Name: "media"}}, buckets)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(ProviderMinIO)

	assert.Equal(t, ProviderMinIO, cfg.Provider)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.True(t, cfg.UseSSL)
}
