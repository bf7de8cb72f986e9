package minio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/glacier-inventory/internal/bucket"
	"github.com/koustreak/glacier-inventory/internal/errs"
)

const listBucketsXML = `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Owner><ID>minio</ID><DisplayName>minio</DisplayName></Owner>
  <Buckets>
    <Bucket><Name>archive-logs</Name><CreationDate>2019-01-02T03:04:05.000Z</CreationDate></Bucket>
    <Bucket><Name>backups</Name><CreationDate>2020-06-07T08:09:10.000Z</CreationDate></Bucket>
  </Buckets>
</ListAllMyBucketsResult>`

func TestDriver_ListBuckets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, listBucketsXML)
	}))
	defer srv.Close()

	cfg := bucket.DefaultConfig(bucket.ProviderMinIO)
	cfg.Endpoint = strings.TrimPrefix(srv.URL, "http://")
	cfg.UseSSL = false
	cfg.AccessKey = "minioadmin"
	cfg.SecretKey = "minioadmin"

	d, err := New(cfg)
	require.NoError(t, err)

	buckets, err := d.ListBuckets(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "archive-logs", buckets[0].Name)
	assert.Equal(t, 2019, buckets[0].CreatedAt.Year())
	assert.Equal(t, "backups", buckets[1].Name)
}

func TestNew_RequiresEndpoint(t *testing.T) {
	_, err := New(bucket.DefaultConfig(bucket.ProviderMinIO))
	assert.True(t, errs.IsInvalidInput(err))
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason errs.Reason
	}{
		{
			name:   "access denied",
			err:    miniogo.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden},
			reason: errs.ReasonPermissionDenied,
		},
		{
			name:   "bad signature",
			err:    miniogo.ErrorResponse{Code: "SignatureDoesNotMatch", StatusCode: http.StatusForbidden},
			reason: errs.ReasonPermissionDenied,
		},
		{
			name:   "slow down",
			err:    miniogo.ErrorResponse{Code: "SlowDown", StatusCode: http.StatusServiceUnavailable},
			reason: errs.ReasonThrottled,
		},
		{
			name:   "internal error",
			err:    miniogo.ErrorResponse{Code: "InternalError", StatusCode: http.StatusInternalServerError},
			reason: errs.ReasonUnavailable,
		},
		{
			name:   "deadline",
			err:    context.DeadlineExceeded,
			reason: errs.ReasonTimeout,
		},
		{
			name:   "network",
			err:    errors.New("connection refused"),
			reason: errs.ReasonTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err, "failed to list buckets")
			assert.True(t, errs.IsRemoteCallFailed(got))
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}
