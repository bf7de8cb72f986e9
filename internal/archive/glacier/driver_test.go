package glacier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/glacier-inventory/internal/archive"
	"github.com/koustreak/glacier-inventory/internal/errs"
)

const inventoryBody = `{"VaultARN":"arn:aws:glacier:::vaults/demo-vault","ArchiveList":[{"Size":1024,"ArchiveId":"a1"}]}`

func newTestDriver(t *testing.T, handler http.HandlerFunc) *Driver {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := archive.DefaultConfig("us-east-1")
	cfg.Endpoint = srv.URL
	cfg.AccessKey = "AKIDEXAMPLE"
	cfg.SecretKey = "secret"
	cfg.MaxAttempts = 1

	d, err := New(context.Background(), cfg)
	require.NoError(t, err)
	return d
}

func TestDriver_GetJobOutput(t *testing.T) {
	var gotPath string
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("x-amz-sha256-tree-hash", "beefcafe")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, inventoryBody)
	})

	out, err := d.GetJobOutput(context.Background(), "demo-vault", "job-123")
	require.NoError(t, err)
	defer out.Close()

	body, err := io.ReadAll(out)
	require.NoError(t, err)

	assert.Equal(t, "/-/vaults/demo-vault/jobs/job-123/output", gotPath)
	assert.JSONEq(t, inventoryBody, string(body))
	assert.Equal(t, "application/json", out.Info().ContentType)
	assert.Equal(t, "beefcafe", out.Info().Checksum)
	assert.Equal(t, http.StatusOK, out.Info().Status)
}

func TestDriver_GetJobOutput_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		msg    string
		reason errs.Reason
	}{
		{
			name:   "job not found",
			status: http.StatusNotFound,
			code:   "ResourceNotFoundException",
			msg:    "The job ID was not found: job-123",
			reason: errs.ReasonNotFound,
		},
		{
			name:   "permission denied",
			status: http.StatusForbidden,
			code:   "AccessDeniedException",
			msg:    "User is not authorized to perform glacier:GetJobOutput",
			reason: errs.ReasonPermissionDenied,
		},
		{
			name:   "job in progress",
			status: http.StatusBadRequest,
			code:   "InvalidParameterValueException",
			msg:    "The job is not currently available for download: job-123",
			reason: errs.ReasonNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Amzn-ErrorType", tt.code)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{"code":"`+tt.code+`","message":"`+tt.msg+`","type":"Client"}`)
			})

			out, err := d.GetJobOutput(context.Background(), "demo-vault", "job-123")
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errs.IsRemoteCallFailed(err))
			assert.Equal(t, tt.reason, errs.ReasonOf(err))
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.True(t, errs.IsInvalidInput(err))
}
