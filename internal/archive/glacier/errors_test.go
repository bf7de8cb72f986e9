package glacier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"

	"github.com/koustreak/glacier-inventory/internal/errs"
)

func responseError(status int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
			Err:      errors.New("http failure"),
		},
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason errs.Reason
	}{
		{
			name:   "unknown job",
			err:    &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "The job ID was not found: job-123"},
			reason: errs.ReasonNotFound,
		},
		{
			name:   "job still running",
			err:    &smithy.GenericAPIError{Code: "InvalidParameterValueException", Message: "The job is not currently available for download: job-123"},
			reason: errs.ReasonNotReady,
		},
		{
			name:   "other bad parameter",
			err:    &smithy.GenericAPIError{Code: "InvalidParameterValueException", Message: "Invalid vault name"},
			reason: errs.ReasonInvalidRequest,
		},
		{
			name:   "access denied",
			err:    &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "User is not authorized"},
			reason: errs.ReasonPermissionDenied,
		},
		{
			name:   "unknown credentials",
			err:    &smithy.GenericAPIError{Code: "UnrecognizedClientException"},
			reason: errs.ReasonPermissionDenied,
		},
		{
			name:   "throttled",
			err:    &smithy.GenericAPIError{Code: "ThrottlingException"},
			reason: errs.ReasonThrottled,
		},
		{
			name:   "service unavailable",
			err:    &smithy.GenericAPIError{Code: "ServiceUnavailableException"},
			reason: errs.ReasonUnavailable,
		},
		{
			name:   "deadline exceeded",
			err:    fmt.Errorf("operation error Glacier: GetJobOutput: %w", context.DeadlineExceeded),
			reason: errs.ReasonTimeout,
		},
		{
			name:   "canceled",
			err:    context.Canceled,
			reason: errs.ReasonTimeout,
		},
		{
			name:   "bare 404",
			err:    responseError(http.StatusNotFound),
			reason: errs.ReasonNotFound,
		},
		{
			name:   "bare 403",
			err:    responseError(http.StatusForbidden),
			reason: errs.ReasonPermissionDenied,
		},
		{
			name:   "bare 503",
			err:    responseError(http.StatusServiceUnavailable),
			reason: errs.ReasonUnavailable,
		},
		{
			name:   "connection refused",
			err:    errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
			reason: errs.ReasonTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err, "failed to get job output")

			assert.Equal(t, errs.KindRemoteCallFailed, got.Kind)
			assert.Equal(t, tt.reason, got.Reason)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, mapError(nil, "noop"))
}
