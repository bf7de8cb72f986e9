package glacier

import (
	"context"
	"errors"
	"net/http"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/koustreak/glacier-inventory/internal/errs"
)

// mapError translates a Glacier SDK error into a *errs.Error.
// Every result is KindRemoteCallFailed; only the Reason varies.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Remote(errs.ReasonTimeout, msg, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ResourceNotFoundException":
			return errs.Remote(errs.ReasonNotFound, msg, err)
		case "InvalidParameterValueException":
			if jobNotReady(apiErr.ErrorMessage()) {
				return errs.Remote(errs.ReasonNotReady, msg, err)
			}
			return errs.Remote(errs.ReasonInvalidRequest, msg, err)
		case "MissingParameterValueException":
			return errs.Remote(errs.ReasonInvalidRequest, msg, err)
		case "AccessDeniedException", "UnrecognizedClientException",
			"MissingAuthenticationTokenException", "InvalidSignatureException",
			"ExpiredTokenException", "PolicyEnforcedException":
			return errs.Remote(errs.ReasonPermissionDenied, msg, err)
		case "ThrottlingException", "LimitExceededException", "SlowDown":
			return errs.Remote(errs.ReasonThrottled, msg, err)
		case "RequestTimeoutException":
			return errs.Remote(errs.ReasonTimeout, msg, err)
		case "ServiceUnavailableException", "InsufficientCapacityException":
			return errs.Remote(errs.ReasonUnavailable, msg, err)
		}
	}

	// Codes we don't know still carry an HTTP status.
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status := respErr.HTTPStatusCode()
		switch {
		case status == http.StatusNotFound:
			return errs.Remote(errs.ReasonNotFound, msg, err)
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return errs.Remote(errs.ReasonPermissionDenied, msg, err)
		case status == http.StatusTooManyRequests:
			return errs.Remote(errs.ReasonThrottled, msg, err)
		case status >= 500:
			return errs.Remote(errs.ReasonUnavailable, msg, err)
		case status >= 400:
			return errs.Remote(errs.ReasonInvalidRequest, msg, err)
		}
	}

	return errs.Remote(errs.ReasonTransport, msg, err)
}

// jobNotReady recognises the 400 Glacier answers while a job is still running.
func jobNotReady(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "not currently available") ||
		strings.Contains(m, "in progress") ||
		strings.Contains(m, "not yet complete")
}
