package s3

import (
	"context"
	"errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/koustreak/glacier-inventory/internal/errs"
)

// mapError translates an S3 SDK error into a *errs.Error.
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
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
			return errs.Remote(errs.ReasonPermissionDenied, msg, err)
		case "SlowDown":
			return errs.Remote(errs.ReasonThrottled, msg, err)
		case "RequestTimeout":
			return errs.Remote(errs.ReasonTimeout, msg, err)
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status := respErr.HTTPStatusCode()
		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return errs.Remote(errs.ReasonPermissionDenied, msg, err)
		case status >= 500:
			return errs.Remote(errs.ReasonUnavailable, msg, err)
		case status >= 400:
			return errs.Remote(errs.ReasonInvalidRequest, msg, err)
		}
	}

	return errs.Remote(errs.ReasonTransport, msg, err)
}
