package minio

import (
	"context"
	"errors"
	"net/http"

	miniogo "github.com/minio/minio-go/v7"

	"github.com/koustreak/glacier-inventory/internal/errs"
)

// mapError translates a MinIO SDK error into a *errs.Error.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Remote(errs.ReasonTimeout, msg, err)
	}

	// MinIO SDK exposes a typed ErrorResponse for S3-protocol errors
	var resp miniogo.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "NoSuchBucket":
			return errs.Remote(errs.ReasonNotFound, msg, err)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return errs.Remote(errs.ReasonPermissionDenied, msg, err)
		case "SlowDown":
			return errs.Remote(errs.ReasonThrottled, msg, err)
		case "RequestTimeout":
			return errs.Remote(errs.ReasonTimeout, msg, err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return errs.Remote(errs.ReasonNotFound, msg, err)
		case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusUnauthorized:
			return errs.Remote(errs.ReasonPermissionDenied, msg, err)
		case resp.StatusCode >= 500:
			return errs.Remote(errs.ReasonUnavailable, msg, err)
		case resp.StatusCode >= 400:
			return errs.Remote(errs.ReasonInvalidRequest, msg, err)
		}
	}

	return errs.Remote(errs.ReasonTransport, msg, err)
}
