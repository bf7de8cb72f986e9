// Package errs provides the unified error type used across glacier-inventory.
//
// Every subsystem (archive drivers, bucket drivers, the inventory fetcher)
// wraps its native errors into *errs.Error before returning them. Callers use
// the Is* predicates to handle errors without importing SDK-specific packages.
//
// Usage:
//
//	// In a driver — wrap native errors with a reason:
//	return errs.Remote(errs.ReasonNotFound, "job output unavailable", apiErr)
//
//	// In a caller — check error kind:
//	if errs.IsNotReady(err) {
//	    log.Println("job still running, try again later")
//	}
package errs

import (
	"errors"
	"fmt"
)

// Kind is the coarse failure category of an operation.
type Kind int

const (
	KindUnknown          Kind = iota
	KindInvalidInput          // bad arguments from the caller, nothing was sent
	KindRemoteCallFailed      // transport, auth or service-side failure
	KindMalformedPayload      // body received but not decodable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindRemoteCallFailed:
		return "remote_call_failed"
	case KindMalformedPayload:
		return "malformed_payload"
	default:
		return "unknown"
	}
}

// Reason refines KindRemoteCallFailed using the service's error model.
// It is ReasonNone for every other kind.
type Reason int

const (
	ReasonNone             Reason = iota
	ReasonNotFound                // unknown vault or job
	ReasonNotReady                // job exists but its output is not available yet
	ReasonPermissionDenied        // access denied / bad credentials
	ReasonThrottled               // rate limited by the service
	ReasonUnavailable             // service-side 5xx
	ReasonTimeout                 // context deadline / cancellation / request timeout
	ReasonInvalidRequest          // rejected by the service as malformed
	ReasonTransport               // network failure or unclassified error
)

func (r Reason) String() string {
	switch r {
	case ReasonNotFound:
		return "not_found"
	case ReasonNotReady:
		return "not_ready"
	case ReasonPermissionDenied:
		return "permission_denied"
	case ReasonThrottled:
		return "throttled"
	case ReasonUnavailable:
		return "unavailable"
	case ReasonTimeout:
		return "timeout"
	case ReasonInvalidRequest:
		return "invalid_request"
	case ReasonTransport:
		return "transport"
	default:
		return "none"
	}
}

// Error is the single error type returned by all subsystems.
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Cause   error // original SDK-level error, preserved for logging
}

func (e *Error) Error() string {
	tag := e.Kind.String()
	if e.Reason != ReasonNone {
		tag += "/" + e.Reason.String()
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", tag, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", tag, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// --- Constructors ---

// New creates an *Error with the given kind and message and no cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// Remote creates a KindRemoteCallFailed error with the given reason.
func Remote(reason Reason, msg string, cause error) *Error {
	return &Error{Kind: KindRemoteCallFailed, Reason: reason, Message: msg, Cause: cause}
}

// --- Predicates ---

// IsInvalidInput reports whether err was caused by bad input from the caller.
func IsInvalidInput(err error) bool {
	return kindOf(err) == KindInvalidInput
}

// IsRemoteCallFailed reports whether err is any failure at the transport,
// auth or service layer, whatever its reason.
func IsRemoteCallFailed(err error) bool {
	return kindOf(err) == KindRemoteCallFailed
}

// IsMalformedPayload reports whether a response body could not be decoded.
func IsMalformedPayload(err error) bool {
	return kindOf(err) == KindMalformedPayload
}

// IsNotFound reports whether the vault or job does not exist.
func IsNotFound(err error) bool {
	return ReasonOf(err) == ReasonNotFound
}

// IsNotReady reports whether the job exists but has not completed.
func IsNotReady(err error) bool {
	return ReasonOf(err) == ReasonNotReady
}

// IsPermissionDenied reports whether err is an access control failure.
func IsPermissionDenied(err error) bool {
	return ReasonOf(err) == ReasonPermissionDenied
}

// IsThrottled reports whether the service rejected the call for rate reasons.
func IsThrottled(err error) bool {
	return ReasonOf(err) == ReasonThrottled
}

// IsTimeout reports whether err was caused by a deadline or cancellation.
func IsTimeout(err error) bool {
	return ReasonOf(err) == ReasonTimeout
}

// KindOf extracts the Kind from any error in the chain.
func KindOf(err error) Kind {
	return kindOf(err)
}

// ReasonOf extracts the Reason from any error in the chain.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ReasonNone
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
