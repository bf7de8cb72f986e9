// Package inventory materializes the results of inventory-retrieval jobs.
//
// A Fetcher issues one GetJobOutput call per Fetch and decodes the streamed
// body into a Record. It keeps no state between calls, performs no retries
// and does not log; both are left to the caller.
//
// Usage:
//
//	client, err := glacier.New(ctx, archive.DefaultConfig("us-east-1"))
//	if err != nil { ... }
//
//	rec, err := inventory.NewFetcher(client).Fetch(ctx, inventory.JobReference{
//	    VaultName: "demo-vault",
//	    JobID:     jobID,
//	})
//	switch {
//	case errs.IsNotReady(err):      // job still running
//	case errs.IsRemoteCallFailed(err): // any other service failure
//	case errs.IsMalformedPayload(err): // body was not an inventory document
//	}
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/koustreak/glacier-inventory/internal/archive"
	"github.com/koustreak/glacier-inventory/internal/errs"
)

// Fetcher retrieves and decodes inventory job results.
// It is safe for concurrent use if its client is.
type Fetcher struct {
	client archive.JobOutputReader
}

// NewFetcher returns a Fetcher that reads job output through client.
func NewFetcher(client archive.JobOutputReader) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch retrieves the output of the completed job ref and decodes it.
// The job must already be complete; Fetch does not poll.
func (f *Fetcher) Fetch(ctx context.Context, ref JobReference) (*Record, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	out, err := f.client.GetJobOutput(ctx, ref.VaultName, ref.JobID)
	if err != nil {
		return nil, remoteError(err, "failed to get job output")
	}
	defer out.Close()

	data, err := io.ReadAll(out)
	if err != nil {
		return nil, remoteError(err, "failed to read job output")
	}

	return decode(data)
}

// decode parses a JSON inventory document. Anything other than a single
// JSON object is rejected.
func decode(data []byte) (*Record, error) {
	var rec *Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errs.Wrap(errs.KindMalformedPayload, "failed to decode inventory", err)
	}
	if rec == nil {
		return nil, errs.New(errs.KindMalformedPayload, "inventory document is null")
	}
	return rec, nil
}

// remoteError makes sure every client failure surfaces as KindRemoteCallFailed,
// keeping the reason a driver already assigned.
func remoteError(err error, msg string) error {
	var e *errs.Error
	if errors.As(err, &e) && e.Kind == errs.KindRemoteCallFailed {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Remote(errs.ReasonTimeout, msg, err)
	}
	return errs.Remote(errs.ReasonTransport, msg, err)
}
