// Package archive defines the boundary to remote archival services.
//
// Drivers (currently Amazon S3 Glacier) implement JobOutputReader. Callers
// depend only on this package, never on a specific driver package.
//
// Usage:
//
//	cfg := archive.DefaultConfig("us-east-1")
//	client, err := glacier.New(ctx, cfg)
//	if err != nil { ... }
//
//	out, err := client.GetJobOutput(ctx, "demo-vault", jobID)
//	if err != nil { ... }
//	defer out.Close()
package archive

import (
	"context"
	"io"
)

// JobOutputReader fetches the output of a completed asynchronous job.
type JobOutputReader interface {
	// GetJobOutput opens a streaming handle to the output of jobID in vault.
	// The job must already be complete; no readiness check is performed.
	// The caller MUST call JobOutput.Close() after reading.
	GetJobOutput(ctx context.Context, vault, jobID string) (JobOutput, error)
}

// JobOutputInfo carries the response metadata that accompanies a job output.
type JobOutputInfo struct {
	// ContentType is the MIME type of the body (e.g. "application/json").
	ContentType string

	// Checksum is the SHA256 tree hash of the body, when the service provides one.
	Checksum string

	// ContentRange is set when only a byte range of the output was returned.
	ContentRange string

	// Status is the HTTP status code of the response.
	Status int
}

// JobOutput is a streaming handle to a job's output body.
type JobOutput interface {
	io.ReadCloser

	// Info returns the metadata for this output.
	Info() *JobOutputInfo
}

// NewJobOutput pairs a body with its metadata.
func NewJobOutput(body io.ReadCloser, info *JobOutputInfo) JobOutput {
	if info == nil {
		info = &JobOutputInfo{}
	}
	return &jobOutput{ReadCloser: body, info: info}
}

type jobOutput struct {
	io.ReadCloser
	info *JobOutputInfo
}

func (o *jobOutput) Info() *JobOutputInfo {
	return o.info
}
