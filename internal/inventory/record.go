package inventory

import (
	"time"

	"github.com/koustreak/glacier-inventory/internal/errs"
)

// JobReference identifies a previously submitted inventory-retrieval job.
type JobReference struct {
	VaultName string
	JobID     string
}

// Validate rejects references that cannot address a job.
func (r JobReference) Validate() error {
	if r.VaultName == "" {
		return errs.New(errs.KindInvalidInput, "vault name is required")
	}
	if r.JobID == "" {
		return errs.New(errs.KindInvalidInput, "job id is required")
	}
	return nil
}

// Record is the decoded output of an inventory-retrieval job.
// Field values are copied from the payload as-is.
type Record struct {
	VaultARN      string         `json:"VaultARN" yaml:"vault_arn"`
	InventoryDate time.Time      `json:"InventoryDate,omitzero" yaml:"inventory_date,omitempty"`
	ArchiveList   []ArchiveEntry `json:"ArchiveList" yaml:"archives"`
}

// ArchiveEntry describes one archive stored in the vault.
type ArchiveEntry struct {
	ArchiveID          string    `json:"ArchiveId" yaml:"archive_id"`
	ArchiveDescription string    `json:"ArchiveDescription,omitempty" yaml:"description,omitempty"`
	CreationDate       time.Time `json:"CreationDate,omitzero" yaml:"creation_date,omitempty"`
	Size               int64     `json:"Size" yaml:"size"`
	SHA256TreeHash     string    `json:"SHA256TreeHash,omitempty" yaml:"sha256_tree_hash,omitempty"`
}

// Len returns the number of archives in the inventory.
func (r *Record) Len() int {
	return len(r.ArchiveList)
}

// TotalSize sums the byte size of every archive.
func (r *Record) TotalSize() int64 {
	var total int64
	for _, a := range r.ArchiveList {
		total += a.Size
	}
	return total
}
