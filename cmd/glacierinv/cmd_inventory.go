package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koustreak/glacier-inventory/internal/archive/glacier"
	"github.com/koustreak/glacier-inventory/internal/errs"
	"github.com/koustreak/glacier-inventory/internal/inventory"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory VAULT JOB_ID",
	Short: "Print the result of a completed inventory-retrieval job",
	Long: `Fetches the output of an inventory-retrieval job that has already completed
and prints the vault ARN and every archive's size and ID.

The job must have been started beforehand (e.g. with
"aws glacier initiate-job") and must have finished; this command does not
wait for it.

Examples:
  glacierinv inventory demo-vault <job-id>
  glacierinv inventory demo-vault <job-id> --output json`,
	Args: cobra.ExactArgs(2),
	RunE: runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	ref := inventory.JobReference{VaultName: args[0], JobID: args[1]}
	jobLog := log.With().Str("vault", ref.VaultName).Str("job_id", ref.JobID).Logger()

	client, err := glacier.New(ctx, &cfg.Archive)
	if err != nil {
		return fmt.Errorf("create glacier client: %w", err)
	}

	jobLog.Debug("fetching inventory job output")
	rec, err := inventory.NewFetcher(client).Fetch(ctx, ref)
	if err != nil {
		if errs.IsNotReady(err) {
			jobLog.Warn("job has not completed yet")
		}
		return fmt.Errorf("retrieve inventory: %w", err)
	}

	jobLog.With().
		Str("vault_arn", rec.VaultARN).
		Int("archives", rec.Len()).
		Int64("total_bytes", rec.TotalSize()).
		Logger().
		Info("inventory retrieved")

	r, _ := newRenderer(outputStyle)
	return r.inventory(cmd.OutOrStdout(), rec)
}
