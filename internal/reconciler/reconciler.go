package reconciler

import "context"

// Client sweeps the orphan ledger: files left in remote storage by failed
// submissions are deleted, stranded accounts are surfaced for review.
type Client interface {
	// SweepFileOrphans deletes unresolved orphaned files and marks the
	// ledger entries resolved.
	SweepFileOrphans(ctx context.Context) error

	// ReportAccountOrphans logs open account orphans. Accounts are never
	// deleted automatically.
	ReportAccountOrphans(ctx context.Context) error

	// ScheduleSweeps registers the recurring sweep job.
	ScheduleSweeps(ctx context.Context) error
}
