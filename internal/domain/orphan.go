package domain

import "time"

// OrphanKind names the kind of remote object left behind by a partially
// failed workflow.
type OrphanKind string

const (
	// OrphanKindFile is an uploaded storage file whose post document was
	// never created.
	OrphanKindFile OrphanKind = "file"
	// OrphanKindAccount is a created account whose profile document was
	// never created.
	OrphanKindAccount OrphanKind = "account"
)

// Orphan is one ledger entry for an uncompensated remote side effect. The
// hot path never rolls back; it records the leftover here for the
// reconciler (files) or manual review (accounts).
type Orphan struct {
	ID         int64
	Kind       OrphanKind
	RemoteID   string
	BucketID   string
	Note       string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
