package audit

import "context"

// Repository persists and retrieves audit records. Records are upserted
// keyed by slug with last-write-wins semantics; no history is retained.
type Repository interface {
	// Save upserts a record keyed by its slug.
	Save(ctx context.Context, rec *Record) error

	// GetBySlug returns the record for slug; missing slugs yield the shared
	// ErrAuditNotFound sentinel.
	GetBySlug(ctx context.Context, slug string) (*Record, error)

	// ListRecent returns up to limit records, most recently completed first.
	ListRecent(ctx context.Context, limit int) ([]*Record, error)
}
