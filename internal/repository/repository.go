// Package repository holds the pgx-backed entity store. Every repository
// follows the same contract: ListActive pages over rows whose deletion_time
// is unset, GetByID finds soft-deleted rows too, and SoftDelete only ever
// sets deletion_time once. Reference columns on flights and bookings are
// mutated exclusively through SetLinks, never by Update.
package repository

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
