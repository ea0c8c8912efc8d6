package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields shared by every persisted record. DeletionTime is
// nil while the row is active; once a row is soft-deleted it keeps its first
// deletion timestamp forever, no operation clears it.
type Base struct {
	ID           uuid.UUID
	CreationTime time.Time
	UpdateTime   time.Time
	DeletionTime *time.Time
}

// Active reports whether the row has not been soft-deleted.
func (b Base) Active() bool { return b.DeletionTime == nil }
