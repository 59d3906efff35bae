package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecord is one immutable entry of the inventory audit trail.
// Records are append-only and intentionally not foreign-keyed to products:
// the history of a deleted product remains queryable.
type InventoryRecord struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	Action         InventoryAction
	QuantityChange int
	PerformedBy    string
	Notes          *string
	CreatedAt      time.Time
}
