package domain

import (
	"time"

	"github.com/google/uuid"
)

// Shim thickness bounds in millimetres.
const (
	MinShimThickness = 0
	MaxShimThickness = 10
)

// ShimRecord is a row of historique_cale: the shim (cale) thickness recorded
// for an assise/axe coupelle pair. The store does not enforce uniqueness of
// the pair; the shim registry enforces check-then-insert at the application
// layer, so at most one canonical thickness is expected per pair.
type ShimRecord struct {
	ID             uuid.UUID
	AmortisseurRef string
	Assise         string
	Axe            string
	ThicknessMm    int
	PersonName     string
	UserID         uuid.UUID
	RecordedAt     time.Time
}

// ShimFilter narrows admin cale listings.
type ShimFilter struct {
	From   *time.Time
	To     *time.Time
	Assise *string
	Axe    *string
}

// ClampThickness forces a thickness into the accepted [0,max] mm range.
// MaxShimThickness is the workshop default for max.
func ClampThickness(mm, max int) int {
	if mm < MinShimThickness {
		return MinShimThickness
	}
	if mm > max {
		return max
	}
	return mm
}
