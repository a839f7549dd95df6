package domain

import "github.com/google/uuid"

// Selection is a transient, client-side pending check-out entry. It lives
// only for the duration of one validation workflow and is never persisted.
// SlotIndex nil means "every slot of the catalog entry".
type Selection struct {
	ItemID    uuid.UUID
	Kind      ToolKind
	SlotIndex *int
	Quantity  int
	Assise    *string
	Axe       *string
}

// Matches reports whether two selections identify the same tuple:
// same item, kind, slot index and assise/axe sub-slot.
func (s Selection) Matches(other Selection) bool {
	return s.ItemID == other.ItemID &&
		s.Kind == other.Kind &&
		intPtrEq(s.SlotIndex, other.SlotIndex) &&
		strPtrEq(s.Assise, other.Assise) &&
		strPtrEq(s.Axe, other.Axe)
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
