package domain

import (
	"time"

	"github.com/google/uuid"
)

// CriticalTool is a row of outil_critique. Presence of a row for a tool
// reference means every check-out of that tool must pass through the
// cleaning-confirmation gate.
type CriticalTool struct {
	ID           uuid.UUID
	Reference    string
	ComposantRef *string
	ToolRef      string
	Location     *string
	CreatedAt    time.Time
}
