package domain

import (
	"time"

	"github.com/google/uuid"
)

// InProgressTool is a row of outils_en_cours: a tool currently checked out.
// Created by a successful sortie, deleted by the matching entree. Its
// existence is the sole signal that a tool is not available.
type InProgressTool struct {
	ID          uuid.UUID
	Reference   string
	ToolRef     string
	Location    *string
	PersonName  string
	Activity    ActivityKind
	Quantity    int
	CreatedBy   uuid.UUID
	OperationAt time.Time
}

// HistoryItem is an append-only exit-log row (table historique), written at
// check-out time. Quantity carries the value requested for this sortie; the
// threshold evaluator reads the most recent row's quantity as the running
// total for the tool.
type HistoryItem struct {
	ID          uuid.UUID
	Reference   string
	ToolRef     string
	Location    *string
	PersonName  string
	Activity    ActivityKind
	Quantity    int
	CreatedBy   uuid.UUID
	OperationAt time.Time
}

// HistoryFilter narrows admin exit-log listings.
type HistoryFilter struct {
	From      *time.Time
	To        *time.Time
	Reference *string // case-insensitive substring on reference
	Ascending bool
	Limit     uint64
}

// EntryHistoryItem is an append-only entry-log row (table historique_entree),
// written at check-in time. Entry rows carry no activity kind.
type EntryHistoryItem struct {
	ID          uuid.UUID
	Reference   string
	ToolRef     string
	Location    *string
	PersonName  string
	Quantity    int
	CreatedBy   uuid.UUID
	OperationAt time.Time
}
