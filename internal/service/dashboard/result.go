package dashboard

import (
	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// ToggleResult reports the outcome of a selection toggle.
type ToggleResult struct {
	// Added is true when the selection entered the pending set.
	Added bool
	// Removed is true when an identical selection was already pending and
	// was removed instead (toggle semantics).
	Removed bool
	// ShimPromptPending is true when the coupelle pair has no recorded
	// cale and the workflow now awaits a thickness input.
	ShimPromptPending bool
	// ShimExisting carries the already-recorded cale for the pair; the
	// workflow awaits acknowledgement and no new record will be written.
	ShimExisting *domain.ShimRecord
}

// ThresholdPrompt describes a tool whose check-out crossed the maintenance
// ceiling and now awaits acknowledgement.
type ThresholdPrompt struct {
	Reference    string
	ToolRef      string
	Requested    int
	CurrentTotal int
}

// TupleOutcome is the per-tool result of a commit pass. Err is nil on
// success; a failed tuple never aborts its siblings.
type TupleOutcome struct {
	Reference string
	ToolRef   string
	Location  *string
	Quantity  int
	Err       error
}

// CommitOutcome reports a (possibly suspended) check-out commit.
type CommitOutcome struct {
	// Results holds the tuples processed so far, in selection order.
	Results []TupleOutcome
	// Critical lists the critical tools that suspended the whole batch.
	// Non-empty means nothing was written and the workflow awaits one
	// combined acknowledgement.
	Critical []domain.CriticalTool
	// Threshold is set when one tuple crossed the maintenance ceiling.
	// Tuples already in Results stay committed; the workflow awaits a
	// per-tool acknowledgement for this one.
	Threshold *ThresholdPrompt
	// Done is true when every tuple has been resolved and the pending
	// selection set was cleared.
	Done bool
}

// CheckinResult reports a completed check-in.
type CheckinResult struct {
	Entry domain.EntryHistoryItem
}

// PatteSearchResult is a catalog hit annotated with live availability.
type PatteSearchResult struct {
	Tool domain.PatteTool
	// SlotAvailable reports, per slot (index 0..2), whether the slot has a
	// tool code that is not currently checked out. Empty slots are false.
	SlotAvailable [domain.MaxSlots]bool
	// HasHistory is true when at least one of the tool's codes appears in
	// the exit log.
	HasHistory bool
}

// CoupelleSearchResult is a catalog hit annotated with live availability.
type CoupelleSearchResult struct {
	Tool domain.CoupelleTool
	// AssiseAvailable and AxeAvailable report per-slot availability of the
	// assise and axe sub-tools.
	AssiseAvailable [domain.MaxSlots]bool
	AxeAvailable    [domain.MaxSlots]bool
	HasHistory      bool
}
