package dashboard

// State is the orchestrator's workflow position. Every store-facing
// operation checks the current state before acting and moves it forward
// on success.
type State int

const (
	// StateIdle means no selection is being built.
	StateIdle State = iota
	// StateSelecting means the user is building a pending selection set.
	StateSelecting
	// StateAwaitingShimInput means a coupelle pair with no recorded cale
	// thickness is waiting for the user to supply one.
	StateAwaitingShimInput
	// StateAwaitingShimAck means a recorded cale thickness exists and is
	// waiting for the user to acknowledge it.
	StateAwaitingShimAck
	// StateAwaitingThresholdAck means one tool crossed the maintenance
	// ceiling and its check-out is suspended pending acknowledgement.
	StateAwaitingThresholdAck
	// StateAwaitingCriticalAck means the batch contains at least one
	// critical tool and the whole batch is suspended.
	StateAwaitingCriticalAck
	// StateCommitting means tuples are being written to the store.
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateAwaitingShimInput:
		return "awaiting_shim_input"
	case StateAwaitingShimAck:
		return "awaiting_shim_ack"
	case StateAwaitingThresholdAck:
		return "awaiting_threshold_ack"
	case StateAwaitingCriticalAck:
		return "awaiting_critical_ack"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}
