package api

import "context"

// StateMachine is the high-level account lifecycle API: submit events, read
// the resulting public state.
type StateMachine interface {
	// State returns a copy of the current public state. It performs no
	// account operations, but waits for an in-flight ProcessEvent call to
	// finish.
	State() FxaState

	// ProcessEvent submits an event (login, logout, etc.) and drives the
	// corresponding account operations to a terminal outcome.
	//
	// On success it returns the new public state. On error the stored state
	// is unchanged; the only errors returned are ErrInvalidStateTransition
	// and ErrStateMachineLogic (wrapped). Account failures are never passed
	// through.
	//
	// Calls are serialized: at most one ProcessEvent is in flight at a time,
	// and concurrent callers each see a strictly sequential stream of
	// transitions. ProcessEvent must not be called from inside an Account
	// method; doing so deadlocks.
	ProcessEvent(ctx context.Context, event FxaEvent) (FxaState, error)
}
