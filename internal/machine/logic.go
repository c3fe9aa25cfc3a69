package machine

import (
	"fmt"

	"github.com/petrijr/fxaflow/pkg/api"
)

type transitionKind int

const (
	// kindProcess runs another internal sub-step.
	kindProcess transitionKind = iota
	// kindComplete finishes the event and adopts a new public state.
	kindComplete
	// kindCancel finishes the event keeping the previous public state.
	kindCancel
)

// stateTransition tells the driver what to do after one step. The report
// field carries an anomaly message for the driver to emit; producing it here
// keeps startTransition and transition free of side effects.
type stateTransition struct {
	kind   transitionKind
	next   internalState
	target api.FxaState
	report string
}

func processWith(next internalState) stateTransition {
	return stateTransition{kind: kindProcess, next: next}
}

func completeWith(target api.FxaState) stateTransition {
	return stateTransition{kind: kindComplete, target: target}
}

func completeReported(target api.FxaState, report string) stateTransition {
	return stateTransition{kind: kindComplete, target: target, report: report}
}

func canceled() stateTransition {
	return stateTransition{kind: kindCancel}
}

func invalidTransition(state, event fmt.Stringer) stateTransition {
	return stateTransition{
		kind:   kindCancel,
		report: fmt.Sprintf("invalid transition: %s -> %s", state, event),
	}
}

// startTransition decides the first internal sub-step for an externally
// submitted event, or cancels when the event is not valid for the current
// public state. Pure: no I/O, no side effects.
func startTransition(state api.FxaState, event api.FxaEvent) stateTransition {
	switch state.Kind {
	case api.StateUninitialized:
		switch event.(type) {
		case api.Initialize:
			return processWith(uninitializedGetAuthState{})
		}
	case api.StateDisconnected:
		switch ev := event.(type) {
		case api.BeginOAuthFlow:
			return processWith(disconnectedBeginOAuthFlow{
				scopes:     ev.Scopes,
				entrypoint: ev.Entrypoint,
			})
		case api.BeginPairingFlow:
			return processWith(disconnectedBeginPairingFlow{
				pairingURL: ev.PairingURL,
				scopes:     ev.Scopes,
				entrypoint: ev.Entrypoint,
			})
		}
	case api.StateAuthenticating:
		switch ev := event.(type) {
		case api.CompleteOAuthFlow:
			return processWith(authenticatingCompleteOAuthFlow{
				code:  ev.Code,
				state: ev.State,
			})
		case api.CancelOAuthFlow:
			// Abandoning the flow needs no account call.
			return completeWith(api.Disconnected())
		}
	case api.StateConnected:
		switch event.(type) {
		case api.Disconnect:
			return processWith(connectedDisconnect{})
		case api.CheckAuthorizationStatus:
			return processWith(connectedCheckAuthorizationStatus{})
		}
	case api.StateAuthIssues:
		// Pairing connects new devices only; it does not clear auth issues.
		switch ev := event.(type) {
		case api.BeginOAuthFlow:
			return processWith(authIssuesBeginOAuthFlow{
				scopes:     ev.Scopes,
				entrypoint: ev.Entrypoint,
			})
		}
	}
	return invalidTransition(state, event)
}

// transition decides what follows a completed sub-step given its outcome:
// another sub-step, a terminal public state, or cancellation. Unmatched
// (sub-step, outcome) pairs are logic defects; they cancel with an anomaly
// report rather than panic. Pure: no I/O, no side effects.
func transition(state internalState, event internalEvent) stateTransition {
	switch state.(type) {
	case uninitializedGetAuthState:
		switch ev := event.(type) {
		case getAuthStateSuccess:
			switch ev.authState {
			case api.AuthStateDisconnected:
				return completeWith(api.Disconnected())
			case api.AuthStateAuthIssues:
				// Auth issues found at startup still land in Connected,
				// matching legacy client behavior.
				return completeWith(api.Connected())
			case api.AuthStateConnected:
				return processWith(uninitializedEnsureDeviceCapabilities{})
			}
		}
	case uninitializedEnsureDeviceCapabilities:
		switch ev := event.(type) {
		case ensureDeviceCapabilitiesSuccess:
			return completeWith(api.Connected())
		case callError:
			if ev.kind == api.CallErrorAuth {
				return processWith(uninitializedCheckAuthorizationStatus{})
			}
			return completeWith(api.Disconnected())
		}
	case uninitializedCheckAuthorizationStatus:
		switch ev := event.(type) {
		case checkAuthorizationStatusSuccess:
			if ev.active {
				// An active check does not re-register device capabilities,
				// matching legacy client behavior.
				return completeWith(api.Connected())
			}
			return completeWith(api.AuthIssues())
		case callError:
			return completeWith(api.AuthIssues())
		}
	case disconnectedBeginOAuthFlow:
		switch ev := event.(type) {
		case beginOAuthFlowSuccess:
			return completeWith(api.Authenticating(ev.oauthURL))
		case callError:
			return canceled()
		}
	case disconnectedBeginPairingFlow:
		switch ev := event.(type) {
		case beginPairingFlowSuccess:
			return completeWith(api.Authenticating(ev.oauthURL))
		case callError:
			return canceled()
		}
	case authenticatingCompleteOAuthFlow:
		switch event.(type) {
		case completeOAuthFlowSuccess:
			return processWith(authenticatingInitializeDevice{})
		case callError:
			return canceled()
		}
	case authenticatingInitializeDevice:
		switch event.(type) {
		case initializeDeviceSuccess:
			return completeWith(api.Connected())
		case callError:
			return canceled()
		}
	case connectedCheckAuthorizationStatus:
		switch ev := event.(type) {
		case checkAuthorizationStatusSuccess:
			if ev.active {
				return completeWith(api.Connected())
			}
			return completeWith(api.Disconnected())
		case callError:
			return completeWith(api.Disconnected())
		}
	case connectedDisconnect:
		switch event.(type) {
		case disconnectSuccess:
			return completeWith(api.Disconnected())
		case callError:
			// Revocation failures do not block sign-out.
			return completeReported(api.Disconnected(), "call error after disconnect")
		}
	case authIssuesBeginOAuthFlow:
		switch ev := event.(type) {
		case beginOAuthFlowSuccess:
			return completeWith(api.Authenticating(ev.oauthURL))
		case callError:
			return canceled()
		}
	}
	return invalidTransition(state, event)
}
