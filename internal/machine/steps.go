package machine

import (
	"context"
	"fmt"
	"time"

	"github.com/petrijr/fxaflow/pkg/api"
)

// invoke runs the account operation named by state and folds the outcome
// into an internal event. Failures are classified, never returned: every
// error becomes a callError carrying its kind.
func (m *Machine) invoke(ctx context.Context, info api.EventInfo, state internalState) internalEvent {
	step := state.String()
	started := time.Now()
	m.observer.OnStepStart(ctx, info, step)

	ev, err := m.call(ctx, state)
	duration := time.Since(started)
	if err != nil {
		ev = callError{kind: m.classifier.Classify(ctx, step, err)}
	}
	m.observer.OnStepCompleted(ctx, info, step, ev.String(), err, duration)
	return ev
}

// call dispatches an internal state to the account method it names.
func (m *Machine) call(ctx context.Context, state internalState) (internalEvent, error) {
	switch st := state.(type) {
	case uninitializedGetAuthState:
		authState, err := m.account.AuthState(ctx)
		if err != nil {
			return nil, err
		}
		return getAuthStateSuccess{authState: authState}, nil
	case uninitializedEnsureDeviceCapabilities:
		if err := m.account.EnsureDeviceCapabilities(ctx, m.device.Capabilities); err != nil {
			return nil, err
		}
		return ensureDeviceCapabilitiesSuccess{}, nil
	case uninitializedCheckAuthorizationStatus, connectedCheckAuthorizationStatus:
		active, err := m.account.CheckAuthorizationStatus(ctx)
		if err != nil {
			return nil, err
		}
		return checkAuthorizationStatusSuccess{active: active}, nil
	case disconnectedBeginOAuthFlow:
		oauthURL, err := m.account.BeginOAuthFlow(ctx, st.scopes, st.entrypoint)
		if err != nil {
			return nil, err
		}
		return beginOAuthFlowSuccess{oauthURL: oauthURL}, nil
	case disconnectedBeginPairingFlow:
		oauthURL, err := m.account.BeginPairingFlow(ctx, st.pairingURL, st.scopes, st.entrypoint)
		if err != nil {
			return nil, err
		}
		return beginPairingFlowSuccess{oauthURL: oauthURL}, nil
	case authenticatingCompleteOAuthFlow:
		if err := m.account.CompleteOAuthFlow(ctx, st.code, st.state); err != nil {
			return nil, err
		}
		return completeOAuthFlowSuccess{}, nil
	case authenticatingInitializeDevice:
		if err := m.account.InitializeDevice(ctx, m.device.Name, m.device.Type, m.device.Capabilities); err != nil {
			return nil, err
		}
		return initializeDeviceSuccess{}, nil
	case connectedDisconnect:
		if err := m.account.Disconnect(ctx); err != nil {
			return nil, err
		}
		return disconnectSuccess{}, nil
	case authIssuesBeginOAuthFlow:
		oauthURL, err := m.account.BeginOAuthFlow(ctx, st.scopes, st.entrypoint)
		if err != nil {
			return nil, err
		}
		return beginOAuthFlowSuccess{oauthURL: oauthURL}, nil
	default:
		return nil, fmt.Errorf("no account operation for internal state %s", state)
	}
}
