package machine

import "github.com/petrijr/fxaflow/pkg/api"

// Internal states name the account call in flight while moving between two
// public states. Together with the public states they form a hierarchical
// machine: each public state owns the sub-states that can run under it, and
// the same account operation appearing under two owners is a distinct
// sub-state, because the outcome mapping depends on the owner.
//
// A value only exists while ProcessEvent holds it as the current step; it is
// never stored and never observable outside one call.
type internalState interface {
	// String returns the owning state and step name only, e.g.
	// "Uninitialized(GetAuthState)"; payloads never appear.
	String() string

	isInternalState()
}

type uninitializedGetAuthState struct{}

type uninitializedEnsureDeviceCapabilities struct{}

type uninitializedCheckAuthorizationStatus struct{}

type disconnectedBeginOAuthFlow struct {
	scopes     []string
	entrypoint string
}

type disconnectedBeginPairingFlow struct {
	pairingURL string
	scopes     []string
	entrypoint string
}

type authenticatingCompleteOAuthFlow struct {
	code  string
	state string
}

type authenticatingInitializeDevice struct{}

type connectedCheckAuthorizationStatus struct{}

type connectedDisconnect struct{}

type authIssuesBeginOAuthFlow struct {
	scopes     []string
	entrypoint string
}

func (uninitializedGetAuthState) isInternalState()             {}
func (uninitializedEnsureDeviceCapabilities) isInternalState() {}
func (uninitializedCheckAuthorizationStatus) isInternalState() {}
func (disconnectedBeginOAuthFlow) isInternalState()            {}
func (disconnectedBeginPairingFlow) isInternalState()          {}
func (authenticatingCompleteOAuthFlow) isInternalState()       {}
func (authenticatingInitializeDevice) isInternalState()        {}
func (connectedCheckAuthorizationStatus) isInternalState()     {}
func (connectedDisconnect) isInternalState()                   {}
func (authIssuesBeginOAuthFlow) isInternalState()              {}

func (uninitializedGetAuthState) String() string { return "Uninitialized(GetAuthState)" }
func (uninitializedEnsureDeviceCapabilities) String() string {
	return "Uninitialized(EnsureDeviceCapabilities)"
}
func (uninitializedCheckAuthorizationStatus) String() string {
	return "Uninitialized(CheckAuthorizationStatus)"
}
func (disconnectedBeginOAuthFlow) String() string      { return "Disconnected(BeginOAuthFlow)" }
func (disconnectedBeginPairingFlow) String() string    { return "Disconnected(BeginPairingFlow)" }
func (authenticatingCompleteOAuthFlow) String() string { return "Authenticating(CompleteOAuthFlow)" }
func (authenticatingInitializeDevice) String() string  { return "Authenticating(InitializeDevice)" }
func (connectedCheckAuthorizationStatus) String() string {
	return "Connected(CheckAuthorizationStatus)"
}
func (connectedDisconnect) String() string      { return "Connected(Disconnect)" }
func (authIssuesBeginOAuthFlow) String() string { return "AuthIssues(BeginOAuthFlow)" }

// Internal events are the outcomes of the account calls named by internal
// states: one success variant per step, plus a single classified failure
// variant. The transition tables consume them.
type internalEvent interface {
	// String returns the outcome name only; payloads never appear.
	String() string

	isInternalEvent()
}

type getAuthStateSuccess struct {
	authState api.AuthState
}

type beginOAuthFlowSuccess struct {
	oauthURL string
}

type beginPairingFlowSuccess struct {
	oauthURL string
}

type completeOAuthFlowSuccess struct{}

type initializeDeviceSuccess struct{}

type ensureDeviceCapabilitiesSuccess struct{}

type checkAuthorizationStatusSuccess struct {
	active bool
}

type disconnectSuccess struct{}

// callError is the sole failure outcome: the machine folds every account
// error into one of the two kinds before the tables ever see it.
type callError struct {
	kind api.CallErrorKind
}

func (getAuthStateSuccess) isInternalEvent()             {}
func (beginOAuthFlowSuccess) isInternalEvent()           {}
func (beginPairingFlowSuccess) isInternalEvent()         {}
func (completeOAuthFlowSuccess) isInternalEvent()        {}
func (initializeDeviceSuccess) isInternalEvent()         {}
func (ensureDeviceCapabilitiesSuccess) isInternalEvent() {}
func (checkAuthorizationStatusSuccess) isInternalEvent() {}
func (disconnectSuccess) isInternalEvent()               {}
func (callError) isInternalEvent()                       {}

func (getAuthStateSuccess) String() string             { return "GetAuthStateSuccess" }
func (beginOAuthFlowSuccess) String() string           { return "BeginOAuthFlowSuccess" }
func (beginPairingFlowSuccess) String() string         { return "BeginPairingFlowSuccess" }
func (completeOAuthFlowSuccess) String() string        { return "CompleteOAuthFlowSuccess" }
func (initializeDeviceSuccess) String() string         { return "InitializeDeviceSuccess" }
func (ensureDeviceCapabilitiesSuccess) String() string { return "EnsureDeviceCapabilitiesSuccess" }
func (checkAuthorizationStatusSuccess) String() string { return "CheckAuthorizationStatusSuccess" }
func (disconnectSuccess) String() string               { return "DisconnectSuccess" }
func (callError) String() string                       { return "CallError" }
