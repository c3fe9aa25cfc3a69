package api

// StateKind names an FxaState variant.
type StateKind string

const (
	// StateUninitialized is the construction state; the machine must be
	// initialized via the Initialize event before anything else.
	StateUninitialized StateKind = "Uninitialized"

	// StateDisconnected means the user has not connected to the account
	// service, or has logged out.
	StateDisconnected StateKind = "Disconnected"

	// StateAuthenticating means the user is in the middle of an OAuth flow.
	StateAuthenticating StateKind = "Authenticating"

	// StateConnected means the user is connected to the account service.
	StateConnected StateKind = "Connected"

	// StateAuthIssues means the user was connected, but issues were observed
	// with the auth tokens. The user needs to reauthenticate before the
	// account can be used again.
	StateAuthIssues StateKind = "AuthIssues"
)

// FxaState is the externally observable state of a StateMachine.
//
// Exactly one state is current at any time, and transitions are atomic from
// the caller's perspective. FxaState values are comparable; the zero value is
// not a valid state, use the constructors.
type FxaState struct {
	Kind StateKind

	// OAuthURL is set only while Kind is StateAuthenticating. Navigate the
	// user to this URL so they can sign in and authorize the client.
	OAuthURL string
}

// Uninitialized returns the state a new machine starts in.
func Uninitialized() FxaState { return FxaState{Kind: StateUninitialized} }

// Disconnected returns the signed-out state.
func Disconnected() FxaState { return FxaState{Kind: StateDisconnected} }

// Authenticating returns the in-flow state carrying the URL the user must
// visit to continue.
func Authenticating(oauthURL string) FxaState {
	return FxaState{Kind: StateAuthenticating, OAuthURL: oauthURL}
}

// Connected returns the signed-in state.
func Connected() FxaState { return FxaState{Kind: StateConnected} }

// AuthIssues returns the needs-reauthentication state.
func AuthIssues() FxaState { return FxaState{Kind: StateAuthIssues} }

// String returns the state name only. The OAuth URL is never included, so
// states are safe to log as-is.
func (s FxaState) String() string {
	return string(s.Kind)
}
