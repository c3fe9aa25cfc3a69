package api

// FxaEvent is a request submitted to StateMachine.ProcessEvent.
//
// The set of events is closed: the variants in this package are the only
// implementations. Every event's String method returns the event name only,
// never its payload, so events are safe to log as-is.
type FxaEvent interface {
	// String returns the event name without any payload.
	String() string

	isFxaEvent()
}

// Initialize boots the state machine. It must be the first event sent; it
// inspects the stored credentials and lands in Disconnected, Connected, or
// AuthIssues.
type Initialize struct{}

// BeginOAuthFlow starts an OAuth sign-in.
//
// On success the machine transitions to Authenticating; the next step is to
// navigate the user to the state's OAuthURL and let them sign in and
// authorize the client.
type BeginOAuthFlow struct {
	// Scopes are the OAuth scopes to request, in order.
	Scopes []string

	// Entrypoint labels the UI surface that initiated the flow, for
	// analytics.
	Entrypoint string
}

// BeginPairingFlow starts an OAuth sign-in from a pairing code URL, e.g. a
// scanned QR code linking a new device.
//
// On success the machine transitions to Authenticating, exactly like
// BeginOAuthFlow.
type BeginPairingFlow struct {
	// PairingURL is the URL obtained from the pairing code.
	PairingURL string

	Scopes     []string
	Entrypoint string
}

// CompleteOAuthFlow finishes an OAuth sign-in.
//
// Send this after the user has navigated the OAuth flow and reached the
// redirect URI; extract Code and State from its query parameters. On success
// the machine transitions to Connected.
type CompleteOAuthFlow struct {
	Code  string
	State string
}

// CancelOAuthFlow abandons an in-progress OAuth flow, returning to
// Disconnected so the process can begin again.
type CancelOAuthFlow struct{}

// CheckAuthorizationStatus double-checks a connected account's tokens.
//
// Send this when issues are detected with the auth tokens. If the server
// confirms the issues, the machine transitions to AuthIssues; from there a
// new OAuth flow reconnects the user.
type CheckAuthorizationStatus struct{}

// Disconnect logs the user out. The machine transitions to Disconnected.
type Disconnect struct{}

func (Initialize) isFxaEvent()               {}
func (BeginOAuthFlow) isFxaEvent()           {}
func (BeginPairingFlow) isFxaEvent()         {}
func (CompleteOAuthFlow) isFxaEvent()        {}
func (CancelOAuthFlow) isFxaEvent()          {}
func (CheckAuthorizationStatus) isFxaEvent() {}
func (Disconnect) isFxaEvent()               {}

func (Initialize) String() string               { return "Initialize" }
func (BeginOAuthFlow) String() string           { return "BeginOAuthFlow" }
func (BeginPairingFlow) String() string         { return "BeginPairingFlow" }
func (CompleteOAuthFlow) String() string        { return "CompleteOAuthFlow" }
func (CancelOAuthFlow) String() string          { return "CancelOAuthFlow" }
func (CheckAuthorizationStatus) String() string { return "CheckAuthorizationStatus" }
func (Disconnect) String() string               { return "Disconnect" }
