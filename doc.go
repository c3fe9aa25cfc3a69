// Package fxaflow drives a Firefox Accounts client through its
// authentication lifecycle.
//
// It presents a high-level API for logging in, logging out and dealing with
// authentication token issues: applications submit events (initialize, begin
// or complete an OAuth flow, check authorization, disconnect) and observe a
// single public state, while fxaflow sequences the underlying account
// operations and absorbs their failures. It runs fully in Go and integrates
// cleanly into existing codebases.
//
// # Core Concepts
//
// The fxaflow programming model is intentionally small:
//
//  1. StateMachine
//  2. Account
//  3. FxaEvent / FxaState
//  4. ErrorClassifier
//  5. Observer
//
// These components form a complete lifecycle orchestrator with a clear
// mental model: one current state, one event at a time, every account
// failure pre-digested into a state.
//
// # StateMachine
//
// The StateMachine owns the current FxaState and exposes two operations:
//
//   - State reports the current public state
//   - ProcessEvent submits an event and returns the state the machine
//     settles in
//
// Events are processed one at a time; concurrent callers serialize and each
// sees a strictly sequential stream of transitions. A machine starts in
// Uninitialized and must receive an Initialize event before anything else.
//
// # Account
//
// Account is the collaborator a machine drives: one method per lifecycle
// operation (inspect stored credentials, begin or complete an OAuth flow,
// register the device, verify token validity, revoke credentials). fxaflow
// ships no Account implementation; applications bring their own, typically
// wrapping an OAuth client and the platform's credential storage. Account
// errors never reach ProcessEvent callers, they are classified and folded
// into the state transitions.
//
// # FxaEvent and FxaState
//
// Events are the closed set of requests an application can submit. States
// are the five externally observable positions of the lifecycle:
//
//   - Uninitialized: nothing has happened yet
//   - Disconnected: signed out
//   - Authenticating: an OAuth flow is open; the state carries the URL to
//     navigate the user to
//   - Connected: signed in
//   - AuthIssues: signed in, but the tokens need re-authentication
//
// Submitting an event that is not valid for the current state returns
// ErrInvalidStateTransition and leaves the state unchanged.
//
// Example:
//
//	device := fxaflow.NewDevice("Alice's Laptop", fxaflow.DeviceTypeDesktop).
//	    WithCapabilities(fxaflow.CapabilitySendTab).
//	    Build()
//	sm := fxaflow.New(account, device)
//
//	state, err := sm.ProcessEvent(ctx, fxaflow.Initialize{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if state.Kind == fxaflow.StateDisconnected {
//	    state, err = sm.ProcessEvent(ctx, fxaflow.BeginOAuthFlow{
//	        Scopes:     []string{"profile"},
//	        Entrypoint: "browser-menu",
//	    })
//	    // navigate the user to state.OAuthURL, then submit
//	    // CompleteOAuthFlow with the redirect's code and state.
//	}
//
// # ErrorClassifier
//
// Every failed account call is classified as an authentication failure or
// anything else before the transition logic sees it. The default
// LoggingClassifier recognizes errors wrapping ErrAuthentication and logs
// each failure through log/slog; ClassifierFunc adapts plain functions when
// an application wants its own taxonomy.
//
// # Observer
//
// Observers receive lifecycle callbacks: event started, completed or failed,
// each account step with its outcome and duration, and anomaly reports for
// conditions that should never happen. LoggingObserver writes them to slog,
// JSONObserver emits telemetry records to an io.Writer, BasicMetrics keeps
// cheap counters, and CompositeObserver fans out to several at once. The
// pkg/otelmetrics package bridges BasicMetrics into OpenTelemetry.
//
// # Summary
//
// fxaflow's goal is to make Firefox Accounts integration feel like Go: a
// small interface to implement, explicit events in, one observable state
// out, and no failure mode that forces applications to branch on low-level
// network or crypto errors.
//
// For runnable examples, see the /examples directory.
package fxaflow
