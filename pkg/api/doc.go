// Package api contains the core building blocks used by the fxaflow state
// machine. It defines the public state and event model, the Account
// collaborator interface, error classification, and observability primitives.
//
// Most users interact with the higher-level fxaflow package, which re-exports
// selected types and helpers from this package. The api package is intended
// for custom integrations, alternative Account implementations, or
// contributors extending the machine itself.
//
// # States and Events
//
// FxaState is the externally observable state: Uninitialized, Disconnected,
// Authenticating (carrying the OAuth URL), Connected, or AuthIssues. FxaEvent
// is the closed set of requests callers submit: Initialize, BeginOAuthFlow,
// BeginPairingFlow, CompleteOAuthFlow, CancelOAuthFlow,
// CheckAuthorizationStatus, and Disconnect.
//
// Both form sum types: states are kind-tagged values built with the
// constructors in this package, events are a sealed interface with one
// variant struct per request. String methods on both return variant names
// only, so they can be logged without leaking URLs, codes, or scopes.
//
// # Account
//
// Account is the seam to the real account service. The machine decides which
// Account method to call next and what the resulting public state is; the
// Account does the actual network and crypto work. Implementations wrap
// ErrAuthentication in credential-related failures so the classifier can
// route them.
//
// # Error Classification
//
// Account failures never reach ProcessEvent callers. Each failure is handed
// to an ErrorClassifier, which maps it to CallErrorAuth or CallErrorOther and
// owns the side effect of recording it. LoggingClassifier is the default.
//
// # Observability
//
// The Observer interface receives lifecycle callbacks for every processed
// event and every account call, plus anomaly reports for transition-table
// defects. Ready-made implementations: LoggingObserver (log/slog),
// BasicMetrics (in-memory counters with Snapshot), JSONObserver (JSON-lines
// telemetry records), NoopObserver, and NewCompositeObserver to combine them.
package api
