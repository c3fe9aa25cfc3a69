package fxaflow

import (
	"context"

	"github.com/petrijr/fxaflow/internal/machine"
	"github.com/petrijr/fxaflow/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	StateMachine             = api.StateMachine
	FxaState                 = api.FxaState
	StateKind                = api.StateKind
	FxaEvent                 = api.FxaEvent
	Initialize               = api.Initialize
	BeginOAuthFlow           = api.BeginOAuthFlow
	BeginPairingFlow         = api.BeginPairingFlow
	CompleteOAuthFlow        = api.CompleteOAuthFlow
	CancelOAuthFlow          = api.CancelOAuthFlow
	CheckAuthorizationStatus = api.CheckAuthorizationStatus
	Disconnect               = api.Disconnect
	Account                  = api.Account
	AuthState                = api.AuthState
	DeviceConfig             = api.DeviceConfig
	DeviceType               = api.DeviceType
	DeviceCapability         = api.DeviceCapability
	CallErrorKind            = api.CallErrorKind
	ErrorClassifier          = api.ErrorClassifier
	ClassifierFunc           = api.ClassifierFunc
	LoggingClassifier        = api.LoggingClassifier
	Observer                 = api.Observer
	EventInfo                = api.EventInfo
	LoggingObserver          = api.LoggingObserver
	JSONObserver             = api.JSONObserver
	TelemetryRecord          = api.TelemetryRecord
	BasicMetrics             = api.BasicMetrics
	BasicMetricsSnapshot     = api.BasicMetricsSnapshot
	CompositeObserver        = api.CompositeObserver
	NoopObserver             = api.NoopObserver
)

// Re-export state constructors and common helpers.

var (
	Uninitialized  = api.Uninitialized
	Disconnected   = api.Disconnected
	Authenticating = api.Authenticating
	Connected      = api.Connected
	AuthIssues     = api.AuthIssues

	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
	NewJSONObserver      = api.NewJSONObserver
	NewLoggingClassifier = api.NewLoggingClassifier
)

// Re-export the error taxonomy.

var (
	ErrInvalidStateTransition = api.ErrInvalidStateTransition
	ErrStateMachineLogic      = api.ErrStateMachineLogic
	ErrAuthentication         = api.ErrAuthentication
)

// Re-export enumeration values for convenience.

const (
	StateUninitialized  = api.StateUninitialized
	StateDisconnected   = api.StateDisconnected
	StateAuthenticating = api.StateAuthenticating
	StateConnected      = api.StateConnected
	StateAuthIssues     = api.StateAuthIssues

	AuthStateDisconnected = api.AuthStateDisconnected
	AuthStateConnected    = api.AuthStateConnected
	AuthStateAuthIssues   = api.AuthStateAuthIssues

	CallErrorAuth  = api.CallErrorAuth
	CallErrorOther = api.CallErrorOther

	DeviceTypeDesktop = api.DeviceTypeDesktop
	DeviceTypeMobile  = api.DeviceTypeMobile
	DeviceTypeTablet  = api.DeviceTypeTablet
	DeviceTypeTV      = api.DeviceTypeTV
	DeviceTypeVR      = api.DeviceTypeVR
	DeviceTypeUnknown = api.DeviceTypeUnknown

	CapabilitySendTab   = api.CapabilitySendTab
	CapabilityCloseTabs = api.CapabilityCloseTabs
)

// Config configures the optional machine collaborators. The zero value is
// valid: a no-op observer and the logging classifier.
type Config struct {
	// Observer receives lifecycle callbacks for every event and step.
	Observer Observer

	// Classifier folds account errors into CallErrorKind values and owns
	// the logging side effect of observing them.
	Classifier ErrorClassifier
}

// Machine constructors
// These wrap the internal/machine package so external callers
// never need to import internal packages.

// New returns a StateMachine driving account, starting in Uninitialized.
//
// When restoring an already connected account only device.Capabilities is
// used; the device name and type stored server-side win.
func New(account Account, device DeviceConfig) StateMachine {
	return machine.New(account, device)
}

// NewWithObserver returns a StateMachine that reports its lifecycle to obs.
func NewWithObserver(account Account, device DeviceConfig, obs Observer) StateMachine {
	return NewWithConfig(account, device, Config{Observer: obs})
}

// NewWithConfig returns a StateMachine with explicit collaborators. Nil
// config fields fall back to the defaults.
func NewWithConfig(account Account, device DeviceConfig, cfg Config) StateMachine {
	return machine.NewWithConfig(account, device, machine.Config{
		Observer:   cfg.Observer,
		Classifier: cfg.Classifier,
	})
}

// Convenience helpers that just forward to the underlying StateMachine.

// ProcessEvent submits an event to sm.
func ProcessEvent(ctx context.Context, sm StateMachine, event FxaEvent) (FxaState, error) {
	return sm.ProcessEvent(ctx, event)
}
