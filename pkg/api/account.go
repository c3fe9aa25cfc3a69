package api

import "context"

// AuthState classifies the credentials an Account currently holds.
type AuthState string

const (
	// AuthStateDisconnected means no credentials are stored.
	AuthStateDisconnected AuthState = "disconnected"

	// AuthStateConnected means credentials are stored and believed valid.
	AuthStateConnected AuthState = "connected"

	// AuthStateAuthIssues means credentials are stored but issues were
	// observed with them.
	AuthStateAuthIssues AuthState = "auth-issues"
)

// Account is the collaborator the state machine drives: one method per
// internal step, each performing whatever network or crypto work the account
// service requires.
//
// Every method receives the caller's context and may block on I/O; the
// machine imposes no timeout of its own. Any method may fail with an opaque
// error. Failures are never surfaced to ProcessEvent callers: the machine
// classifies them (see ErrorClassifier) and folds them into a state
// transition. Wrap ErrAuthentication in errors caused by invalid or expired
// credentials so the default classifier can recognize them.
//
// The machine serializes all calls it makes to an Account, but an Account
// shared between machines (or called directly) must handle its own
// synchronization.
type Account interface {
	// AuthState reports the classification of the stored credentials.
	AuthState(ctx context.Context) (AuthState, error)

	// BeginOAuthFlow starts an OAuth authorization and returns the URL to
	// navigate the user to.
	BeginOAuthFlow(ctx context.Context, scopes []string, entrypoint string) (string, error)

	// BeginPairingFlow starts an OAuth authorization from a pairing code URL
	// and returns the URL to navigate the user to.
	BeginPairingFlow(ctx context.Context, pairingURL string, scopes []string, entrypoint string) (string, error)

	// CompleteOAuthFlow finishes OAuth with the code/state pair from the
	// redirect URI.
	CompleteOAuthFlow(ctx context.Context, code, state string) error

	// InitializeDevice registers this device with the account service.
	InitializeDevice(ctx context.Context, name string, deviceType DeviceType, capabilities []DeviceCapability) error

	// EnsureDeviceCapabilities registers the locally supported capability
	// set for an already known device.
	EnsureDeviceCapabilities(ctx context.Context, capabilities []DeviceCapability) error

	// CheckAuthorizationStatus verifies server-side token validity and
	// reports whether the session is still active.
	CheckAuthorizationStatus(ctx context.Context) (bool, error)

	// Disconnect revokes the local credentials.
	Disconnect(ctx context.Context) error
}

// DeviceType describes the form factor advertised to the account service.
type DeviceType string

const (
	DeviceTypeDesktop DeviceType = "desktop"
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeTablet  DeviceType = "tablet"
	DeviceTypeTV      DeviceType = "tv"
	DeviceTypeVR      DeviceType = "vr"
	DeviceTypeUnknown DeviceType = "unknown"
)

// DeviceCapability is a feature flag advertised to the account service
// describing what this client instance supports.
type DeviceCapability string

const (
	CapabilitySendTab   DeviceCapability = "send-tab"
	CapabilityCloseTabs DeviceCapability = "close-tabs"
)

// DeviceConfig describes the local device to the account service. It is
// supplied once at machine construction and is immutable thereafter; it feeds
// the EnsureDeviceCapabilities and InitializeDevice account calls.
type DeviceConfig struct {
	// Name is the display name shown to the user, e.g. in device lists.
	Name string

	Type DeviceType

	Capabilities []DeviceCapability
}
