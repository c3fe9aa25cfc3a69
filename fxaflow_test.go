package fxaflow_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/fxaflow"
)

// testAccount is a happy-path account whose operations take a measurable
// amount of time.
type testAccount struct {
	connected bool
}

func (a *testAccount) AuthState(ctx context.Context) (fxaflow.AuthState, error) {
	time.Sleep(1 * time.Millisecond)
	if a.connected {
		return fxaflow.AuthStateConnected, nil
	}
	return fxaflow.AuthStateDisconnected, nil
}

func (a *testAccount) BeginOAuthFlow(ctx context.Context, scopes []string, entrypoint string) (string, error) {
	time.Sleep(1 * time.Millisecond)
	return "https://accounts.firefox.com/authorization", nil
}

func (a *testAccount) BeginPairingFlow(ctx context.Context, pairingURL string, scopes []string, entrypoint string) (string, error) {
	time.Sleep(1 * time.Millisecond)
	return "https://accounts.firefox.com/pair/supp", nil
}

func (a *testAccount) CompleteOAuthFlow(ctx context.Context, code, state string) error {
	time.Sleep(1 * time.Millisecond)
	a.connected = true
	return nil
}

func (a *testAccount) InitializeDevice(ctx context.Context, name string, deviceType fxaflow.DeviceType, capabilities []fxaflow.DeviceCapability) error {
	time.Sleep(1 * time.Millisecond)
	return nil
}

func (a *testAccount) EnsureDeviceCapabilities(ctx context.Context, capabilities []fxaflow.DeviceCapability) error {
	time.Sleep(1 * time.Millisecond)
	return nil
}

func (a *testAccount) CheckAuthorizationStatus(ctx context.Context) (bool, error) {
	time.Sleep(1 * time.Millisecond)
	return a.connected, nil
}

func (a *testAccount) Disconnect(ctx context.Context) error {
	time.Sleep(1 * time.Millisecond)
	a.connected = false
	return nil
}

func testDevice() fxaflow.DeviceConfig {
	return fxaflow.NewDevice("Test Laptop", fxaflow.DeviceTypeDesktop).
		WithCapabilities(fxaflow.CapabilitySendTab, fxaflow.CapabilityCloseTabs).
		Build()
}

// TestStateMachineWithObserverAndBasicMetrics verifies that:
//   - NewWithObserver is usable from the public API
//   - a full sign-in/sign-out lifecycle lands in the expected states
//   - BasicMetrics sees the expected event/step counts.
func TestStateMachineWithObserverAndBasicMetrics(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := &fxaflow.BasicMetrics{}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	observer := fxaflow.NewCompositeObserver(
		fxaflow.NewLoggingObserver(logger),
		metrics,
	)

	sm := fxaflow.NewWithObserver(&testAccount{}, testDevice(), observer)

	state, err := sm.ProcessEvent(ctx, fxaflow.Initialize{})
	require.NoError(t, err, "Initialize should succeed")
	require.Equal(t, fxaflow.StateDisconnected, state.Kind)

	state, err = sm.ProcessEvent(ctx, fxaflow.BeginOAuthFlow{
		Scopes:     []string{"profile"},
		Entrypoint: "browser-menu",
	})
	require.NoError(t, err, "BeginOAuthFlow should succeed")
	require.Equal(t, fxaflow.StateAuthenticating, state.Kind)
	require.NotEmpty(t, state.OAuthURL, "the OAuth URL must be surfaced to the caller")

	state, err = sm.ProcessEvent(ctx, fxaflow.CompleteOAuthFlow{Code: "test-code", State: "test-state"})
	require.NoError(t, err, "CompleteOAuthFlow should succeed")
	require.Equal(t, fxaflow.StateConnected, state.Kind)

	state, err = sm.ProcessEvent(ctx, fxaflow.CheckAuthorizationStatus{})
	require.NoError(t, err)
	require.Equal(t, fxaflow.StateConnected, state.Kind, "an active session stays connected")

	state, err = sm.ProcessEvent(ctx, fxaflow.Disconnect{})
	require.NoError(t, err)
	require.Equal(t, fxaflow.StateDisconnected, state.Kind)
	require.Equal(t, fxaflow.Disconnected(), sm.State())

	snap := metrics.Snapshot()

	require.Equal(t, int64(5), snap.EventsStarted, "expected exactly 5 events started")
	require.Equal(t, int64(5), snap.EventsCompleted, "expected exactly 5 events completed")
	require.Equal(t, int64(0), snap.EventsFailed, "expected 0 event failures")
	require.Equal(t, int64(6), snap.StepsCompleted, "expected 6 account steps")
	require.Equal(t, int64(0), snap.CallErrors, "expected 0 call errors")
	require.Equal(t, int64(0), snap.Anomalies, "expected 0 anomalies")
	require.Greater(t, snap.AvgStepDuration, time.Duration(0), "expected AvgStepDuration > 0")
}

// TestStateMachineWithNilLoggerObserver ensures that NewLoggingObserver(nil)
// is safe to use (it should fall back to slog.Default) and that events still
// process successfully.
func TestStateMachineWithNilLoggerObserver(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := &fxaflow.BasicMetrics{}

	observer := fxaflow.NewCompositeObserver(
		fxaflow.NewLoggingObserver(nil), // should not panic or misbehave
		metrics,
	)

	sm := fxaflow.NewWithObserver(&testAccount{}, testDevice(), observer)

	state, err := sm.ProcessEvent(ctx, fxaflow.Initialize{})
	require.NoError(t, err)
	require.Equal(t, fxaflow.StateDisconnected, state.Kind)

	snap := metrics.Snapshot()
	require.Equal(t, int64(1), snap.EventsCompleted)
	require.Equal(t, int64(1), snap.StepsCompleted)
}

// TestInvalidEventKeepsState checks the public error contract: an event that
// is invalid for the current state fails with ErrInvalidStateTransition and
// the machine does not move.
func TestInvalidEventKeepsState(t *testing.T) {
	t.Parallel()

	sm := fxaflow.New(&testAccount{}, testDevice())

	_, err := sm.ProcessEvent(context.Background(), fxaflow.Disconnect{})
	require.ErrorIs(t, err, fxaflow.ErrInvalidStateTransition)
	require.Equal(t, fxaflow.Uninitialized(), sm.State())
}

// TestPairingFlowEndToEnd connects a new device from a pairing code URL.
func TestPairingFlowEndToEnd(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sm := fxaflow.New(&testAccount{}, testDevice())

	state, err := sm.ProcessEvent(ctx, fxaflow.Initialize{})
	require.NoError(t, err)
	require.Equal(t, fxaflow.StateDisconnected, state.Kind)

	state, err = sm.ProcessEvent(ctx, fxaflow.BeginPairingFlow{
		PairingURL: "https://accounts.firefox.com/pair#channel",
		Scopes:     []string{"profile"},
		Entrypoint: "qr-scan",
	})
	require.NoError(t, err)
	require.Equal(t, fxaflow.StateAuthenticating, state.Kind)
	require.NotEmpty(t, state.OAuthURL)

	state, err = sm.ProcessEvent(ctx, fxaflow.CompleteOAuthFlow{Code: "test-code", State: "test-state"})
	require.NoError(t, err)
	require.Equal(t, fxaflow.StateConnected, state.Kind)
}

// TestProcessEventHelper checks the package-level forwarder.
func TestProcessEventHelper(t *testing.T) {
	t.Parallel()

	sm := fxaflow.New(&testAccount{}, testDevice())

	state, err := fxaflow.ProcessEvent(context.Background(), sm, fxaflow.Initialize{})
	require.NoError(t, err)
	require.Equal(t, fxaflow.Disconnected(), state)
}
