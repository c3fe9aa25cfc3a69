package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggingClassifierKinds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	classifier := NewLoggingClassifier(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	kind := classifier.Classify(ctx, "Uninitialized(EnsureDeviceCapabilities)",
		fmt.Errorf("registering capabilities: %w", ErrAuthentication))
	require.Equal(t, CallErrorAuth, kind)

	kind = classifier.Classify(ctx, "Connected(Disconnect)", errors.New("connection reset"))
	require.Equal(t, CallErrorOther, kind)

	out := buf.String()
	require.Contains(t, out, "account_call_failed")
	require.Contains(t, out, "Uninitialized(EnsureDeviceCapabilities)")
	require.Contains(t, out, "kind=auth")
	require.Contains(t, out, "kind=other")
}

func TestNewLoggingClassifierNilLogger(t *testing.T) {
	t.Parallel()

	classifier := NewLoggingClassifier(nil) // should fall back to slog.Default
	require.NotPanics(t, func() {
		classifier.Classify(context.Background(), "Connected(Disconnect)", errors.New("boom"))
	})
}

func TestClassifierFunc(t *testing.T) {
	t.Parallel()

	var gotOp string
	fn := ClassifierFunc(func(ctx context.Context, op string, err error) CallErrorKind {
		gotOp = op
		return CallErrorAuth
	})

	kind := fn.Classify(context.Background(), "Connected(CheckAuthorizationStatus)", errors.New("expired"))
	require.Equal(t, CallErrorAuth, kind)
	require.Equal(t, "Connected(CheckAuthorizationStatus)", gotOp)
}
