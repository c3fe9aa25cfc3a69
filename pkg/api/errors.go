package api

import (
	"context"
	"errors"
	"log/slog"
)

var (
	// ErrInvalidStateTransition reports an event that is not valid for the
	// machine's current state. The stored state is left unchanged; this is
	// always attributable to caller misuse.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrStateMachineLogic reports that event processing exceeded the
	// internal transition bound. It indicates a defect in the transition
	// table itself, not a runtime condition to recover from; the stored
	// state is left unchanged.
	ErrStateMachineLogic = errors.New("state machine logic error")

	// ErrAuthentication marks account errors caused by invalid or expired
	// credentials. Account implementations wrap it (fmt.Errorf with %w) so
	// LoggingClassifier can recognize authentication failures.
	ErrAuthentication = errors.New("authentication required")
)

// CallErrorKind classifies a failed account call. The transition tables
// branch on it; finer-grained error detail never reaches them.
type CallErrorKind string

const (
	// CallErrorAuth is an authentication or authorization failure.
	CallErrorAuth CallErrorKind = "auth"

	// CallErrorOther is any other failure, e.g. network or server trouble.
	CallErrorOther CallErrorKind = "other"
)

// ErrorClassifier converts an account error into a CallErrorKind. It also
// owns any logging or telemetry side effect of observing the error; the
// machine itself never inspects account errors beyond the returned kind.
//
// op is the name of the internal step whose call failed, e.g.
// "Connected(CheckAuthorizationStatus)".
type ErrorClassifier interface {
	Classify(ctx context.Context, op string, err error) CallErrorKind
}

// ClassifierFunc adapts a function to the ErrorClassifier interface.
type ClassifierFunc func(ctx context.Context, op string, err error) CallErrorKind

func (f ClassifierFunc) Classify(ctx context.Context, op string, err error) CallErrorKind {
	return f(ctx, op, err)
}

// LoggingClassifier is the default ErrorClassifier. It classifies errors
// wrapping ErrAuthentication as CallErrorAuth and everything else as
// CallErrorOther, and logs each failure using log/slog.
type LoggingClassifier struct {
	Logger *slog.Logger
}

// NewLoggingClassifier creates the default classifier. If logger is nil,
// slog.Default() is used.
func NewLoggingClassifier(logger *slog.Logger) ErrorClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingClassifier{Logger: logger}
}

func (c *LoggingClassifier) Classify(ctx context.Context, op string, err error) CallErrorKind {
	kind := CallErrorOther
	if errors.Is(err, ErrAuthentication) {
		kind = CallErrorAuth
	}
	c.Logger.WarnContext(ctx, "account_call_failed",
		slog.String("op", op),
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)
	return kind
}
