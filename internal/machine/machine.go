package machine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/petrijr/fxaflow/pkg/api"
)

// maxInternalTransitions bounds the internal sub-steps one event may take.
// A well-formed transition table settles in a handful of steps; hitting the
// bound means the table has a cycle.
const maxInternalTransitions = 20

// Machine drives an api.Account through the authentication lifecycle. It
// implements api.StateMachine.
type Machine struct {
	account    api.Account
	device     api.DeviceConfig
	observer   api.Observer
	classifier api.ErrorClassifier

	// Transition functions are fields so tests can substitute a broken
	// table; production code always runs startTransition and transition.
	start   func(api.FxaState, api.FxaEvent) stateTransition
	advance func(internalState, internalEvent) stateTransition

	// mu guards state and serializes whole ProcessEvent calls, account
	// operations included.
	mu    sync.Mutex
	state api.FxaState
}

// Config describes how to construct a Machine.
// Only used inside this package; external callers use the root constructors.
type Config struct {
	Observer   api.Observer
	Classifier api.ErrorClassifier
}

func (c Config) withDefaults() Config {
	defaults := Config{
		Observer:   api.NoopObserver{},
		Classifier: api.NewLoggingClassifier(nil),
	}
	// Merging two fixed struct shapes cannot fail.
	_ = mergo.Merge(&c, defaults)
	return c
}

// New returns a Machine in the Uninitialized state with the default observer
// and classifier.
func New(account api.Account, device api.DeviceConfig) *Machine {
	return NewWithConfig(account, device, Config{})
}

// NewWithConfig returns a Machine in the Uninitialized state. Nil config
// fields fall back to the defaults.
//
// When restoring an already connected account only device.Capabilities is
// used; the name and type stored server-side win.
func NewWithConfig(account api.Account, device api.DeviceConfig, cfg Config) *Machine {
	cfg = cfg.withDefaults()
	return &Machine{
		account:    account,
		device:     device,
		observer:   cfg.Observer,
		classifier: cfg.Classifier,
		start:      startTransition,
		advance:    transition,
		state:      api.Uninitialized(),
	}
}

// State returns the current public state. It performs no account operations,
// but waits for an in-flight ProcessEvent call to finish.
func (m *Machine) State() api.FxaState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ProcessEvent runs event against the current state and returns the state
// the machine settled in. On error the state is unchanged.
func (m *Machine) ProcessEvent(ctx context.Context, event api.FxaEvent) (api.FxaState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info := api.EventInfo{
		ID:    uuid.NewString(),
		Event: event.String(),
		State: m.state.String(),
	}
	started := time.Now()
	m.observer.OnEventStart(ctx, info)

	count := 0
	tr := m.start(m.state, event)
	for {
		if tr.report != "" {
			m.observer.OnAnomaly(ctx, info, tr.report)
		}
		switch tr.kind {
		case kindComplete:
			m.state = tr.target
			m.observer.OnEventCompleted(ctx, info, m.state.String(), time.Since(started))
			return m.state, nil
		case kindCancel:
			if count == 0 {
				// Cancel before any sub-step ran means the caller sent an
				// event that is invalid for the current state.
				err := fmt.Errorf("%w: %s -> %s", api.ErrInvalidStateTransition, m.state, event)
				m.observer.OnEventFailed(ctx, info, err, time.Since(started))
				return m.state, err
			}
			// A later cancel degrades gracefully: the stored state stands
			// and the caller sees it as the (unchanged) result.
			m.observer.OnEventCompleted(ctx, info, m.state.String(), time.Since(started))
			return m.state, nil
		}

		current := tr.next
		count++
		if count > maxInternalTransitions {
			err := fmt.Errorf("%w: infinite loop detected", api.ErrStateMachineLogic)
			m.observer.OnEventFailed(ctx, info, err, time.Since(started))
			return m.state, err
		}
		tr = m.advance(current, m.invoke(ctx, info, current))
	}
}
