package viewstack

import (
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Transition is one running animation bound to a component.
// Start must eventually call done; calling it more than once is harmless.
type Transition interface {
	Start(done func())
}

// TransitionFunc adapts a function to Transition.
type TransitionFunc func(done func())

func (f TransitionFunc) Start(done func()) { f(done) }

// TransitionBuilder binds an animation to a concrete component.
// Build is called with the incoming component for pushes and the outgoing
// component for pops, after the component has been laid out.
type TransitionBuilder interface {
	Build(c Component) (Transition, error)
}

// TransitionBuilderFunc adapts a function to TransitionBuilder.
type TransitionBuilderFunc func(c Component) (Transition, error)

func (f TransitionBuilderFunc) Build(c Component) (Transition, error) { return f(c) }

// NoTransition completes synchronously inside Start, so an animated push or
// pop using it settles before the call returns and leaves the stack exactly
// as the plain call would. Notification order still follows the animated
// path: on a push, observers run while the screen below is still visible.
var NoTransition TransitionBuilder = TransitionBuilderFunc(func(Component) (Transition, error) {
	return TransitionFunc(func(done func()) { done() }), nil
})

// TransitionToken represents one in-flight transition.
// Its completion callback fires exactly once.
type TransitionToken struct {
	ID         uuid.UUID
	Component  Component
	transition Transition
	started    atomic.Bool
	done       atomic.Bool
}

// NewTransitionToken wraps a built transition for c.
func NewTransitionToken(c Component, t Transition) *TransitionToken {
	return &TransitionToken{
		ID:         uuid.New(),
		Component:  c,
		transition: t,
	}
}

// Start runs the transition. onDone is invoked the first time the transition
// signals completion and never again. Starting a token twice is a no-op.
func (t *TransitionToken) Start(onDone func()) {
	if !t.started.CompareAndSwap(false, true) {
		return
	}
	t.transition.Start(func() {
		if !t.done.CompareAndSwap(false, true) {
			return
		}
		if onDone != nil {
			onDone()
		}
	})
}

// Done reports whether the completion callback has fired.
func (t *TransitionToken) Done() bool {
	return t.done.Load()
}

// TransitionRunner turns a builder and a component into a ready-to-start token.
// The stack takes one at construction (WithTransitionRunner) so tests and
// hosts can control when transitions finish.
type TransitionRunner interface {
	Bind(builder TransitionBuilder, c Component) (*TransitionToken, error)
}

// DefaultRunner builds the transition immediately and logs token lifetimes.
type DefaultRunner struct {
	Logger *slog.Logger
}

// Bind calls builder.Build and wraps the result. Builder errors are returned
// unchanged so the caller can surface them before any side effects.
func (r DefaultRunner) Bind(builder TransitionBuilder, c Component) (*TransitionToken, error) {
	if builder == nil {
		return nil, newError("transition", ErrInvalidArgument, "builder == nil")
	}
	if c == nil {
		return nil, newError("transition", ErrInvalidArgument, "component == nil")
	}

	t, err := builder.Build(c)
	if err != nil {
		return nil, wrapError("transition", nil, "build failed", err)
	}
	if t == nil {
		return nil, newError("transition", ErrInvalidArgument, "builder returned nil transition")
	}

	token := NewTransitionToken(c, t)
	if r.Logger != nil {
		r.Logger.Debug("Transition bound", "token", token.ID)
	}
	return token, nil
}
