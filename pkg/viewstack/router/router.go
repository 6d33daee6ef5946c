package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenMain Screen = iota
//	    ScreenSettings
//	    ScreenDetail
//	)
type Screen int

// Route builds the factory for a screen from its navigation input.
// The input type is screen-specific.
type Route func(input any) (viewstack.ScreenFactory, error)

// ErrUnknownScreen is returned when navigating to a screen that was never registered.
var ErrUnknownScreen = errors.New("router: screen not registered")

// Router maps screen identifiers to factories and drives a ViewStack with
// default enter and exit transitions.
type Router struct {
	stack  *viewstack.ViewStack
	routes map[Screen]Route
	enter  viewstack.TransitionBuilder
	exit   viewstack.TransitionBuilder
}

// New creates a Router on top of stack. Navigation is unanimated until
// WithTransitions is called.
func New(stack *viewstack.ViewStack) *Router {
	return &Router{
		stack:  stack,
		routes: make(map[Screen]Route),
	}
}

// Register adds a screen to the router.
// The route is called every time the screen is navigated to.
func (r *Router) Register(screen Screen, route Route) *Router {
	r.routes[screen] = route
	return r
}

// WithTransitions sets the transitions used by Navigate and Back.
// Either may be nil for an unanimated push or pop.
func (r *Router) WithTransitions(enter, exit viewstack.TransitionBuilder) *Router {
	r.enter = enter
	r.exit = exit
	return r
}

// Navigate builds the screen's factory from input and pushes it.
func (r *Router) Navigate(screen Screen, input any) (viewstack.Component, error) {
	factory, err := r.build(screen, input)
	if err != nil {
		return nil, err
	}
	if r.enter == nil {
		return r.stack.Push(factory)
	}
	return r.stack.PushWithTransition(factory, r.enter)
}

// Back pops the top screen. At the last screen the stack's delegate decides
// what happens, exactly as with ViewStack.Pop.
func (r *Router) Back() (viewstack.Component, error) {
	if r.exit == nil {
		return r.stack.Pop()
	}
	return r.stack.PopWithTransition(r.exit)
}

// Reset clears the stack and starts over at screen, without animation.
// The stack is left untouched if the route fails.
func (r *Router) Reset(screen Screen, input any) (viewstack.Component, error) {
	factory, err := r.build(screen, input)
	if err != nil {
		return nil, err
	}
	r.stack.Clear()
	return r.stack.Push(factory)
}

// Stack returns the underlying ViewStack.
func (r *Router) Stack() *viewstack.ViewStack {
	return r.stack
}

func (r *Router) build(screen Screen, input any) (viewstack.ScreenFactory, error) {
	route, ok := r.routes[screen]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScreen, screen)
	}

	factory, err := route(input)
	if err != nil {
		return nil, fmt.Errorf("router: screen %d error: %w", screen, err)
	}
	return factory, nil
}
