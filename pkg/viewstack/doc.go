// Package viewstack provides a navigation stack for single-container UIs.
//
// A ViewStack keeps an ordered stack of ScreenFactory values and mounts one
// component per entry into a shared Container. The top component is visible;
// the ones below stay mounted but hidden so their state survives. Pushes and
// pops can be animated with caller-supplied transitions, and the stack can be
// saved to and rebuilt from a key/value StateStore.
//
// # Basic Usage
//
//	type HomeScreen struct{ Title string }
//
//	func (h HomeScreen) CreateComponent(ctx viewstack.RenderContext, c viewstack.Container) (viewstack.Component, error) {
//	    return newHomeView(h.Title), nil
//	}
//
//	stack, err := viewstack.New(container, viewstack.DelegateFunc(func() {
//	    running = false // user backed out of the last screen
//	}))
//
//	stack.Push(HomeScreen{Title: "Home"})
//	stack.PushWithTransition(DetailScreen{ID: 7}, slideIn)
//	stack.PopWithTransition(slideOut)
//
// # Transitions
//
// A TransitionBuilder binds an animation to a component. Animated pushes wait
// for the new component's first layout (see FirstLayoutGate) before starting,
// notify observers right away, and hide the screen below when the animation
// ends. Animated pops reveal the screen below right away and unmount the
// outgoing component when the animation ends. While a transition is in flight
// the stack is busy and rejects further mutations with ErrStackBusy.
//
// NoTransition completes synchronously and behaves exactly like the plain calls.
//
// # Persistence
//
// Register every factory type with the stack's FactoryRegistry, then:
//
//	stack.Registry().MustRegister("home", HomeScreen{})
//	err := stack.Save(store, "stack")
//	// ... process restarts ...
//	err = stack.Restore(store, "stack")
//
// Components that implement StatefulComponent have their state saved alongside
// their factory and handed back when the stack is restored.
package viewstack
