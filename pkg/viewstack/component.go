package viewstack

// RenderContext is an opaque handle handed to every ScreenFactory.
// The stack never inspects it. Applications typically put their
// dependencies here (the stack itself, a router, a localizer) so screens
// receive them explicitly at creation time.
type RenderContext any

// Component is one mounted UI unit produced by a ScreenFactory.
type Component interface {
	SetVisible(visible bool)
	Visible() bool
}

// Container is the single parent that every component of a stack is mounted in.
// Children are ordered bottom to top; the last child is drawn on top.
type Container interface {
	AddChild(c Component)
	RemoveChild(c Component)
	ChildCount() int
	ChildAt(i int) Component
	RemoveAllChildren()
}

// Layoutable is implemented by components that report layout passes.
// Components that don't implement it are treated as laid out as soon as
// they are mounted.
type Layoutable interface {
	Component

	// Size returns the measured size from the most recent layout pass.
	Size() (width, height int)

	// AddLayoutListener registers fn to run after every layout pass and
	// returns a function that removes it.
	AddLayoutListener(fn func()) (remove func())
}

// State is the per-entry saved-state bag for a screen.
// Values must survive a JSON round-trip to be persisted.
type State map[string]any

// StatefulComponent is an optional capability. Components that implement it
// get their state captured when they are hidden and when the stack is saved,
// and handed back after the component is recreated by Restore.
type StatefulComponent interface {
	Component
	SaveState(state State)
	RestoreState(state State)
}
