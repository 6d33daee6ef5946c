package viewstack

// FirstLayoutGate defers an action until a component has been laid out with
// a nonzero size. Enter transitions need real geometry, so animated pushes
// wait on one of these before starting.
//
// The gate fires at most once. Cancel guarantees it never fires, which the
// stack uses when a component is unmounted before its first layout.
type FirstLayoutGate struct {
	component Component
	action    func()
	remove    func()
	armed     bool
	fired     bool
	cancelled bool
}

// NewFirstLayoutGate creates an unarmed gate for c.
func NewFirstLayoutGate(c Component, action func()) *FirstLayoutGate {
	return &FirstLayoutGate{component: c, action: action}
}

// Arm starts watching for the first layout. If c is not Layoutable, or has
// already been laid out with a nonzero size, the action runs before Arm returns.
func (g *FirstLayoutGate) Arm() {
	if g.armed || g.cancelled {
		return
	}
	g.armed = true

	l, ok := g.component.(Layoutable)
	if !ok {
		g.fire()
		return
	}
	if hasSize(l) {
		g.fire()
		return
	}

	g.remove = l.AddLayoutListener(func() {
		if hasSize(l) {
			g.fire()
		}
	})
}

// Cancel deregisters the gate. The action will not run after Cancel returns.
func (g *FirstLayoutGate) Cancel() {
	if g.fired || g.cancelled {
		return
	}
	g.cancelled = true
	g.deregister()
}

// Fired reports whether the action has run.
func (g *FirstLayoutGate) Fired() bool {
	return g.fired
}

// Pending reports whether the gate is armed and still waiting.
func (g *FirstLayoutGate) Pending() bool {
	return g.armed && !g.fired && !g.cancelled
}

func (g *FirstLayoutGate) fire() {
	if g.fired || g.cancelled {
		return
	}
	g.fired = true
	g.deregister()
	if g.action != nil {
		g.action()
	}
}

func (g *FirstLayoutGate) deregister() {
	if g.remove != nil {
		g.remove()
		g.remove = nil
	}
}

func hasSize(l Layoutable) bool {
	w, h := l.Size()
	return w > 0 && h > 0
}
