package sdlview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/anim"
)

// Container implements viewstack.Container for an SDL window.
// Children that do not implement Component are kept so the stack's
// bookkeeping stays right, but they are never laid out or drawn.
type Container struct {
	children []viewstack.Component
	pending  map[viewstack.Component]bool
	width    int32
	height   int32
	animator *anim.Animator
	logger   *slog.Logger
}

var _ viewstack.Container = (*Container)(nil)

// NewContainer creates a container whose transitions run on animator.
func NewContainer(animator *anim.Animator, logger *slog.Logger) *Container {
	if animator == nil {
		animator = anim.NewAnimator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{
		pending:  make(map[viewstack.Component]bool),
		animator: animator,
		logger:   logger,
	}
}

// Animator returns the animator transitions should be built with.
func (c *Container) Animator() *anim.Animator {
	return c.animator
}

func (c *Container) AddChild(child viewstack.Component) {
	if _, ok := child.(Component); !ok {
		c.logger.Warn("Child cannot be drawn by the SDL container", "type", fmt.Sprintf("%T", child))
	}
	c.children = append(c.children, child)
	c.pending[child] = true
}

func (c *Container) RemoveChild(child viewstack.Component) {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			delete(c.pending, child)
			return
		}
	}
}

func (c *Container) ChildCount() int { return len(c.children) }

func (c *Container) ChildAt(i int) viewstack.Component { return c.children[i] }

func (c *Container) RemoveAllChildren() {
	c.children = nil
	c.pending = make(map[viewstack.Component]bool)
}

// Resize lays out every child at the new size on the next Update.
func (c *Container) Resize(width, height int32) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	for _, child := range c.children {
		c.pending[child] = true
	}
}

// Update lays out children added or resized since the last frame, then
// advances running transitions. Laying out a new child is what releases an
// animated push waiting for its first layout.
func (c *Container) Update(now time.Time) {
	if c.width > 0 && c.height > 0 && len(c.pending) > 0 {
		bounds := sdl.Rect{W: c.width, H: c.height}
		// Iterate a copy: a layout listener may push or pop.
		for _, child := range append([]viewstack.Component(nil), c.children...) {
			if !c.pending[child] {
				continue
			}
			delete(c.pending, child)
			if comp, ok := child.(Component); ok {
				comp.Layout(bounds)
			}
		}
	}
	c.animator.Tick(now)
}

// Draw renders visible children bottom to top.
func (c *Container) Draw(renderer *sdl.Renderer) {
	for _, child := range c.children {
		comp, ok := child.(Component)
		if !ok || !comp.Visible() {
			continue
		}
		comp.Draw(renderer)
	}
}
