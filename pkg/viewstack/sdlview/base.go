package sdlview

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

// Component is a screen that can be laid out and drawn by a Container.
type Component interface {
	viewstack.Component
	Layout(bounds sdl.Rect)
	Draw(renderer *sdl.Renderer)
}

// Base carries the state every Component shares. Embed it and call
// Base.Layout from an overriding Layout.
type Base struct {
	visible   bool
	bounds    sdl.Rect
	offsetX   int32
	offsetY   int32
	opacity   float64
	listeners map[int]func()
	nextID    int
}

// NewBase returns a visible, fully opaque Base with no size yet.
func NewBase() Base {
	return Base{visible: true, opacity: 1}
}

func (b *Base) SetVisible(visible bool) { b.visible = visible }

func (b *Base) Visible() bool { return b.visible }

// Layout records the bounds and notifies layout listeners.
func (b *Base) Layout(bounds sdl.Rect) {
	b.bounds = bounds

	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

// Size returns the size from the most recent layout.
func (b *Base) Size() (int, int) {
	return int(b.bounds.W), int(b.bounds.H)
}

// AddLayoutListener runs fn after every layout until the returned func is called.
func (b *Base) AddLayoutListener(fn func()) func() {
	if b.listeners == nil {
		b.listeners = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return func() { delete(b.listeners, id) }
}

func (b *Base) SetOffset(x, y int) {
	b.offsetX, b.offsetY = int32(x), int32(y)
}

// SetOpacity clamps opacity to [0, 1].
func (b *Base) SetOpacity(opacity float64) {
	b.opacity = min(max(opacity, 0), 1)
}

// Bounds returns the laid out rectangle without the transition offset.
func (b *Base) Bounds() sdl.Rect {
	return b.bounds
}

// DrawRect returns the rectangle to draw into, shifted by the transition offset.
func (b *Base) DrawRect() sdl.Rect {
	r := b.bounds
	r.X += b.offsetX
	r.Y += b.offsetY
	return r
}

// Alpha returns the opacity as an SDL alpha value.
func (b *Base) Alpha() uint8 {
	return uint8(b.opacity*255 + 0.5)
}
