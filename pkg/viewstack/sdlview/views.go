package sdlview

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// ButtonHandler is implemented by views that react to buttons other than
// the ones the host uses for navigation.
type ButtonHandler interface {
	HandleButton(button constants.VirtualButton) bool
}

const selectedKey = "selected"

// ColorView fills its bounds with a color and shows a column of rows, one
// of which is selected. The selection moves with up and down and survives
// being hidden, saved, and restored.
type ColorView struct {
	Base
	color    sdl.Color
	rows     int
	selected int
	padding  Padding
}

var (
	_ Component                   = (*ColorView)(nil)
	_ viewstack.StatefulComponent = (*ColorView)(nil)
	_ ButtonHandler               = (*ColorView)(nil)
)

// NewColorView creates a view with the given fill and number of rows.
func NewColorView(color sdl.Color, rows int) *ColorView {
	return &ColorView{
		Base:    NewBase(),
		color:   color,
		rows:    max(rows, 1),
		padding: UniformPadding(24),
	}
}

// Selected returns the selected row index.
func (v *ColorView) Selected() int {
	return v.selected
}

func (v *ColorView) HandleButton(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp:
		v.selected = (v.selected + v.rows - 1) % v.rows
	case constants.VirtualButtonDown:
		v.selected = (v.selected + 1) % v.rows
	default:
		return false
	}
	return true
}

func (v *ColorView) SaveState(state viewstack.State) {
	state[selectedKey] = v.selected
}

func (v *ColorView) RestoreState(state viewstack.State) {
	// Restored snapshots carry JSON numbers.
	switch n := state[selectedKey].(type) {
	case int:
		v.selected = n
	case float64:
		v.selected = int(n)
	}
	v.selected = min(max(v.selected, 0), v.rows-1)
}

func (v *ColorView) Draw(renderer *sdl.Renderer) {
	rect := v.DrawRect()
	alpha := v.Alpha()
	theme := GetTheme()

	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	fill(renderer, v.color, alpha, rect)

	inner := v.padding.Inset(rect)
	rowHeight := inner.H / int32(v.rows)
	for i := 0; i < v.rows; i++ {
		row := sdl.Rect{
			X: inner.X,
			Y: inner.Y + int32(i)*rowHeight,
			W: inner.W,
			H: max(rowHeight-8, 1),
		}
		c := theme.AccentColor
		if i == v.selected {
			c = theme.HighlightColor
		}
		fill(renderer, c, alpha/2, row)
	}
}

// IconView draws an SVG icon centered on a solid background.
type IconView struct {
	Base
	name       string
	svg        []byte
	background sdl.Color
	cache      *TextureCache
	logger     *slog.Logger
	failed     bool
}

var _ Component = (*IconView)(nil)

// NewIconView creates a view for the SVG document svg. Textures are shared
// through cache under name.
func NewIconView(name string, svg []byte, background sdl.Color, cache *TextureCache) *IconView {
	return &IconView{
		Base:       NewBase(),
		name:       name,
		svg:        svg,
		background: background,
		cache:      cache,
		logger:     viewstack.GetLogger(),
	}
}

func (v *IconView) Draw(renderer *sdl.Renderer) {
	rect := v.DrawRect()
	alpha := v.Alpha()

	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	fill(renderer, v.background, alpha, rect)

	size := int(min(rect.W, rect.H) / 2)
	if size <= 0 || v.failed {
		return
	}

	tex, err := v.texture(renderer, size)
	if err != nil {
		v.fail(err)
		return
	}

	_ = tex.SetAlphaMod(alpha)
	dst := sdl.Rect{
		X: rect.X + (rect.W-int32(size))/2,
		Y: rect.Y + (rect.H-int32(size))/2,
		W: int32(size),
		H: int32(size),
	}
	_ = renderer.Copy(tex, nil, &dst)
}

// fail stops further draw attempts so a broken document is not
// rasterized every frame. The error is logged once.
func (v *IconView) fail(err error) {
	if v.failed {
		return
	}
	v.failed = true
	v.logger.Error("Icon could not be drawn", "icon", v.name, "error", err)
}

func (v *IconView) texture(renderer *sdl.Renderer, size int) (*sdl.Texture, error) {
	key := iconKey(v.name, size)
	if tex := v.cache.Get(key); tex != nil {
		return tex, nil
	}

	img, err := RasterizeSVG(v.svg, size)
	if err != nil {
		return nil, err
	}
	tex, err := textureFromRGBA(renderer, img)
	if err != nil {
		return nil, err
	}
	v.cache.Set(key, tex)
	return tex, nil
}

func fill(renderer *sdl.Renderer, c sdl.Color, alpha uint8, rect sdl.Rect) {
	a := uint8(uint16(c.A) * uint16(alpha) / 255)
	_ = renderer.SetDrawColor(c.R, c.G, c.B, a)
	_ = renderer.FillRect(&rect)
}
