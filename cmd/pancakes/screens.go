package main

import (
	"embed"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/viewstack/internal/pancakes"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/router"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/sdlview"
)

//go:embed icons/*.svg
var iconFS embed.FS

const (
	ScreenColor router.Screen = iota
	ScreenIcon
)

// palette is the order confirm walks through before the icon screen.
var palette = []ColorScreen{
	{Name: "red", Color: 0xD32F2F, Rows: 3},
	{Name: "green", Color: 0x388E3C, Rows: 4},
	{Name: "blue", Color: 0x1976D2, Rows: 5},
}

// renderContext is handed to every factory.
type renderContext struct {
	textures *sdlview.TextureCache
}

// ColorScreen is a solid screen with selectable rows.
type ColorScreen struct {
	Name  string `json:"name"`
	Color uint32 `json:"color"`
	Rows  int    `json:"rows"`
}

func (s ColorScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	return sdlview.NewColorView(sdlview.HexToColor(s.Color), s.Rows), nil
}

// IconScreen shows one of the embedded SVG icons.
type IconScreen struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Background uint32 `json:"background"`
}

func (s IconScreen) CreateComponent(ctx viewstack.RenderContext, _ viewstack.Container) (viewstack.Component, error) {
	rc, ok := ctx.(*renderContext)
	if !ok {
		return nil, fmt.Errorf("icon screen needs a render context, got %T", ctx)
	}
	data, err := iconFS.ReadFile("icons/" + s.Icon + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", s.Icon, err)
	}
	return sdlview.NewIconView(s.Icon, data, sdlview.HexToColor(s.Background), rc.textures), nil
}

func newRegistry() *viewstack.FactoryRegistry {
	return viewstack.NewFactoryRegistry().
		MustRegister("color", ColorScreen{}).
		MustRegister("icon", IconScreen{})
}

func newRouter(stack *viewstack.ViewStack, enter, exit viewstack.TransitionBuilder) *router.Router {
	return router.New(stack).
		WithTransitions(enter, exit).
		Register(ScreenColor, func(input any) (viewstack.ScreenFactory, error) {
			s, ok := input.(ColorScreen)
			if !ok {
				return nil, fmt.Errorf("color screen input is %T", input)
			}
			return s, nil
		}).
		Register(ScreenIcon, func(input any) (viewstack.ScreenFactory, error) {
			return IconScreen{Name: "icon", Icon: "stack", Background: 0x212121}, nil
		})
}

// next pushes whatever follows the top screen. The icon screen is last.
func next(r *router.Router) error {
	top, err := r.Stack().Peek()
	if err != nil {
		_, err = r.Navigate(ScreenColor, palette[0])
		return err
	}

	s, ok := top.(ColorScreen)
	if !ok {
		return nil
	}
	for i, p := range palette {
		if p.Name == s.Name && i+1 < len(palette) {
			_, err = r.Navigate(ScreenColor, palette[i+1])
			return err
		}
	}
	_, err = r.Navigate(ScreenIcon, nil)
	return err
}

func windowTitle(stack *viewstack.ViewStack, loc *pancakes.Localizer) string {
	top, err := stack.Peek()
	if err != nil {
		return "Pancakes"
	}

	var name string
	switch s := top.(type) {
	case ColorScreen:
		name = s.Name
	case IconScreen:
		name = s.Name
	default:
		name = fmt.Sprintf("%T", top)
	}
	return loc.WindowTitle(loc.ScreenName(messageID(name), name), stack.Size())
}

// messageID turns "red" into "ScreenRed".
func messageID(name string) string {
	if name == "" {
		return "Screen"
	}
	return "Screen" + strings.ToUpper(name[:1]) + name[1:]
}
