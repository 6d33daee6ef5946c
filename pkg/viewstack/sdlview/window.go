package sdlview

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// Window wraps the SDL window and renderer a Container is drawn into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	logger          *slog.Logger
	hasVSync        bool
	lastPresentTime uint64
}

// NewWindow initializes SDL video and opens a window.
// In development mode the window is decorated and placed near the top left.
func NewWindow(title string, opts WindowOptions, logger *slog.Logger) (*Window, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logger.Error("Failed to get display mode", "error", err)
			displayMode.W, displayMode.H = 1024, 768
		}
		if width == 0 {
			width = displayMode.W
		}
		if height == 0 {
			height = displayMode.H
		}
	}

	x, y := int32(0), int32(0)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	logger.Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		logger:   logger,
		hasVSync: vsync,
	}, nil
}

// SetTitle updates the window title.
func (w *Window) SetTitle(title string) {
	w.Title = title
	w.Window.SetTitle(title)
}

func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// Clear fills the frame with the theme background.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	_ = w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	_ = w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
	sdl.Quit()
}
