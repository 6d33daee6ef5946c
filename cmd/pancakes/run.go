package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/viewstack/internal/pancakes"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/anim"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/input"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/router"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/sdlview"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the demo window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cfg)
	},
}

func transitions(tc pancakes.TransitionConfig, a *anim.Animator) (enter, exit viewstack.TransitionBuilder) {
	tween := anim.Tween{Duration: tc.Duration, Ease: anim.EasingByName(tc.Easing)}
	switch tc.Style {
	case pancakes.StyleSlide:
		return anim.SlideIn(a, tween), anim.SlideOut(a, tween)
	case pancakes.StyleFade:
		return anim.FadeIn(a, tween), anim.FadeOut(a, tween)
	default:
		return nil, nil
	}
}

func run(ctx context.Context, cfg *pancakes.Config) error {
	logger := viewstack.GetLogger()

	loc, err := pancakes.NewLocalizer(cfg.Locale)
	if err != nil {
		return err
	}

	st, err := pancakes.OpenStore(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.Theme.Accent != 0 {
		theme := sdlview.GetTheme()
		theme.AccentColor = sdlview.HexToColor(cfg.Theme.Accent)
		sdlview.SetTheme(theme)
	}

	win, err := sdlview.NewWindow("Pancakes", sdlview.WindowOptions{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Borderless: cfg.Window.Borderless,
		Resizable:  true,
	}, logger)
	if err != nil {
		return err
	}
	defer win.Close()

	textures := sdlview.NewTextureCache()
	defer textures.Destroy()

	animator := anim.NewAnimator()
	container := sdlview.NewContainer(animator, logger)
	container.Resize(win.Size())

	running := true
	stack, err := viewstack.New(container,
		viewstack.DelegateFunc(func() {
			logger.Info("Backed out of the last screen")
			running = false
		}),
		viewstack.WithRenderContext(&renderContext{textures: textures}),
		viewstack.WithRegistry(newRegistry()),
		viewstack.WithTransitionErrorHandler(func(err error) {
			logger.Error("Transition failed", "error", err)
		}),
	)
	if err != nil {
		return err
	}
	stack.Observe(func() { win.SetTitle(windowTitle(stack, loc)) })

	enter, exit := transitions(cfg.Transition, animator)
	r := newRouter(stack, enter, exit)

	if err := stack.Restore(st, cfg.Store.Key); err != nil {
		if !viewstack.IsMissingState(err) {
			logger.Warn("Could not restore saved stack", "key", cfg.Store.Key, "error", err)
			stack.Clear()
		}
	}
	if stack.Size() == 0 {
		if _, err := r.Navigate(ScreenColor, palette[0]); err != nil {
			return err
		}
	}
	logger.Info("Stack ready", "depth", stack.Size(), "store", cfg.Store.Driver)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	buttons := watchButtons(ctx, cfg.Input.Device, logger)

	repeater := input.NewRepeater()
	handle := func(button constants.VirtualButton, pressed bool, now time.Time) {
		repeater.SetHeld(button, pressed, now)
		if !pressed {
			return
		}
		if err := press(r, button); err != nil {
			if viewstack.IsBusy(err) {
				logger.Debug("Ignored button during transition", "button", button.String())
				return
			}
			logger.Error("Navigation failed", "button", button.String(), "error", err)
		}
	}

	for running {
		now := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Repeat != 0 {
					continue
				}
				handle(sdlview.ButtonForKey(e.Keysym.Sym), e.Type == sdl.KEYDOWN, now)
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					container.Resize(e.Data1, e.Data2)
				}
			}
		}

	drain:
		for buttons != nil {
			select {
			case ev, ok := <-buttons:
				if !ok {
					buttons = nil
					break drain
				}
				if !ev.Repeat {
					handle(ev.Button, ev.Pressed, now)
				}
			default:
				break drain
			}
		}

		if d := repeater.Update(now); d != input.DirectionNone {
			forward(stack, d.VirtualButton())
		}

		container.Update(now)
		win.Clear()
		container.Draw(win.Renderer)
		win.Present()
	}

	if err := stack.Save(st, cfg.Store.Key); err != nil {
		return fmt.Errorf("save stack: %w", err)
	}
	logger.Info("Saved stack", "depth", stack.Size(), "key", cfg.Store.Key)
	return nil
}

// press handles one button press.
func press(r *router.Router, button constants.VirtualButton) error {
	switch button {
	case constants.VirtualButtonConfirm:
		return next(r)
	case constants.VirtualButtonBack:
		_, err := r.Back()
		return err
	case constants.VirtualButtonStart:
		_, err := r.Reset(ScreenColor, palette[0])
		return err
	default:
		forward(r.Stack(), button)
		return nil
	}
}

// forward hands a button to the top component if it wants buttons.
func forward(stack *viewstack.ViewStack, button constants.VirtualButton) {
	top, err := stack.PeekComponent()
	if err != nil {
		return
	}
	if h, ok := top.(sdlview.ButtonHandler); ok {
		h.HandleButton(button)
	}
}

// watchButtons starts an evdev watcher when a device is configured. A device
// that cannot be opened is logged and the keyboard keeps working.
func watchButtons(ctx context.Context, device string, logger *slog.Logger) <-chan input.Event {
	if device == "" {
		return nil
	}

	w, err := input.Open(device, input.WithLogger(logger))
	if err != nil {
		logger.Warn("Hardware buttons unavailable", "device", device, "error", err)
		return nil
	}

	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Input watcher stopped", "error", err)
		}
	}()
	return w.Events()
}
