package sdlview

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// keyboardButtons is the development keyboard layout.
var keyboardButtons = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_SPACE:     constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_m:         constants.VirtualButtonMenu,
}

// ButtonForKey maps a keyboard key to a virtual button.
func ButtonForKey(key sdl.Keycode) constants.VirtualButton {
	if b, ok := keyboardButtons[key]; ok {
		return b
	}
	return constants.VirtualButtonUnassigned
}
