package input

import (
	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// DefaultKeymap maps gamepad and keyboard key codes to virtual buttons.
var DefaultKeymap = map[evdev.EvCode]constants.VirtualButton{
	evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
	evdev.BTN_SOUTH:      constants.VirtualButtonA,
	evdev.BTN_EAST:       constants.VirtualButtonB,
	evdev.BTN_START:      constants.VirtualButtonStart,
	evdev.BTN_SELECT:     constants.VirtualButtonSelect,
	evdev.BTN_MODE:       constants.VirtualButtonMenu,

	evdev.KEY_UP:        constants.VirtualButtonUp,
	evdev.KEY_DOWN:      constants.VirtualButtonDown,
	evdev.KEY_LEFT:      constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:     constants.VirtualButtonRight,
	evdev.KEY_ENTER:     constants.VirtualButtonA,
	evdev.KEY_BACKSPACE: constants.VirtualButtonB,
	evdev.KEY_ESC:       constants.VirtualButtonB,
	evdev.KEY_SPACE:     constants.VirtualButtonStart,
	evdev.KEY_TAB:       constants.VirtualButtonSelect,
}

// Event is one press or release of a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// evdev key values: 0 release, 1 press, 2 autorepeat.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// translate converts a raw evdev event. Non-key events and unmapped codes
// report false.
func translate(keymap map[evdev.EvCode]constants.VirtualButton, ev *evdev.InputEvent) (Event, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return Event{}, false
	}
	button, ok := keymap[ev.Code]
	if !ok {
		return Event{}, false
	}

	switch ev.Value {
	case keyReleased:
		return Event{Button: button}, true
	case keyPressed:
		return Event{Button: button, Pressed: true}, true
	case keyRepeated:
		return Event{Button: button, Pressed: true, Repeat: true}, true
	default:
		return Event{}, false
	}
}
