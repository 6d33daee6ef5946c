package input

import (
	"time"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Repeater tracks held directions and handles repeat timing.
// Feed it every button event with SetHeld and call Update once per frame.
type Repeater struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewRepeater creates a Repeater with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewRepeater() *Repeater {
	return NewRepeaterWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewRepeaterWithTiming creates a Repeater with custom timing.
func NewRepeaterWithTiming(delay, interval time.Duration) *Repeater {
	return &Repeater{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a directional button.
func (r *Repeater) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	var flag *bool
	switch button {
	case constants.VirtualButtonUp:
		flag = &r.held.up
	case constants.VirtualButtonDown:
		flag = &r.held.down
	case constants.VirtualButtonLeft:
		flag = &r.held.left
	case constants.VirtualButtonRight:
		flag = &r.held.right
	default:
		return false
	}

	if held && !*flag {
		r.lastRepeatTime = now
		r.hasRepeated = false
	}
	*flag = held
	if !held {
		r.hasRepeated = false
	}
	return true
}

// IsHeld returns true if any direction is currently held.
func (r *Repeater) IsHeld() bool {
	return r.held.up || r.held.down || r.held.left || r.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (r *Repeater) HeldDirection() Direction {
	switch {
	case r.held.up:
		return DirectionUp
	case r.held.down:
		return DirectionDown
	case r.held.left:
		return DirectionLeft
	case r.held.right:
		return DirectionRight
	}
	return DirectionNone
}

// Update returns the direction to repeat at now, or DirectionNone.
// The first repeat occurs after the delay, later ones after the interval.
func (r *Repeater) Update(now time.Time) Direction {
	if !r.IsHeld() {
		r.hasRepeated = false
		return DirectionNone
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	if now.Sub(r.lastRepeatTime) >= threshold {
		r.lastRepeatTime = now
		r.hasRepeated = true
		return r.HeldDirection()
	}
	return DirectionNone
}

// Reset clears all held directions and timing state.
func (r *Repeater) Reset() {
	r.held.up, r.held.down, r.held.left, r.held.right = false, false, false, false
	r.hasRepeated = false
}

// VirtualButton returns the VirtualButton for a Direction.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
