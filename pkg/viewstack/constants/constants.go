// Package constants defines shared constants, types, and configuration values
// used by the viewstack adapters and the demo application.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	// EnvPrefix prefixes every configuration override, e.g. PANCAKES_LOG_LEVEL.
	EnvPrefix = "PANCAKES"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware
// or from the keyboard in development mode.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

// Navigation aliases. A confirms and pushes, B backs out and pops.
const (
	VirtualButtonConfirm = VirtualButtonA
	VirtualButtonBack    = VirtualButtonB
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) String() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// ParseVirtualButton maps a case-insensitive button name back to its value.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// Defaults shared by the adapters and the demo.
const (
	DefaultInputDelay         = 20 * time.Millisecond  // Debounce delay between input events
	DefaultTransitionDuration = 250 * time.Millisecond // Slide and fade length
	DefaultFrameDelay         = time.Second / 60
	DefaultStateKey           = "stack" // Store key the demo saves its stack under
)
