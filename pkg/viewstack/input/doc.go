// Package input turns hardware buttons into virtual buttons for navigation.
//
// A Watcher reads key events from a Linux evdev device (the buttons on a
// handheld, or any keyboard) and delivers them as Events on a channel, so
// the render loop can push and pop screens without blocking on the device.
// Repeater turns a held direction into a stream of repeats with the usual
// delay-then-interval timing.
package input
