// Package sdlview hosts a viewstack.ViewStack in an SDL2 window.
//
// Container is the single parent every screen is mounted in. The render loop
// calls Update once per frame to lay out new children and advance running
// transitions, then Draw to render the visible children bottom to top.
// Components embed Base, which provides visibility, layout listeners, and
// the offset and opacity that the anim transitions drive.
//
// Types and functions in this package require cgo and the SDL2 libraries.
package sdlview
