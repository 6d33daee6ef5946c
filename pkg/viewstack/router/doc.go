// Package router provides named screen navigation on top of a ViewStack.
//
// Screens are identified by typed constants and registered with a Route that
// turns a navigation input into a ScreenFactory. Navigate and Back apply the
// router's default transitions so call sites only say where to go.
//
// # Basic Usage
//
//	// Define screen identifiers as typed constants
//	const (
//	    ScreenList router.Screen = iota
//	    ScreenDetail
//	)
//
//	r := router.New(stack).
//	    WithTransitions(slideIn, slideOut)
//
//	r.Register(ScreenList, func(input any) (viewstack.ScreenFactory, error) {
//	    return ListScreen{Items: input.([]Item)}, nil
//	})
//
//	r.Register(ScreenDetail, func(input any) (viewstack.ScreenFactory, error) {
//	    return DetailScreen{ID: input.(int)}, nil
//	})
//
//	r.Navigate(ScreenList, items)
//	r.Navigate(ScreenDetail, 7)
//	r.Back()
//
// # Resume State
//
// Screens below the top stay mounted, so position state such as the selected
// row survives back navigation without any work from the route. Components
// that implement viewstack.StatefulComponent also keep that state across
// Save and Restore.
package router
