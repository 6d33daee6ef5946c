package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenGameList router.Screen = iota
	ScreenGameDetail
	ScreenSettings
)

// Domain types
type Game struct {
	ID   int
	Name string
}

// Factories - what each screen needs to render
type GameListScreen struct {
	Games []Game
}

func (s GameListScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	fmt.Printf("List: showing %d games\n", len(s.Games))
	return &view{}, nil
}

type GameDetailScreen struct {
	Game Game
}

func (s GameDetailScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	fmt.Printf("Detail: showing %s\n", s.Game.Name)
	return &view{}, nil
}

// Example demonstrates basic router usage with screen registration and back navigation.
func Example() {
	stack, _ := viewstack.New(&container{}, viewstack.DelegateFunc(func() {
		fmt.Println("Exit")
	}))
	r := router.New(stack)

	r.Register(ScreenGameList, func(input any) (viewstack.ScreenFactory, error) {
		return GameListScreen{Games: input.([]Game)}, nil
	})
	r.Register(ScreenGameDetail, func(input any) (viewstack.ScreenFactory, error) {
		return GameDetailScreen{Game: input.(Game)}, nil
	})

	games := []Game{{ID: 1, Name: "Portal"}}
	_, _ = r.Navigate(ScreenGameList, games)
	_, _ = r.Navigate(ScreenGameDetail, games[0])

	// Back to the list: it was never unmounted, so it is not recreated.
	_, _ = r.Back()
	fmt.Println("Depth:", stack.Size())

	// Backing out of the last screen hands control to the delegate.
	_, _ = r.Back()

	// Output:
	// List: showing 1 games
	// Detail: showing Portal
	// Depth: 1
	// Exit
}

// Example_unknownScreen demonstrates navigating to a screen that was never registered.
func Example_unknownScreen() {
	stack, _ := viewstack.New(&container{}, viewstack.DelegateFunc(func() {}))
	r := router.New(stack)

	_, err := r.Navigate(ScreenSettings, nil)
	fmt.Println(err)

	// Output:
	// router: screen not registered: 2
}
