package anim

import (
	"fmt"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

// Target is a component that slide and fade transitions can move.
type Target interface {
	viewstack.Component
	Size() (width, height int)
	SetOffset(x, y int)
	SetOpacity(opacity float64)
}

// SlideIn moves the component in from the right edge.
func SlideIn(a *Animator, tween Tween) viewstack.TransitionBuilder {
	return builder(a, tween, func(t Target, p float64) {
		w, _ := t.Size()
		t.SetOffset(int(float64(w)*(1-p)), 0)
	})
}

// SlideOut moves the component off to the right edge.
func SlideOut(a *Animator, tween Tween) viewstack.TransitionBuilder {
	return builder(a, tween, func(t Target, p float64) {
		w, _ := t.Size()
		t.SetOffset(int(float64(w)*p), 0)
	})
}

// FadeIn raises opacity from 0 to 1.
func FadeIn(a *Animator, tween Tween) viewstack.TransitionBuilder {
	return builder(a, tween, func(t Target, p float64) {
		t.SetOpacity(p)
	})
}

// FadeOut lowers opacity from 1 to 0.
func FadeOut(a *Animator, tween Tween) viewstack.TransitionBuilder {
	return builder(a, tween, func(t Target, p float64) {
		t.SetOpacity(1 - p)
	})
}

func builder(a *Animator, tween Tween, apply func(Target, float64)) viewstack.TransitionBuilder {
	return viewstack.TransitionBuilderFunc(func(c viewstack.Component) (viewstack.Transition, error) {
		if a == nil {
			return nil, fmt.Errorf("anim: animator is nil")
		}
		target, ok := c.(Target)
		if !ok {
			return nil, fmt.Errorf("anim: %T cannot be animated", c)
		}

		return viewstack.TransitionFunc(func(done func()) {
			// Apply the first frame now so the component never flashes at
			// its resting position before the next tick.
			apply(target, 0)
			a.Add(tween, func(p float64) { apply(target, p) }, done)
		}), nil
	})
}
