// Package anim is a small frame clock for driving transitions from a render loop.
//
// A Tween describes how long an animation lasts and how it eases. An Animator
// holds running tweens and advances them every time the loop calls Tick.
// Nothing here touches a renderer, so the same tweens drive SDL components
// and tests alike.
package anim

import (
	"sync"
	"time"
)

// Tween is the timing of one animation.
type Tween struct {
	Duration time.Duration
	Ease     Easing
}

// Progress returns the eased progress after elapsed, clamped to [0, 1].
// A zero or negative duration is complete immediately.
func (t Tween) Progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}

	p := float64(elapsed) / float64(t.Duration)
	if t.Ease != nil {
		p = t.Ease(p)
	}
	return p
}

type animation struct {
	tween   Tween
	start   time.Time
	started bool
	update  func(progress float64)
	done    func()
}

// Animator advances running tweens. Tick is called from the render loop;
// Add may be called from any goroutine.
type Animator struct {
	mu      sync.Mutex
	running []*animation
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Add starts a tween. Its clock starts at the next Tick. update receives the
// eased progress on every tick, ending with exactly 1; done runs once after
// the final update.
func (a *Animator) Add(tween Tween, update func(progress float64), done func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.running = append(a.running, &animation{tween: tween, update: update, done: done})
}

// Tick advances every running tween to now. Callbacks run outside the lock,
// so they may Add follow-up animations.
func (a *Animator) Tick(now time.Time) {
	a.mu.Lock()
	current := a.running
	a.running = nil
	a.mu.Unlock()

	var keep []*animation
	var finished []*animation
	for _, anim := range current {
		if !anim.started {
			anim.start = now
			anim.started = true
		}

		p := anim.tween.Progress(now.Sub(anim.start))
		if anim.update != nil {
			anim.update(p)
		}
		if p >= 1 {
			finished = append(finished, anim)
		} else {
			keep = append(keep, anim)
		}
	}

	a.mu.Lock()
	a.running = append(keep, a.running...)
	a.mu.Unlock()

	for _, anim := range finished {
		if anim.done != nil {
			anim.done()
		}
	}
}

// Len returns the number of running tweens.
func (a *Animator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.running)
}

// Idle reports whether nothing is animating.
func (a *Animator) Idle() bool {
	return a.Len() == 0
}
