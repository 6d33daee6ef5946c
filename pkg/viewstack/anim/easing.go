package anim

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseInCubic(t float64) float64 { return t * t * t }

func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EasingByName resolves the names accepted in configuration files.
// Unknown names fall back to EaseOutCubic.
func EasingByName(name string) Easing {
	switch name {
	case "linear":
		return Linear
	case "in-cubic":
		return EaseInCubic
	case "in-out-quad":
		return EaseInOutQuad
	default:
		return EaseOutCubic
	}
}
