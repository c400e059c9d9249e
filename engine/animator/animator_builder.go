package animator

import "time"

// CameraAnimatorBuilderOption is a functional option for configuring a CameraAnimator.
type CameraAnimatorBuilderOption func(*cameraAnimator)

// WithDuration sets the length of every transition. Non-positive durations make
// transitions complete on their first step.
//
// Parameters:
//   - d: the transition duration
//
// Returns:
//   - CameraAnimatorBuilderOption: option function to apply
func WithDuration(d time.Duration) CameraAnimatorBuilderOption {
	return func(a *cameraAnimator) {
		a.duration = d
	}
}

// WithEasing replaces the cubic ease-out curve.
//
// Parameters:
//   - ease: the easing function; nil keeps the default
//
// Returns:
//   - CameraAnimatorBuilderOption: option function to apply
func WithEasing(ease Easing) CameraAnimatorBuilderOption {
	return func(a *cameraAnimator) {
		if ease != nil {
			a.ease = ease
		}
	}
}

// WithMode sets the initial camera ownership mode.
func WithMode(m Mode) CameraAnimatorBuilderOption {
	return func(a *cameraAnimator) {
		a.mode = m
	}
}
