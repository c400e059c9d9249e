// Package animator moves the camera smoothly between poses on the frame loop.
package animator

import (
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-roomviz/common"
)

// DefaultDuration is how long a camera transition takes unless WithDuration overrides it.
const DefaultDuration = 1200 * time.Millisecond

// Easing maps linear progress in [0, 1] to eased progress in [0, 1].
type Easing func(p float64) float64

// EaseOutCubic decelerates toward the end: 1 - (1-p)^3.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Linear applies no easing.
func Linear(p float64) float64 {
	return p
}

// Animation is a single camera transition.
type Animation struct {
	Start     [3]float32
	Target    [3]float32
	LookAt    [3]float32
	StartTime time.Time
	Duration  time.Duration
	Cancelled bool
}

// Progress returns the clamped linear progress of a at now. A non-positive
// duration is already complete.
//
// Parameters:
//   - now: the frame timestamp
//
// Returns:
//   - float64: progress in [0, 1]
func (a Animation) Progress(now time.Time) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.StartTime)) / float64(a.Duration)
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return min(p, 1)
}

// Sample evaluates a at now with cubic ease-out.
//
// Parameters:
//   - a: the animation to sample
//   - now: the frame timestamp
//
// Returns:
//   - [3]float32: the camera position; exactly a.Target once progress reaches 1
//   - float64: the linear progress in [0, 1]
func Sample(a Animation, now time.Time) ([3]float32, float64) {
	return SampleWith(a, now, EaseOutCubic)
}

// SampleWith is Sample with a caller-chosen easing function.
func SampleWith(a Animation, now time.Time, ease Easing) ([3]float32, float64) {
	p := a.Progress(now)
	if p >= 1 {
		return a.Target, 1
	}
	return common.Lerp3(a.Start, a.Target, ease(p)), p
}
