package animator

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/scheduler"
)

// State is the lifecycle state of a CameraAnimator.
type State int

const (
	StateIdle State = iota
	StateAnimating
)

func (s State) String() string {
	if s == StateAnimating {
		return "animating"
	}
	return "idle"
}

// Mode decides who owns the camera.
type Mode int

const (
	// ModeScripted lets the animator drive the camera to preset poses.
	ModeScripted Mode = iota

	// ModeUserControlled hands the camera to interactive orbit input; the animator
	// never writes the camera in this mode.
	ModeUserControlled
)

func (m Mode) String() string {
	if m == ModeUserControlled {
		return "user"
	}
	return "scripted"
}

type cameraAnimator struct {
	mu *sync.Mutex

	cam   camera.Camera
	sched scheduler.Scheduler

	duration time.Duration
	ease     Easing

	mode    Mode
	state   State
	current *Animation
	task    scheduler.TaskID
}

// CameraAnimator moves a camera from wherever it is to a target pose over a fixed
// duration. At most one transition is in flight: starting a new one cancels the
// previous one and continues from the camera's current position. Steps run only
// inside scheduler.Advance.
type CameraAnimator interface {
	// Animate starts a transition to pose, superseding any transition in flight.
	// In ModeUserControlled it only cancels.
	//
	// Parameters:
	//   - pose: the destination position and look-at point
	//   - now: the frame timestamp the transition starts at
	Animate(pose room.Pose, now time.Time)

	// Cancel stops the transition in flight, leaving the camera where it is.
	Cancel()

	// State reports whether a transition is in flight.
	//
	// Returns:
	//   - State: StateIdle or StateAnimating
	State() State

	// Mode returns who currently owns the camera.
	Mode() Mode

	// SetMode switches camera ownership. Switching to ModeUserControlled cancels
	// the transition in flight.
	//
	// Parameters:
	//   - m: the new mode
	SetMode(m Mode)

	// Current returns a copy of the latest transition, or false if none was started.
	//
	// Returns:
	//   - Animation: the latest transition
	//   - bool: false if Animate has never scheduled a transition
	Current() (Animation, bool)

	// Duration returns the length of every transition.
	Duration() time.Duration
}

var _ CameraAnimator = &cameraAnimator{}

// NewCameraAnimator creates an idle, scripted CameraAnimator for cam whose steps are
// registered on sched.
//
// Parameters:
//   - cam: the camera to move
//   - sched: the frame scheduler that drives each step
//   - options: functional options such as WithDuration
//
// Returns:
//   - CameraAnimator: the new animator
func NewCameraAnimator(cam camera.Camera, sched scheduler.Scheduler, options ...CameraAnimatorBuilderOption) CameraAnimator {
	a := &cameraAnimator{
		mu:       &sync.Mutex{},
		cam:      cam,
		sched:    sched,
		duration: DefaultDuration,
		ease:     EaseOutCubic,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

func (a *cameraAnimator) Animate(pose room.Pose, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()
	if a.mode == ModeUserControlled || a.cam == nil || a.sched == nil {
		return
	}

	x, y, z := a.cam.Position()
	anim := &Animation{
		Start:     [3]float32{x, y, z},
		Target:    pose.Position,
		LookAt:    pose.LookAt,
		StartTime: now,
		Duration:  a.duration,
	}
	a.current = anim
	a.state = StateAnimating
	a.task = a.sched.Schedule(func(now time.Time) bool {
		return a.step(anim, now)
	})
}

// step writes one frame of anim to the camera and reports whether it should run again.
func (a *cameraAnimator) step(anim *Animation, now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if anim.Cancelled || a.current != anim || a.mode == ModeUserControlled {
		return false
	}
	pos, progress := SampleWith(*anim, now, a.ease)
	a.cam.SetPosition(pos[0], pos[1], pos[2])
	a.cam.LookAt(anim.LookAt[0], anim.LookAt[1], anim.LookAt[2])
	if progress >= 1 {
		a.state = StateIdle
		a.task = 0
		return false
	}
	return true
}

func (a *cameraAnimator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
}

// cancelLocked removes the in-flight step from the scheduler. Caller must hold the mutex.
func (a *cameraAnimator) cancelLocked() {
	if a.state != StateAnimating {
		return
	}
	if a.current != nil {
		a.current.Cancelled = true
	}
	if a.task != 0 && a.sched != nil {
		a.sched.Cancel(a.task)
	}
	a.task = 0
	a.state = StateIdle
}

func (a *cameraAnimator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *cameraAnimator) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *cameraAnimator) SetMode(m Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if m == ModeUserControlled {
		a.cancelLocked()
	}
	a.mode = m
}

func (a *cameraAnimator) Current() (Animation, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return Animation{}, false
	}
	return *a.current, true
}

func (a *cameraAnimator) Duration() time.Duration {
	return a.duration
}
