package animator

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/scheduler"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestSample(t *testing.T) {
	a := Animation{
		Start:     [3]float32{0, 0, 0},
		Target:    [3]float32{10, 0, 0},
		StartTime: epoch,
		Duration:  1200 * time.Millisecond,
	}

	tests := []struct {
		elapsed  time.Duration
		wantX    float32
		progress float64
	}{
		{0, 0, 0},
		{-time.Second, 0, 0},
		{300 * time.Millisecond, 5.78125, 0.25},
		{600 * time.Millisecond, 8.75, 0.5},
		{1200 * time.Millisecond, 10, 1},
		{time.Hour, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			pos, p := Sample(a, epoch.Add(tt.elapsed))
			if pos[0] != tt.wantX || pos[1] != 0 || pos[2] != 0 {
				t.Fatalf("Sample = %v, want x=%v", pos, tt.wantX)
			}
			if p != tt.progress {
				t.Fatalf("progress = %v, want %v", p, tt.progress)
			}
		})
	}
}

func TestSampleZeroDuration(t *testing.T) {
	a := Animation{Start: [3]float32{1, 2, 3}, Target: [3]float32{4, 5, 6}, StartTime: epoch}
	pos, p := Sample(a, epoch)
	if pos != a.Target || p != 1 {
		t.Fatalf("Sample = %v, %v; want target, 1", pos, p)
	}
}

func TestSampleWithLinear(t *testing.T) {
	a := Animation{Target: [3]float32{10, 0, 0}, StartTime: epoch, Duration: time.Second}
	pos, _ := SampleWith(a, epoch.Add(500*time.Millisecond), Linear)
	if pos[0] != 5 {
		t.Fatalf("linear midpoint = %v, want 5", pos[0])
	}
}

func newRig(t *testing.T) (camera.Camera, scheduler.Scheduler, CameraAnimator) {
	t.Helper()
	cam := camera.NewCamera()
	cam.SetPosition(0, 0, 0)
	sched := scheduler.NewScheduler()
	return cam, sched, NewCameraAnimator(cam, sched)
}

func position(cam camera.Camera) [3]float32 {
	x, y, z := cam.Position()
	return [3]float32{x, y, z}
}

func TestAnimateRunsToCompletion(t *testing.T) {
	cam, sched, anim := newRig(t)
	pose := room.Pose{Position: [3]float32{10, 0, 0}, LookAt: [3]float32{10, 0, -5}}

	anim.Animate(pose, epoch)
	if anim.State() != StateAnimating || sched.Pending() != 1 {
		t.Fatalf("after Animate: state %v, pending %d", anim.State(), sched.Pending())
	}
	if position(cam) != ([3]float32{}) {
		t.Fatalf("Animate moved the camera before the first frame")
	}

	sched.Advance(epoch.Add(600 * time.Millisecond))
	if got := position(cam); got[0] != 8.75 {
		t.Fatalf("x at 600ms = %v, want 8.75", got[0])
	}
	if x, y, z := cam.Target(); x != 10 || y != 0 || z != -5 {
		t.Fatalf("camera looks at (%v, %v, %v)", x, y, z)
	}

	sched.Advance(epoch.Add(1300 * time.Millisecond))
	if got := position(cam); got != pose.Position {
		t.Fatalf("final position = %v, want exactly %v", got, pose.Position)
	}
	if anim.State() != StateIdle || sched.Pending() != 0 {
		t.Fatalf("after completion: state %v, pending %d", anim.State(), sched.Pending())
	}
}

func TestAnimateSupersedes(t *testing.T) {
	cam, sched, anim := newRig(t)
	t1 := room.Pose{Position: [3]float32{10, 0, 0}}
	t2 := room.Pose{Position: [3]float32{0, 0, 20}}

	anim.Animate(t1, epoch)
	at300 := epoch.Add(300 * time.Millisecond)
	sched.Advance(at300)
	mid := position(cam)
	if mid[0] != 5.78125 {
		t.Fatalf("x at 300ms = %v, want 5.78125", mid[0])
	}

	anim.Animate(t2, at300)
	if sched.Pending() != 1 {
		t.Fatalf("superseded step still registered: pending %d", sched.Pending())
	}
	cur, ok := anim.Current()
	if !ok || cur.Start != mid || cur.Target != t2.Position || !cur.StartTime.Equal(at300) {
		t.Fatalf("Current() = %+v, want start %v target %v", cur, mid, t2.Position)
	}

	sched.Advance(at300.Add(600 * time.Millisecond))
	got := position(cam)
	want := [3]float32{mid[0] * 0.125, 0, 20 * 0.875}
	for i := range 3 {
		if !near(got[i], want[i]) {
			t.Fatalf("position = %v, want %v", got, want)
		}
	}

	sched.Advance(at300.Add(2 * time.Second))
	if position(cam) != t2.Position {
		t.Fatalf("final position = %v, want %v", position(cam), t2.Position)
	}
}

func TestUserControlledModeNeverWrites(t *testing.T) {
	cam, sched, anim := newRig(t)
	anim.Animate(room.Pose{Position: [3]float32{10, 0, 0}}, epoch)

	anim.SetMode(ModeUserControlled)
	if anim.State() != StateIdle || sched.Pending() != 0 {
		t.Fatalf("SetMode(user) left state %v, pending %d", anim.State(), sched.Pending())
	}

	anim.Animate(room.Pose{Position: [3]float32{5, 5, 5}}, epoch)
	sched.Advance(epoch.Add(time.Second))
	if position(cam) != ([3]float32{}) || anim.State() != StateIdle {
		t.Fatalf("user mode camera moved to %v (state %v)", position(cam), anim.State())
	}

	anim.SetMode(ModeScripted)
	anim.Animate(room.Pose{Position: [3]float32{5, 5, 5}}, epoch)
	sched.Advance(epoch.Add(2 * time.Second))
	if position(cam) != ([3]float32{5, 5, 5}) {
		t.Fatalf("scripted mode did not reach target: %v", position(cam))
	}
}

func TestCancel(t *testing.T) {
	cam, sched, anim := newRig(t)
	anim.Animate(room.Pose{Position: [3]float32{10, 0, 0}}, epoch)
	anim.Cancel()
	sched.Advance(epoch.Add(time.Second))
	if position(cam) != ([3]float32{}) {
		t.Fatalf("cancelled animation moved the camera to %v", position(cam))
	}
	if cur, ok := anim.Current(); !ok || !cur.Cancelled {
		t.Fatalf("Current() = %+v, %v; want a cancelled animation", cur, ok)
	}
}

func TestWithDuration(t *testing.T) {
	cam := camera.NewCamera()
	cam.SetPosition(0, 0, 0)
	sched := scheduler.NewScheduler()
	anim := NewCameraAnimator(cam, sched, WithDuration(0))
	anim.Animate(room.Pose{Position: [3]float32{1, 2, 3}}, epoch)
	sched.Advance(epoch)
	if position(cam) != ([3]float32{1, 2, 3}) || anim.State() != StateIdle {
		t.Fatalf("zero duration did not snap: %v", position(cam))
	}
}
