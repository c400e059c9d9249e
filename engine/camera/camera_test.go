package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if !near(c.Fov(), 65*math.Pi/180) || c.Near() != 0.1 || c.Far() != 1000 {
		t.Fatalf("defaults = fov %v near %v far %v", c.Fov(), c.Near(), c.Far())
	}
	if c.Controller() == nil {
		t.Fatalf("NewCamera did not attach a default controller")
	}
}

func TestSetPositionKeepsTarget(t *testing.T) {
	c := NewCamera()
	c.LookAt(1.8, 1.2, 2.25)
	c.SetPosition(3.2, 2.1, 4)

	if x, y, z := c.Position(); x != 3.2 || y != 2.1 || z != 4 {
		t.Fatalf("Position() = %v, %v, %v", x, y, z)
	}
	if x, y, z := c.Target(); x != 1.8 || y != 1.2 || z != 2.25 {
		t.Fatalf("Target() = %v, %v, %v", x, y, z)
	}

	// The target sits on the view axis, so it projects to the center of clip space.
	vp := c.ViewProjectionMatrix()
	p := [3]float32{1.8, 1.2, 2.25}
	cx := vp[0]*p[0] + vp[4]*p[1] + vp[8]*p[2] + vp[12]
	cy := vp[1]*p[0] + vp[5]*p[1] + vp[9]*p[2] + vp[13]
	if !near(cx, 0) || !near(cy, 0) {
		t.Fatalf("target projects to (%v, %v), want the screen center", cx, cy)
	}
}

func TestSetAspectIgnoresInvalid(t *testing.T) {
	c := NewCamera(WithAspect(1.5))
	c.SetAspect(0)
	c.SetAspect(float32(math.NaN()))
	if c.Aspect() != 1.5 {
		t.Fatalf("Aspect() = %v, want 1.5", c.Aspect())
	}
}

func TestInteriorBounds(t *testing.T) {
	tests := []struct {
		name          string
		width, length float32
		want          Bounds
	}{
		{"default room", 4, 5, Bounds{MinX: 0.3, MaxX: 3.7, MinZ: 0.3, MaxZ: 4.7, EyeHeight: 1.6}},
		{"narrow room collapses to center", 0.4, 5, Bounds{MinX: 0.2, MaxX: 0.2, MinZ: 0.3, MaxZ: 4.7, EyeHeight: 1.6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InteriorBounds(tt.width, tt.length)
			if !near(got.MinX, tt.want.MinX) || !near(got.MaxX, tt.want.MaxX) ||
				!near(got.MinZ, tt.want.MinZ) || !near(got.MaxZ, tt.want.MaxZ) || got.EyeHeight != tt.want.EyeHeight {
				t.Fatalf("InteriorBounds(%v, %v) = %+v, want %+v", tt.width, tt.length, got, tt.want)
			}
		})
	}
}

func TestBoundedControllerStaysInside(t *testing.T) {
	b := InteriorBounds(4, 5)
	cc := NewCameraController(WithTarget(2, 1.2, 2.5))
	cc.SetPosition(3.2, 2.1, 4)
	cc.SetBounds(b)

	check := func(step string) {
		t.Helper()
		x, y, z := cc.Position()
		if !b.Contains([3]float32{x, y, z}) {
			t.Fatalf("%s: position (%v, %v, %v) escaped %+v", step, x, y, z, b)
		}
	}
	check("SetBounds")
	if x, _, z := cc.Position(); x != 3.2 || z != 4 {
		t.Errorf("SetBounds moved an inside position horizontally: %v, %v", x, z)
	}

	for range 200 {
		cc.OrbitBy(cc.OrbitSpeed(), 0)
		check("OrbitBy step")
	}
	for range 50 {
		cc.Zoom(-10)
		check("Zoom out")
	}
	cc.OrbitBy(1.3, 0.4)
	check("OrbitBy")
	for range 100 {
		cc.PanForward(5)
		check("PanForward")
		cc.PanRight(-3)
		check("PanRight")
	}
	cc.SetRadius(40)
	check("SetRadius")

	cc.ClearBounds()
	if _, ok := cc.Bounds(); ok {
		t.Fatalf("Bounds() still reports confinement after ClearBounds")
	}
	cc.SetPosition(-10, 9, 20)
	if x, y, z := cc.Position(); x != -10 || y != 9 || z != 20 {
		t.Fatalf("unbounded SetPosition was clamped: %v, %v, %v", x, y, z)
	}
}

func TestBoundedWalkIntoWallCanTurnAround(t *testing.T) {
	b := InteriorBounds(4, 5)
	cc := NewCameraController(WithTarget(2, 1.6, 2.5))
	cc.SetPosition(2, 1.6, 4)
	cc.SetBounds(b)

	for range 200 {
		cc.PanForward(1)
	}
	tx, ty, tz := cc.Target()
	target := [3]float32{tx, ty, tz}
	if !b.Contains(target) {
		t.Fatalf("walking left the pivot at %v, outside %+v", target, b)
	}
	if !near(tz, 0.55) {
		t.Errorf("pivot z = %v, want it stopped one minimum radius inside the wall (0.55)", tz)
	}

	x, y, z := cc.Position()
	before := [3]float32{x, y, z}
	cc.OrbitBy(math.Pi, 0)
	x, y, z = cc.Position()
	after := [3]float32{x, y, z}
	if after == before {
		t.Fatalf("turning around left the camera at %v", before)
	}
	if !b.Contains(after) {
		t.Fatalf("position %v escaped %+v", after, b)
	}
	if d := float32(math.Hypot(float64(after[0]-tx), float64(after[2]-tz))); d < 0.25-1e-4 {
		t.Errorf("camera %v is %v from pivot %v, want at least the minimum radius", after, d, target)
	}
}

func TestWithBoundsStartsConfined(t *testing.T) {
	b := InteriorBounds(4, 5)
	cc := NewCameraController(WithTarget(2, 1.6, 2.5), WithRadiusBounds(0.5, 20), WithBounds(b))
	x, y, z := cc.Position()
	if !b.Contains([3]float32{x, y, z}) {
		t.Fatalf("position (%v, %v, %v) outside %+v", x, y, z, b)
	}
	if _, ok := cc.Bounds(); !ok {
		t.Fatal("Bounds() reports no confinement")
	}
	cc.SetRadius(100)
	if cc.Radius() != 20 {
		t.Errorf("Radius() = %v, want it clamped to 20", cc.Radius())
	}
}

func TestBoundsInset(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		margin float32
		want   Bounds
	}{
		{"shrinks", Bounds{MinX: 0.3, MaxX: 3.7, MinZ: 0.3, MaxZ: 4.7, EyeHeight: 1.6}, 0.25,
			Bounds{MinX: 0.55, MaxX: 3.45, MinZ: 0.55, MaxZ: 4.45, EyeHeight: 1.6}},
		{"narrow axis collapses", Bounds{MinX: 0.3, MaxX: 0.5, MinZ: 0.3, MaxZ: 4.7, EyeHeight: 1.6}, 0.25,
			Bounds{MinX: 0.4, MaxX: 0.4, MinZ: 0.55, MaxZ: 4.45, EyeHeight: 1.6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.bounds.inset(tt.margin)
			if !near(got.MinX, tt.want.MinX) || !near(got.MaxX, tt.want.MaxX) ||
				!near(got.MinZ, tt.want.MinZ) || !near(got.MaxZ, tt.want.MaxZ) || got.EyeHeight != tt.want.EyeHeight {
				t.Fatalf("inset(%v) = %+v, want %+v", tt.margin, got, tt.want)
			}
		})
	}
}

func TestLookAtKeepsPosition(t *testing.T) {
	cc := NewCameraController()
	cc.SetPosition(6, 1.8, 1.5)
	cc.LookAt(1.8, 1.2, 2.25)
	if x, y, z := cc.Position(); x != 6 || y != 1.8 || z != 1.5 {
		t.Fatalf("LookAt moved the camera to %v, %v, %v", x, y, z)
	}
	// Orbiting by zero must reproduce the same position from the re-derived spherical coordinates.
	cc.OrbitBy(0, 0)
	if x, y, z := cc.Position(); !near(x, 6) || !near(y, 1.8) || !near(z, 1.5) {
		t.Fatalf("spherical resync drifted to %v, %v, %v", x, y, z)
	}
}

func TestGPUCameraUniform(t *testing.T) {
	c := NewCamera()
	c.SetPosition(1, 2, 3)
	u := NewGPUCameraUniform(c)
	if u.Size() != 80 || len(u.Marshal()) != 80 {
		t.Fatalf("uniform size = %d", u.Size())
	}
	if u.CameraPosition != [3]float32{1, 2, 3} {
		t.Errorf("CameraPosition = %v", u.CameraPosition)
	}
}
