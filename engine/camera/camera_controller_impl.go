package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-roomviz/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// Orbit methods modify spherical coordinates and recompute position; planar
// methods translate both position and target along local camera axes.
//
// While bounded, the pivot stays inside the bounds shrunk by minRadius, and the
// camera sits on the orbit ray from the pivot, cut short where the ray leaves
// the bounds. Both are pinned to eye height.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Orbit speed settings
	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32

	// Planar speed
	panSpeed float32

	bounds  Bounds
	bounded bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with defaults sized for a room
// a few meters across.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		target: [3]float32{0, 0, 0},

		radius:    8.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 6),

		minRadius:    0.25,
		maxRadius:    50.0,
		minElevation: -float32(math.Pi/2 - 0.1),
		maxElevation: float32(math.Pi/2 - 0.1),

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.5,

		panSpeed: 0.1,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updatePosition()
	return cc
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever radius, azimuth, elevation, or target changes.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(cc.elevation)))
	sinElev := float32(math.Sin(float64(cc.elevation)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))

	offset := [3]float32{
		cc.radius * cosElev * sinAzim,
		cc.radius * sinElev,
		cc.radius * cosElev * cosAzim,
	}
	if cc.bounded {
		cc.target = cc.pivotBounds().constrain(cc.target)
		s := cc.bounds.reach(cc.target, offset)
		offset = common.Scale3(offset, s)
	}
	cc.position = common.Add3(cc.target, offset)
	if cc.bounded {
		cc.position = cc.bounds.constrain(cc.position)
	}
}

// pivotBounds is the region the orbit pivot may occupy while bounded.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) pivotBounds() Bounds {
	return cc.bounds.inset(cc.minRadius)
}

// syncSpherical re-derives radius, azimuth and elevation from position and target.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) syncSpherical() {
	dx := float64(cc.position[0] - cc.target[0])
	dy := float64(cc.position[1] - cc.target[1])
	dz := float64(cc.position[2] - cc.target[2])
	r := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if r < 1e-8 {
		return
	}
	cc.radius = float32(r)
	cc.azimuth = float32(math.Atan2(dx, dz))
	cc.elevation = float32(math.Asin(dy / r))
}

// clampRadius keeps the radius inside [minRadius, maxRadius]. Caller must hold the mutex.
func (cc *cameraControllerImpl) clampRadius() {
	cc.radius = common.Clamp32(cc.radius, cc.minRadius, cc.maxRadius)
}

// localAxes computes the camera's horizontal right and full forward vectors,
// consistent with the LookAt matrix. Returns zeros if position and target coincide.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) localAxes() (right, forward [3]float32) {
	bx := cc.position[0] - cc.target[0]
	by := cc.position[1] - cc.target[1]
	bz := cc.position[2] - cc.target[2]
	bLen := float32(math.Sqrt(float64(bx*bx + by*by + bz*bz)))
	if bLen < 1e-8 {
		return
	}
	forward = [3]float32{-bx / bLen, -by / bLen, -bz / bLen}

	// right = normalize(cross(worldUp, backward)) = (bz, 0, -bx) normalized
	rLen := float32(math.Sqrt(float64(bx*bx + bz*bz)))
	if rLen < 1e-8 {
		return
	}
	right = [3]float32{bz / rLen, 0, -bx / rLen}
	return
}

// translate shifts position and target together. While bounded the step is cut
// per axis so that neither leaves its region, which keeps the two a fixed offset
// apart and lets the camera slide along a wall. Caller must hold the mutex.
func (cc *cameraControllerImpl) translate(d [3]float32) {
	if cc.bounded {
		pivot := cc.pivotBounds()
		d[0] = limitStep(d[0], cc.position[0], cc.target[0], cc.bounds.MinX, cc.bounds.MaxX, pivot.MinX, pivot.MaxX)
		d[1] = 0
		d[2] = limitStep(d[2], cc.position[2], cc.target[2], cc.bounds.MinZ, cc.bounds.MaxZ, pivot.MinZ, pivot.MaxZ)
	}
	cc.position = common.Add3(cc.position, d)
	cc.target = common.Add3(cc.target, d)
	if cc.bounded {
		cc.position = cc.bounds.constrain(cc.position)
		cc.target = cc.pivotBounds().constrain(cc.target)
	}
}

// limitStep clamps a one-axis step so that p stays in [lo, hi] and t stays in [tlo, thi].
func limitStep(d, p, t, lo, hi, tlo, thi float32) float32 {
	from := max(lo-p, tlo-t)
	to := min(hi-p, thi-t)
	if from > to {
		return 0
	}
	return common.Clamp32(d, from, to)
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = [3]float32{x, y, z}
	cc.syncSpherical()
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *cameraControllerImpl) LookAt(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.syncSpherical()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	cc.clampRadius()
	cc.updatePosition()
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) OrbitBy(dAzimuth, dElevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += dAzimuth
	cc.elevation = common.Clamp32(cc.elevation+dElevation, cc.minElevation, cc.maxElevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clampRadius()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) OrbitSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) PanRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	right, _ := cc.localAxes()
	offset := delta * cc.panSpeed
	cc.translate([3]float32{right[0] * offset, 0, right[2] * offset})
}

func (cc *cameraControllerImpl) PanForward(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, fwd := cc.localAxes()
	offset := delta * cc.panSpeed
	// Bounded cameras walk on the floor plane instead of flying along the view ray.
	if cc.bounded {
		fwd[1] = 0
	}
	cc.translate([3]float32{fwd[0] * offset, fwd[1] * offset, fwd[2] * offset})
}

// --- boundedCameraController implementation ---

func (cc *cameraControllerImpl) SetBounds(b Bounds) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.bounds = b
	cc.bounded = true
	cc.position = b.constrain(cc.position)
	cc.target = cc.pivotBounds().constrain(cc.target)
	cc.syncSpherical()
}

func (cc *cameraControllerImpl) ClearBounds() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.bounded = false
}

func (cc *cameraControllerImpl) Bounds() (Bounds, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.bounds, cc.bounded
}
