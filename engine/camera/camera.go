package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-roomviz/common"
)

// Default perspective settings for viewing a room.
const (
	DefaultFovDegrees float32 = 65
	DefaultNear       float32 = 0.1
	DefaultFar        float32 = 1000
)

type cameraImpl struct {
	mu *sync.Mutex

	up [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices
// from its CameraController. Position and look-at writes go through the camera
// so the matrices are current as soon as a write returns.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition moves the camera without changing its look-at point and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: world-space position
	SetPosition(x, y, z float32)

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// LookAt turns the camera toward a point without moving it and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: world-space look-at point
	LookAt(x, y, z float32)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Controller returns the attached CameraController.
	//
	// Returns:
	//   - CameraController: the attached controller
	Controller() CameraController

	// Update recomputes matrices from the controller. Call it once per frame after
	// input has moved the controller directly.
	Update()

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a 65° field of view, near plane 0.1 and far
// plane 1000. A default controller is attached when WithController is not given.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		up:     [3]float32{0, 1, 0},
		fov:    DefaultFovDegrees * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   DefaultNear,
		far:    DefaultFar,
	}
	for _, option := range options {
		option(c)
	}
	if c.controller == nil {
		c.controller = NewCameraController()
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller.Position()
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller.SetPosition(x, y, z)
	c.updateMatrices()
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller.Target()
}

func (c *cameraImpl) LookAt(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller.LookAt(x, y, z)
	c.updateMatrices()
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !(aspect > 0) {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection and view-projection matrices
// from the controller's position and target. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	px, py, pz := c.controller.Position()
	tx, ty, tz := c.controller.Target()

	common.LookAt(c.viewMatrix[:],
		px, py, pz,
		tx, ty, tz,
		c.up[0], c.up[1], c.up[2],
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
