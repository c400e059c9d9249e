package camera

// CameraController defines the union interface for camera control systems.
// Controllers own positional state (position, target). Camera reads from controller
// and computes view/projection matrices. Embeds orbit, planar and bounded control
// sets so a single controller serves both scripted placement and free viewing.
type CameraController interface {
	orbitCameraController
	planarCameraController
	boundedCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// LookAt sets the look-at point while keeping the current position.
	// Spherical coordinates are re-derived so later orbit steps start from here.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	LookAt(x, y, z float32)

	// SetPosition sets the camera's world-space position directly. Bounds are not
	// applied, and spherical coordinates are re-derived from the new position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Zoom adjusts the camera's distance by modifying orbit radius.
	// Positive delta zooms in (closer to target).
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)
}

// orbitCameraController defines orbit-specific control methods.
// Provides third-person orbit controls using spherical coordinates (radius, azimuth, elevation)
// relative to the target/pivot point.
type orbitCameraController interface {
	// OrbitBy rotates the camera by arbitrary angles, as a mouse drag does.
	//
	// Parameters:
	//   - dAzimuth: horizontal change in radians
	//   - dElevation: vertical change in radians, clamped to the elevation bounds
	OrbitBy(dAzimuth, dElevation float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32


	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// OrbitSpeed returns the keyboard orbit speed in radians per step.
	//
	// Returns:
	//   - float32: radians per orbit call
	OrbitSpeed() float32

	// MouseSensitivity returns the mouse drag sensitivity multiplier.
	//
	// Returns:
	//   - float32: multiplier for mouse movement
	MouseSensitivity() float32
}

// planarCameraController defines planar translation control methods.
// Panning shifts both position and target by the same offset, preserving the
// orbit relationship.
type planarCameraController interface {
	// PanRight translates the camera along its local right axis.
	// Positive delta moves right, negative moves left.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanRight(delta float32)

	// PanForward translates the camera along its local forward axis (dolly).
	// Positive delta moves toward the target, negative moves away.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanForward(delta float32)
}

// boundedCameraController confines the camera to a room interior while free viewing.
type boundedCameraController interface {
	// SetBounds confines every subsequent orbit, zoom and pan to b and immediately
	// moves the camera inside it. The pivot is moved at least the minimum radius
	// away from every edge, so turning around near a wall still has room to swing.
	//
	// Parameters:
	//   - b: the allowed region
	SetBounds(b Bounds)

	// ClearBounds removes the confinement without moving the camera.
	ClearBounds()

	// Bounds returns the active confinement.
	//
	// Returns:
	//   - Bounds: the allowed region
	//   - bool: false if the camera is unconfined
	Bounds() (Bounds, bool)
}
