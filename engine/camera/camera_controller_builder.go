package camera

// CameraControllerOption configures a controller built by NewCameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithTarget sets the point the controller orbits and looks at. The initial position
// is derived from it using the default radius and angles.
//
// Parameters:
//   - x, y, z: world-space pivot
//
// Returns:
//   - CameraControllerOption: option setting the pivot
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}

// WithRadiusBounds limits how close to and how far from the pivot Zoom and SetRadius may go.
// Non-positive or inverted ranges are ignored.
//
// Parameters:
//   - nearest: minimum distance to the pivot
//   - farthest: maximum distance to the pivot
//
// Returns:
//   - CameraControllerOption: option setting the radius range
func WithRadiusBounds(nearest, farthest float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if nearest > 0 && farthest >= nearest {
			cc.minRadius, cc.maxRadius = nearest, farthest
		}
	}
}

// WithZoomSpeed sets the meters of radius change per unit of Zoom delta.
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the meters moved per unit of PanForward or PanRight delta.
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}

// WithBounds starts the controller confined to b, as SetBounds would.
//
// Parameters:
//   - b: the allowed region, usually from InteriorBounds
//
// Returns:
//   - CameraControllerOption: option setting the confinement
func WithBounds(b Bounds) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds = b
		cc.bounded = true
	}
}
