package room

// RoomBuilderOption is a functional option applied to a single Build call.
type RoomBuilderOption func(*buildConfig)

// WithWallThickness renders every surface as a slab of the given depth instead of a zero-thickness plane.
// The slab is offset outward by half its depth so the interior clear dimensions are unchanged.
//
// Parameters:
//   - thickness: slab depth in meters; 0 selects planes, negative values make Build fail
//
// Returns:
//   - RoomBuilderOption: option function to apply
func WithWallThickness(thickness float32) RoomBuilderOption {
	return func(c *buildConfig) {
		c.thickness = thickness
	}
}
