// package room holds the pure value types and functions describing a rectangular room: its dimensions,
// the preset camera views and their placement formulas, and the surface descriptors that make up its geometry.
// Nothing in this package touches the GPU, the scene graph, or the clock.
package room

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions is returned when a width, length, or height is not a positive finite number.
var ErrInvalidDimensions = errors.New("invalid room dimensions")

// UI ranges applied by Clamp. The core never assumes these have been applied.
const (
	MinWidth  float32 = 1
	MaxWidth  float32 = 10
	MinLength float32 = 1
	MaxLength float32 = 10
	MinHeight float32 = 2
	MaxHeight float32 = 6
)

// Dimensions describes an axis-aligned room occupying the box from (0,0,0) to (Width,Height,Length), in meters.
type Dimensions struct {
	// Width is the room extent along the X axis.
	Width float32
	// Length is the room extent along the Z axis.
	Length float32
	// Height is the room extent along the Y axis.
	Height float32
}

// DefaultDimensions is the room shown before any user input.
var DefaultDimensions = Dimensions{Width: 4, Length: 5, Height: 3}

// Validate reports whether every dimension is a positive finite number.
//
// Returns:
//   - error: an error wrapping ErrInvalidDimensions naming the offending field, or nil
func (d Dimensions) Validate() error {
	fields := [3]struct {
		name  string
		value float32
	}{
		{"width", d.Width},
		{"length", d.Length},
		{"height", d.Height},
	}
	for _, f := range fields {
		v := float64(f.value)
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidDimensions, f.name, f.value)
		}
	}
	return nil
}

// Clamp returns a copy of d restricted to the ranges offered by the dimension controls.
// NaN values are replaced by the lower bound of their range.
//
// Returns:
//   - Dimensions: the clamped dimensions
func (d Dimensions) Clamp() Dimensions {
	return Dimensions{
		Width:  clampRange(d.Width, MinWidth, MaxWidth),
		Length: clampRange(d.Length, MinLength, MaxLength),
		Height: clampRange(d.Height, MinHeight, MaxHeight),
	}
}

// FloorArea returns Width × Length in square meters.
func (d Dimensions) FloorArea() float32 {
	return d.Width * d.Length
}

// Volume returns Width × Length × Height in cubic meters.
func (d Dimensions) Volume() float32 {
	return d.Width * d.Length * d.Height
}

// String formats the dimensions the way the room details readout shows them, e.g. "4.0 × 5.0 × 3.0 m".
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1f × %.1f × %.1f m", d.Width, d.Length, d.Height)
}

// Details returns the multi-line room details readout: dimensions, floor area and volume.
//
// Returns:
//   - string: the readout text
func (d Dimensions) Details() string {
	return fmt.Sprintf("Dimensions: %s\nFloor Area: %.1f m²\nVolume: %.1f m³", d.String(), d.FloorArea(), d.Volume())
}

// FormatDimension formats a single length in meters with one decimal place, e.g. "4.0 m".
//
// Parameters:
//   - value: the length in meters
//
// Returns:
//   - string: the formatted length
func FormatDimension(value float32) string {
	return fmt.Sprintf("%.1f m", value)
}

func clampRange(v, lo, hi float32) float32 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
