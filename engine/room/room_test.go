package room

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func approxVec(a, b [3]float32) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func TestDimensionsValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name    string
		dims    Dimensions
		wantErr bool
	}{
		{"default", DefaultDimensions, false},
		{"tiny but positive", Dimensions{Width: 0.01, Length: 0.01, Height: 0.01}, false},
		{"outside ui range is still valid", Dimensions{Width: 40, Length: 0.5, Height: 12}, false},
		{"zero width", Dimensions{Width: 0, Length: 5, Height: 3}, true},
		{"negative length", Dimensions{Width: 4, Length: -5, Height: 3}, true},
		{"negative height", Dimensions{Width: 4, Length: 5, Height: -0.1}, true},
		{"nan", Dimensions{Width: nan, Length: 5, Height: 3}, true},
		{"inf", Dimensions{Width: 4, Length: inf, Height: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dims.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Fatalf("expected ErrInvalidDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDimensionsClamp(t *testing.T) {
	got := Dimensions{Width: 0.2, Length: 42, Height: float32(math.NaN())}.Clamp()
	want := Dimensions{Width: MinWidth, Length: MaxLength, Height: MinHeight}
	if got != want {
		t.Fatalf("Clamp() = %+v, want %+v", got, want)
	}
	if in := (Dimensions{Width: 4.5, Length: 6, Height: 2.7}); in.Clamp() != in {
		t.Fatalf("Clamp changed in-range dimensions: %+v", in.Clamp())
	}
}

func TestRoomDetails(t *testing.T) {
	d := DefaultDimensions
	if !approx(d.FloorArea(), 20) {
		t.Errorf("FloorArea() = %v, want 20", d.FloorArea())
	}
	if !approx(d.Volume(), 60) {
		t.Errorf("Volume() = %v, want 60", d.Volume())
	}
	if got := d.String(); got != "4.0 × 5.0 × 3.0 m" {
		t.Errorf("String() = %q", got)
	}
	if got := FormatDimension(2.75); got != "2.8 m" {
		t.Errorf("FormatDimension(2.75) = %q", got)
	}
	want := "Dimensions: 4.0 × 5.0 × 3.0 m\nFloor Area: 20.0 m²\nVolume: 60.0 m³"
	if got := d.Details(); got != want {
		t.Errorf("Details() = %q, want %q", got, want)
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want View
		ok   bool
	}{
		{"corner", ViewCorner, true},
		{"Side View", ViewSide, true},
		{" TOP ", ViewTop, true},
		{"front", ViewFront, true},
		{"free", ViewFree, true},
		{"orbit", ViewFree, true},
		{"isometric", ViewCorner, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseView(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("ParseView(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestViewLabels(t *testing.T) {
	want := []string{"Corner View", "Side View", "Top View", "Front View"}
	views := Views()
	if len(views) != len(want) {
		t.Fatalf("Views() returned %d presets, want %d", len(views), len(want))
	}
	for i, v := range views {
		if v.Label() != want[i] {
			t.Errorf("Views()[%d].Label() = %q, want %q", i, v.Label(), want[i])
		}
	}
	if View(42).Label() != "Corner View" {
		t.Errorf("unknown view label = %q", View(42).Label())
	}
}
