package room

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildSurfaces(t *testing.T) {
	d := Dimensions{Width: 4, Length: 5, Height: 3}
	surfaces, err := Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(surfaces) != SurfaceCount {
		t.Fatalf("got %d surfaces, want %d", len(surfaces), SurfaceCount)
	}

	tests := []struct {
		role     Role
		size     [2]float32
		position [3]float32
		normal   [3]float32
	}{
		{RoleFloor, [2]float32{4, 5}, [3]float32{2, 0, 2.5}, [3]float32{0, 1, 0}},
		{RoleCeiling, [2]float32{4, 5}, [3]float32{2, 3, 2.5}, [3]float32{0, -1, 0}},
		{RoleBackWall, [2]float32{4, 3}, [3]float32{2, 1.5, 0}, [3]float32{0, 0, 1}},
		{RoleFrontWall, [2]float32{4, 3}, [3]float32{2, 1.5, 5}, [3]float32{0, 0, -1}},
		{RoleLeftWall, [2]float32{5, 3}, [3]float32{0, 1.5, 2.5}, [3]float32{1, 0, 0}},
		{RoleRightWall, [2]float32{5, 3}, [3]float32{4, 1.5, 2.5}, [3]float32{-1, 0, 0}},
	}

	for i, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			s := surfaces[i]
			if s.Role != tt.role {
				t.Fatalf("surface %d role = %v, want %v", i, s.Role, tt.role)
			}
			if s.Size != tt.size {
				t.Errorf("Size = %v, want %v", s.Size, tt.size)
			}
			if s.Position != tt.position || s.Interior != tt.position {
				t.Errorf("Position = %v, Interior = %v, want %v", s.Position, s.Interior, tt.position)
			}
			if s.Normal != tt.normal {
				t.Errorf("Normal = %v, want %v", s.Normal, tt.normal)
			}
			if !approx(s.Area(), tt.size[0]*tt.size[1]) {
				t.Errorf("Area = %v", s.Area())
			}
		})
	}
}

func TestBuildOutlines(t *testing.T) {
	d := Dimensions{Width: 4, Length: 5, Height: 3}
	surfaces, err := Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, s := range surfaces {
		t.Run(s.Role.String(), func(t *testing.T) {
			var lo, hi [3]float32
			lo, hi = s.Outline[0], s.Outline[0]
			for _, c := range s.Outline {
				for k := range 3 {
					lo[k] = min(lo[k], c[k])
					hi[k] = max(hi[k], c[k])
					if c[k] < 0 || c[k] > [3]float32{d.Width, d.Height, d.Length}[k] {
						t.Fatalf("corner %v lies outside the room", c)
					}
				}
			}
			// The outline is flat along the normal axis and spans Size along the other two.
			var spans []float32
			for k := range 3 {
				if s.Normal[k] != 0 {
					if lo[k] != hi[k] || lo[k] != s.Interior[k] {
						t.Errorf("outline not on interior plane: axis %d spans [%v, %v]", k, lo[k], hi[k])
					}
					continue
				}
				spans = append(spans, hi[k]-lo[k])
			}
			area := spans[0] * spans[1]
			if area != s.Area() {
				t.Errorf("outline area = %v, want %v", area, s.Area())
			}
			edges := s.Edges()
			if edges[3][1] != s.Outline[0] {
				t.Errorf("outline edges are not closed")
			}
		})
	}
}

func TestBuildInteriorSpanIndependentOfThickness(t *testing.T) {
	d := Dimensions{Width: 3.3, Length: 7.9, Height: 2.6}

	for _, thickness := range []float32{0, DefaultSlabThickness, 0.35} {
		surfaces, err := Build(d, WithWallThickness(thickness))
		if err != nil {
			t.Fatalf("Build(thickness=%v): %v", thickness, err)
		}
		byRole := make(map[Role]Surface, len(surfaces))
		for _, s := range surfaces {
			byRole[s.Role] = s
		}

		if got := byRole[RoleRightWall].Interior[0] - byRole[RoleLeftWall].Interior[0]; got != d.Width {
			t.Errorf("thickness %v: interior width = %v, want %v", thickness, got, d.Width)
		}
		if got := byRole[RoleFrontWall].Interior[2] - byRole[RoleBackWall].Interior[2]; got != d.Length {
			t.Errorf("thickness %v: interior length = %v, want %v", thickness, got, d.Length)
		}
		if got := byRole[RoleCeiling].Interior[1] - byRole[RoleFloor].Interior[1]; got != d.Height {
			t.Errorf("thickness %v: interior height = %v, want %v", thickness, got, d.Height)
		}

		// Slabs sit outside the interior face by half their depth.
		for _, s := range surfaces {
			for k := range 3 {
				want := s.Interior[k] - s.Normal[k]*thickness/2
				if s.Position[k] != want {
					t.Errorf("thickness %v: %v position[%d] = %v, want %v", thickness, s.Role, k, s.Position[k], want)
				}
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, errA := Build(DefaultDimensions, WithWallThickness(0.1))
	b, errB := Build(DefaultDimensions, WithWallThickness(0.1))
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Build is not deterministic")
	}
	a[0].Size[0] = 99
	if b[0].Size[0] == 99 {
		t.Fatalf("Build results share storage")
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(Dimensions{Width: 4, Length: 0, Height: 3}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero length: got %v, want ErrInvalidDimensions", err)
	}
	if _, err := Build(DefaultDimensions, WithWallThickness(-0.1)); !errors.Is(err, ErrInvalidThickness) {
		t.Errorf("negative thickness: got %v, want ErrInvalidThickness", err)
	}
}
