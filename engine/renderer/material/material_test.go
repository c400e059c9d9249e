package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]float32
		wantErr bool
	}{
		{"#ffffff", [4]float32{1, 1, 1, 1}, false},
		{"000000", [4]float32{0, 0, 0, 1}, false},
		{"#ff000080", [4]float32{1, 0, 0, 128.0 / 255}, false},
		{"#fff", [4]float32{}, true},
		{"#gggggg", [4]float32{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestForRole(t *testing.T) {
	tests := []struct {
		role      room.Role
		name      string
		color     string
		roughness float32
		metallic  float32
	}{
		{room.RoleFloor, "floor", FloorHex, 0.7, 0.1},
		{room.RoleCeiling, "ceiling", CeilingHex, 0.9, 0},
		{room.RoleBackWall, "wall", WallHex, 0.8, 0},
		{room.RoleFrontWall, "wall", WallHex, 0.8, 0},
		{room.RoleLeftWall, "wall", WallHex, 0.8, 0},
		{room.RoleRightWall, "wall", WallHex, 0.8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			m := ForRole(tt.role)
			if m.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", m.Name(), tt.name)
			}
			if m.BaseColor() != MustHex(tt.color) {
				t.Errorf("BaseColor() = %v, want %s", m.BaseColor(), tt.color)
			}
			if m.Roughness() != tt.roughness || m.Metallic() != tt.metallic {
				t.Errorf("roughness/metallic = %v/%v, want %v/%v", m.Roughness(), m.Metallic(), tt.roughness, tt.metallic)
			}
			if !m.DoubleSided() {
				t.Errorf("surface materials must be double sided")
			}
			if m.PipelineKey() != PipelineSurface {
				t.Errorf("PipelineKey() = %q", m.PipelineKey())
			}
		})
	}
}

func TestEdgeAndBackground(t *testing.T) {
	if Edge().PipelineKey() != PipelineOutline {
		t.Errorf("edge pipeline = %q, want %q", Edge().PipelineKey(), PipelineOutline)
	}
	if Edge().BaseColor() != MustHex("#403e43") {
		t.Errorf("edge color = %v", Edge().BaseColor())
	}
	if Background() != MustHex("#F5F5F7") {
		t.Errorf("background = %v", Background())
	}
}
