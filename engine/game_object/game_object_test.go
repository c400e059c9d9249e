package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	if !obj.Enabled() {
		t.Error("new objects should start enabled")
	}
	if obj.Kind() != KindSurface {
		t.Errorf("Kind = %v, want surface", obj.Kind())
	}
	if obj.Model() != nil || obj.Material() != nil {
		t.Error("model and material should be nil until set")
	}
}

func TestGameObjectReportsSurface(t *testing.T) {
	s := room.Surface{
		Role:     room.RoleLeftWall,
		Size:     [2]float32{4, 2.5},
		Position: [3]float32{0, 1.25, 2},
		Rotation: [3]float32{0, 1.5707964, 0},
	}
	obj := NewGameObject(WithID(7), WithKind(KindOutline), WithSurface(s), WithEnabled(false))

	if obj.ID() != 7 {
		t.Errorf("ID = %d, want 7", obj.ID())
	}
	if obj.Role() != room.RoleLeftWall {
		t.Errorf("Role = %v, want left_wall", obj.Role())
	}
	if obj.Kind().String() != "outline" {
		t.Errorf("Kind = %q, want outline", obj.Kind())
	}
	if x, y, z := obj.Position(); x != 0 || y != 1.25 || z != 2 {
		t.Errorf("Position = (%v, %v, %v)", x, y, z)
	}
	if _, ry, _ := obj.Rotation(); ry != s.Rotation[1] {
		t.Errorf("Rotation y = %v, want %v", ry, s.Rotation[1])
	}
	if obj.Enabled() {
		t.Error("WithEnabled(false) ignored")
	}
	obj.SetEnabled(true)
	if !obj.Enabled() {
		t.Error("SetEnabled(true) ignored")
	}
}
