package light

import (
	"encoding/binary"
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestDefaultRig(t *testing.T) {
	rig := DefaultRig()
	if len(rig) != 3 {
		t.Fatalf("DefaultRig() has %d lights, want 3", len(rig))
	}
	if rig[0].Type() != LightTypeAmbient || rig[0].Intensity() != 0.5 {
		t.Errorf("ambient = %v@%v", rig[0].Type(), rig[0].Intensity())
	}
	key := rig[1].Direction()
	l := float32(math.Sqrt(150))
	want := [3]float32{-5 / l, -10 / l, -5 / l}
	for i := range 3 {
		if !near(key[i], want[i]) {
			t.Fatalf("key direction = %v, want %v", key, want)
		}
	}
	if rig[2].Intensity() != 0.3 {
		t.Errorf("fill intensity = %v", rig[2].Intensity())
	}
}

func TestShade(t *testing.T) {
	sun := NewLight(LightTypeDirectional, WithDirection(0, -1, 0), WithIntensity(0.5))
	amb := NewLight(LightTypeAmbient, WithIntensity(0.25))
	base := [4]float32{0.8, 0.8, 0.8, 1}

	tests := []struct {
		name   string
		lights []Light
		normal [3]float32
		want   float32
	}{
		{"facing sun", []Light{sun, amb}, [3]float32{0, 1, 0}, 0.8 * 0.75},
		{"back face lit like front", []Light{sun, amb}, [3]float32{0, -1, 0}, 0.8 * 0.75},
		{"grazing", []Light{sun, amb}, [3]float32{1, 0, 0}, 0.8 * 0.25},
		{"unnormalized normal", []Light{sun}, [3]float32{0, 4, 0}, 0.8 * 0.5},
		{"saturates", []Light{sun, sun, sun, amb}, [3]float32{0, 1, 0}, 1},
		{"disabled light ignored", []Light{NewLight(LightTypeAmbient, WithEnabled(false))}, [3]float32{0, 1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shade(tt.lights, tt.normal, base)
			if !near(got[0], tt.want) || got[3] != 1 {
				t.Fatalf("Shade() = %v, want r=%v a=1", got, tt.want)
			}
		})
	}

	if got := Shade([]Light{sun}, [3]float32{}, base); got != base {
		t.Errorf("zero normal should be unlit, got %v", got)
	}
}

func TestGPULightRig(t *testing.T) {
	rig := NewGPULightRig(DefaultRig())
	if rig.Size() != 80 {
		t.Fatalf("Size() = %d, want 80", rig.Size())
	}
	if rig.Ambient[0] != 0.5 {
		t.Errorf("ambient = %v", rig.Ambient)
	}
	if rig.Directions[0][3] != 1 || rig.Directions[1][3] != 1 {
		t.Errorf("expected both directional slots active: %v", rig.Directions)
	}
	buf := rig.Marshal()
	if len(buf) != 80 {
		t.Fatalf("Marshal() length = %d", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64:68])); got != 0.3 {
		t.Errorf("fill color red = %v, want 0.3", got)
	}
}
