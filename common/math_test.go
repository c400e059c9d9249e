package common

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestBuildModelMatrixRotatesNormals(t *testing.T) {
	half := float32(math.Pi / 2)
	tests := []struct {
		name string
		rot  [3]float32
		want [3]float32
	}{
		{"identity faces +z", [3]float32{0, 0, 0}, [3]float32{0, 0, 1}},
		{"pitch down faces +y", [3]float32{-half, 0, 0}, [3]float32{0, 1, 0}},
		{"pitch up faces -y", [3]float32{half, 0, 0}, [3]float32{0, -1, 0}},
		{"yaw half turn faces -z", [3]float32{0, math.Pi, 0}, [3]float32{0, 0, -1}},
		{"yaw left faces +x", [3]float32{0, half, 0}, [3]float32{1, 0, 0}},
		{"yaw right faces -x", [3]float32{0, -half, 0}, [3]float32{-1, 0, 0}},
	}

	var m [16]float32
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			BuildModelMatrix(m[:], 1, 2, 3, tt.rot[0], tt.rot[1], tt.rot[2], 1, 1, 1)
			got := TransformDirection(m[:], [3]float32{0, 0, 1})
			for i := range 3 {
				if !near(got[i], tt.want[i]) {
					t.Fatalf("normal = %v, want %v", got, tt.want)
				}
			}
			p := TransformPoint(m[:], [3]float32{})
			if p != [3]float32{1, 2, 3} {
				t.Fatalf("origin maps to %v, want translation", p)
			}
		})
	}
}

func TestLerp3Endpoints(t *testing.T) {
	a := [3]float32{0.1, -7.3, 1e-3}
	b := [3]float32{10, 2.2, 3.3333333}
	if got := Lerp3(a, b, 0); got != a {
		t.Errorf("Lerp3(t=0) = %v, want %v", got, a)
	}
	if got := Lerp3(a, b, 1); got != b {
		t.Errorf("Lerp3(t=1) = %v, want %v", got, b)
	}
	mid := Lerp3([3]float32{}, [3]float32{10, 0, 0}, 0.875)
	if mid[0] != 8.75 {
		t.Errorf("Lerp3(t=0.875).x = %v, want 8.75", mid[0])
	}
}

func TestClamp32(t *testing.T) {
	if got := Clamp32(5, 0, 3); got != 3 {
		t.Errorf("upper clamp = %v", got)
	}
	if got := Clamp32(-1, 0, 3); got != 0 {
		t.Errorf("lower clamp = %v", got)
	}
	if got := Clamp32(7, 2, 1); got != 1.5 {
		t.Errorf("inverted bounds = %v, want midpoint", got)
	}
}
