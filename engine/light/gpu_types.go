package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxRigDirectional is the number of directional lights the GPU rig block holds.
const MaxRigDirectional = 2

// GPULightRigSource is the WGSL declaration matching GPULightRig.
const GPULightRigSource = `struct LightRig {
    ambient: vec4<f32>,
    directions: array<vec4<f32>, 2>,
    colors: array<vec4<f32>, 2>,
};
`

// GPULightRig is the GPU-aligned uniform block holding the ambient term and up to
// MaxRigDirectional directional lights.
// Size: 80 bytes (WGSL uniform aligned).
type GPULightRig struct {
	Ambient    [4]float32                    // offset  0: rgb * intensity, w unused
	Directions [MaxRigDirectional][4]float32 // offset 16: xyz travel direction, w = 1 if active
	Colors     [MaxRigDirectional][4]float32 // offset 48: rgb * intensity
}

// NewGPULightRig packs a light list into the uniform layout. Extra directional
// lights beyond MaxRigDirectional are dropped.
//
// Parameters:
//   - lights: the light rig
//
// Returns:
//   - GPULightRig: the packed rig
func NewGPULightRig(lights []Light) GPULightRig {
	var g GPULightRig
	slot := 0
	for _, l := range lights {
		if l == nil || !l.Enabled() {
			continue
		}
		c, k := l.Color(), l.Intensity()
		switch l.Type() {
		case LightTypeAmbient:
			for i := range 3 {
				g.Ambient[i] += c[i] * k
			}
		case LightTypeDirectional:
			if slot >= MaxRigDirectional {
				continue
			}
			d := l.Direction()
			g.Directions[slot] = [4]float32{d[0], d[1], d[2], 1}
			g.Colors[slot] = [4]float32{c[0] * k, c[1] * k, c[2] * k, 1}
			slot++
		}
	}
	return g
}

// Size returns the size of the GPULightRig struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPULightRig) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightRig struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPULightRig) Marshal() []byte {
	buf := make([]byte, 80)
	put := func(off int, v [4]float32) {
		for i := range 4 {
			binary.LittleEndian.PutUint32(buf[off+i*4:], math.Float32bits(v[i]))
		}
	}
	put(0, g.Ambient)
	for i := range MaxRigDirectional {
		put(16+i*16, g.Directions[i])
		put(48+i*16, g.Colors[i])
	}
	return buf
}
