// Package lighting provides the studio light rig for the showcase scene.
package lighting

import (
	"github.com/maisonverte/vitrine/pkg/math"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  math.Vec3
	Color     math.Vec3 // RGB in 0-1 range
	Range     float32   // Falloff distance
	Intensity float32
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// StudioRig returns the three-point lighting setup used by the product
// stage: a warm key light, a cool fill, and a rim light behind the shoe.
func StudioRig() []PointLight {
	return []PointLight{
		{
			Position:  math.Vec3{X: 3, Y: 4, Z: 3},
			Color:     math.Vec3{X: 1.0, Y: 0.96, Z: 0.88},
			Range:     20,
			Intensity: 2.4,
		},
		{
			Position:  math.Vec3{X: -3.5, Y: 2, Z: 2},
			Color:     math.Vec3{X: 0.82, Y: 0.88, Z: 1.0},
			Range:     18,
			Intensity: 0.9,
		},
		{
			Position:  math.Vec3{X: 0, Y: 3, Z: -4},
			Color:     math.Vec3{X: 1.0, Y: 1.0, Z: 1.0},
			Range:     16,
			Intensity: 1.4,
		},
	}
}

// Brightest returns the light with the highest intensity, scanning the
// whole slice every call. Returns false if the slice is empty.
func Brightest(lights []PointLight) (PointLight, bool) {
	if len(lights) == 0 {
		return PointLight{}, false
	}
	best := lights[0]
	for _, l := range lights[1:] {
		if l.Intensity > best.Intensity {
			best = l
		}
	}
	return best, true
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a point light to the buffer.
// Returns false if the buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
}

// Count returns the number of lights currently in the buffer.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// GetPositions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *PointLightBuffer) GetPositions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Position.X
		result[i*3+1] = light.Position.Y
		result[i*3+2] = light.Position.Z
	}
	return result
}

// GetColors returns colors as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetColors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color.X
		result[i*3+1] = light.Color.Y
		result[i*3+2] = light.Color.Z
	}
	return result
}

// GetRanges returns ranges as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetRanges() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}

// GetIntensities returns intensities as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetIntensities() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Intensity
	}
	return result
}
