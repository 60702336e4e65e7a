package shoe

import (
	"github.com/maisonverte/vitrine/internal/engine/lighting"
	"github.com/maisonverte/vitrine/pkg/math"
)

// UpdateUniforms pushes per-frame shading inputs into every live custom
// shader material: the world position of the brightest light in the
// scene and the camera's world position. Standard-path materials are
// skipped; they take their lighting from the renderer's light buffer.
// The light scan is linear and recomputed every call. Light counts on
// the stage are tiny, so nothing is cached.
func UpdateUniforms(lights []lighting.PointLight, cameraPos math.Vec3, materials []*Material) {
	brightest, ok := lighting.Brightest(lights)
	for _, m := range materials {
		if m == nil || m.Kind == Standard {
			continue
		}
		if ok {
			m.LightPosition = brightest.Position
		}
		m.ViewPosition = cameraPos
	}
}
