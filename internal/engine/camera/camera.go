// Package camera provides the orbit camera for the product stage.
package camera

import (
	gomath "math"

	"github.com/charmbracelet/harmonica"

	"github.com/maisonverte/vitrine/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	CenterX, CenterY, CenterZ float32

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera framed for a shoe roughly 2.4
// units long sitting at the origin.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		CenterY:         0.45,
		Distance:        2.8,
		RotationX:       0.35,
		RotationY:       0.6,
		MinDistance:     1.0,
		MaxDistance:     14.0,
		MinPitch:        -0.2,
		MaxPitch:        1.45,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return math.Vec3{
		X: c.CenterX + x,
		Y: c.CenterY + y,
		Z: c.CenterZ + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	pos := c.Position()
	center := math.Vec3{X: c.CenterX, Y: c.CenterY, Z: c.CenterZ}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(pos, center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(x, y, z float32) {
	c.CenterX = x
	c.CenterY = y
	c.CenterZ = z
}

// FitToBounds frames the camera on the given bounding box.
func (c *OrbitCamera) FitToBounds(minX, minY, minZ, maxX, maxY, maxZ float32) {
	c.CenterX = (minX + maxX) / 2
	c.CenterY = (minY + maxY) / 2
	c.CenterZ = (minZ + maxZ) / 2

	sizeX := maxX - minX
	sizeZ := maxZ - minZ
	maxSize := sizeX
	if sizeZ > maxSize {
		maxSize = sizeZ
	}

	c.Distance = maxSize * 1.3
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	c.RotationX = 0.35
	c.RotationY = 0.6
}

// SmoothOrbit wraps an OrbitCamera with spring-damped motion: input
// moves a target pose and the rendered pose glides after it, so a drag
// release coasts to a stop instead of freezing.
type SmoothOrbit struct {
	Camera *OrbitCamera

	targetDistance  float32
	targetRotationX float32
	targetRotationY float32

	distanceVel  float32
	rotationXVel float32
	rotationYVel float32

	spring harmonica.Spring
}

// NewSmoothOrbit wraps a camera, assuming updates at the given frame
// rate. Angular frequency and damping are tuned for a heavy, settled
// feel rather than a bouncy one.
func NewSmoothOrbit(cam *OrbitCamera, fps int) *SmoothOrbit {
	return &SmoothOrbit{
		Camera:          cam,
		targetDistance:  cam.Distance,
		targetRotationX: cam.RotationX,
		targetRotationY: cam.RotationY,
		spring:          harmonica.NewSpring(harmonica.FPS(fps), 5.0, 1.0),
	}
}

// HandleDrag moves the target pose by a mouse drag delta.
func (s *SmoothOrbit) HandleDrag(deltaX, deltaY float32) {
	s.targetRotationY -= deltaX * s.Camera.DragSensitivity
	s.targetRotationX += deltaY * s.Camera.DragSensitivity

	if s.targetRotationX < s.Camera.MinPitch {
		s.targetRotationX = s.Camera.MinPitch
	}
	if s.targetRotationX > s.Camera.MaxPitch {
		s.targetRotationX = s.Camera.MaxPitch
	}
}

// HandleZoom moves the target distance by a scroll delta.
func (s *SmoothOrbit) HandleZoom(delta float32) {
	s.targetDistance -= delta * s.targetDistance * s.Camera.ZoomSensitivity
	if s.targetDistance < s.Camera.MinDistance {
		s.targetDistance = s.Camera.MinDistance
	}
	if s.targetDistance > s.Camera.MaxDistance {
		s.targetDistance = s.Camera.MaxDistance
	}
}

// Orbit offsets the target yaw directly, used for keyboard orbiting.
func (s *SmoothOrbit) Orbit(deltaYaw float32) {
	s.targetRotationY += deltaYaw
}

// Update advances the springs one frame and writes the smoothed pose
// into the wrapped camera.
func (s *SmoothOrbit) Update() {
	d, dv := s.spring.Update(float64(s.Camera.Distance), float64(s.distanceVel), float64(s.targetDistance))
	rx, rxv := s.spring.Update(float64(s.Camera.RotationX), float64(s.rotationXVel), float64(s.targetRotationX))
	ry, ryv := s.spring.Update(float64(s.Camera.RotationY), float64(s.rotationYVel), float64(s.targetRotationY))

	s.Camera.Distance = float32(d)
	s.distanceVel = float32(dv)
	s.Camera.RotationX = float32(rx)
	s.rotationXVel = float32(rxv)
	s.Camera.RotationY = float32(ry)
	s.rotationYVel = float32(ryv)
}
