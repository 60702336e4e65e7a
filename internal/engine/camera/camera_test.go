package camera

import "testing"

func TestOrbitPitchClamp(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX > c.MaxPitch {
		t.Errorf("pitch %v exceeds max %v", c.RotationX, c.MaxPitch)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX < c.MinPitch {
		t.Errorf("pitch %v below min %v", c.RotationX, c.MinPitch)
	}
}

func TestOrbitZoomClamp(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance < c.MinDistance {
		t.Errorf("distance %v below min", c.Distance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance > c.MaxDistance {
		t.Errorf("distance %v above max", c.Distance)
	}
}

func TestOrbitPositionDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.SetCenter(0, 0, 0)
	c.Distance = 3

	pos := c.Position()
	d := pos.Length()
	if d < 2.99 || d > 3.01 {
		t.Errorf("position distance = %v, want 3", d)
	}
}

func TestSmoothOrbitConverges(t *testing.T) {
	c := NewOrbitCamera()
	s := NewSmoothOrbit(c, 60)

	s.HandleZoom(20) // pull the target distance in
	target := s.targetDistance

	for i := 0; i < 600; i++ {
		s.Update()
	}

	diff := c.Distance - target
	if diff < -0.01 || diff > 0.01 {
		t.Errorf("distance %v did not converge to target %v", c.Distance, target)
	}
}

func TestSmoothOrbitTargetClamped(t *testing.T) {
	c := NewOrbitCamera()
	s := NewSmoothOrbit(c, 60)

	s.HandleDrag(0, 1e6)
	if s.targetRotationX > c.MaxPitch {
		t.Errorf("target pitch %v exceeds max", s.targetRotationX)
	}
	for i := 0; i < 100; i++ {
		s.HandleZoom(100)
	}
	if s.targetDistance < c.MinDistance {
		t.Errorf("target distance %v below min", s.targetDistance)
	}
}

func TestOrbitYawStep(t *testing.T) {
	c := NewOrbitCamera()
	s := NewSmoothOrbit(c, 60)
	before := s.targetRotationY

	s.Orbit(0.1)
	if s.targetRotationY <= before {
		t.Error("orbit step should advance the target yaw")
	}
}

func TestSmoothOrbitYawOffset(t *testing.T) {
	c := NewOrbitCamera()
	s := NewSmoothOrbit(c, 60)
	start := c.RotationY

	s.Orbit(0.5)
	for i := 0; i < 600; i++ {
		s.Update()
	}

	got := c.RotationY - start
	if got < 0.49 || got > 0.51 {
		t.Errorf("yaw moved %v, want ~0.5", got)
	}
}
