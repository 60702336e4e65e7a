package lighting

import (
	"testing"

	"github.com/maisonverte/vitrine/pkg/math"
)

func TestBrightest(t *testing.T) {
	lights := []PointLight{
		{Position: math.Vec3{X: 1}, Intensity: 0.5},
		{Position: math.Vec3{X: 2}, Intensity: 2.0},
		{Position: math.Vec3{X: 3}, Intensity: 1.2},
	}

	best, ok := Brightest(lights)
	if !ok {
		t.Fatal("expected a light")
	}
	if best.Position.X != 2 {
		t.Errorf("picked light at X=%v, want X=2", best.Position.X)
	}
}

func TestBrightestEmpty(t *testing.T) {
	if _, ok := Brightest(nil); ok {
		t.Error("empty slice should return false")
	}
}

func TestStudioRigKeyIsBrightest(t *testing.T) {
	rig := StudioRig()
	if len(rig) != 3 {
		t.Fatalf("rig has %d lights, want 3", len(rig))
	}
	best, _ := Brightest(rig)
	if best.Intensity != rig[0].Intensity {
		t.Error("key light should be the brightest in the rig")
	}
}

func TestBufferLimits(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{Intensity: 1}) {
			t.Fatalf("add %d rejected below limit", i)
		}
	}
	if b.AddLight(PointLight{}) {
		t.Error("add beyond limit should be rejected")
	}
	if b.Count() != MaxPointLights {
		t.Errorf("count = %d, want %d", b.Count(), MaxPointLights)
	}
}

func TestBufferFlatUpload(t *testing.T) {
	b := NewPointLightBuffer()
	b.SetLights([]PointLight{
		{Position: math.Vec3{X: 1, Y: 2, Z: 3}, Color: math.Vec3{X: 0.5}, Range: 10, Intensity: 2},
	})

	pos := b.GetPositions()
	if len(pos) != MaxPointLights*3 {
		t.Fatalf("positions length = %d", len(pos))
	}
	if pos[0] != 1 || pos[1] != 2 || pos[2] != 3 {
		t.Errorf("positions = %v", pos[:3])
	}
	if b.GetColors()[0] != 0.5 {
		t.Error("color not uploaded")
	}
	if b.GetIntensities()[0] != 2 {
		t.Error("intensity not uploaded")
	}
	if b.GetRanges()[0] != 10 {
		t.Error("range not uploaded")
	}
}
