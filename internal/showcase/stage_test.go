package showcase

import (
	"testing"

	"github.com/maisonverte/vitrine/internal/config"
	"github.com/maisonverte/vitrine/internal/shoe"
	"github.com/maisonverte/vitrine/pkg/math"
)

func testConfig() config.ShowcaseConfig {
	return config.Default().Showcase
}

func TestNewStageFromDefaults(t *testing.T) {
	s := New(testConfig(), 60)

	if s.Group().Mounted() != shoe.LowTop {
		t.Errorf("mounted = %v, want the configured low-top", s.Group().Mounted())
	}
	if s.MaterialLabel() != shoe.Leather {
		t.Errorf("material = %v, want leather", s.MaterialLabel())
	}
	if !s.AdvancedShaders() {
		t.Error("advanced shaders should default on")
	}
	if len(s.Lights()) == 0 {
		t.Error("stage should carry the studio rig")
	}
}

func TestCycleSilhouetteOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Silhouette = "high-top"
	s := New(cfg, 60)

	got := s.CycleSilhouette()
	if got != shoe.LowTop {
		t.Errorf("first cycle = %v, want low-top", got)
	}

	// settle the fade, then continue the cycle
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60)
	}
	if s.Group().Mounted() != shoe.LowTop {
		t.Fatalf("mounted = %v after settling", s.Group().Mounted())
	}

	if got := s.CycleSilhouette(); got != shoe.Running {
		t.Errorf("second cycle = %v, want running", got)
	}
}

func TestCycleMaterial(t *testing.T) {
	s := New(testConfig(), 60)

	if got := s.CycleMaterial(); got != shoe.Nubuck {
		t.Errorf("cycle from leather = %v, want nubuck", got)
	}
	if s.Group().Base.Kind != shoe.Subsurface {
		t.Errorf("base kind = %v, want subsurface for nubuck", s.Group().Base.Kind)
	}
}

func TestSetAdvancedShadersRebuilds(t *testing.T) {
	cfg := testConfig()
	cfg.Material = "glint"
	s := New(cfg, 60)

	if s.Group().Base.Kind != shoe.Iridescent {
		t.Fatalf("kind = %v, want iridescent", s.Group().Base.Kind)
	}

	s.SetAdvancedShaders(false)
	if s.Group().Base.Kind != shoe.Standard {
		t.Errorf("kind = %v after disabling, want standard", s.Group().Base.Kind)
	}
	if s.Group().Base.Roughness != 0.2 || s.Group().Base.Metalness != 0.9 {
		t.Errorf("glint preset = %v/%v, want 0.2/0.9",
			s.Group().Base.Roughness, s.Group().Base.Metalness)
	}
}

func TestMaterialChangePreservesFadeOpacity(t *testing.T) {
	s := New(testConfig(), 60)
	s.SetSilhouette(shoe.Running)
	s.Update(0.125) // quarter of the way through the fade

	before := s.Group().Base.Opacity
	if before > 0.99 {
		t.Fatal("expected a mid-fade opacity")
	}

	s.SetMaterial(shoe.Knit)
	if s.Group().Base.Opacity != before {
		t.Errorf("opacity = %v after material change, want %v", s.Group().Base.Opacity, before)
	}
}

func TestUpdateWritesUniforms(t *testing.T) {
	s := New(testConfig(), 60)
	s.Update(1.0 / 60)

	cam := s.Camera.Position()
	for _, m := range s.Materials() {
		if m.Kind == shoe.Standard {
			continue
		}
		if m.ViewPosition != cam {
			t.Errorf("view position = %v, want camera %v", m.ViewPosition, cam)
		}
		if m.LightPosition == (math.Vec3{}) {
			t.Error("light position never written")
		}
	}
}

func TestActiveSetFollowsDistance(t *testing.T) {
	s := New(testConfig(), 60)

	s.Camera.Distance = 2
	if s.ActiveSet().Tier != shoe.TierHigh {
		t.Error("near camera should select the high tier")
	}

	s.Camera.Distance = 7
	if s.ActiveSet().Tier != shoe.TierMedium {
		t.Error("mid camera should select the medium tier")
	}

	s.Camera.Distance = 12
	if s.ActiveSet().Tier != shoe.TierLow {
		t.Error("far camera should select the low tier")
	}
}

func TestTurntableSpinsOrientation(t *testing.T) {
	cfg := testConfig()
	cfg.AutoRotate = true
	s := New(cfg, 60)

	before := s.ModelMatrix()
	s.Update(0.5)
	after := s.ModelMatrix()

	if before == after {
		t.Error("turntable should rotate the model matrix")
	}

	s.SetAutoRotate(false)
	frozen := s.ModelMatrix()
	s.Update(0.5)
	if s.ModelMatrix() != frozen {
		t.Error("disabling auto-rotate should freeze the model matrix")
	}
}

func TestUpdateReturnsSwappedGeometry(t *testing.T) {
	s := New(testConfig(), 60)
	s.Camera.Distance = 2
	s.SetSilhouette(shoe.HighTop)

	set := s.Update(0.3) // past the midpoint in one step
	if set.Silhouette != shoe.HighTop {
		t.Errorf("frame set silhouette = %v, want the swapped high-top", set.Silhouette)
	}
}

func TestCycleColorwayWraps(t *testing.T) {
	s := New(config.Default().Showcase, 60)

	first := s.CycleColorway()
	baseAfterFirst := s.Group().Base.BaseColor

	seen := map[string]bool{first: true}
	for i := 1; i < len(colorways); i++ {
		seen[s.CycleColorway()] = true
	}
	if len(seen) != len(colorways) {
		t.Errorf("expected %d distinct colorways, got %d", len(colorways), len(seen))
	}

	if wrapped := s.CycleColorway(); wrapped != first {
		t.Errorf("expected cycle to wrap to %s, got %s", first, wrapped)
	}
	if s.Group().Base.BaseColor != baseAfterFirst {
		t.Error("wrapping should restore the first colorway's base color")
	}
}
