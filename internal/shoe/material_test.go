package shoe

import "testing"

func TestStandardPresetsIgnoreColor(t *testing.T) {
	for _, label := range MaterialLabels() {
		a := NewMaterial(label, "#E1B75A", false)
		b := NewMaterial(label, "#1A3C34", false)

		if a.Kind != Standard || b.Kind != Standard {
			t.Errorf("%s: standard path requested but kind = %v/%v", label, a.Kind, b.Kind)
		}
		if a.Roughness != b.Roughness || a.Metalness != b.Metalness ||
			a.Clearcoat != b.Clearcoat || a.Sheen != b.Sheen {
			t.Errorf("%s: preset varies with color", label)
		}
	}
}

func TestAdvancedDispatch(t *testing.T) {
	tests := []struct {
		label MaterialLabel
		want  Kind
	}{
		{Leather, Anisotropic},
		{Knit, Anisotropic},
		{Nubuck, Subsurface},
		{Glint, Iridescent},
	}
	for _, tt := range tests {
		m := NewMaterial(tt.label, "#FFFFFF", true)
		if m.Kind != tt.want {
			t.Errorf("%s: kind = %v, want %v", tt.label, m.Kind, tt.want)
		}
	}
}

func TestAnisotropicRoughnessAxes(t *testing.T) {
	leather := NewMaterial(Leather, "#FFFFFF", true)
	if leather.RoughnessX != 0.4 || leather.RoughnessY != 0.6 {
		t.Errorf("leather axes = %v/%v, want 0.4/0.6", leather.RoughnessX, leather.RoughnessY)
	}

	knit := NewMaterial(Knit, "#FFFFFF", true)
	if knit.RoughnessX != 0.6 || knit.RoughnessY != 0.2 {
		t.Errorf("knit axes = %v/%v, want 0.6/0.2", knit.RoughnessX, knit.RoughnessY)
	}
}

func TestSubsurfaceParams(t *testing.T) {
	m := NewMaterial(Nubuck, "#FFFFFF", true)
	if m.Power != 1.5 || m.Thickness != 0.3 {
		t.Errorf("subsurface params = power %v thickness %v, want 1.5/0.3", m.Power, m.Thickness)
	}
}

func TestGlintEndToEnd(t *testing.T) {
	advanced := NewMaterial(Glint, "#E1B75A", true)
	if advanced.Kind != Iridescent {
		t.Fatalf("kind = %v, want iridescent", advanced.Kind)
	}
	if advanced.Metalness != 0.9 || advanced.Roughness != 0.2 {
		t.Errorf("iridescent metal/rough = %v/%v, want 0.9/0.2", advanced.Metalness, advanced.Roughness)
	}
	if advanced.IridescenceScale != 3.0 {
		t.Errorf("scale = %v, want 3.0", advanced.IridescenceScale)
	}

	standard := NewMaterial(Glint, "#E1B75A", false)
	if standard.Kind != Standard {
		t.Fatalf("kind = %v, want standard", standard.Kind)
	}
	if standard.Roughness != 0.2 || standard.Metalness != 0.9 {
		t.Errorf("standard glint = rough %v metal %v, want 0.2/0.9", standard.Roughness, standard.Metalness)
	}
}

func TestUnknownLabelFallsBackToStandard(t *testing.T) {
	m := NewMaterial(MaterialLabel("velvet"), "#FFFFFF", true)
	if m.Kind != Standard {
		t.Errorf("unknown label kind = %v, want standard", m.Kind)
	}
}

func TestHexParsing(t *testing.T) {
	m := NewMaterial(Leather, "#FF0000", false)
	if m.BaseColor.X < 0.99 || m.BaseColor.Y > 0.01 || m.BaseColor.Z > 0.01 {
		t.Errorf("color = %v, want pure red", m.BaseColor)
	}

	bad := NewMaterial(Leather, "not-a-color", false)
	if bad.BaseColor.X != 0.5 {
		t.Errorf("malformed hex should yield gray, got %v", bad.BaseColor)
	}
}

func TestRecolorPreservesParams(t *testing.T) {
	m := NewMaterial(Glint, "#E1B75A", true)
	before := m.IridescenceScale
	m.Recolor("#1A3C34")
	if m.IridescenceScale != before || m.Kind != Iridescent {
		t.Error("recolor changed shading parameters")
	}
}

func TestSetOpacity(t *testing.T) {
	m := NewMaterial(Leather, "#FFFFFF", false)

	m.SetOpacity(0.4)
	if m.Opacity != 0.4 || !m.Transparent {
		t.Errorf("opacity = %v transparent = %v", m.Opacity, m.Transparent)
	}

	m.SetOpacity(1.5)
	if m.Opacity != 1 || m.Transparent {
		t.Errorf("opacity should clamp to 1 and clear the flag, got %v/%v", m.Opacity, m.Transparent)
	}
}

func TestPreviewSwatch(t *testing.T) {
	standard := NewMaterial(Leather, "#1A3C34", false)
	if standard.PreviewSwatch() != standard.BaseColor {
		t.Error("standard swatch should be the base color")
	}

	glint := NewMaterial(Glint, "#1A3C34", true)
	if glint.Kind != Iridescent {
		t.Fatalf("expected iridescent kind, got %s", glint.Kind)
	}
	if glint.PreviewSwatch() == glint.BaseColor {
		t.Error("iridescent swatch should be hue-shifted away from the base color")
	}
}
