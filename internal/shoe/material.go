package shoe

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/logger"
	"github.com/maisonverte/vitrine/pkg/math"
)

// Kind selects the shading path a material renders with.
type Kind int

const (
	// Standard is the physically-based path driven by preset
	// roughness/metalness/clearcoat/sheen values.
	Standard Kind = iota
	Anisotropic
	Iridescent
	Subsurface
)

func (k Kind) String() string {
	switch k {
	case Anisotropic:
		return "anisotropic"
	case Iridescent:
		return "iridescent"
	case Subsurface:
		return "subsurface"
	default:
		return "standard"
	}
}

// Material is a live material instance shared by reference across every
// part that uses it. Two persist for the whole showcase session, base
// and accent; recoloring one recolors every part bound to it. The frame
// loop mutates Opacity, Transparent, LightPosition and ViewPosition in
// place between draws.
type Material struct {
	Label MaterialLabel
	Kind  Kind

	BaseColor math.Vec3

	// Standard path presets.
	Roughness float32
	Metalness float32
	Clearcoat float32
	Sheen     float32

	// Anisotropic path.
	RoughnessX float32
	RoughnessY float32
	Rotation   float32 // tangent frame rotation in radians

	// Iridescent path.
	IridescenceScale float32

	// Subsurface path.
	Power      float32
	Thickness  float32
	Distortion float32

	// Mutated per frame.
	Opacity       float32
	Transparent   bool
	LightPosition math.Vec3
	ViewPosition  math.Vec3
}

// preset holds the standard-path parameters for one catalog finish.
// Color never affects these.
type preset struct {
	roughness float32
	metalness float32
	clearcoat float32
	sheen     float32
}

var presets = map[MaterialLabel]preset{
	Leather: {roughness: 0.45, metalness: 0.05, clearcoat: 0.3},
	Nubuck:  {roughness: 0.9, metalness: 0, sheen: 0.6},
	Glint:   {roughness: 0.2, metalness: 0.9},
	Knit:    {roughness: 0.8, metalness: 0, sheen: 0.8},
}

// NewMaterial builds a material instance for a catalog finish.
// With advanced false the standard preset table applies. With advanced
// true the label dispatches to one of the custom shading paths; labels
// outside the catalog fall back to the standard path.
func NewMaterial(label MaterialLabel, hexColor string, advanced bool) *Material {
	m := &Material{
		Label:     label,
		BaseColor: parseHex(hexColor),
		Opacity:   1,
	}

	p, known := presets[label]
	if !known {
		logger.Debug("label outside the catalog, using standard leather preset",
			zap.String("label", string(label)))
		p = presets[Leather]
	}
	m.Roughness = p.roughness
	m.Metalness = p.metalness
	m.Clearcoat = p.clearcoat
	m.Sheen = p.sheen

	if !advanced || !known {
		m.Kind = Standard
		return m
	}

	switch label {
	case Leather:
		m.Kind = Anisotropic
		m.RoughnessX = 0.4
		m.RoughnessY = 0.6
	case Knit:
		m.Kind = Anisotropic
		m.RoughnessX = 0.6
		m.RoughnessY = 0.2
	case Nubuck:
		m.Kind = Subsurface
		m.Power = 1.5
		m.Thickness = 0.3
		m.Distortion = 0.4
	case Glint:
		m.Kind = Iridescent
		m.IridescenceScale = 3.0
		m.Metalness = 0.9
		m.Roughness = 0.2
	}
	return m
}

// Recolor replaces the base color in place, preserving every other
// parameter. Parts bound to this material pick the change up on the
// next draw.
func (m *Material) Recolor(hexColor string) {
	m.BaseColor = parseHex(hexColor)
}

// PreviewSwatch returns the color a flat catalog swatch shows for this
// material. The iridescent path never renders its base color directly,
// so its swatch rotates the hue the way the shader does at a mid
// fresnel angle; every other path swatches the base color as-is.
func (m *Material) PreviewSwatch() math.Vec3 {
	if m.Kind != Iridescent {
		return m.BaseColor
	}
	c := colorful.Color{
		R: float64(m.BaseColor.X),
		G: float64(m.BaseColor.Y),
		B: float64(m.BaseColor.Z),
	}
	h, sat, val := c.Hsv()
	h += float64(m.IridescenceScale) * 60
	for h >= 360 {
		h -= 360
	}
	shifted := colorful.Hsv(h, sat, val)
	return math.Vec3{X: float32(shifted.R), Y: float32(shifted.G), Z: float32(shifted.B)}
}

// SetOpacity writes the instantaneous opacity and flips the
// transparency flag accordingly.
func (m *Material) SetOpacity(opacity float32) {
	m.Opacity = math.Saturate(opacity)
	m.Transparent = m.Opacity < 1
}

// parseHex converts a #RRGGBB string to linear-ish 0-1 channels.
// Malformed input yields a neutral gray rather than an error.
func parseHex(hex string) math.Vec3 {
	c, err := colorful.Hex(hex)
	if err != nil {
		logger.Debug("bad hex color, using gray", zap.String("hex", hex), zap.Error(err))
		return math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	}
	return math.Vec3{X: float32(c.R), Y: float32(c.G), Z: float32(c.B)}
}
