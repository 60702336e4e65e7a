// Package showcase assembles the product stage: the procedural shoe,
// its studio lighting, the orbit camera and the per-frame update glue.
package showcase

import (
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/config"
	"github.com/maisonverte/vitrine/internal/engine/camera"
	"github.com/maisonverte/vitrine/internal/engine/lighting"
	"github.com/maisonverte/vitrine/internal/logger"
	"github.com/maisonverte/vitrine/internal/shoe"
	"github.com/maisonverte/vitrine/pkg/math"
)

const fieldOfView = 0.9 // radians, ~52 degrees

// colorway pairs a base and accent hex for the seasonal palette.
type colorway struct {
	name   string
	base   string
	accent string
}

var colorways = []colorway{
	{name: "foret", base: "#1A3C34", accent: "#E1B75A"},
	{name: "ivoire", base: "#EDE6D6", accent: "#1A3C34"},
	{name: "nuit", base: "#141821", accent: "#B8C4D0"},
	{name: "terre", base: "#6B4A32", accent: "#D9C8A9"},
	{name: "rubis", base: "#7A1F2B", accent: "#E8D8B0"},
}

// Stage holds everything visible on screen and applies the fixed
// per-frame order: detail tier by camera distance, then transition
// progress and opacity, then shader uniforms, then the draw.
type Stage struct {
	Camera *camera.OrbitCamera
	Orbit  *camera.SmoothOrbit

	group  *shoe.Group
	lights []lighting.PointLight

	label       shoe.MaterialLabel
	baseHex     string
	accentHex   string
	colorway    int
	advanced    bool
	scale       float32
	autoRotate  bool
	turnSpeed   float32
	orientation math.Quat
}

// New builds a stage from the showcase configuration.
func New(cfg config.ShowcaseConfig, fps int) *Stage {
	s := &Stage{
		Camera:      camera.NewOrbitCamera(),
		label:       shoe.ParseMaterialLabel(cfg.Material),
		baseHex:     cfg.BaseColor,
		accentHex:   cfg.AccentColor,
		advanced:    cfg.AdvancedShaders,
		colorway:    -1,
		scale:       cfg.Scale,
		autoRotate:  cfg.AutoRotate,
		turnSpeed:   cfg.TurntableSpeed,
		orientation: math.QuatIdentity(),
		lights:      lighting.StudioRig(),
	}
	s.Orbit = camera.NewSmoothOrbit(s.Camera, fps)

	base := shoe.NewMaterial(s.label, s.baseHex, s.advanced)
	accent := shoe.NewMaterial(s.label, s.accentHex, s.advanced)
	s.group = shoe.NewGroup(shoe.ParseSilhouette(cfg.Silhouette), base, accent)

	logger.Info("stage assembled",
		zap.String("silhouette", string(s.group.Mounted())),
		zap.String("material", string(s.label)),
		zap.Bool("advancedShaders", s.advanced))
	return s
}

// Group exposes the detail group, mainly for tests and the renderer.
func (s *Stage) Group() *shoe.Group {
	return s.group
}

// Lights returns the active light rig.
func (s *Stage) Lights() []lighting.PointLight {
	return s.lights
}

// SetSilhouette requests a silhouette change; the group plays the fade.
func (s *Stage) SetSilhouette(sil shoe.Silhouette) {
	s.group.SetSilhouette(sil)
}

// CycleSilhouette steps to the next silhouette in display order.
func (s *Stage) CycleSilhouette() shoe.Silhouette {
	order := shoe.Silhouettes()
	current := s.group.Mounted()
	if tr := s.group.Transition(); tr != nil {
		current = tr.To
	}
	for i, sil := range order {
		if sil == current {
			next := order[(i+1)%len(order)]
			s.SetSilhouette(next)
			return next
		}
	}
	s.SetSilhouette(order[0])
	return order[0]
}

// SetMaterial rebuilds both shared materials for a new finish,
// preserving the chosen colors.
func (s *Stage) SetMaterial(label shoe.MaterialLabel) {
	s.label = label
	s.rebuildMaterials()
}

// CycleMaterial steps to the next catalog finish.
func (s *Stage) CycleMaterial() shoe.MaterialLabel {
	order := shoe.MaterialLabels()
	for i, l := range order {
		if l == s.label {
			s.SetMaterial(order[(i+1)%len(order)])
			return s.label
		}
	}
	s.SetMaterial(order[0])
	return s.label
}

// SetColors recolors the shared materials in place.
func (s *Stage) SetColors(baseHex, accentHex string) {
	s.baseHex = baseHex
	s.accentHex = accentHex
	s.group.Base.Recolor(baseHex)
	s.group.Accent.Recolor(accentHex)
}

// CycleColorway steps to the next palette entry and returns its name.
func (s *Stage) CycleColorway() string {
	s.colorway = (s.colorway + 1) % len(colorways)
	cw := colorways[s.colorway]
	s.SetColors(cw.base, cw.accent)

	swatch := s.group.Base.PreviewSwatch()
	logger.Info("colorway changed",
		zap.String("colorway", cw.name),
		zap.String("base", cw.base),
		zap.String("accent", cw.accent),
		zap.Float32s("swatch", []float32{swatch.X, swatch.Y, swatch.Z}))
	return cw.name
}

// SetAdvancedShaders toggles between the preset path and the custom
// shading paths, rebuilding both materials.
func (s *Stage) SetAdvancedShaders(on bool) {
	s.advanced = on
	s.rebuildMaterials()
}

// AdvancedShaders reports whether the custom shading paths are active.
func (s *Stage) AdvancedShaders() bool {
	return s.advanced
}

// MaterialLabel returns the active finish.
func (s *Stage) MaterialLabel() shoe.MaterialLabel {
	return s.label
}

// SetAutoRotate toggles the turntable.
func (s *Stage) SetAutoRotate(on bool) {
	s.autoRotate = on
}

func (s *Stage) rebuildMaterials() {
	opacity := s.group.Base.Opacity
	s.group.Base = shoe.NewMaterial(s.label, s.baseHex, s.advanced)
	s.group.Accent = shoe.NewMaterial(s.label, s.accentHex, s.advanced)
	// Keep a mid-fade shoe mid-fade through a material change.
	s.group.Base.SetOpacity(opacity)
	s.group.Accent.SetOpacity(opacity)

	logger.Info("materials rebuilt",
		zap.String("material", string(s.label)),
		zap.String("kind", s.group.Base.Kind.String()),
		zap.Bool("advancedShaders", s.advanced))
}

// ModelMatrix returns the shoe's transform on the plinth.
func (s *Stage) ModelMatrix() math.Mat4 {
	return s.orientation.ToMat4().Mul(math.Scale(s.scale, s.scale, s.scale))
}

// Materials returns the live material instances for uniform updates.
func (s *Stage) Materials() []*shoe.Material {
	return []*shoe.Material{s.group.Base, s.group.Accent}
}

// ActiveSet returns the geometry set for the camera's current distance.
func (s *Stage) ActiveSet() *shoe.GeometrySet {
	return s.group.ActiveSet(s.cameraDistance())
}

func (s *Stage) cameraDistance() float32 {
	center := math.Vec3{X: s.Camera.CenterX, Y: s.Camera.CenterY, Z: s.Camera.CenterZ}
	return s.Camera.Position().Distance(center)
}

// Update advances one frame of stage state, in the fixed order the
// renderer depends on: camera glide, turntable, detail selection by
// distance, transition progress and opacity, then shader uniforms. The
// caller draws the returned set afterwards.
func (s *Stage) Update(dt float32) *shoe.GeometrySet {
	s.Orbit.Update()

	if s.autoRotate {
		spin := math.QuatFromAxisAngle(math.Vec3{Y: 1}, s.turnSpeed*dt)
		s.orientation = s.orientation.Mul(spin).Normalize()
	}

	active := s.ActiveSet()
	s.group.Update(dt)

	// The midpoint swap may have replaced the sets; re-resolve so the
	// frame draws the geometry the opacity was written for.
	if fresh := s.ActiveSet(); fresh != active {
		active = fresh
	}

	shoe.UpdateUniforms(s.lights, s.Camera.Position(), s.Materials())
	return active
}

// ProjectionMatrix returns the stage projection for a viewport size.
func (s *Stage) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(width) / float32(height)
	return math.Perspective(fieldOfView, aspect, 0.05, 100)
}
