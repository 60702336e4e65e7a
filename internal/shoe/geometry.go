package shoe

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/engine/mesh"
	"github.com/maisonverte/vitrine/internal/logger"
	"github.com/maisonverte/vitrine/pkg/math"
)

// Part is one named sub-mesh of an assembled shoe. Accent parts take
// the accent material; everything else takes the base material.
type Part struct {
	Name   string
	Mesh   *mesh.Mesh
	Accent bool
}

// GeometrySet is the full bundle of parts for one (silhouette, tier)
// pair. Sets are built fresh per combination and owned by the detail
// group that requested them; parts are never shared across tiers.
type GeometrySet struct {
	Silhouette Silhouette
	Tier       Tier
	Parts      []Part
}

// Part returns the named part, or nil if this set does not include it.
func (g *GeometrySet) Part(name string) *Part {
	for i := range g.Parts {
		if g.Parts[i].Name == name {
			return &g.Parts[i]
		}
	}
	return nil
}

// PartNames returns the part names in assembly order.
func (g *GeometrySet) PartNames() []string {
	names := make([]string, len(g.Parts))
	for i, p := range g.Parts {
		names[i] = p.Name
	}
	return names
}

// VertexCount returns the total vertex count across all parts.
func (g *GeometrySet) VertexCount() int {
	total := 0
	for _, p := range g.Parts {
		total += p.Mesh.VertexCount()
	}
	return total
}

// TriangleCount returns the total triangle count across all parts.
func (g *GeometrySet) TriangleCount() int {
	total := 0
	for _, p := range g.Parts {
		total += p.Mesh.TriangleCount()
	}
	return total
}

// proportions holds the hand-tuned dimensions that vary by silhouette.
// The shoe points toe along +X with Y up; all sizes are in scene units
// where a full shoe is roughly 2.4 units long.
type proportions struct {
	bodyRadius   float32
	bodyLength   float32
	bodyHeight   float32 // vertical center of the body capsule
	ankleHeight  float32 // top of the opening
	soleLength   float32
	soleWidth    float32
	soleHeight   float32
	laceAngle    float32 // forward tilt of the lace area
	laceStrands  int
	strandOffset float32 // X position of the first strand
	hasCollar    bool
	hasSidePanel bool
}

func proportionsFor(s Silhouette) proportions {
	switch s {
	case HighTop:
		return proportions{
			bodyRadius:   0.42,
			bodyLength:   1.15,
			bodyHeight:   0.42,
			ankleHeight:  1.05,
			soleLength:   2.3,
			soleWidth:    0.85,
			soleHeight:   0.14,
			laceAngle:    0.55,
			laceStrands:  6,
			strandOffset: -0.15,
			hasCollar:    true,
		}
	case Running:
		return proportions{
			bodyRadius:   0.38,
			bodyLength:   1.35,
			bodyHeight:   0.38,
			ankleHeight:  0.62,
			soleLength:   2.5,
			soleWidth:    0.9,
			soleHeight:   0.2,
			laceAngle:    0.4,
			laceStrands:  5,
			strandOffset: -0.05,
			hasSidePanel: true,
		}
	default: // low-top
		return proportions{
			bodyRadius:   0.4,
			bodyLength:   1.25,
			bodyHeight:   0.4,
			ankleHeight:  0.68,
			soleLength:   2.4,
			soleWidth:    0.88,
			soleHeight:   0.16,
			laceAngle:    0.45,
			laceStrands:  4,
			strandOffset: -0.1,
		}
	}
}

// segments returns the base segment count for a tier. Some axes use
// half of this for cheaper parts.
func segments(t Tier) int {
	switch t {
	case TierMedium:
		return 16
	case TierLow:
		return 8
	default:
		return 32
	}
}

// Build assembles the full geometry set for one silhouette at one
// detail tier. Pure function of its inputs: every dimension is a fixed
// constant per silhouette, segment counts scale with the tier, and the
// medium and low tiers drop the fine detail parts entirely.
func Build(silhouette Silhouette, tier Tier) *GeometrySet {
	p := proportionsFor(silhouette)
	segs := segments(tier)
	half := segs / 2

	set := &GeometrySet{Silhouette: silhouette, Tier: tier}
	add := func(name string, m *mesh.Mesh, accent bool) {
		set.Parts = append(set.Parts, Part{Name: name, Mesh: m, Accent: accent})
	}

	// Body: a capsule laid along X, flattened slightly so the upper
	// reads as a vamp rather than a tube.
	body := mesh.Capsule("body", p.bodyRadius, p.bodyLength, half, segs)
	body.Transform(math.RotateZ(math32.Pi / 2))
	body.Transform(math.Scale(1, 0.9, 0.95))
	body.Transform(math.Translate(0.05, p.bodyHeight, 0))
	add("body", body, false)

	// Toe cap: the forward half of a sphere, squashed down.
	toe := mesh.SphereSector("toe", p.bodyRadius*1.02, segs, half, -math32.Pi/2, math32.Pi, 0, math32.Pi)
	toe.Transform(math.Scale(1.25, 0.78, 0.98))
	toe.Transform(math.Translate(p.bodyLength/2+0.12, p.bodyHeight*0.82, 0))
	add("toe", toe, false)

	// Heel counter: rear half sphere, taller than the toe.
	heel := mesh.SphereSector("heel", p.bodyRadius*1.05, segs, half, math32.Pi/2, math32.Pi, 0, math32.Pi)
	heel.Transform(math.Scale(0.9, 1.1, 1))
	heel.Transform(math.Translate(-p.bodyLength/2-0.05, p.bodyHeight*0.95, 0))
	add("heel", heel, false)

	// Sole and midsole: stacked slabs under everything.
	sole := mesh.Box("sole", p.soleLength, p.soleHeight, p.soleWidth)
	sole.Transform(math.Translate(0.05, p.soleHeight/2, 0))
	add("sole", sole, true)

	midsole := mesh.Box("midsole", p.soleLength*0.96, p.soleHeight*0.7, p.soleWidth*0.94)
	midsole.Transform(math.Translate(0.05, p.soleHeight+p.soleHeight*0.35, 0))
	add("midsole", midsole, false)

	// Lace area: a thin tilted plate on the instep.
	laceArea := mesh.Box("laceArea", 0.7, 0.04, p.bodyRadius*1.3)
	laceArea.Transform(math.RotateZ(p.laceAngle))
	laceArea.Transform(math.Translate(0.25, p.bodyHeight+p.bodyRadius*0.72, 0))
	add("laceArea", laceArea, false)

	// Tongue: a rounded plate rising behind the lace area.
	tongue := mesh.Capsule("tongue", 0.16, 0.5, half, half)
	tongue.Transform(math.Scale(1, 1, 0.45))
	tongue.Transform(math.RotateZ(p.laceAngle * 0.8))
	tongue.Transform(math.Translate(-0.05, p.bodyHeight+p.bodyRadius*0.9, 0))
	add("tongue", tongue, false)

	// Heel tab: a partial torus looped over the back of the opening.
	heelTab := mesh.Torus("heelTab", 0.12, 0.035, segs, half, math32.Pi)
	heelTab.Transform(math.RotateY(math32.Pi / 2))
	heelTab.Transform(math.Translate(-p.bodyLength/2-0.08, p.ankleHeight*0.92, 0))
	add("heelTab", heelTab, true)

	if p.hasCollar {
		// Ankle collar: a padded ring around the high-top opening.
		collar := mesh.Torus("collar", p.bodyRadius*0.85, 0.07, segs, half, 0)
		collar.Transform(math.Scale(1.1, 1, 1))
		collar.Transform(math.Translate(-0.25, p.ankleHeight, 0))
		add("collar", collar, false)
	}

	if p.hasSidePanel {
		// Side panels: slim plates flanking the midfoot.
		for i, z := range []float32{1, -1} {
			name := "sidePanel"
			panel := mesh.Box(name, 0.9, 0.32, 0.03)
			panel.Transform(math.Translate(-0.1, p.bodyHeight*0.9, z*(p.bodyRadius*0.98)))
			if i == 0 {
				add(name, panel, false)
			} else {
				set.Part(name).Mesh.Append(panel)
			}
		}
	}

	// Logo medallion on the lateral side, dropped at the low tier.
	if tier == TierHigh || tier == TierMedium {
		logo := mesh.Torus("logo", 0.09, 0.025, segs, half, 0)
		logo.Transform(math.Translate(-0.35, p.bodyHeight*1.1, p.bodyRadius*0.96))
		add("logo", logo, true)
	}

	// Individual lace strands only exist at the high tier; medium and
	// low keep the lace area plate alone.
	if tier == TierHigh {
		laces := buildLaces(p, segs)
		add("laces", laces, true)
	}

	// Tangent frames last, after every part has its final vertices.
	for _, part := range set.Parts {
		mesh.ComputeTangents(part.Mesh)
	}

	logger.Debug("built geometry set",
		zap.String("silhouette", string(silhouette)),
		zap.String("tier", string(tier)),
		zap.Int("parts", len(set.Parts)),
		zap.Int("triangles", set.TriangleCount()))

	return set
}

// buildLaces generates N thin cylinders laid across the lace area,
// marching up the instep slope.
func buildLaces(p proportions, segs int) *mesh.Mesh {
	step := 0.62 / float32(p.laceStrands)
	var laces *mesh.Mesh
	for i := 0; i < p.laceStrands; i++ {
		x := p.strandOffset + 0.55 - step*float32(i)
		y := p.bodyHeight + p.bodyRadius*0.74 + math32.Sin(p.laceAngle)*(x-0.25)

		strand := mesh.Cylinder("lace", 0.018, 0.018, p.bodyRadius*1.34, segs/2)
		strand.Transform(math.RotateX(math32.Pi / 2))
		strand.Transform(math.Translate(x, y, 0))
		if laces == nil {
			laces = strand
		} else {
			laces.Append(strand)
		}
	}
	laces.Name = "laces"
	return laces
}
