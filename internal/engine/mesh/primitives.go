package mesh

import (
	"github.com/chewxy/math32"

	"github.com/maisonverte/vitrine/pkg/math"
)

// Sphere generates a UV sphere of the given radius.
func Sphere(name string, radius float32, widthSegs, heightSegs int) *Mesh {
	return SphereSector(name, radius, widthSegs, heightSegs, 0, 2*math32.Pi, 0, math32.Pi)
}

// SphereSector generates a partial UV sphere. thetaStart/thetaLength sweep
// longitude around the Y axis; phiStart/phiLength sweep latitude from the
// top pole. A full sphere is (0, 2pi, 0, pi).
func SphereSector(name string, radius float32, widthSegs, heightSegs int, thetaStart, thetaLength, phiStart, phiLength float32) *Mesh {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}

	var vertices []Vertex
	var indices []uint32

	for ring := 0; ring <= heightSegs; ring++ {
		phi := phiStart + phiLength*float32(ring)/float32(heightSegs)
		sinPhi := math32.Sin(phi)
		cosPhi := math32.Cos(phi)

		for seg := 0; seg <= widthSegs; seg++ {
			theta := thetaStart + thetaLength*float32(seg)/float32(widthSegs)
			sinTheta := math32.Sin(theta)
			cosTheta := math32.Cos(theta)

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			vertices = append(vertices, Vertex{
				Position: normal.Scale(radius),
				Normal:   normal,
				UV: math.Vec2{
					X: float32(seg) / float32(widthSegs),
					Y: float32(ring) / float32(heightSegs),
				},
			})
		}
	}

	for ring := 0; ring < heightSegs; ring++ {
		for seg := 0; seg < widthSegs; seg++ {
			current := uint32(ring*(widthSegs+1) + seg)
			next := current + uint32(widthSegs+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return New(name, vertices, indices)
}

// Capsule generates a capsule along the Y axis: a cylinder of the given
// length capped with hemispheres of the given radius at both ends.
func Capsule(name string, radius, length float32, capSegs, radialSegs int) *Mesh {
	if capSegs < 2 {
		capSegs = 2
	}
	if radialSegs < 3 {
		radialSegs = 3
	}

	halfLen := length / 2

	// Ring latitudes: top hemisphere pole to equator, then equator to
	// bottom pole, with the cylinder side between the two equator rings.
	type ringDef struct {
		y      float32
		r      float32
		ny     float32 // normal Y component
		nr     float32 // normal radial component
		v      float32
	}

	// Total surface arc for V mapping: two quarter circles plus the side.
	capArc := radius * math32.Pi / 2
	totalArc := 2*capArc + length

	var rings []ringDef
	for i := 0; i <= capSegs; i++ {
		a := math32.Pi / 2 * float32(i) / float32(capSegs) // 0 at pole
		arc := capArc * float32(i) / float32(capSegs)
		rings = append(rings, ringDef{
			y:  halfLen + radius*math32.Cos(a),
			r:  radius * math32.Sin(a),
			ny: math32.Cos(a),
			nr: math32.Sin(a),
			v:  arc / totalArc,
		})
	}
	for i := 0; i <= capSegs; i++ {
		a := math32.Pi/2 + math32.Pi/2*float32(i)/float32(capSegs)
		arc := capArc + length + capArc*float32(i)/float32(capSegs)
		rings = append(rings, ringDef{
			y:  -halfLen + radius*math32.Cos(a),
			r:  radius * math32.Sin(a),
			ny: math32.Cos(a),
			nr: math32.Sin(a),
			v:  arc / totalArc,
		})
	}

	var vertices []Vertex
	var indices []uint32

	for _, ring := range rings {
		for seg := 0; seg <= radialSegs; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(radialSegs)
			cosT := math32.Cos(theta)
			sinT := math32.Sin(theta)

			vertices = append(vertices, Vertex{
				Position: math.Vec3{X: ring.r * cosT, Y: ring.y, Z: ring.r * sinT},
				Normal:   math.Vec3{X: ring.nr * cosT, Y: ring.ny, Z: ring.nr * sinT}.Normalize(),
				UV:       math.Vec2{X: float32(seg) / float32(radialSegs), Y: ring.v},
			})
		}
	}

	for r := 0; r < len(rings)-1; r++ {
		for seg := 0; seg < radialSegs; seg++ {
			current := uint32(r*(radialSegs+1) + seg)
			next := current + uint32(radialSegs+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return New(name, vertices, indices)
}

// Box generates a cuboid with per-face normals.
func Box(name string, width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2

	var vertices []Vertex
	var indices []uint32

	// One quad per face: +X, -X, +Y, -Y, +Z, -Z
	addFace := func(normal, right, up math.Vec3, half float32) {
		base := uint32(len(vertices))
		center := normal.Scale(half)
		corners := [4]math.Vec3{
			center.Sub(right).Sub(up),
			center.Add(right).Sub(up),
			center.Add(right).Add(up),
			center.Sub(right).Add(up),
		}
		uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		for i := 0; i < 4; i++ {
			vertices = append(vertices, Vertex{
				Position: corners[i],
				Normal:   normal,
				UV:       uvs[i],
			})
		}
		indices = append(indices, base, base+2, base+1, base, base+3, base+2)
	}

	addFace(math.Vec3{X: 1}, math.Vec3{Z: hd}, math.Vec3{Y: hh}, hw)
	addFace(math.Vec3{X: -1}, math.Vec3{Z: -hd}, math.Vec3{Y: hh}, hw)
	addFace(math.Vec3{Y: 1}, math.Vec3{X: hw}, math.Vec3{Z: -hd}, hh)
	addFace(math.Vec3{Y: -1}, math.Vec3{X: hw}, math.Vec3{Z: hd}, hh)
	addFace(math.Vec3{Z: 1}, math.Vec3{X: -hw}, math.Vec3{Y: hh}, hd)
	addFace(math.Vec3{Z: -1}, math.Vec3{X: hw}, math.Vec3{Y: hh}, hd)

	return New(name, vertices, indices)
}

// Cylinder generates a capped cylinder along the Y axis. Different top
// and bottom radii produce a truncated cone.
func Cylinder(name string, radiusTop, radiusBottom, height float32, radialSegs int) *Mesh {
	if radialSegs < 3 {
		radialSegs = 3
	}

	var vertices []Vertex
	var indices []uint32
	halfHeight := height / 2

	// Side normal tilts with the slope for cone shapes.
	slope := (radiusBottom - radiusTop) / height

	for i := 0; i <= radialSegs; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(radialSegs)
		cosT := math32.Cos(theta)
		sinT := math32.Sin(theta)
		normal := math.Vec3{X: cosT, Y: slope, Z: sinT}.Normalize()
		u := float32(i) / float32(radialSegs)

		vertices = append(vertices, Vertex{
			Position: math.Vec3{X: cosT * radiusBottom, Y: -halfHeight, Z: sinT * radiusBottom},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 0},
		})
		vertices = append(vertices, Vertex{
			Position: math.Vec3{X: cosT * radiusTop, Y: halfHeight, Z: sinT * radiusTop},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 1},
		})
	}

	for i := 0; i < radialSegs; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	addCap := func(y, radius float32, up bool) {
		normal := math.Vec3{Y: 1}
		if !up {
			normal = math.Vec3{Y: -1}
		}
		center := uint32(len(vertices))
		vertices = append(vertices, Vertex{
			Position: math.Vec3{Y: y},
			Normal:   normal,
			UV:       math.Vec2{X: 0.5, Y: 0.5},
		})
		for i := 0; i <= radialSegs; i++ {
			theta := 2 * math32.Pi * float32(i) / float32(radialSegs)
			cosT := math32.Cos(theta)
			sinT := math32.Sin(theta)
			vertices = append(vertices, Vertex{
				Position: math.Vec3{X: cosT * radius, Y: y, Z: sinT * radius},
				Normal:   normal,
				UV:       math.Vec2{X: cosT*0.5 + 0.5, Y: sinT*0.5 + 0.5},
			})
		}
		for i := 0; i < radialSegs; i++ {
			a := center + 1 + uint32(i)
			b := center + 2 + uint32(i)
			if up {
				indices = append(indices, center, b, a)
			} else {
				indices = append(indices, center, a, b)
			}
		}
	}

	addCap(halfHeight, radiusTop, true)
	addCap(-halfHeight, radiusBottom, false)

	return New(name, vertices, indices)
}

// Torus generates a torus in the XZ plane. arc < 2pi produces a partial
// ring (used for heel tabs and collars).
func Torus(name string, majorRadius, minorRadius float32, majorSegs, minorSegs int, arc float32) *Mesh {
	if majorSegs < 3 {
		majorSegs = 3
	}
	if minorSegs < 3 {
		minorSegs = 3
	}
	if arc <= 0 || arc > 2*math32.Pi {
		arc = 2 * math32.Pi
	}

	var vertices []Vertex
	var indices []uint32

	for i := 0; i <= majorSegs; i++ {
		theta := arc * float32(i) / float32(majorSegs)
		cosTheta := math32.Cos(theta)
		sinTheta := math32.Sin(theta)

		for j := 0; j <= minorSegs; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(minorSegs)
			cosPhi := math32.Cos(phi)
			sinPhi := math32.Sin(phi)

			vertices = append(vertices, Vertex{
				Position: math.Vec3{
					X: (majorRadius + minorRadius*cosPhi) * cosTheta,
					Y: minorRadius * sinPhi,
					Z: (majorRadius + minorRadius*cosPhi) * sinTheta,
				},
				Normal: math.Vec3{
					X: cosPhi * cosTheta,
					Y: sinPhi,
					Z: cosPhi * sinTheta,
				}.Normalize(),
				UV: math.Vec2{
					X: float32(i) / float32(majorSegs),
					Y: float32(j) / float32(minorSegs),
				},
			})
		}
	}

	for i := 0; i < majorSegs; i++ {
		for j := 0; j < minorSegs; j++ {
			current := uint32(i*(minorSegs+1) + j)
			next := uint32((i+1)*(minorSegs+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return New(name, vertices, indices)
}
