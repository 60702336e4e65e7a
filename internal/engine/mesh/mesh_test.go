package mesh

import (
	"testing"

	"github.com/maisonverte/vitrine/pkg/math"
)

func TestSphereCounts(t *testing.T) {
	m := Sphere("sphere", 1, 16, 8)

	wantVerts := (16 + 1) * (8 + 1)
	if m.VertexCount() != wantVerts {
		t.Errorf("vertex count = %d, want %d", m.VertexCount(), wantVerts)
	}
	wantTris := 16 * 8 * 2
	if m.TriangleCount() != wantTris {
		t.Errorf("triangle count = %d, want %d", m.TriangleCount(), wantTris)
	}
}

func TestSphereNormalsUnit(t *testing.T) {
	m := Sphere("sphere", 2, 8, 4)
	for i, v := range m.Vertices {
		l := v.Normal.Length()
		if l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d normal length = %v, want ~1", i, l)
		}
	}
}

func TestSphereBounds(t *testing.T) {
	m := Sphere("sphere", 1.5, 32, 16)
	size := m.Bounds.Size()
	for _, d := range []float32{size.X, size.Y, size.Z} {
		if d < 2.9 || d > 3.1 {
			t.Errorf("bounds extent = %v, want ~3.0", d)
		}
	}
}

func TestSphereSectorPartial(t *testing.T) {
	// Half sphere: no vertex below the equator
	m := SphereSector("half", 1, 16, 8, 0, 2*3.14159265, 0, 3.14159265/2)
	for i, v := range m.Vertices {
		if v.Position.Y < -0.001 {
			t.Fatalf("vertex %d below equator: %v", i, v.Position)
		}
	}
}

func TestBoxCounts(t *testing.T) {
	m := Box("box", 1, 2, 3)
	if m.VertexCount() != 24 {
		t.Errorf("vertex count = %d, want 24", m.VertexCount())
	}
	if m.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", m.TriangleCount())
	}
	size := m.Bounds.Size()
	if size.X != 1 || size.Y != 2 || size.Z != 3 {
		t.Errorf("bounds size = %v, want {1 2 3}", size)
	}
}

func TestCapsuleBounds(t *testing.T) {
	m := Capsule("capsule", 0.5, 2, 4, 12)
	size := m.Bounds.Size()
	// Total height: cylinder length + two cap radii
	if size.Y < 2.99 || size.Y > 3.01 {
		t.Errorf("capsule height = %v, want ~3.0", size.Y)
	}
	if size.X < 0.99 || size.X > 1.01 {
		t.Errorf("capsule width = %v, want ~1.0", size.X)
	}
}

func TestCylinderConeNormalTilt(t *testing.T) {
	// A cone-like cylinder should have side normals tilted upward
	m := Cylinder("cone", 0.2, 1.0, 1.0, 8)
	tilted := false
	for _, v := range m.Vertices {
		if v.Normal.Y > 0.1 && v.Normal.Y < 0.9 {
			tilted = true
			break
		}
	}
	if !tilted {
		t.Error("expected tilted side normals on truncated cone")
	}
}

func TestTorusArc(t *testing.T) {
	full := Torus("full", 1, 0.2, 16, 8, 0)
	half := Torus("half", 1, 0.2, 16, 8, 3.14159265)

	if full.VertexCount() != half.VertexCount() {
		t.Errorf("same segment counts should give same vertex count")
	}
	// Half torus stays in the z >= -eps half plane for positive arc
	for i, v := range half.Vertices {
		if v.Position.Z < -0.21 {
			t.Fatalf("vertex %d outside half arc: %v", i, v.Position)
		}
	}
}

func TestTransformBakesTranslation(t *testing.T) {
	m := Box("box", 1, 1, 1)
	m.Transform(math.Translate(5, 0, 0))

	c := m.Bounds.Center()
	if c.X < 4.99 || c.X > 5.01 {
		t.Errorf("bounds center X = %v, want ~5", c.X)
	}
}

func TestTransformKeepsNormalsUnit(t *testing.T) {
	m := Sphere("sphere", 1, 8, 4)
	m.Transform(math.Scale(3, 1, 0.5))
	for i, v := range m.Vertices {
		l := v.Normal.Length()
		if l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d normal length = %v after non-uniform scale", i, l)
		}
	}
}

func TestAppendOffsetsIndices(t *testing.T) {
	a := Box("a", 1, 1, 1)
	aVerts := a.VertexCount()
	b := Box("b", 1, 1, 1)

	a.Append(b)

	if a.VertexCount() != aVerts*2 {
		t.Errorf("vertex count = %d, want %d", a.VertexCount(), aVerts*2)
	}
	// Second half of indices must reference second half of vertices
	half := len(a.Indices) / 2
	for _, idx := range a.Indices[half:] {
		if int(idx) < aVerts {
			t.Fatalf("appended index %d not offset", idx)
		}
	}
}

func TestComputeTangentsOrthogonal(t *testing.T) {
	m := Sphere("sphere", 1, 16, 8)
	ComputeTangents(m)

	for i, v := range m.Vertices {
		if d := math.Abs(v.Normal.Dot(v.Tangent)); d > 0.01 {
			t.Fatalf("vertex %d tangent not perpendicular to normal: dot=%v", i, d)
		}
		if l := v.Tangent.Length(); l < 0.99 || l > 1.01 {
			t.Fatalf("vertex %d tangent length = %v", i, l)
		}
	}
}

func TestSmoothNormalsMergesCoincident(t *testing.T) {
	// Two triangles sharing an edge position but with opposing normals
	verts := []Vertex{
		{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Normal: math.Vec3{Y: 1}},
		{Position: math.Vec3{X: 1, Y: 0, Z: 0}, Normal: math.Vec3{Y: 1}},
		{Position: math.Vec3{X: 0, Y: 0, Z: 1}, Normal: math.Vec3{Y: 1}},
		{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Normal: math.Vec3{X: 1}},
		{Position: math.Vec3{X: 1, Y: 0, Z: 0}, Normal: math.Vec3{X: 1}},
		{Position: math.Vec3{X: 0, Y: 0, Z: -1}, Normal: math.Vec3{X: 1}},
	}
	SmoothNormals(verts)

	if verts[0].Normal != verts[3].Normal {
		t.Error("coincident vertices should share averaged normal")
	}
	l := verts[0].Normal.Length()
	if l < 0.99 || l > 1.01 {
		t.Errorf("averaged normal not unit: %v", l)
	}
}
