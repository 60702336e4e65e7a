// Package mesh provides triangle mesh construction for procedural geometry.
package mesh

import (
	"github.com/maisonverte/vitrine/pkg/math"
)

// Vertex is a single mesh vertex with a full tangent frame.
type Vertex struct {
	Position  math.Vec3
	Normal    math.Vec3
	Tangent   math.Vec3
	Bitangent math.Vec3
	UV        math.Vec2
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Expand grows the bounds to include point p.
func (b *Bounds) Expand(p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Center returns the center point of the bounds.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the bounds along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// New creates a mesh from vertex and index data and computes its bounds.
func New(name string, vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
	m.RecomputeBounds()
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// RecomputeBounds recalculates the bounding box from vertex positions.
func (m *Mesh) RecomputeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	b := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for i := range m.Vertices {
		b.Expand(m.Vertices[i].Position)
	}
	m.Bounds = b
}

// Transform bakes the given matrix into every vertex. Normals and the
// tangent frame are transformed by the inverse-transpose so non-uniform
// scales keep them perpendicular to the surface.
func (m *Mesh) Transform(mat math.Mat4) *Mesh {
	normalMat := mat.Inverse().Transpose()
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.TransformVec3(v.Position)
		v.Normal = transformDir(normalMat, v.Normal)
		v.Tangent = transformDir(mat, v.Tangent)
		v.Bitangent = transformDir(mat, v.Bitangent)
	}
	m.RecomputeBounds()
	return m
}

func transformDir(mat math.Mat4, d math.Vec3) math.Vec3 {
	out := mat.TransformDirection([3]float32{d.X, d.Y, d.Z})
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}.Normalize()
}

// Append merges other into m, offsetting indices. Bounds are updated.
func (m *Mesh) Append(other *Mesh) *Mesh {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
	m.RecomputeBounds()
	return m
}

// SmoothNormals averages normals at shared vertex positions.
// This reduces faceted appearance where primitives meet.
func SmoothNormals(vertices []Vertex) {
	const epsilon float32 = 0.001

	// Group vertices by quantized position for O(n) lookup
	posMap := make(map[[3]int32][]int)
	for i := range vertices {
		key := [3]int32{
			int32(vertices[i].Position.X / epsilon),
			int32(vertices[i].Position.Y / epsilon),
			int32(vertices[i].Position.Z / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, idxs := range posMap {
		if len(idxs) < 2 {
			continue
		}

		var sum math.Vec3
		for _, idx := range idxs {
			sum = sum.Add(vertices[idx].Normal)
		}
		avg := sum.Normalize()

		for _, idx := range idxs {
			vertices[idx].Normal = avg
		}
	}
}
