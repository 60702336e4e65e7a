package showcase

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/maisonverte/vitrine/internal/engine/lighting"
	"github.com/maisonverte/vitrine/internal/engine/shader"
	"github.com/maisonverte/vitrine/internal/shoe"
	"github.com/maisonverte/vitrine/internal/shoe/shaders"
	"github.com/maisonverte/vitrine/pkg/math"
)

// gpuPart is one uploaded sub-mesh.
type gpuPart struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	accent     bool
}

// gpuSet is the GPU residency of one geometry set, keyed by the set's
// identity so a silhouette swap re-uploads.
type gpuSet struct {
	source *shoe.GeometrySet
	parts  []gpuPart
}

func (s *gpuSet) destroy() {
	for i := range s.parts {
		gl.DeleteVertexArrays(1, &s.parts[i].vao)
		gl.DeleteBuffers(1, &s.parts[i].vbo)
		gl.DeleteBuffers(1, &s.parts[i].ebo)
	}
	s.parts = nil
}

// ShoeRenderer owns the shoe shader programs and the GPU copies of
// whichever geometry sets are currently mounted.
type ShoeRenderer struct {
	programs map[shoe.Kind]uint32
	lightBuf *lighting.PointLightBuffer
	resident map[shoe.Tier]*gpuSet
}

// NewShoeRenderer compiles the four shading paths.
// Must be called with a live OpenGL context.
func NewShoeRenderer() (*ShoeRenderer, error) {
	r := &ShoeRenderer{
		programs: make(map[shoe.Kind]uint32, 4),
		lightBuf: lighting.NewPointLightBuffer(),
		resident: make(map[shoe.Tier]*gpuSet, 3),
	}

	for _, kind := range []shoe.Kind{shoe.Standard, shoe.Anisotropic, shoe.Iridescent, shoe.Subsurface} {
		prog, err := shader.CompileProgram(shaders.VertexSource, shaders.FragmentFor(kind.String()))
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s program: %w", kind, err)
		}
		r.programs[kind] = prog
	}
	return r, nil
}

// Destroy releases programs and any resident geometry.
func (r *ShoeRenderer) Destroy() {
	for _, set := range r.resident {
		set.destroy()
	}
	r.resident = map[shoe.Tier]*gpuSet{}
	for _, prog := range r.programs {
		if prog != 0 {
			gl.DeleteProgram(prog)
		}
	}
	r.programs = map[shoe.Kind]uint32{}
}

// ensureResident uploads the set if the mounted one for its tier is a
// different set instance.
func (r *ShoeRenderer) ensureResident(set *shoe.GeometrySet) *gpuSet {
	if res, ok := r.resident[set.Tier]; ok && res.source == set {
		return res
	}
	if res, ok := r.resident[set.Tier]; ok {
		res.destroy()
	}

	res := &gpuSet{source: set}
	for _, part := range set.Parts {
		res.parts = append(res.parts, uploadPart(&part))
	}
	r.resident[set.Tier] = res
	return res
}

func uploadPart(part *shoe.Part) gpuPart {
	p := gpuPart{accent: part.Accent}
	m := part.Mesh

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	vertexSize := int(unsafe.Sizeof(m.Vertices[0]))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// Tangent
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)
	// Bitangent
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, int32(vertexSize), 9*4)
	gl.EnableVertexAttribArray(3)
	// TexCoord
	gl.VertexAttribPointerWithOffset(4, 2, gl.FLOAT, false, int32(vertexSize), 12*4)
	gl.EnableVertexAttribArray(4)

	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	p.indexCount = int32(len(m.Indices))
	gl.BindVertexArray(0)
	return p
}

// Draw renders one geometry set with the group's shared materials.
func (r *ShoeRenderer) Draw(set *shoe.GeometrySet, group *shoe.Group,
	model, view, proj math.Mat4, lights []lighting.PointLight) {

	res := r.ensureResident(set)
	r.lightBuf.SetLights(lights)

	for i := range res.parts {
		part := &res.parts[i]
		mat := group.Base
		if part.accent {
			mat = group.Accent
		}
		r.drawPart(part, mat, model, view, proj)
	}
}

func (r *ShoeRenderer) drawPart(part *gpuPart, mat *shoe.Material, model, view, proj math.Mat4) {
	prog := r.programs[mat.Kind]
	gl.UseProgram(prog)

	shader.SetMat4(prog, "uModel", model.Ptr())
	shader.SetMat4(prog, "uView", view.Ptr())
	shader.SetMat4(prog, "uProjection", proj.Ptr())
	shader.SetVec3(prog, "uBaseColor", mat.BaseColor.X, mat.BaseColor.Y, mat.BaseColor.Z)
	shader.SetFloat(prog, "uOpacity", mat.Opacity)

	switch mat.Kind {
	case shoe.Standard:
		shader.SetFloat(prog, "uRoughness", mat.Roughness)
		shader.SetFloat(prog, "uMetalness", mat.Metalness)
		shader.SetFloat(prog, "uClearcoat", mat.Clearcoat)
		shader.SetFloat(prog, "uSheen", mat.Sheen)
		shader.SetVec3(prog, "uViewPosition", mat.ViewPosition.X, mat.ViewPosition.Y, mat.ViewPosition.Z)
		shader.SetInt(prog, "uLightCount", int32(r.lightBuf.Count()))
		shader.SetVec3Array(prog, "uLightPositions", lighting.MaxPointLights, r.lightBuf.GetPositions())
		shader.SetVec3Array(prog, "uLightColors", lighting.MaxPointLights, r.lightBuf.GetColors())
		shader.SetFloatArray(prog, "uLightIntensities", lighting.MaxPointLights, r.lightBuf.GetIntensities())
		shader.SetFloatArray(prog, "uLightRanges", lighting.MaxPointLights, r.lightBuf.GetRanges())
	case shoe.Anisotropic:
		shader.SetFloat(prog, "uRoughnessX", mat.RoughnessX)
		shader.SetFloat(prog, "uRoughnessY", mat.RoughnessY)
		shader.SetFloat(prog, "uRotation", mat.Rotation)
		shader.SetVec3(prog, "uLightPosition", mat.LightPosition.X, mat.LightPosition.Y, mat.LightPosition.Z)
		shader.SetVec3(prog, "uViewPosition", mat.ViewPosition.X, mat.ViewPosition.Y, mat.ViewPosition.Z)
	case shoe.Iridescent:
		shader.SetFloat(prog, "uScale", mat.IridescenceScale)
		shader.SetFloat(prog, "uMetalness", mat.Metalness)
		shader.SetFloat(prog, "uRoughness", mat.Roughness)
		shader.SetVec3(prog, "uLightPosition", mat.LightPosition.X, mat.LightPosition.Y, mat.LightPosition.Z)
		shader.SetVec3(prog, "uViewPosition", mat.ViewPosition.X, mat.ViewPosition.Y, mat.ViewPosition.Z)
	case shoe.Subsurface:
		shader.SetFloat(prog, "uPower", mat.Power)
		shader.SetFloat(prog, "uThickness", mat.Thickness)
		shader.SetFloat(prog, "uDistortion", mat.Distortion)
		shader.SetVec3(prog, "uLightPosition", mat.LightPosition.X, mat.LightPosition.Y, mat.LightPosition.Z)
		shader.SetVec3(prog, "uViewPosition", mat.ViewPosition.X, mat.ViewPosition.Y, mat.ViewPosition.Z)
	}

	if mat.Transparent {
		gl.DepthMask(false)
		defer gl.DepthMask(true)
	}

	gl.BindVertexArray(part.vao)
	gl.DrawElements(gl.TRIANGLES, part.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
