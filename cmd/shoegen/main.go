// Package main implements shoegen, a CLI that exports the procedural
// shoes as glTF binary files for use outside the showcase.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/logger"
	"github.com/maisonverte/vitrine/internal/shoe"
)

func main() {
	var (
		silhouette = flag.String("silhouette", "low-top", "shoe silhouette: high-top, low-top, running")
		tier       = flag.String("tier", "high", "detail tier: high, medium, low")
		material   = flag.String("material", "leather", "finish: leather, nubuck, glint, knit")
		baseColor  = flag.String("base", "#1A3C34", "base color as #RRGGBB")
		accent     = flag.String("accent", "#E1B75A", "accent color as #RRGGBB")
		out        = flag.String("o", "shoe.glb", "output path")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	set := shoe.Build(shoe.ParseSilhouette(*silhouette), shoe.ParseTier(*tier))
	label := shoe.ParseMaterialLabel(*material)
	base := shoe.NewMaterial(label, *baseColor, false)
	accentMat := shoe.NewMaterial(label, *accent, false)

	if err := export(set, base, accentMat, *out); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shoe exported",
		zap.String("silhouette", string(set.Silhouette)),
		zap.String("tier", string(set.Tier)),
		zap.Int("parts", len(set.Parts)),
		zap.Int("triangles", set.TriangleCount()),
		zap.String("path", *out))
}

// export writes the geometry set as a binary glTF document.
func export(set *shoe.GeometrySet, base, accent *shoe.Material, path string) error {
	return gltf.SaveBinary(buildDocument(set, base, accent), path)
}

// buildDocument assembles the glTF document, one mesh and node per
// part, bound to the base or accent material.
func buildDocument(set *shoe.GeometrySet, base, accent *shoe.Material) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "shoegen"

	doc.Materials = []*gltf.Material{
		gltfMaterial("base", base),
		gltfMaterial("accent", accent),
	}

	for _, part := range set.Parts {
		m := part.Mesh

		positions := make([][3]float32, len(m.Vertices))
		normals := make([][3]float32, len(m.Vertices))
		uvs := make([][2]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			positions[i] = v.Position.Array()
			normals[i] = v.Normal.Array()
			uvs[i] = [2]float32{v.UV.X, v.UV.Y}
		}
		indices := make([]uint32, len(m.Indices))
		copy(indices, m.Indices)

		prim := &gltf.Primitive{
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION:   modeler.WritePosition(doc, positions),
				gltf.NORMAL:     modeler.WriteNormal(doc, normals),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
			},
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
		}
		matIdx := 0
		if part.Accent {
			matIdx = 1
		}
		prim.Material = gltf.Index(matIdx)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       part.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: part.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc
}

// gltfMaterial maps a standard-path material onto glTF's
// metallic-roughness model.
func gltfMaterial(name string, m *shoe.Material) *gltf.Material {
	return &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{
				float64(m.BaseColor.X),
				float64(m.BaseColor.Y),
				float64(m.BaseColor.Z),
				1,
			},
			MetallicFactor:  gltf.Float(float64(m.Metalness)),
			RoughnessFactor: gltf.Float(float64(m.Roughness)),
		},
		AlphaMode: gltf.AlphaOpaque,
	}
}
