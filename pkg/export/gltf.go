package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"stringmesh/pkg/mesh"
)

// SaveGLTF writes the mesh as a glTF 2.0 document with a single triangle
// primitive. The material's diffuse color becomes the PBR base color
// factor. Face indices are rebased from the OBJ convention to glTF's
// 0-based indices; the winding is unchanged.
func SaveGLTF(path string, m *mesh.Mesh, mat mesh.Material) error {
	doc := gltf.NewDocument()

	positions := make([][3]float32, m.VertexCount())
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	indices := make([]uint32, 0, 3*m.FaceCount())
	for _, f := range m.Faces {
		indices = append(indices, uint32(f[0]-1), uint32(f[1]-1), uint32(f[2]-1))
	}

	posAccessor := modeler.WritePosition(doc, positions)
	idxAccessor := modeler.WriteIndices(doc, indices)

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: mat.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2], 1},
		},
	})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "cylinder",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idxAccessor),
			Attributes: map[string]int{gltf.POSITION: posAccessor},
			Material:   gltf.Index(len(doc.Materials) - 1),
		}},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "cylinder",
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("export: write gltf: %w", err)
	}
	return nil
}
