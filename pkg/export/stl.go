package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"stringmesh/pkg/mesh"
)

// SaveSTL writes the mesh as binary STL at path. The indexed faces are
// expanded into independent triangles in face order, keeping the same
// winding, and handed to the sdfx renderer's STL writer.
func SaveSTL(path string, m *mesh.Mesh) error {
	tris := make([]*sdf.Triangle3, 0, m.FaceCount())
	for _, f := range m.Faces {
		var t sdf.Triangle3
		for i, idx := range f {
			v := m.Vertices[idx-1]
			t[i] = v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
		}
		tris = append(tris, &t)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("export: write stl: %w", err)
	}
	return nil
}
