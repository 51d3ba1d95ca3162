// Package export serializes a generated mesh to interchange formats:
// Wavefront OBJ/MTL text, binary STL, and glTF 2.0. The writers do no
// computation; they only format and perform I/O.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"stringmesh/pkg/mesh"
)

// WriteOBJ writes m as Wavefront OBJ text. mtlRef is written verbatim on
// the mtllib line; materialName is bound with a single usemtl directive
// that precedes the face block and so applies to every face.
//
// Vertex coordinates are rendered with exactly six fractional digits so
// the output is deterministic and diffable.
func WriteOBJ(w io.Writer, m *mesh.Mesh, mtlRef, materialName string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Generated 3D String Cylinder\n")
	fmt.Fprintf(bw, "mtllib %s\n\n", mtlRef)

	fmt.Fprintf(bw, "# Cylinder Vertices (%d total)\n", m.VertexCount())
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}

	fmt.Fprintf(bw, "\n# Cylinder Faces (%d total)\n", m.FaceCount())
	fmt.Fprintf(bw, "usemtl %s\n", materialName)
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0], f[1], f[2])
	}

	return bw.Flush()
}

// WriteMTL writes the material definition block: the material name and
// its diffuse color.
func WriteMTL(w io.Writer, mat mesh.Material) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "newmtl %s\n", mat.Name)
	fmt.Fprintf(bw, "Kd %.6f %.6f %.6f\n", mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2])
	return bw.Flush()
}

// SaveOBJ writes the OBJ file at path. The file handle is closed on
// every exit path; write failures propagate to the caller.
func SaveOBJ(path string, m *mesh.Mesh, mtlRef, materialName string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create obj: %w", err)
	}
	if err := WriteOBJ(f, m, mtlRef, materialName); err != nil {
		f.Close()
		return fmt.Errorf("export: write obj: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close obj: %w", err)
	}
	return nil
}

// SaveMTL writes the material file at path.
func SaveMTL(path string, mat mesh.Material) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create mtl: %w", err)
	}
	if err := WriteMTL(f, mat); err != nil {
		f.Close()
		return fmt.Errorf("export: write mtl: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close mtl: %w", err)
	}
	return nil
}
