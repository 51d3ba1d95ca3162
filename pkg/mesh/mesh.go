// Package mesh defines the indexed triangle mesh produced by the cylinder
// builder and consumed by the exporters, plus the geometric checks used to
// assert that a generated mesh is a closed, consistently wound surface.
package mesh

// Face is an ordered triple of 1-based vertex indices. The order is the
// winding: counter-clockwise as seen from outside the surface, which is
// what determines the outward normal under the OBJ convention.
type Face [3]int

// Mesh is an indexed triangle mesh. Faces reference vertices by their
// 1-based position in the vertex sequence, matching the OBJ file
// convention, so a Mesh can be serialized without index translation.
// A Mesh is built once and never mutated afterwards.
type Mesh struct {
	Vertices []Vec3
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangle faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounding box of the vertex set.
// Both corners are zero for an empty mesh.
func (m *Mesh) Bounds() (min, max Vec3) {
	if len(m.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.minComponents(v)
		max = max.maxComponents(v)
	}
	return min, max
}

// Centroid returns the mean of all vertex positions.
func (m *Mesh) Centroid() Vec3 {
	var sum Vec3
	if len(m.Vertices) == 0 {
		return sum
	}
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(m.Vertices)))
}
