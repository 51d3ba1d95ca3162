package mesh

import "fmt"

// ---------------------------------------------------------------------------
// Geometric validation
// ---------------------------------------------------------------------------

// edgeKey identifies an undirected edge by its two endpoint indices in
// canonical (low, high) order, so that the edge a-b and the edge b-a
// count as the same edge.
type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a < b {
		return edgeKey{lo: a, hi: b}
	}
	return edgeKey{lo: b, hi: a}
}

// CheckFaceIndices verifies that every face references three distinct
// vertices and that every index lies in [1, vertex_count].
func CheckFaceIndices(m *Mesh) error {
	n := m.VertexCount()
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 1 || idx > n {
				return fmt.Errorf("face %d: vertex index %d out of range [1, %d]", i, idx, n)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("face %d: repeated vertex index (%d, %d, %d)", i, f[0], f[1], f[2])
		}
	}
	return nil
}

// CheckClosed verifies that the mesh is a closed surface: every
// undirected edge must be shared by exactly two faces. An edge seen once
// is a boundary (hole); an edge seen more than twice is a non-manifold
// fan.
func CheckClosed(m *Mesh) error {
	counts := make(map[edgeKey]int, 3*len(m.Faces)/2)
	for _, f := range m.Faces {
		counts[makeEdgeKey(f[0], f[1])]++
		counts[makeEdgeKey(f[1], f[2])]++
		counts[makeEdgeKey(f[2], f[0])]++
	}
	for e, c := range counts {
		if c != 2 {
			return fmt.Errorf("edge %d-%d shared by %d faces, want 2", e.lo, e.hi, c)
		}
	}
	return nil
}

// SignedVolume returns the volume enclosed by the mesh, computed as the
// sum of signed tetrahedron volumes against the origin. For a closed mesh
// the result is positive exactly when every face winds counter-clockwise
// as seen from outside, so it doubles as an orientation check.
func SignedVolume(m *Mesh) float64 {
	var vol float64
	for _, f := range m.Faces {
		a := m.Vertices[f[0]-1]
		b := m.Vertices[f[1]-1]
		c := m.Vertices[f[2]-1]
		vol += a.Dot(b.Cross(c)) / 6
	}
	return vol
}

// FaceNormal returns the (unnormalized) normal of face i, following the
// winding order.
func FaceNormal(m *Mesh, i int) Vec3 {
	f := m.Faces[i]
	a := m.Vertices[f[0]-1]
	b := m.Vertices[f[1]-1]
	c := m.Vertices[f[2]-1]
	return b.Sub(a).Cross(c.Sub(a))
}

// FaceCentroid returns the centroid of face i.
func FaceCentroid(m *Mesh, i int) Vec3 {
	f := m.Faces[i]
	a := m.Vertices[f[0]-1]
	b := m.Vertices[f[1]-1]
	c := m.Vertices[f[2]-1]
	return a.Add(b).Add(c).Scale(1.0 / 3.0)
}
