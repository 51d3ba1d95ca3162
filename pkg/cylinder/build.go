package cylinder

import (
	"math"

	"stringmesh/pkg/mesh"
)

// vertexIndex returns the 1-based index of the ring vertex at the given
// height level and angular position. The angular position wraps modulo
// the segment count. All face generation goes through this helper so the
// 0-based/1-based conversion and the wraparound live in exactly one
// place.
func (s Segmentation) vertexIndex(level, around int) int {
	return level*s.SegmentsAround + around%s.SegmentsAround + 1
}

// Build produces the triangulated cylinder mesh for a Segmentation.
//
// Vertex order: ring vertices in level-major, angle-minor order (level 0
// first, angular index 0..N-1 within each level), then the bottom cap
// center, then the top cap center. Face windings are counter-clockwise
// seen from outside, so every normal points outward.
//
// The mesh is closed by construction and every face index is in range;
// the counts are (H+1)*N + 2 vertices and 2*H*N + 2*N faces.
func Build(s Segmentation) *mesh.Mesh {
	rings := (s.HeightSegments + 1) * s.SegmentsAround
	vertices := make([]mesh.Vec3, 0, rings+2)

	for level := 0; level <= s.HeightSegments; level++ {
		z := float64(level) * s.Leg2
		for a := 0; a < s.SegmentsAround; a++ {
			angle := float64(a) / float64(s.SegmentsAround) * 2 * math.Pi
			vertices = append(vertices, mesh.Vec3{
				X: s.ActualRadius * math.Cos(angle),
				Y: s.ActualRadius * math.Sin(angle),
				Z: z,
			})
		}
	}

	vertices = append(vertices, mesh.Vec3{})
	bottomCenter := len(vertices)
	vertices = append(vertices, mesh.Vec3{Z: s.ActualHeight})
	topCenter := len(vertices)

	faces := make([]mesh.Face, 0, 2*s.HeightSegments*s.SegmentsAround+2*s.SegmentsAround)

	// Side quads. Each quad is split into two triangles along the v2-v4
	// diagonal (the unit triangle's hypotenuse). The diagonal choice is a
	// fixed policy: switching it changes the edge topology of the mesh.
	for level := 0; level < s.HeightSegments; level++ {
		for a := 0; a < s.SegmentsAround; a++ {
			v1 := s.vertexIndex(level, a)
			v2 := s.vertexIndex(level, a+1)
			v3 := s.vertexIndex(level+1, a+1)
			v4 := s.vertexIndex(level+1, a)
			faces = append(faces,
				mesh.Face{v1, v2, v4},
				mesh.Face{v2, v3, v4},
			)
		}
	}

	// Top cap: (center, current, next). The ring runs counter-clockwise
	// seen from above, so in-ring order winds the cap with its normal up.
	for a := 0; a < s.SegmentsAround; a++ {
		faces = append(faces, mesh.Face{
			topCenter,
			s.vertexIndex(s.HeightSegments, a),
			s.vertexIndex(s.HeightSegments, a+1),
		})
	}

	// Bottom cap: (center, next, current), the mirror of the top cap,
	// because its outward normal points down.
	for a := 0; a < s.SegmentsAround; a++ {
		faces = append(faces, mesh.Face{
			bottomCenter,
			s.vertexIndex(0, a+1),
			s.vertexIndex(0, a),
		})
	}

	return &mesh.Mesh{Vertices: vertices, Faces: faces}
}
