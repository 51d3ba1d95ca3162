package cylinder

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// TestVerticesLieOnSolidSurface checks the generated vertices against an
// independent continuous model: the signed distance field of a cylinder
// with the resolved dimensions. Every generated vertex (ring vertices
// and both cap centers) lies on the solid's surface, so the SDF must
// evaluate to zero at each of them.
func TestVerticesLieOnSolidSurface(t *testing.T) {
	seg := referenceSegmentation(t)
	m := Build(seg)

	solid, err := sdf.Cylinder3D(seg.ActualHeight, seg.ActualRadius, 0)
	if err != nil {
		t.Fatalf("Cylinder3D: %v", err)
	}

	// The SDF cylinder is centered on the origin; the mesh sits on z=0.
	zShift := seg.ActualHeight / 2

	for i, v := range m.Vertices {
		d := solid.Evaluate(v3.Vec{X: v.X, Y: v.Y, Z: v.Z - zShift})
		if math.Abs(d) > 1e-9 {
			t.Errorf("vertex %d (%v): distance to solid surface %v, want 0", i+1, v, d)
		}
	}
}
