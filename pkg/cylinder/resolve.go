// Package cylinder turns target dimensions and a fixed triangle edge
// budget into an integer segmentation, and builds the triangulated
// cylinder mesh from it. Both steps are pure: identical inputs always
// produce identical outputs.
package cylinder

import (
	"fmt"
	"math"
)

// Minimum segment counts. Rounding a small target can yield fewer than
// three angular segments, which is not a meaningful circle; the
// effective floor is four. Heights shorter than one leg still get one
// band.
const (
	MinSegmentsAround = 4
	MinHeightSegments = 1
)

// Params are the target dimensions and the triangle legs that drive
// discretization: Leg1 sets the circumferential spacing, Leg2 the
// vertical spacing.
type Params struct {
	TargetDiameter float64
	TargetHeight   float64
	Leg1           float64
	Leg2           float64
}

// Validate checks that every parameter is positive.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"target diameter", p.TargetDiameter},
		{"target height", p.TargetHeight},
		{"leg1", p.Leg1},
		{"leg2", p.Leg2},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("cylinder: %s is %.4f, must be positive", c.name, c.value)
		}
	}
	return nil
}

// UnitTriangle is the fixed edge budget used for discretization. The
// three lengths are expected to satisfy the Pythagorean relation, so
// that the quad diagonal produced by the side split has the hypotenuse
// length.
type UnitTriangle struct {
	Leg1       float64
	Leg2       float64
	Hypotenuse float64
}

// Validate checks that all three lengths are positive and that
// leg1² + leg2² = hypotenuse² within a small relative tolerance.
func (t UnitTriangle) Validate() error {
	if t.Leg1 <= 0 || t.Leg2 <= 0 || t.Hypotenuse <= 0 {
		return fmt.Errorf("cylinder: triangle sides (%.4f, %.4f, %.4f) must all be positive",
			t.Leg1, t.Leg2, t.Hypotenuse)
	}
	want := t.Hypotenuse * t.Hypotenuse
	got := t.Leg1*t.Leg1 + t.Leg2*t.Leg2
	if math.Abs(got-want) > 1e-9*want {
		return fmt.Errorf("cylinder: triangle sides (%.4f, %.4f, %.4f) are not a right triangle",
			t.Leg1, t.Leg2, t.Hypotenuse)
	}
	return nil
}

// Segmentation is the resolved discretization of a cylinder: integer
// segment counts plus the dimensions actually achievable with them. The
// legs are carried along so that Build needs nothing else.
type Segmentation struct {
	SegmentsAround int     // angular divisions, >= MinSegmentsAround
	HeightSegments int     // vertical bands, >= MinHeightSegments
	ActualRadius   float64 // radius whose polygon perimeter matches the segment budget
	ActualHeight   float64 // HeightSegments * Leg2
	Leg1           float64
	Leg2           float64
}

// ActualDiameter returns twice the actual radius. Reported to the user;
// not otherwise used.
func (s Segmentation) ActualDiameter() float64 {
	return 2 * s.ActualRadius
}

// Resolve converts targets into a Segmentation.
//
// The angular count is the nearest integer to circumference/leg1, so the
// polygon's perimeter (not its radius) matches the target circumference
// as closely as an integer count allows; the radius is then recomputed
// from the count. The vertical count is the nearest integer to
// height/leg2. Both counts are clamped to their minimums, which makes a
// degenerate segmentation unreachable.
func Resolve(p Params) (Segmentation, error) {
	if err := p.Validate(); err != nil {
		return Segmentation{}, err
	}

	targetRadius := p.TargetDiameter / 2
	circumference := 2 * math.Pi * targetRadius

	around := int(math.Round(circumference / p.Leg1))
	if around < MinSegmentsAround {
		around = MinSegmentsAround
	}

	height := int(math.Round(p.TargetHeight / p.Leg2))
	if height < MinHeightSegments {
		height = MinHeightSegments
	}

	return Segmentation{
		SegmentsAround: around,
		HeightSegments: height,
		ActualRadius:   float64(around) * p.Leg1 / (2 * math.Pi),
		ActualHeight:   float64(height) * p.Leg2,
		Leg1:           p.Leg1,
		Leg2:           p.Leg2,
	}, nil
}
