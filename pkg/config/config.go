// Package config holds the generator's configuration record: target
// dimensions, the triangle edge budget, output destinations and the
// material definition. There are no flags or environment variables; the
// defaults are fixed constants, optionally overridden by a config script
// (see package script).
package config

import (
	"fmt"
	"math"

	"stringmesh/pkg/cylinder"
	"stringmesh/pkg/mesh"
)

// Config is the full set of recognized configuration fields. STLPath and
// GLTFPath are optional extra exports; an empty path disables that
// format.
type Config struct {
	TargetDiameter float64
	TargetHeight   float64
	Leg1           float64
	Leg2           float64
	Hypotenuse     float64

	OBJPath  string
	MTLPath  string
	STLPath  string
	GLTFPath string

	MaterialName  string
	MaterialColor [3]float64
}

// Default returns the built-in configuration: a 7x35 cylinder
// discretized with a (5, √24, 7) right triangle, exported as a red
// "string" cylinder.
func Default() *Config {
	return &Config{
		TargetDiameter: 7.0,
		TargetHeight:   35.0,
		Leg1:           5.0,
		Leg2:           math.Sqrt(24),
		Hypotenuse:     7.0,
		OBJPath:        "string_cylinder.obj",
		MTLPath:        "string_cylinder.mtl",
		MaterialName:   "red_string_material",
		MaterialColor:  [3]float64{1, 0, 0},
	}
}

// Params returns the resolver inputs.
func (c *Config) Params() cylinder.Params {
	return cylinder.Params{
		TargetDiameter: c.TargetDiameter,
		TargetHeight:   c.TargetHeight,
		Leg1:           c.Leg1,
		Leg2:           c.Leg2,
	}
}

// Triangle returns the unit triangle edge budget.
func (c *Config) Triangle() cylinder.UnitTriangle {
	return cylinder.UnitTriangle{Leg1: c.Leg1, Leg2: c.Leg2, Hypotenuse: c.Hypotenuse}
}

// Material returns the material record.
func (c *Config) Material() mesh.Material {
	return mesh.Material{Name: c.MaterialName, Diffuse: c.MaterialColor}
}

// FieldError reports a single invalid configuration field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Validate checks the whole record and returns one error per invalid
// field. Validation happens before any file I/O.
func (c *Config) Validate() []FieldError {
	var errs []FieldError

	positive := []struct {
		field string
		value float64
	}{
		{"target_diameter", c.TargetDiameter},
		{"target_height", c.TargetHeight},
		{"leg1", c.Leg1},
		{"leg2", c.Leg2},
		{"hypotenuse", c.Hypotenuse},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, FieldError{
				Field:  p.field,
				Reason: fmt.Sprintf("is %.4f, must be positive", p.value),
			})
		}
	}

	// Only meaningful when all three sides are positive.
	if c.Leg1 > 0 && c.Leg2 > 0 && c.Hypotenuse > 0 {
		if err := c.Triangle().Validate(); err != nil {
			errs = append(errs, FieldError{Field: "triangle", Reason: err.Error()})
		}
	}

	if c.OBJPath == "" {
		errs = append(errs, FieldError{Field: "obj_path", Reason: "must not be empty"})
	}
	if c.MTLPath == "" {
		errs = append(errs, FieldError{Field: "mtl_path", Reason: "must not be empty"})
	}
	if c.MaterialName == "" {
		errs = append(errs, FieldError{Field: "material_name", Reason: "must not be empty"})
	}
	for i, comp := range c.MaterialColor {
		if comp < 0 || comp > 1 {
			errs = append(errs, FieldError{
				Field:  "material_color",
				Reason: fmt.Sprintf("component %d is %.4f, must be in [0, 1]", i, comp),
			})
		}
	}

	return errs
}
