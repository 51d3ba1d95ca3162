package script

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"stringmesh/pkg/config"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix marks keyword arguments after preprocessing. Keywords become
// ordinary string literals so they need no global symbol registration.
const kwPrefix = "__kw_"

// preprocess rewrites a config script for zygomys: Lisp-style `;` line
// comments become `//` comments, and `:keyword` tokens become marker
// string literals. String literal boundaries are respected; `:=` is left
// alone.
func preprocess(source string) string {
	out := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch {
		case b[i] == '"':
			// Copy the string literal untouched, honoring escapes.
			out = append(out, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					out = append(out, b[i], b[i+1])
					i += 2
					continue
				}
				out = append(out, b[i])
				i++
			}
			if i < len(b) {
				out = append(out, b[i])
				i++
			}

		case b[i] == ';':
			out = append(out, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out = append(out, b[i])
				i++
			}

		case b[i] == ':' && i+1 < len(b) && b[i+1] == '=':
			out = append(out, b[i], b[i+1])
			i += 2

		case b[i] == ':' && i+1 < len(b) && isKeywordStart(b[i+1]):
			j := i + 1
			for j < len(b) && isKeywordChar(b[j]) {
				j++
			}
			out = append(out, '"')
			out = append(out, kwPrefix...)
			out = append(out, b[i+1:j]...)
			out = append(out, '"')
			i = j

		default:
			out = append(out, b[i])
			i++
		}
	}
	return string(out)
}

func isKeywordStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKeywordChar(c byte) bool {
	return isKeywordStart(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Argument helpers
// ---------------------------------------------------------------------------

// kwArgs parses a builtin argument list into keyword/value pairs and
// rejects anything that is not a recognized keyword; the configuration
// record is closed, so unknown options are errors rather than silently
// ignored.
func kwArgs(builtin string, args []zygo.Sexp, allowed ...string) (map[string]zygo.Sexp, error) {
	ok := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		ok[a] = true
	}

	kw := make(map[string]zygo.Sexp)
	i := 0
	for i < len(args) {
		str, isStr := args[i].(*zygo.SexpStr)
		if !isStr || len(str.S) <= len(kwPrefix) || str.S[:len(kwPrefix)] != kwPrefix {
			return nil, fmt.Errorf("%s: expected :keyword, got %s", builtin, args[i].SexpString(nil))
		}
		name := str.S[len(kwPrefix):]
		if !ok[name] {
			return nil, fmt.Errorf("%s: unknown option :%s", builtin, name)
		}
		if i+1 >= len(args) {
			return nil, fmt.Errorf("%s: option :%s has no value", builtin, name)
		}
		kw[name] = args[i+1]
		i += 2
	}
	return kw, nil
}

// toFloat64 extracts a float64 from a numeric Sexp.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", s.SexpString(nil))
}

// setFloat assigns a float option into a config field.
func setFloat(kw map[string]zygo.Sexp, name, builtin string, dst *float64) error {
	v, ok := kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: :%s: %w", builtin, name, err)
	}
	*dst = f
	return nil
}

// setString assigns a string option into a config field.
func setString(kw map[string]zygo.Sexp, name, builtin string, dst *string) error {
	v, ok := kw[name]
	if !ok {
		return nil
	}
	s, err := toString(v)
	if err != nil {
		return fmt.Errorf("%s: :%s: %w", builtin, name, err)
	}
	*dst = s
	return nil
}

// sexpColor carries an RGB triple between the rgb and material builtins.
type sexpColor struct {
	rgb [3]float64
}

func (c *sexpColor) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(rgb %.3f %.3f %.3f)", c.rgb[0], c.rgb[1], c.rgb[2])
}

func (c *sexpColor) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the config builtins into a zygomys
// environment. Each builtin writes into cfg during evaluation:
//
//	(cylinder :diameter 7.0 :height 35.0)
//	(triangle :leg1 5.0 :leg2 4.899 :hypotenuse 7.0)
//	(material :name "red_string_material" :color (rgb 1.0 0.0 0.0))
//	(output :obj "a.obj" :mtl "a.mtl" :stl "a.stl" :gltf "a.gltf")
//
// Source must be run through preprocess first so :keyword tokens are
// recognizable.
func registerBuiltins(env *zygo.Zlisp, cfg *config.Config) {

	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, err := kwArgs("cylinder", args, "diameter", "height")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := setFloat(kw, "diameter", "cylinder", &cfg.TargetDiameter); err != nil {
			return zygo.SexpNull, err
		}
		if err := setFloat(kw, "height", "cylinder", &cfg.TargetHeight); err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})

	env.AddFunction("triangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, err := kwArgs("triangle", args, "leg1", "leg2", "hypotenuse")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := setFloat(kw, "leg1", "triangle", &cfg.Leg1); err != nil {
			return zygo.SexpNull, err
		}
		if err := setFloat(kw, "leg2", "triangle", &cfg.Leg2); err != nil {
			return zygo.SexpNull, err
		}
		if err := setFloat(kw, "hypotenuse", "triangle", &cfg.Hypotenuse); err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})

	env.AddFunction("rgb", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("rgb requires exactly 3 arguments, got %d", len(args))
		}
		var c sexpColor
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rgb: component %d: %w", i, err)
			}
			c.rgb[i] = f
		}
		return &c, nil
	})

	env.AddFunction("material", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, err := kwArgs("material", args, "name", "color")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := setString(kw, "name", "material", &cfg.MaterialName); err != nil {
			return zygo.SexpNull, err
		}
		if v, ok := kw["color"]; ok {
			c, isColor := v.(*sexpColor)
			if !isColor {
				return zygo.SexpNull, fmt.Errorf("material: :color: expected (rgb r g b), got %s", v.SexpString(nil))
			}
			cfg.MaterialColor = c.rgb
		}
		return zygo.SexpNull, nil
	})

	env.AddFunction("output", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, err := kwArgs("output", args, "obj", "mtl", "stl", "gltf")
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := setString(kw, "obj", "output", &cfg.OBJPath); err != nil {
			return zygo.SexpNull, err
		}
		if err := setString(kw, "mtl", "output", &cfg.MTLPath); err != nil {
			return zygo.SexpNull, err
		}
		if err := setString(kw, "stl", "output", &cfg.STLPath); err != nil {
			return zygo.SexpNull, err
		}
		if err := setString(kw, "gltf", "output", &cfg.GLTFPath); err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})
}
