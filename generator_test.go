package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stringmesh/pkg/config"
	"stringmesh/pkg/script"
)

// tempConfig returns the default configuration with every output
// redirected into dir.
func tempConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OBJPath = filepath.Join(dir, "string_cylinder.obj")
	cfg.MTLPath = filepath.Join(dir, "string_cylinder.mtl")
	return cfg
}

// TestE2EDefaultConfig exercises the full pipeline with the built-in
// configuration: resolve → build → OBJ/MTL on disk.
func TestE2EDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := tempConfig(t, dir)

	rep, err := NewGenerator(cfg).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if rep.Segmentation.SegmentsAround != 4 {
		t.Errorf("SegmentsAround = %d, want 4", rep.Segmentation.SegmentsAround)
	}
	if rep.Segmentation.HeightSegments != 7 {
		t.Errorf("HeightSegments = %d, want 7", rep.Segmentation.HeightSegments)
	}
	if rep.VertexCount != 34 {
		t.Errorf("VertexCount = %d, want 34", rep.VertexCount)
	}
	if rep.FaceCount != 64 {
		t.Errorf("FaceCount = %d, want 64", rep.FaceCount)
	}
	if len(rep.Artifacts) != 2 {
		t.Fatalf("Artifacts = %v, want mtl + obj", rep.Artifacts)
	}

	obj, err := os.ReadFile(cfg.OBJPath)
	if err != nil {
		t.Fatalf("read obj: %v", err)
	}
	text := string(obj)
	if got := strings.Count(text, "\nv "); got != 34 {
		t.Errorf("obj vertex records = %d, want 34", got)
	}
	if got := strings.Count(text, "\nf "); got != 64 {
		t.Errorf("obj face records = %d, want 64", got)
	}
	if !strings.Contains(text, "usemtl red_string_material\n") {
		t.Error("obj does not bind the material")
	}

	mtl, err := os.ReadFile(cfg.MTLPath)
	if err != nil {
		t.Fatalf("read mtl: %v", err)
	}
	if !strings.HasPrefix(string(mtl), "newmtl red_string_material\n") {
		t.Errorf("mtl = %q, want newmtl header", mtl)
	}
}

// TestE2EIdempotent checks that two runs with an identical configuration
// produce byte-identical artifacts.
func TestE2EIdempotent(t *testing.T) {
	run := func() ([]byte, []byte) {
		dir := t.TempDir()
		cfg := tempConfig(t, dir)
		if _, err := NewGenerator(cfg).Run(); err != nil {
			t.Fatalf("Run: %v", err)
		}
		obj, err := os.ReadFile(cfg.OBJPath)
		if err != nil {
			t.Fatal(err)
		}
		mtl, err := os.ReadFile(cfg.MTLPath)
		if err != nil {
			t.Fatal(err)
		}
		return obj, mtl
	}

	obj1, mtl1 := run()
	obj2, mtl2 := run()

	// The obj embeds the mtllib path, which differs across temp dirs;
	// compare from the vertex block on.
	trim := func(b []byte) []byte {
		i := bytes.Index(b, []byte("\n\n"))
		return b[i:]
	}
	if !bytes.Equal(trim(obj1), trim(obj2)) {
		t.Error("OBJ output differs between identical runs")
	}
	if !bytes.Equal(mtl1, mtl2) {
		t.Error("MTL output differs between identical runs")
	}
}

// TestE2EOptionalExports enables the STL and glTF outputs.
func TestE2EOptionalExports(t *testing.T) {
	dir := t.TempDir()
	cfg := tempConfig(t, dir)
	cfg.STLPath = filepath.Join(dir, "string_cylinder.stl")
	cfg.GLTFPath = filepath.Join(dir, "string_cylinder.gltf")

	rep, err := NewGenerator(cfg).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Artifacts) != 4 {
		t.Fatalf("Artifacts = %v, want 4 files", rep.Artifacts)
	}
	for _, a := range rep.Artifacts {
		if _, err := os.Stat(a); err != nil {
			t.Errorf("artifact %s: %v", a, err)
		}
	}
}

// TestE2EScriptMatchesDefaults runs the example config script and checks
// it produces the same mesh as the built-in defaults.
func TestE2EScriptMatchesDefaults(t *testing.T) {
	source, err := os.ReadFile("examples/string_cylinder.lisp")
	if err != nil {
		t.Fatalf("read example script: %v", err)
	}
	scripted, evalErrs, err := script.Evaluate(string(source))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("Evaluate errors: %v", evalErrs)
	}

	dir := t.TempDir()
	scripted.OBJPath = filepath.Join(dir, "scripted.obj")
	scripted.MTLPath = filepath.Join(dir, "scripted.mtl")

	defCfg := tempConfig(t, dir)

	repScripted, err := NewGenerator(scripted).Run()
	if err != nil {
		t.Fatalf("Run(scripted): %v", err)
	}
	repDefault, err := NewGenerator(defCfg).Run()
	if err != nil {
		t.Fatalf("Run(default): %v", err)
	}

	// The script spells √24 as a decimal literal, which may differ from
	// math.Sqrt(24) by an ulp; compare counts exactly and lengths within
	// tolerance.
	segS, segD := repScripted.Segmentation, repDefault.Segmentation
	if segS.SegmentsAround != segD.SegmentsAround || segS.HeightSegments != segD.HeightSegments {
		t.Errorf("scripted segment counts (%d, %d) != default (%d, %d)",
			segS.SegmentsAround, segS.HeightSegments, segD.SegmentsAround, segD.HeightSegments)
	}
	if math.Abs(segS.ActualRadius-segD.ActualRadius) > 1e-9 {
		t.Errorf("scripted radius %v != default %v", segS.ActualRadius, segD.ActualRadius)
	}
	if math.Abs(segS.ActualHeight-segD.ActualHeight) > 1e-9 {
		t.Errorf("scripted height %v != default %v", segS.ActualHeight, segD.ActualHeight)
	}

	scriptedMTL, err := os.ReadFile(scripted.MTLPath)
	if err != nil {
		t.Fatal(err)
	}
	defaultMTL, err := os.ReadFile(defCfg.MTLPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(scriptedMTL, defaultMTL) {
		t.Error("scripted MTL differs from default MTL")
	}
}

// TestRunFailsBeforeIOOnInvalidConfig checks the fail-fast ordering: a
// bad parameter must be rejected before any file is created.
func TestRunFailsBeforeIOOnInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := tempConfig(t, dir)
	cfg.TargetDiameter = -1

	if _, err := NewGenerator(cfg).Run(); err == nil {
		t.Fatal("Run with negative diameter: no error")
	}
	if _, err := os.Stat(cfg.MTLPath); !os.IsNotExist(err) {
		t.Error("invalid run still created the material file")
	}
}

// TestRunFailsOnUnwritableDestination checks IO failure propagation.
func TestRunFailsOnUnwritableDestination(t *testing.T) {
	cfg := tempConfig(t, filepath.Join(t.TempDir(), "no-such-dir"))
	if _, err := NewGenerator(cfg).Run(); err == nil {
		t.Fatal("Run into missing directory: no error")
	}
}
