package export

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestSaveGLTFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gltf")
	m := testMesh()
	mat := testMaterial()

	if err := SaveGLTF(path, m, mat); err != nil {
		t.Fatalf("SaveGLTF: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopen gltf: %v", err)
	}

	if len(doc.Meshes) != 1 {
		t.Fatalf("meshes = %d, want 1", len(doc.Meshes))
	}
	prims := doc.Meshes[0].Primitives
	if len(prims) != 1 {
		t.Fatalf("primitives = %d, want 1", len(prims))
	}
	prim := prims[0]

	posAccessor, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		t.Fatal("primitive has no POSITION attribute")
	}
	if got := int(doc.Accessors[posAccessor].Count); got != m.VertexCount() {
		t.Errorf("position count = %d, want %d", got, m.VertexCount())
	}
	if prim.Indices == nil {
		t.Fatal("primitive has no indices")
	}
	if got := int(doc.Accessors[*prim.Indices].Count); got != 3*m.FaceCount() {
		t.Errorf("index count = %d, want %d", got, 3*m.FaceCount())
	}

	if len(doc.Materials) != 1 {
		t.Fatalf("materials = %d, want 1", len(doc.Materials))
	}
	if doc.Materials[0].Name != mat.Name {
		t.Errorf("material name = %q, want %q", doc.Materials[0].Name, mat.Name)
	}
	pbr := doc.Materials[0].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		t.Fatal("material has no base color factor")
	}
	want := [4]float64{1, 0, 0, 1}
	if *pbr.BaseColorFactor != want {
		t.Errorf("base color = %v, want %v", *pbr.BaseColorFactor, want)
	}
}

func TestSaveGLTFFailsOnMissingDirectory(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "no-such-dir", "out.gltf")
	if err := SaveGLTF(bad, testMesh(), testMaterial()); err == nil {
		t.Error("SaveGLTF to missing directory: no error")
	}
}
