// Command stringmesh generates a triangulated cylinder mesh from a small
// set of geometric targets and writes it as a Wavefront OBJ file with a
// companion MTL material file (optionally STL and glTF as well).
//
// There are no flags. With no arguments the built-in configuration is
// used; a single optional argument names a config script evaluated by
// pkg/script.
package main

import (
	"log"
	"os"

	"stringmesh/pkg/config"
	"stringmesh/pkg/script"
)

func main() {
	cfg := config.Default()

	if len(os.Args) > 1 {
		var err error
		cfg, err = script.LoadFile(os.Args[1])
		if err != nil {
			log.Fatalf("config script: %v", err)
		}
	}

	rep, err := NewGenerator(cfg).Run()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	seg := rep.Segmentation
	log.Printf("target: diameter %.2f, height %.2f; triangle legs (%.3f, %.3f)",
		cfg.TargetDiameter, cfg.TargetHeight, cfg.Leg1, cfg.Leg2)
	log.Printf("segments around: %d (actual diameter %.2f)", seg.SegmentsAround, seg.ActualDiameter())
	log.Printf("height segments: %d (actual height %.2f)", seg.HeightSegments, seg.ActualHeight)
	log.Printf("mesh: %d vertices, %d faces", rep.VertexCount, rep.FaceCount)
	for _, a := range rep.Artifacts {
		log.Printf("wrote %s", a)
	}
}
