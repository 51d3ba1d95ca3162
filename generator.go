package main

import (
	"fmt"
	"strings"

	"stringmesh/pkg/config"
	"stringmesh/pkg/cylinder"
	"stringmesh/pkg/export"
)

// Generator runs the full pipeline for one configuration:
// validate → resolve → build → export. The three stages run strictly
// sequentially and share no state across runs.
type Generator struct {
	cfg *config.Config
}

// Report summarizes a completed run.
type Report struct {
	Segmentation cylinder.Segmentation
	VertexCount  int
	FaceCount    int
	Artifacts    []string // files written, in order
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run executes the pipeline once. It fails fast on invalid parameters,
// before any file is opened; an unwritable destination propagates as a
// hard failure with whatever was already written left in place.
func (g *Generator) Run() (Report, error) {
	if errs := g.cfg.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return Report{}, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	seg, err := cylinder.Resolve(g.cfg.Params())
	if err != nil {
		return Report{}, err
	}

	m := cylinder.Build(seg)
	mat := g.cfg.Material()

	rep := Report{
		Segmentation: seg,
		VertexCount:  m.VertexCount(),
		FaceCount:    m.FaceCount(),
	}

	if err := export.SaveMTL(g.cfg.MTLPath, mat); err != nil {
		return rep, err
	}
	rep.Artifacts = append(rep.Artifacts, g.cfg.MTLPath)

	if err := export.SaveOBJ(g.cfg.OBJPath, m, g.cfg.MTLPath, mat.Name); err != nil {
		return rep, err
	}
	rep.Artifacts = append(rep.Artifacts, g.cfg.OBJPath)

	if g.cfg.STLPath != "" {
		if err := export.SaveSTL(g.cfg.STLPath, m); err != nil {
			return rep, err
		}
		rep.Artifacts = append(rep.Artifacts, g.cfg.STLPath)
	}

	if g.cfg.GLTFPath != "" {
		if err := export.SaveGLTF(g.cfg.GLTFPath, m, mat); err != nil {
			return rep, err
		}
		rep.Artifacts = append(rep.Artifacts, g.cfg.GLTFPath)
	}

	return rep, nil
}
