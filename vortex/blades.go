package vortex

import (
	log "github.com/sirupsen/logrus"

	"github.com/verticallimit/turbomesh/assembly"
	"github.com/verticallimit/turbomesh/blade"
	"github.com/verticallimit/turbomesh/camber"
	"github.com/verticallimit/turbomesh/mesh"
)

// BladedRegion is a Region populated with rotating or stationary blades.
type BladedRegion struct {
	Region

	Z     int     // blade count
	Omega float64 // angular velocity, signed, rad/s

	Leading  blade.ThicknessPolicy
	Trailing blade.ThicknessPolicy

	InterbladeFaces int

	// HubSolid selects a solid hub: inter-blade span connectors plus axis
	// fan caps. Otherwise the hub is closed per blade. ShroudSolid likewise
	// for the shroud side; an unshrouded rotor leaves it false and gets
	// per-blade shroud edge caps.
	HubSolid    bool
	ShroudSolid bool
}

// BuildMesh runs the whole pipeline against a velocity sampler: camberline
// integration, surface offsetting, annulus assembly and face sanitization.
// The returned mesh is ready for an STL sink.
func (br *BladedRegion) BuildMesh(sampler camber.Sampler) (mesh.Mesh, error) {
	grid, err := br.Grid()
	if err != nil {
		return nil, err
	}

	field, err := camber.Integrate(grid, br.Omega, sampler)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"omega": br.Omega,
		"spans": grid.S,
	}).Debug("camberline integrated")

	template, err := blade.Build(grid, field, blade.Config{
		Leading:    br.Leading,
		Trailing:   br.Trailing,
		HubEdge:    false, // the hub completer closes that side
		ShroudEdge: !br.ShroudSolid,
	})
	if err != nil {
		return nil, err
	}

	blades, err := assembly.Replicate(template, br.Z)
	if err != nil {
		return nil, err
	}

	cfg := assembly.Config{InterbladeFaces: br.InterbladeFaces}
	if br.HubSolid {
		cfg.Hub = assembly.Solid
	} else {
		cfg.Hub = assembly.Edge
	}
	if br.ShroudSolid {
		cfg.Shroud = assembly.Solid
	}

	ann, err := assembly.NewAnnulus(grid, blades, cfg)
	if err != nil {
		return nil, err
	}

	faces := ann.Faces()
	if want := ann.ExpectedFaces(); want != len(faces) {
		log.WithFields(log.Fields{
			"expected": want,
			"got":      len(faces),
		}).Warn("face count mismatch, assembled mesh may not be closed")
	}

	out, err := faces.Condense()
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"blades": br.Z,
		"faces":  len(out),
	}).Info("blade mesh assembled")
	return out, nil
}
