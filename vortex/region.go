// Package vortex orchestrates the blade pipeline for a free-vortex flow
// region: inlet/outlet geometry and velocities in, sanitized surface mesh
// out. Velocity-field acquisition stays external behind camber.Sampler.
package vortex

import (
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/verticallimit/turbomesh/patch"
)

// Region describes one flow region between an inlet and an outlet edge in
// the meridional plane, with uniform cylindrical (r, th, z) velocities at
// each.
type Region struct {
	InletS0  r2.Vec // (r, z) at inner edge of inlet
	InletS1  r2.Vec // (r, z) at outer edge of inlet
	OutletS0 r2.Vec // (r, z) at inner edge of outlet
	OutletS1 r2.Vec // (r, z) at outer edge of outlet

	InletV  [3]float64 // uniform (vr, vth, vz) at inlet
	OutletV [3]float64 // uniform (vr, vth, vz) at outlet

	PointsM int // grid vertices inlet to outlet
	PointsS int // grid vertices hub to shroud
}

// Patch builds the velocity-matched meridional patch for the region. The
// tangential velocity components are stripped; only the meridional (r, z)
// directions shape the passage. A purely axial region has parallel inlet
// and outlet directions and fails with a SingularityError.
func (rg *Region) Patch() (patch.Patch, error) {
	vIn := r2.Vec{X: rg.InletV[0], Y: rg.InletV[2]}
	vOut := r2.Vec{X: rg.OutletV[0], Y: rg.OutletV[2]}
	return patch.NewSpline(rg.InletS0, rg.InletS1, rg.OutletS0, rg.OutletS1, vIn, vOut)
}

// Grid samples the region patch at the configured resolution.
func (rg *Region) Grid() (*patch.Grid, error) {
	p, err := rg.Patch()
	if err != nil {
		return nil, err
	}
	g, err := patch.BuildGrid(p, rg.PointsM, rg.PointsS)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"M": g.M,
		"S": g.S,
	}).Debug("meridional grid built")
	return g, nil
}
