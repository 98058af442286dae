// Package camber integrates a sampled velocity field into the blade
// camberline: the per-grid-point angular position th and relative flow
// angle beta that the blade surfaces are offset from.
package camber

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/verticallimit/turbomesh/geometry"
)

// Sampler answers single-point velocity queries over the meridional
// cross-section. The returned components are cylindrical: radial,
// tangential, axial. Queries outside the sampled hull must still return a
// defined value (nearest-neighbor semantics); Sample never fails.
type Sampler interface {
	Sample(r, z float64) (vr, vth, vz float64)
}

// NearestSampler holds a materialized velocity sample set and answers
// queries with the value at the nearest sampled point. The integrator only
// queries segment midpoints, which sit outside the convex hull of
// cell-centered solver output, so nearest-neighbor is the honest choice.
type NearestSampler struct {
	points []r2.Vec    // (r, z) sample locations
	vel    [][3]float64 // (vr, vth, vz) at each location
}

// NewNearestSampler builds a sampler from parallel location and velocity
// slices.
func NewNearestSampler(points []r2.Vec, vel [][3]float64) (*NearestSampler, error) {
	if len(points) == 0 {
		return nil, &geometry.ConfigurationError{Detail: "velocity sample set is empty"}
	}
	if len(points) != len(vel) {
		return nil, &geometry.ConfigurationError{
			Detail: fmt.Sprintf("sample set has %d points but %d velocities", len(points), len(vel)),
		}
	}
	return &NearestSampler{points: points, vel: vel}, nil
}

// Sample returns the velocity at the sampled point nearest to (r, z).
func (ns *NearestSampler) Sample(r, z float64) (vr, vth, vz float64) {
	best := 0
	bestD := distSq(ns.points[0], r, z)
	for i := 1; i < len(ns.points); i++ {
		if d := distSq(ns.points[i], r, z); d < bestD {
			best, bestD = i, d
		}
	}
	v := ns.vel[best]
	return v[0], v[1], v[2]
}

func distSq(p r2.Vec, r, z float64) float64 {
	dr := p.X - r
	dz := p.Y - z
	return dr*dr + dz*dz
}

// FreeVortexSampler is an analytic stand-in for solved flow: uniform
// meridional velocity with free-vortex swirl v_th = Gamma/r. Useful for
// stator passages and for exercising the pipeline without a solver run.
type FreeVortexSampler struct {
	VR, VZ float64 // uniform meridional components
	Gamma  float64 // circulation constant; v_th = Gamma / r
}

func (fv *FreeVortexSampler) Sample(r, z float64) (vr, vth, vz float64) {
	vth = 0
	if fv.Gamma != 0 && r != 0 {
		vth = fv.Gamma / r
	}
	return fv.VR, vth, fv.VZ
}
