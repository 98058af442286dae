// Package patch defines the meridional flow-passage parameterization: maps
// from the unit (m, s) square to (r, z) points in the meridional plane, where
// m runs inlet to outlet and s runs hub to shroud.
package patch

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/verticallimit/turbomesh/geometry"
)

// Kind identifies a patch variant.
type Kind uint8

const (
	Linear Kind = iota // bilinear patch between four corners
	Spline             // quadratic-in-m patch matching inlet/outlet velocities
	Merged             // sub-patches merged along the m axis
)

// Patch maps the unit parameter square to the meridional plane.
// At returns the (r, z) point for m, s in [0,1] and a DomainError outside
// that range.
type Patch interface {
	Kind() Kind
	At(m, s float64) (r2.Vec, error)
}

// LinearPatch is a bilinear Bezier patch between four corner points.
type LinearPatch struct {
	surf *geometry.BezierSurface
}

// NewLinear constructs a bilinear patch from the (r, z) corners at
// (m, s) = (0,0), (0,1), (1,0) and (1,1).
func NewLinear(m0s0, m0s1, m1s0, m1s1 r2.Vec) (*LinearPatch, error) {
	surf, err := geometry.NewBezierSurface([][]r2.Vec{
		{m0s0, m0s1},
		{m1s0, m1s1},
	})
	if err != nil {
		return nil, err
	}
	return &LinearPatch{surf: surf}, nil
}

func (p *LinearPatch) Kind() Kind { return Linear }

func (p *LinearPatch) At(m, s float64) (r2.Vec, error) {
	return p.surf.At(m, s)
}

// SplinePatch is quadratic in m and linear in s. The middle control row is
// placed at the intersection of the straight-line inlet and outlet velocity
// directions at each span edge, so the patch leaves the inlet and enters the
// outlet along the stated meridional velocities. Construction fails with a
// SingularityError when the two directions are parallel (e.g. a purely axial
// passage).
type SplinePatch struct {
	surf *geometry.BezierSurface
}

// NewSpline constructs a velocity-matched patch. vIn and vOut are meridional
// (r, z) velocity components at the inlet and outlet.
func NewSpline(m0s0, m0s1, m1s0, m1s1, vIn, vOut r2.Vec) (*SplinePatch, error) {
	s0Mid, err := geometry.Intersection2D(m0s0, r2.Add(m0s0, vIn), m1s0, r2.Add(m1s0, vOut))
	if err != nil {
		return nil, err
	}
	s1Mid, err := geometry.Intersection2D(m0s1, r2.Add(m0s1, vIn), m1s1, r2.Add(m1s1, vOut))
	if err != nil {
		return nil, err
	}
	surf, err := geometry.NewBezierSurface([][]r2.Vec{
		{m0s0, m0s1},
		{s0Mid, s1Mid},
		{m1s0, m1s1},
	})
	if err != nil {
		return nil, err
	}
	return &SplinePatch{surf: surf}, nil
}

func (p *SplinePatch) Kind() Kind { return Spline }

func (p *SplinePatch) At(m, s float64) (r2.Vec, error) {
	return p.surf.At(m, s)
}

// MergedPatch strings sub-patches together along the m axis, splitting the
// m domain into equal intervals. Useful for combined shapes such as a pump
// with an inducer section. Sub-patch alignment at the joins is the caller's
// responsibility.
type MergedPatch struct {
	patches []Patch
}

// NewMerged constructs a merged patch from an ordered inlet-to-outlet list.
func NewMerged(patches []Patch) (*MergedPatch, error) {
	if len(patches) == 0 {
		return nil, &geometry.ConfigurationError{Detail: "merged patch needs at least one sub-patch"}
	}
	return &MergedPatch{patches: patches}, nil
}

func (p *MergedPatch) Kind() Kind { return Merged }

func (p *MergedPatch) At(m, s float64) (r2.Vec, error) {
	if m < 0 || m > 1 {
		return r2.Vec{}, &geometry.DomainError{Name: "m", Value: m}
	}
	n := len(p.patches)
	idx := int(math.Floor(m * float64(n)))
	if idx == n { // m == 1 lands in the last sub-patch
		idx = n - 1
	}
	local := m*float64(n) - float64(idx)
	return p.patches[idx].At(local, s)
}
