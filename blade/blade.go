// Package blade offsets an integrated camberline into pressure and suction
// surfaces and generates the per-blade quad faces.
package blade

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/verticallimit/turbomesh/camber"
	"github.com/verticallimit/turbomesh/geometry"
	"github.com/verticallimit/turbomesh/patch"
)

// Config describes one blade slot.
type Config struct {
	// Wall offsets from the camberline on each side.
	Leading  ThicknessPolicy
	Trailing ThicknessPolicy

	// Angular position of the slot on the annulus.
	Offset float64

	// Edge caps closing the blade thickness at the span extremes. Enable
	// ShroudEdge for an unshrouded rotor; enable HubEdge when no hub
	// completer caps that side.
	HubEdge    bool
	ShroudEdge bool

	// Streamwise face range for partial (splitter) blades. Faces are only
	// generated over [MStart, MEnd]; the offset surfaces still cover the
	// full grid because neighboring blades reference them. MEnd = 0 means
	// the full range.
	MStart, MEnd int
}

// Blade is one blade instance: the grid it spans, its leading and trailing
// angular surfaces, and its slot configuration. Immutable once built.
type Blade struct {
	Grid     *patch.Grid
	ThL, ThT *mat.Dense
	Config   Config

	mStart, mEnd int
}

// Build offsets the camberline by the thickness policies into the two
// angular surfaces:
//
//	dth_l = +thickness_l * sin(beta) / r
//	dth_t = -thickness_t * sin(beta) / r
//
// The offset sign follows sin(beta) and the rotation sense, so no ordering
// between ThL and ThT is guaranteed; both surfaces bound the blade wall.
// The builder is stateless and is invoked once per slot.
func Build(grid *patch.Grid, field *camber.Field, cfg Config) (*Blade, error) {
	if cfg.Leading == nil {
		cfg.Leading = ZeroThickness
	}
	if cfg.Trailing == nil {
		cfg.Trailing = ZeroThickness
	}
	mEnd := cfg.MEnd
	if mEnd == 0 {
		mEnd = grid.M - 1
	}
	if cfg.MStart < 0 || mEnd >= grid.M || cfg.MStart >= mEnd {
		return nil, &geometry.ConfigurationError{
			Detail: fmt.Sprintf("blade m-range [%d, %d] invalid for M=%d", cfg.MStart, mEnd, grid.M),
		}
	}

	thL := mat.NewDense(grid.M, grid.S, nil)
	thT := mat.NewDense(grid.M, grid.S, nil)
	for m := 0; m < grid.M; m++ {
		mNorm := float64(m) / float64(grid.M-1)
		for s := 0; s < grid.S; s++ {
			sNorm := float64(s) / float64(grid.S-1)
			r := grid.R.At(m, s)
			if r <= 0 {
				return nil, &geometry.SingularityError{
					Op:     "blade.Build",
					Detail: fmt.Sprintf("non-positive radius r=%g at (m=%d, s=%d)", r, m, s),
				}
			}
			sinBeta := math.Sin(field.Beta.At(m, s))
			th := field.Th.At(m, s)
			thL.Set(m, s, th+cfg.Leading(mNorm, sNorm)*sinBeta/r)
			thT.Set(m, s, th-cfg.Trailing(mNorm, sNorm)*sinBeta/r)
		}
	}

	return &Blade{
		Grid:   grid,
		ThL:    thL,
		ThT:    thT,
		Config: cfg,
		mStart: cfg.MStart,
		mEnd:   mEnd,
	}, nil
}

// MRange returns the streamwise index range faces are generated over.
func (b *Blade) MRange() (start, end int) { return b.mStart, b.mEnd }

// AtOffset places a copy of the blade at another slot angle. The surface
// arrays are shared, so replicating a template around the annulus costs no
// recomputation.
func (b *Blade) AtOffset(th float64) *Blade {
	nb := *b
	nb.Config.Offset = th
	return &nb
}
