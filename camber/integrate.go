package camber

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/verticallimit/turbomesh/geometry"
	"github.com/verticallimit/turbomesh/patch"
)

// Field holds the integrated camberline over an M×S grid: Th is the angular
// position of the blade mean line, Beta the relative flow angle
// atan2(w_m, w_th). Th is rebased so the outlet row (m = M-1) is zero for
// every span column.
type Field struct {
	Th, Beta *mat.Dense
}

// Integrate sweeps each span column from inlet to outlet, accumulating the
// blade angle from the relative tangential velocity at segment midpoints:
//
//	w_m   = sqrt(vr^2 + vz^2)
//	w_th  = vth - omega*r[m,s]
//	th[m] = th[m-1] + x_m * w_th / (r[m,s] * w_m)
//
// with x_m the meridional chord of the segment. Span columns are independent
// and run concurrently; the m sweep within a column is a running integral
// and stays sequential. Zero meridional relative speed or a non-positive
// radius makes the column non-integrable and returns a SingularityError
// naming the offending point.
func Integrate(grid *patch.Grid, omega float64, sampler Sampler) (*Field, error) {
	f := &Field{
		Th:   mat.NewDense(grid.M, grid.S, nil),
		Beta: mat.NewDense(grid.M, grid.S, nil),
	}

	errs := make([]error, grid.S)
	var wg sync.WaitGroup
	for s := 0; s < grid.S; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			errs[s] = integrateSpan(grid, omega, sampler, f, s)
		}(s)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

func integrateSpan(grid *patch.Grid, omega float64, sampler Sampler, f *Field, s int) error {
	for m := 1; m < grid.M; m++ {
		r, z := grid.R.At(m, s), grid.Z.At(m, s)
		rPrev, zPrev := grid.R.At(m-1, s), grid.Z.At(m-1, s)
		if r <= 0 {
			return &geometry.SingularityError{
				Op:     "camber.Integrate",
				Detail: fmt.Sprintf("non-positive radius r=%g at (m=%d, s=%d)", r, m, s),
			}
		}

		vr, vth, vz := sampler.Sample((r+rPrev)/2, (z+zPrev)/2)
		wM := math.Hypot(vr, vz)
		if wM == 0 {
			return &geometry.SingularityError{
				Op:     "camber.Integrate",
				Detail: fmt.Sprintf("zero meridional relative speed at (m=%d, s=%d)", m, s),
			}
		}
		wTh := vth - omega*r
		xM := math.Hypot(r-rPrev, z-zPrev)

		f.Th.Set(m, s, f.Th.At(m-1, s)+xM*wTh/(r*wM))
		f.Beta.Set(m, s, math.Atan2(wM, wTh))
	}

	// Rebase the column on the outlet row so th[M-1] = 0 at every span.
	outlet := f.Th.At(grid.M-1, s)
	for m := 0; m < grid.M; m++ {
		f.Th.Set(m, s, f.Th.At(m, s)-outlet)
	}

	// The m=0 row has no upstream segment; carry the first computed angle
	// back. An approximation, slightly better than zero.
	f.Beta.Set(0, s, f.Beta.At(1, s))
	return nil
}
