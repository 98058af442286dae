package patch

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/verticallimit/turbomesh/geometry"
)

// Grid holds the sampled meridional coordinates of an M×S structured grid.
// R.At(m, s) and Z.At(m, s) index streamwise then spanwise. Immutable once
// built; downstream stages share it read-only.
type Grid struct {
	M, S int
	R, Z *mat.Dense
}

// BuildGrid samples the patch at m = i/(M-1), s = j/(S-1) for an M×S grid.
// Resolution below 2 on either axis is rejected before any sampling.
func BuildGrid(p Patch, m, s int) (*Grid, error) {
	if m < 2 || s < 2 {
		return nil, &geometry.ConfigurationError{
			Detail: fmt.Sprintf("grid resolution %dx%d too small, need at least 2x2", m, s),
		}
	}
	g := &Grid{
		M: m,
		S: s,
		R: mat.NewDense(m, s, nil),
		Z: mat.NewDense(m, s, nil),
	}
	for i := 0; i < m; i++ {
		for j := 0; j < s; j++ {
			pt, err := p.At(float64(i)/float64(m-1), float64(j)/float64(s-1))
			if err != nil {
				return nil, err
			}
			g.R.Set(i, j, pt.X)
			g.Z.Set(i, j, pt.Y)
		}
	}
	return g, nil
}
