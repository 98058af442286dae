package assembly

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/verticallimit/turbomesh/blade"
	"github.com/verticallimit/turbomesh/geometry"
	"github.com/verticallimit/turbomesh/mesh"
	"github.com/verticallimit/turbomesh/patch"
)

// EdgeCompleter closes the blade thickness at a span extremity with simple
// per-blade quads, for the case where that side is an open annular gap
// rather than a solid surface. s must be 0 (hub) or S-1 (shroud).
func EdgeCompleter(blades []*blade.Blade, s int) mesh.Mesh {
	var out mesh.Mesh
	for _, b := range blades {
		if s == 0 {
			out = append(out, b.HubEdgeFaces()...)
		} else {
			out = append(out, b.ShroudEdgeFaces()...)
		}
	}
	return out
}

// SpanConnectors fills the gap between each blade and the angularly next one
// at span row s: for every streamwise cell, quads interpolating linearly in
// theta from the leading surface of one blade to the trailing surface of the
// next, subdivided k times. The final pair wraps from the last blade back to
// the first; its angle is shifted down by 2*pi so the interpolation does not
// span the long way around the annulus.
func SpanConnectors(grid *patch.Grid, blades []*blade.Blade, s, k int) mesh.Mesh {
	var out mesh.Mesh
	z := len(blades)
	thA := make([]float64, k+1)
	thB := make([]float64, k+1)
	for i := 0; i < z; i++ {
		b0, b1 := blades[i], blades[(i+1)%z]
		var wrap float64
		if i == z-1 {
			wrap = -2 * math.Pi
		}
		off0 := b0.Config.Offset + wrap
		off1 := b1.Config.Offset

		for m := 1; m < grid.M; m++ {
			floats.Span(thA, b0.ThL.At(m, s)+off0, b1.ThT.At(m, s)+off1)
			floats.Span(thB, b0.ThL.At(m-1, s)+off0, b1.ThT.At(m-1, s)+off1)
			for j := 0; j < k; j++ {
				out = append(out, mesh.Face{
					geometry.RTZToXYZ(grid.R.At(m-1, s), thB[j], grid.Z.At(m-1, s)),
					geometry.RTZToXYZ(grid.R.At(m, s), thA[j], grid.Z.At(m, s)),
					geometry.RTZToXYZ(grid.R.At(m, s), thA[j+1], grid.Z.At(m, s)),
					geometry.RTZToXYZ(grid.R.At(m-1, s), thB[j+1], grid.Z.At(m-1, s)),
				})
			}
		}
	}
	return out
}

// InletCaps closes the solid side at the inlet station (m = 0) with triangle
// fans from the axis apex (0, 0, z) to the subdivided arc between each
// adjacent blade pair.
func InletCaps(grid *patch.Grid, blades []*blade.Blade, s, k int) mesh.Mesh {
	return capFans(grid, blades, s, k, 0, false)
}

// OutletCaps closes the solid side at the outlet station (m = M-1), winding
// reversed relative to the inlet so both caps face out of the solid.
func OutletCaps(grid *patch.Grid, blades []*blade.Blade, s, k int) mesh.Mesh {
	return capFans(grid, blades, s, k, grid.M-1, true)
}

func capFans(grid *patch.Grid, blades []*blade.Blade, s, k, m int, reverse bool) mesh.Mesh {
	var out mesh.Mesh
	z := len(blades)
	r, zz := grid.R.At(m, s), grid.Z.At(m, s)
	apex := geometry.RTZToXYZ(0, 0, zz)
	th := make([]float64, k+1)
	for i := 0; i < z; i++ {
		b0, b1 := blades[i], blades[(i+1)%z]
		var wrap float64
		if i == z-1 {
			wrap = -2 * math.Pi
		}
		floats.Span(th,
			b0.ThL.At(m, s)+b0.Config.Offset+wrap,
			b1.ThT.At(m, s)+b1.Config.Offset)
		for j := 0; j < k; j++ {
			a := geometry.RTZToXYZ(r, th[j], zz)
			b := geometry.RTZToXYZ(r, th[j+1], zz)
			if reverse {
				a, b = b, a
			}
			out = append(out, mesh.Face{a, b, apex})
		}
	}
	return out
}
