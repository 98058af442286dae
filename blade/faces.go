package blade

import (
	"github.com/verticallimit/turbomesh/geometry"
	"github.com/verticallimit/turbomesh/mesh"
)

type surface uint8

const (
	leading surface = iota
	trailing
)

// vertex projects grid point (m, s) on the given angular surface into
// Cartesian space, shifted to the blade's slot angle.
func (b *Blade) vertex(surf surface, m, s int) [3]float64 {
	th := b.ThL.At(m, s)
	if surf == trailing {
		th = b.ThT.At(m, s)
	}
	return [3]float64{b.Grid.R.At(m, s), th + b.Config.Offset, b.Grid.Z.At(m, s)}
}

// quad builds a face from four cylindrical (r, th, z) corner tuples.
func quad(a, bb, c, d [3]float64) mesh.Face {
	return mesh.Face{
		geometry.RTZToXYZ(a[0], a[1], a[2]),
		geometry.RTZToXYZ(bb[0], bb[1], bb[2]),
		geometry.RTZToXYZ(c[0], c[1], c[2]),
		geometry.RTZToXYZ(d[0], d[1], d[2]),
	}
}

// LeadingEdgeFaces closes the blade thickness along the inlet edge
// (m = MStart), one quad per span segment.
func (b *Blade) LeadingEdgeFaces() mesh.Mesh {
	var out mesh.Mesh
	m := b.mStart
	for s := 1; s < b.Grid.S; s++ {
		out = append(out, quad(
			b.vertex(leading, m, s-1),
			b.vertex(trailing, m, s-1),
			b.vertex(trailing, m, s),
			b.vertex(leading, m, s)))
	}
	return out
}

// TrailingEdgeFaces closes the blade thickness along the outlet edge
// (m = MEnd), winding reversed relative to the leading edge.
func (b *Blade) TrailingEdgeFaces() mesh.Mesh {
	var out mesh.Mesh
	m := b.mEnd
	for s := 1; s < b.Grid.S; s++ {
		out = append(out, quad(
			b.vertex(leading, m, s-1),
			b.vertex(leading, m, s),
			b.vertex(trailing, m, s),
			b.vertex(trailing, m, s-1)))
	}
	return out
}

// PressureSideFaces covers the leading (pressure) surface with one quad per
// grid cell.
func (b *Blade) PressureSideFaces() mesh.Mesh {
	var out mesh.Mesh
	for m := b.mStart + 1; m <= b.mEnd; m++ {
		for s := 1; s < b.Grid.S; s++ {
			out = append(out, quad(
				b.vertex(leading, m-1, s-1),
				b.vertex(leading, m-1, s),
				b.vertex(leading, m, s),
				b.vertex(leading, m, s-1)))
		}
	}
	return out
}

// SuctionSideFaces covers the trailing (suction) surface, winding opposite
// to the pressure side so both face outward.
func (b *Blade) SuctionSideFaces() mesh.Mesh {
	var out mesh.Mesh
	for m := b.mStart + 1; m <= b.mEnd; m++ {
		for s := 1; s < b.Grid.S; s++ {
			out = append(out, quad(
				b.vertex(trailing, m-1, s-1),
				b.vertex(trailing, m, s-1),
				b.vertex(trailing, m, s),
				b.vertex(trailing, m-1, s)))
		}
	}
	return out
}

// ShroudEdgeFaces closes the blade thickness along s = S-1. Typical for
// unshrouded rotors; skipped when a shroud completer caps that side.
func (b *Blade) ShroudEdgeFaces() mesh.Mesh {
	var out mesh.Mesh
	s := b.Grid.S - 1
	for m := b.mStart + 1; m <= b.mEnd; m++ {
		out = append(out, quad(
			b.vertex(trailing, m-1, s),
			b.vertex(trailing, m, s),
			b.vertex(leading, m, s),
			b.vertex(leading, m-1, s)))
	}
	return out
}

// HubEdgeFaces closes the blade thickness along s = 0. Typical for stators
// whose hub side is an open annular gap.
func (b *Blade) HubEdgeFaces() mesh.Mesh {
	var out mesh.Mesh
	for m := b.mStart + 1; m <= b.mEnd; m++ {
		out = append(out, quad(
			b.vertex(leading, m-1, 0),
			b.vertex(leading, m, 0),
			b.vertex(trailing, m, 0),
			b.vertex(trailing, m-1, 0)))
	}
	return out
}

// Faces assembles the blade's own surface: both edges, both sides, and the
// span-end caps enabled by the configuration.
func (b *Blade) Faces() mesh.Mesh {
	out := b.LeadingEdgeFaces()
	out = append(out, b.TrailingEdgeFaces()...)
	out = append(out, b.PressureSideFaces()...)
	out = append(out, b.SuctionSideFaces()...)
	if b.Config.HubEdge {
		out = append(out, b.HubEdgeFaces()...)
	}
	if b.Config.ShroudEdge {
		out = append(out, b.ShroudEdgeFaces()...)
	}
	return out
}
