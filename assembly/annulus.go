// Package assembly replicates blades around the annulus and fills the
// geometry between them, producing one closed face list.
package assembly

import (
	"fmt"
	"math"
	"sync"

	"github.com/verticallimit/turbomesh/blade"
	"github.com/verticallimit/turbomesh/geometry"
	"github.com/verticallimit/turbomesh/mesh"
	"github.com/verticallimit/turbomesh/patch"
)

// Completion selects how a span extremity (hub or shroud) is closed.
type Completion uint8

const (
	// None leaves the side to the blades' own edge caps (or open).
	None Completion = iota
	// Edge emits per-blade edge-closing quads, for an open annular gap.
	Edge
	// Solid fills the gap between adjacent blades with span-connector quads
	// and closes inlet and outlet with triangle fans to the axis.
	Solid
)

// Config describes the annulus completion.
type Config struct {
	InterbladeFaces int // subdivision count of inter-blade geometry, >= 1
	Hub             Completion
	Shroud          Completion
}

// Annulus owns the full set of blade slots over one shared meridional grid.
type Annulus struct {
	Grid   *patch.Grid
	Blades []*blade.Blade
	Config Config
}

// Replicate places copies of a template blade at Z equally spaced slots.
func Replicate(template *blade.Blade, z int) ([]*blade.Blade, error) {
	if z < 1 {
		return nil, &geometry.ConfigurationError{Detail: fmt.Sprintf("blade count %d, need at least 1", z)}
	}
	blades := make([]*blade.Blade, z)
	for i := 0; i < z; i++ {
		blades[i] = template.AtOffset(2 * math.Pi * float64(i) / float64(z))
	}
	return blades, nil
}

// NewAnnulus assembles blade instances, one per slot, over their shared
// grid. Slots may be independently parameterized (splitter blades, distinct
// thickness policies); angular offsets are taken from each blade.
func NewAnnulus(grid *patch.Grid, blades []*blade.Blade, cfg Config) (*Annulus, error) {
	if len(blades) < 1 {
		return nil, &geometry.ConfigurationError{Detail: "annulus needs at least one blade"}
	}
	if cfg.InterbladeFaces < 1 {
		return nil, &geometry.ConfigurationError{
			Detail: fmt.Sprintf("interblade subdivision %d, need at least 1", cfg.InterbladeFaces),
		}
	}
	for i, b := range blades {
		rows, cols := b.ThL.Dims()
		if rows != grid.M || cols != grid.S {
			return nil, &geometry.ConfigurationError{
				Detail: fmt.Sprintf("blade %d surfaces are %dx%d, grid is %dx%d", i, rows, cols, grid.M, grid.S),
			}
		}
	}
	return &Annulus{Grid: grid, Blades: blades, Config: cfg}, nil
}

// Faces enumerates every face of the assembled annulus: the blades' own
// surfaces plus hub and shroud completion. Blade slots are independent and
// generate concurrently; the per-worker lists are concatenated at the end
// (face order carries no meaning).
func (a *Annulus) Faces() mesh.Mesh {
	perBlade := make([]mesh.Mesh, len(a.Blades))
	var wg sync.WaitGroup
	for i, b := range a.Blades {
		wg.Add(1)
		go func(i int, b *blade.Blade) {
			defer wg.Done()
			perBlade[i] = b.Faces()
		}(i, b)
	}
	wg.Wait()

	var out mesh.Mesh
	for _, faces := range perBlade {
		out = append(out, faces...)
	}
	out = append(out, a.completeSide(0, a.Config.Hub)...)
	out = append(out, a.completeSide(a.Grid.S-1, a.Config.Shroud)...)
	return out
}

func (a *Annulus) completeSide(s int, mode Completion) mesh.Mesh {
	switch mode {
	case Edge:
		return EdgeCompleter(a.Blades, s)
	case Solid:
		out := SpanConnectors(a.Grid, a.Blades, s, a.Config.InterbladeFaces)
		out = append(out, InletCaps(a.Grid, a.Blades, s, a.Config.InterbladeFaces)...)
		out = append(out, OutletCaps(a.Grid, a.Blades, s, a.Config.InterbladeFaces)...)
		return out
	}
	return nil
}

// ExpectedFaces is the closed-form face count for full-span blades, used as
// a topology-closure regression check: any mismatch with len(Faces()) means
// a producer dropped or duplicated geometry.
func (a *Annulus) ExpectedFaces() int {
	mc := a.Grid.M - 1 // streamwise cells
	sc := a.Grid.S - 1 // spanwise cells
	k := a.Config.InterbladeFaces
	z := len(a.Blades)

	n := z * (2*sc + 2*mc*sc) // edges plus both sides, per blade
	for _, b := range a.Blades {
		if b.Config.HubEdge {
			n += mc
		}
		if b.Config.ShroudEdge {
			n += mc
		}
	}
	for _, mode := range []Completion{a.Config.Hub, a.Config.Shroud} {
		switch mode {
		case Edge:
			n += z * mc
		case Solid:
			n += z * (mc*k + 2*k) // span connectors plus inlet and outlet fans
		}
	}
	return n
}
