package blade

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/verticallimit/turbomesh/camber"
	"github.com/verticallimit/turbomesh/geometry"
	"github.com/verticallimit/turbomesh/patch"
)

func testGridField(t *testing.T, m, s int) (*patch.Grid, *camber.Field) {
	t.Helper()
	p, err := patch.NewLinear(
		r2.Vec{X: 1, Y: 0}, r2.Vec{X: 2, Y: 0},
		r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 1})
	require.NoError(t, err)
	grid, err := patch.BuildGrid(p, m, s)
	require.NoError(t, err)

	field, err := camber.Integrate(grid, 20, &camber.FreeVortexSampler{VZ: 5, Gamma: 2})
	require.NoError(t, err)
	return grid, field
}

func TestBuildZeroThicknessCollapsesSurfaces(t *testing.T) {
	grid, field := testGridField(t, 5, 3)

	b, err := Build(grid, field, Config{})
	require.NoError(t, err)

	for m := 0; m < grid.M; m++ {
		for s := 0; s < grid.S; s++ {
			assert.Equal(t, field.Th.At(m, s), b.ThL.At(m, s))
			assert.Equal(t, field.Th.At(m, s), b.ThT.At(m, s))
		}
	}
}

func TestBuildOffsetSigns(t *testing.T) {
	grid, field := testGridField(t, 5, 3)

	b, err := Build(grid, field, Config{
		Leading:  UniformThickness(0.01),
		Trailing: UniformThickness(0.01),
	})
	require.NoError(t, err)

	// Interior point: offsets are +t*sin(beta)/r and -t*sin(beta)/r around
	// the camberline.
	m, s := 2, 1
	r := grid.R.At(m, s)
	want := 0.01 * math.Sin(field.Beta.At(m, s)) / r
	assert.InDelta(t, field.Th.At(m, s)+want, b.ThL.At(m, s), 1e-14)
	assert.InDelta(t, field.Th.At(m, s)-want, b.ThT.At(m, s), 1e-14)

	// Leading and trailing edges stay thickness-free.
	for s := 0; s < grid.S; s++ {
		assert.Equal(t, field.Th.At(0, s), b.ThL.At(0, s))
		assert.Equal(t, field.Th.At(grid.M-1, s), b.ThT.At(grid.M-1, s))
	}
}

func TestBuildRejectsNonPositiveRadius(t *testing.T) {
	grid, field := testGridField(t, 3, 2)
	grid.R.Set(1, 0, 0) // degenerate hub geometry is rejected, not divided

	_, err := Build(grid, field, Config{})
	var singErr *geometry.SingularityError
	assert.True(t, errors.As(err, &singErr))
}

func TestBuildRejectsBadMRange(t *testing.T) {
	grid, field := testGridField(t, 4, 2)

	var cfgErr *geometry.ConfigurationError
	_, err := Build(grid, field, Config{MStart: 3})
	assert.True(t, errors.As(err, &cfgErr))
	_, err = Build(grid, field, Config{MStart: -1, MEnd: 2})
	assert.True(t, errors.As(err, &cfgErr))
	_, err = Build(grid, field, Config{MEnd: 9})
	assert.True(t, errors.As(err, &cfgErr))
}

func TestFacesCounts(t *testing.T) {
	grid, field := testGridField(t, 5, 4)
	mCells := grid.M - 1
	sCells := grid.S - 1

	b, err := Build(grid, field, Config{Leading: UniformThickness(0.01)})
	require.NoError(t, err)

	assert.Len(t, b.LeadingEdgeFaces(), sCells)
	assert.Len(t, b.TrailingEdgeFaces(), sCells)
	assert.Len(t, b.PressureSideFaces(), mCells*sCells)
	assert.Len(t, b.SuctionSideFaces(), mCells*sCells)
	assert.Len(t, b.HubEdgeFaces(), mCells)
	assert.Len(t, b.ShroudEdgeFaces(), mCells)

	// No caps: edges plus both sides.
	assert.Len(t, b.Faces(), 2*sCells+2*mCells*sCells)

	// Both caps enabled.
	b2, err := Build(grid, field, Config{HubEdge: true, ShroudEdge: true})
	require.NoError(t, err)
	assert.Len(t, b2.Faces(), 2*sCells+2*mCells*sCells+2*mCells)
}

func TestFacesAllFinite(t *testing.T) {
	grid, field := testGridField(t, 4, 3)
	b, err := Build(grid, field, Config{
		Leading:    TaperedThickness(0.02),
		Trailing:   TaperedThickness(0.02),
		Offset:     math.Pi / 3,
		HubEdge:    true,
		ShroudEdge: true,
	})
	require.NoError(t, err)

	for _, f := range b.Faces() {
		require.Len(t, f, 4)
		for _, v := range f {
			assert.False(t, math.IsNaN(v.X) || math.IsInf(v.X, 0))
			assert.False(t, math.IsNaN(v.Y) || math.IsInf(v.Y, 0))
			assert.False(t, math.IsNaN(v.Z) || math.IsInf(v.Z, 0))
		}
	}
}

func TestSplitterBladeRange(t *testing.T) {
	grid, field := testGridField(t, 6, 3)

	b, err := Build(grid, field, Config{MStart: 2, MEnd: 5})
	require.NoError(t, err)

	start, end := b.MRange()
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	// Faces only cover the restricted range; surfaces still span the grid.
	assert.Len(t, b.PressureSideFaces(), 3*(grid.S-1))
	rows, cols := b.ThL.Dims()
	assert.Equal(t, grid.M, rows)
	assert.Equal(t, grid.S, cols)
}
