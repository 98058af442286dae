package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestBezierCurveLinear(t *testing.T) {
	c, err := NewBezierCurve([]r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 4}})
	require.NoError(t, err)

	p0, err := c.At(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, p0.X, 1e-14)
	assert.InDelta(t, 0, p0.Y, 1e-14)

	pm, err := c.At(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1, pm.X, 1e-14)
	assert.InDelta(t, 2, pm.Y, 1e-14)

	p1, err := c.At(1)
	require.NoError(t, err)
	assert.InDelta(t, 2, p1.X, 1e-14)
	assert.InDelta(t, 4, p1.Y, 1e-14)
}

func TestBezierCurveQuadraticMidpoint(t *testing.T) {
	// Symmetric quadratic arch: midpoint is the Bernstein average
	// 0.25*P0 + 0.5*P1 + 0.25*P2.
	c, err := NewBezierCurve([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}})
	require.NoError(t, err)

	pm, err := c.At(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1, pm.X, 1e-14)
	assert.InDelta(t, 1, pm.Y, 1e-14)
}

func TestBezierCurveCubicEndpoints(t *testing.T) {
	pts := []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	c, err := NewBezierCurve(pts)
	require.NoError(t, err)

	p0, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, pts[0], p0)

	p1, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, pts[3], p1)
}

func TestBezierCurveUnsupportedOrder(t *testing.T) {
	_, err := NewBezierCurve([]r2.Vec{{X: 0, Y: 0}})
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))

	_, err = NewBezierCurve(make([]r2.Vec, 5))
	assert.True(t, errors.As(err, &cfgErr))
}

func TestBezierCurveDomainError(t *testing.T) {
	c, err := NewBezierCurve([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	_, err = c.At(-0.01)
	var domErr *DomainError
	require.True(t, errors.As(err, &domErr))
	assert.Equal(t, "u", domErr.Name)

	_, err = c.At(1.01)
	assert.True(t, errors.As(err, &domErr))
}

func TestBezierSurfaceBilinearCorners(t *testing.T) {
	ctrl := [][]r2.Vec{
		{{X: 0, Y: 0}, {X: 0, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}},
	}
	s, err := NewBezierSurface(ctrl)
	require.NoError(t, err)

	corners := []struct {
		u, v float64
		want r2.Vec
	}{
		{0, 0, ctrl[0][0]},
		{0, 1, ctrl[0][1]},
		{1, 0, ctrl[1][0]},
		{1, 1, ctrl[1][1]},
	}
	for _, tc := range corners {
		got, err := s.At(tc.u, tc.v)
		require.NoError(t, err)
		assert.InDelta(t, tc.want.X, got.X, 1e-14)
		assert.InDelta(t, tc.want.Y, got.Y, 1e-14)
	}

	// Center of a bilinear patch is the average of the four corners.
	mid, err := s.At(0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mid.X, 1e-14)
	assert.InDelta(t, 0.5, mid.Y, 1e-14)
}

func TestBezierSurfaceRaggedNet(t *testing.T) {
	_, err := NewBezierSurface([][]r2.Vec{
		{{X: 0, Y: 0}, {X: 0, Y: 1}},
		{{X: 1, Y: 0}},
	})
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}
