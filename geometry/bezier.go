package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// BezierCurve is a 1D Bezier curve over 2D control points, evaluated with the
// closed-form Bernstein polynomial sum. Supported orders are 2 (linear),
// 3 (quadratic) and 4 (cubic).
type BezierCurve struct {
	Ctrl  []r2.Vec
	Order int
}

// NewBezierCurve creates a curve from its control points.
func NewBezierCurve(ctrl []r2.Vec) (*BezierCurve, error) {
	order := len(ctrl)
	if order < 2 || order > 4 {
		return nil, &ConfigurationError{
			Detail: fmt.Sprintf("bezier curve order %d unsupported, need 2..4", order),
		}
	}
	return &BezierCurve{Ctrl: ctrl, Order: order}, nil
}

// At evaluates the curve at u in [0,1].
func (c *BezierCurve) At(u float64) (r2.Vec, error) {
	if u < 0 || u > 1 {
		return r2.Vec{}, &DomainError{Name: "u", Value: u}
	}
	w := 1 - u
	switch c.Order {
	case 2:
		return r2.Add(
			r2.Scale(w, c.Ctrl[0]),
			r2.Scale(u, c.Ctrl[1])), nil
	case 3:
		return r2.Add(r2.Add(
			r2.Scale(w*w, c.Ctrl[0]),
			r2.Scale(2*u*w, c.Ctrl[1])),
			r2.Scale(u*u, c.Ctrl[2])), nil
	case 4:
		return r2.Add(r2.Add(
			r2.Scale(w*w*w, c.Ctrl[0]),
			r2.Scale(3*u*w*w, c.Ctrl[1])),
			r2.Add(
				r2.Scale(3*u*u*w, c.Ctrl[2]),
				r2.Scale(u*u*u, c.Ctrl[3]))), nil
	}
	// Unreachable: order is validated at construction.
	return r2.Vec{}, &ConfigurationError{Detail: fmt.Sprintf("bezier curve order %d unsupported", c.Order)}
}

// BezierSurface is a 2D Bezier patch over a rectangular control net.
// Ctrl[i][j] is the control point at u-row i, v-column j.
type BezierSurface struct {
	Ctrl   [][]r2.Vec
	OrderU int
	OrderV int
}

// NewBezierSurface creates a surface from a rectangular control net. Both
// axis orders must be in 2..4 and all rows must have equal length.
func NewBezierSurface(ctrl [][]r2.Vec) (*BezierSurface, error) {
	orderU := len(ctrl)
	if orderU < 2 || orderU > 4 {
		return nil, &ConfigurationError{
			Detail: fmt.Sprintf("bezier surface u-order %d unsupported, need 2..4", orderU),
		}
	}
	orderV := len(ctrl[0])
	for i, row := range ctrl {
		if len(row) != orderV {
			return nil, &ConfigurationError{
				Detail: fmt.Sprintf("bezier surface control row %d has %d points, expected %d", i, len(row), orderV),
			}
		}
	}
	if orderV < 2 || orderV > 4 {
		return nil, &ConfigurationError{
			Detail: fmt.Sprintf("bezier surface v-order %d unsupported, need 2..4", orderV),
		}
	}
	return &BezierSurface{Ctrl: ctrl, OrderU: orderU, OrderV: orderV}, nil
}

// At evaluates the surface at (u, v), both in [0,1]. The v axis is reduced
// first: each control row is evaluated at v, and the resulting points form a
// 1D curve evaluated at u. Not the fastest scheme (graphics code would use
// De Casteljau), but exact and simple.
func (s *BezierSurface) At(u, v float64) (r2.Vec, error) {
	reduced := make([]r2.Vec, s.OrderU)
	for i := range s.Ctrl {
		row, err := NewBezierCurve(s.Ctrl[i])
		if err != nil {
			return r2.Vec{}, err
		}
		pt, err := row.At(v)
		if err != nil {
			return r2.Vec{}, err
		}
		reduced[i] = pt
	}
	cu, err := NewBezierCurve(reduced)
	if err != nil {
		return r2.Vec{}, err
	}
	return cu.At(u)
}
