package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Intersection2D finds the intersection of the infinite lines a1-a2 and
// b1-b2. Parallel (or coincident) lines have a zero determinant and return a
// SingularityError.
func Intersection2D(a1, a2, b1, b2 r2.Vec) (r2.Vec, error) {
	det := (a1.X-a2.X)*(b1.Y-b2.Y) - (a1.Y-a2.Y)*(b1.X-b2.X)
	if det == 0 {
		return r2.Vec{}, &SingularityError{
			Op:     "Intersection2D",
			Detail: fmt.Sprintf("lines %v-%v and %v-%v are parallel", a1, a2, b1, b2),
		}
	}
	crossA := a1.X*a2.Y - a1.Y*a2.X
	crossB := b1.X*b2.Y - b1.Y*b2.X
	return r2.Vec{
		X: ((b1.X-b2.X)*crossA - (a1.X-a2.X)*crossB) / det,
		Y: ((b1.Y-b2.Y)*crossA - (a1.Y-a2.Y)*crossB) / det,
	}, nil
}

// RTZToXYZ projects a cylindrical (r, th, z) point to Cartesian coordinates.
func RTZToXYZ(r, th, z float64) r3.Vec {
	return r3.Vec{
		X: r * math.Cos(th),
		Y: r * math.Sin(th),
		Z: z,
	}
}
