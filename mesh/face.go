// Package mesh holds the polygon soup produced by blade and assembly face
// generation: triangles and quads with per-face vertex copies, no shared
// topology. STL consumers do not need shared indices.
package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Face is an ordered ring of 3 or 4 Cartesian vertices with consistent
// winding.
type Face []r3.Vec

// Mesh is an unordered face list. Order carries no meaning, only
// completeness.
type Mesh []Face

// ShapeError reports a face with a vertex count the sanitizer cannot handle.
// It marks a defect in an upstream face producer, not a recoverable runtime
// condition.
type ShapeError struct {
	Vertices int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("face has %d vertices, expected 3 or 4", e.Vertices)
}

// Condense collapses a quad with two cyclically-adjacent coincident vertices
// (exact value equality) into a triangle by dropping one of the pair, keeping
// the relative order of the rest. Triangles pass through unchanged, so the
// operation is idempotent. Any other vertex count is a ShapeError.
func Condense(f Face) (Face, error) {
	switch len(f) {
	case 3:
		return f, nil
	case 4:
		for i := range f {
			prev := (i + 3) % 4
			if f[i] == f[prev] {
				out := make(Face, 0, 3)
				out = append(out, f[:i]...)
				out = append(out, f[i+1:]...)
				return out, nil
			}
		}
		return f, nil
	default:
		return nil, &ShapeError{Vertices: len(f)}
	}
}

// Condense sanitizes every face of the mesh, collapsing degenerate quads.
func (m Mesh) Condense() (Mesh, error) {
	out := make(Mesh, 0, len(m))
	for i, f := range m {
		cf, err := Condense(f)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		out = append(out, cf)
	}
	return out, nil
}
