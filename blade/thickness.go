package blade

import "math"

// ThicknessPolicy gives the wall offset from the camberline at a normalized
// grid position, m and s in [0,1]. Must be non-negative, and by convention
// zero at the leading and trailing edges (m = 0 and m = 1) so the blade tips
// close without extra topology. Leading and trailing sides carry independent
// policies.
type ThicknessPolicy func(mNorm, sNorm float64) float64

// ZeroThickness collapses the surface onto the camberline. Every side quad
// degenerates and condenses to a triangle.
func ZeroThickness(mNorm, sNorm float64) float64 { return 0 }

// UniformThickness is a constant wall offset with sharp zero-thickness
// leading and trailing edges.
func UniformThickness(t float64) ThicknessPolicy {
	return func(mNorm, sNorm float64) float64 {
		if mNorm == 0 || mNorm == 1 {
			return 0
		}
		return t
	}
}

// TaperedThickness peaks at mid-chord and tapers sinusoidally to zero at both
// edges, a smoother profile than the uniform cut-off.
func TaperedThickness(peak float64) ThicknessPolicy {
	return func(mNorm, sNorm float64) float64 {
		return peak * math.Sin(math.Pi*mNorm)
	}
}
