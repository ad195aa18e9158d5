// Package inducing defines inducing variable containers used by the sparse
// approximations of the sample library.
package inducing

// Points holds real-space inducing point locations.
type Points struct {
	Z [][]float64
}

// Multiscale holds inducing points with per-point length scales.
type Multiscale struct {
	Points
	Scales [][]float64
}
