// Package stationaries defines the stationary covariance kernels of the
// sample library.
package stationaries

// Matern52 is the Matern 5/2 covariance kernel. Sample paths drawn from a
// process with this kernel are twice differentiable.
type Matern52 struct {
	Variance    float64
	Lengthscale float64
}

// RBF is the radial basis function (squared exponential) kernel.
type RBF struct {
	Variance    float64
	Lengthscale float64
}

// SquaredExponential is the canonical name of the RBF kernel.
type SquaredExponential = RBF

// Scaled returns a copy of k with its variance multiplied by factor.
func Scaled(k RBF, factor float64) RBF {
	k.Variance *= factor
	return k
}
