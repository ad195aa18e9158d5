// Package kufs holds the concrete cross-covariance implementations behind
// the Kuf dispatch group.
package kufs

import (
	"github.com/nieomylnieja/rstgen/internal/testlib/inducing"
	"github.com/nieomylnieja/rstgen/internal/testlib/kernels/stationaries"
)

// KufPointsMatern52 computes the cross-covariance between inducing points
// and latent function values under a Matern 5/2 kernel.
func KufPointsMatern52(iv inducing.Points, k stationaries.Matern52) float64 {
	return k.Variance * float64(len(iv.Z))
}

// KufPointsRBF computes the cross-covariance between inducing points and
// latent function values under an RBF kernel.
func KufPointsRBF(iv inducing.Points, k stationaries.RBF) float64 {
	return k.Variance * float64(len(iv.Z))
}
