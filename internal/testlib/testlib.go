// Package testlib is a sample machine-learning library namespace. It mirrors
// the shape of a real library: kernels re-exported one level above their
// defining module, a multiple-dispatch covariance group, an internal
// dispatch-registration module and a utilities module that re-exports
// root-level helpers.
package testlib

import (
	"reflect"

	"github.com/nieomylnieja/rstgen/internal/testlib/covariances/kufs"
	"github.com/nieomylnieja/rstgen/internal/testlib/inducing"
	"github.com/nieomylnieja/rstgen/internal/testlib/kernels/stationaries"
	"github.com/nieomylnieja/rstgen/internal/testlib/likelihoods"
	"github.com/nieomylnieja/rstgen/pkg/dispatch"
	"github.com/nieomylnieja/rstgen/pkg/object"
)

// Name is the dotted name of the library root.
const Name = "testlib"

// ImportPath is the Go import path mapped onto Name.
const ImportPath = "github.com/nieomylnieja/rstgen/internal/testlib"

// ExcludedModule is the internal dispatch-registration module that must
// never be documented.
const ExcludedModule = "testlib.covariances.dispatch"

// DefaultJitter returns the jitter added to covariance matrices before
// factorization.
func DefaultJitter() float64 {
	return 1e-6
}

// Namespace builds the library's runtime namespace. Every call returns a
// fresh graph; aliases inside one graph still share identity.
func Namespace() *object.Module {
	matern52 := reflect.TypeOf(stationaries.Matern52{})
	rbf := reflect.TypeOf(stationaries.RBF{})
	points := reflect.TypeOf(inducing.Points{})

	stationariesMod := object.NewModule("testlib.kernels.stationaries").
		Set("Matern52", matern52).
		Set("RBF", rbf).
		Set("SquaredExponential", reflect.TypeOf(stationaries.SquaredExponential{})).
		Set("Scaled", stationaries.Scaled)

	kernels := object.NewModule("testlib.kernels").
		Set("Matern52", matern52).
		Set("RBF", rbf).
		Set("Scaled", stationaries.Scaled).
		Set("stationaries", stationariesMod)

	likelihoodsMod := object.NewModule("testlib.likelihoods").
		Set("Gaussian", reflect.TypeOf(likelihoods.Gaussian{})).
		Set("Bernoulli", reflect.TypeOf(likelihoods.Bernoulli{}))

	inducingMod := object.NewModule("testlib.inducing").
		Set("Points", points).
		Set("Multiscale", reflect.TypeOf(inducing.Multiscale{}))

	kuf := dispatch.New("Kuf")
	kuf.MustRegister(kufs.KufPointsMatern52, points, matern52)
	kuf.MustRegister(kufs.KufPointsRBF, points, rbf)

	kufsMod := object.NewModule("testlib.covariances.kufs").
		Set("KufPointsMatern52", kufs.KufPointsMatern52).
		Set("KufPointsRBF", kufs.KufPointsRBF)

	covariances := object.NewModule("testlib.covariances").
		Set("Kuf", kuf).
		Set("kufs", kufsMod).
		Set("dispatch", object.NewModule(ExcludedModule).Set("Kuf", kuf))

	utilities := object.NewModule("testlib.utilities").
		Set("DefaultJitter", DefaultJitter)

	return object.NewModule(Name).
		Set("kernels", kernels).
		Set("likelihoods", likelihoodsMod).
		Set("inducing", inducingMod).
		Set("covariances", covariances).
		Set("utilities", utilities).
		Set("_version", "1.0")
}
