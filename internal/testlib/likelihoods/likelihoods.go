// Package likelihoods defines the observation models of the sample library.
package likelihoods

// Gaussian is a homoscedastic Gaussian observation model.
type Gaussian struct {
	Variance float64
}

// Bernoulli is a binary classification observation model.
type Bernoulli struct{}
