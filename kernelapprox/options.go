package kernelapprox

import "math/rand"

// Option is a function that configures RBFSampler
type Option func(*RBFSampler)

// WithKernelWidth sets the Gaussian kernel width σ.
// Non-positive values are ignored and leave the width unconfigured.
func WithKernelWidth(w float64) Option {
	return func(s *RBFSampler) {
		if w > 0 {
			s.kernelWidth = w
			s.hasKernelWidth = true
		}
	}
}

// WithInputDim sets the dimensionality of the original feature space.
// Usually unnecessary: Fit reads it from the data.
func WithInputDim(d int) Option {
	return func(s *RBFSampler) {
		if d > 0 {
			s.inputDim = d
		}
	}
}

// WithOutputDim sets the dimensionality of the random feature space.
func WithOutputDim(d int) Option {
	return func(s *RBFSampler) {
		if d > 0 {
			s.outputDim = d
		}
	}
}

// WithRandomState sets the seed for coefficient generation, making it
// reproducible. A negative seed selects a time-based source.
func WithRandomState(seed int64) Option {
	return func(s *RBFSampler) {
		s.randomState = seed
		if seed >= 0 {
			s.rng = rand.New(rand.NewSource(seed))
		}
	}
}
