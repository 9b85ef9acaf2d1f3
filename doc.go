// Package scikern provides kernel approximation primitives for Go,
// designed for backend services that need Gaussian-kernel behavior at
// linear-kernel cost.
//
// The flagship component is the Random Fourier Features sampler
// (kernelapprox.RBFSampler): it projects feature vectors into a
// finite-dimensional random feature space whose dot products approximate
// the Gaussian (RBF) kernel, following Rahimi & Recht (NIPS 2007). Any
// linear model trained on the transformed features then behaves
// approximately like its Gaussian-kernel counterpart, without ever
// materializing an N x N kernel matrix.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/scikern/kernelapprox"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // 4 samples, 2 features each
//	    X := mat.NewDense(4, 2, []float64{
//	        0.0, 0.0,
//	        0.5, 1.0,
//	        1.0, 0.5,
//	        1.0, 1.0,
//	    })
//
//	    sampler := kernelapprox.NewRBFSampler(
//	        kernelapprox.WithKernelWidth(1.0),
//	        kernelapprox.WithOutputDim(512),
//	        kernelapprox.WithRandomState(42),
//	    )
//
//	    features, err := sampler.FitTransform(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    r, c := features.Dims()
//	    fmt.Printf("random features: %d x %d\n", r, c)
//	}
//
// # Cross-Dataset Compatibility
//
// Two independently transformed datasets are only comparable if they were
// produced with identical random coefficients. Hand the coefficients of a
// fitted sampler to a second one before transforming the second split:
//
//	cs, _ := trainSampler.Coefficients()
//	testSampler := kernelapprox.NewRBFSampler(kernelapprox.WithKernelWidth(1.0))
//	_ = testSampler.SetCoefficients(cs)
//
// # Packages
//
//   - kernelapprox: the Random Fourier Features sampler and its coefficient set
//   - metrics: Gaussian-kernel ground truth and approximation-error measurement
//   - core/model: estimator lifecycle interfaces shared by transformers
//   - core/parallel: CPU-parallel helpers used by the matrix transform
//   - pkg/errors: structured errors with stack traces and zerolog support
//   - pkg/log: structured logging setup
//
// For usage examples, see the examples directory.
package scikern
