// Package kernelapprox provides kernel approximation transformers.
//
// RBFSampler implements Random Fourier Features for the Gaussian (RBF)
// kernel following Rahimi & Recht (NIPS 2007): input vectors are projected
// onto random directions drawn from the kernel's Fourier spectrum and
// passed through a cosine, so that dot products in the transformed space
// approximate Gaussian kernel values in the original space. Approximation
// quality depends on the output dimension, not on the number of samples,
// which lets linear models stand in for Gaussian-kernel models at linear
// cost.
//
// Two independently transformed datasets are only mutually comparable if
// they share identical random coefficients. Use Coefficients and
// SetCoefficients to hand the randomness of one sampler to another before
// transforming a second split.
package kernelapprox
