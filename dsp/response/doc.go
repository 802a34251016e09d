// Package response evaluates the frequency response of designed filters:
// analog transfer functions on the imaginary axis, digital transfer
// functions and cascades on the unit circle, group delay, and FFT-grid
// magnitude responses for FIR taps.
package response
