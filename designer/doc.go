// Package designer offers one-call band-design entry points for callers
// that think in sample rates and hertz rather than normalized frequencies.
// Each function normalizes the cutoffs against Nyquist, runs the matching
// design pipeline and returns the coefficients; options select the analog
// prototype, ripple, section pairing and FIR window.
package designer
