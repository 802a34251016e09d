// Package window generates the taper functions used by the windowed-sinc
// FIR designer.
//
// The set matches what the design entry points accept: Hamming, Bartlett,
// Hann, the optimal ("exact") Blackman, and a parametric Kaiser window for
// the Hilbert transformer. All windows are generated in their symmetric
// form, which is the form FIR design requires for linear phase.
package window
