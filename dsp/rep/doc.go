// Package rep defines the filter representations exchanged between design
// and execution code.
//
// A filter design is returned in one of four equivalent value forms:
//
//   - [ZPK]: complex zeros, complex poles, and a real gain
//   - [BA]: transfer-function numerator/denominator coefficients
//   - [SOS]: a cascade of second-order (biquad) sections
//   - [FIR]: a plain tap sequence
//
// All types are plain values with no hidden state. A design call produces a
// representation and hands it to the caller; nothing here mutates after
// construction, so sharing across goroutines is safe as long as the caller
// does not write into the slices.
//
// Conversions between the forms live in dsp/iir.
package rep
