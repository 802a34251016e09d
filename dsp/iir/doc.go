// Package iir designs digital and analog IIR filters from analog
// prototypes.
//
// A design request runs the classic pipeline: synthesize a normalized
// analog lowpass prototype ([Butterworth], [ChebyshevI], [ChebyshevII],
// [Bessel]), transform it to the requested band ([LP2LP], [LP2HP], [LP2BP],
// [LP2BS]), map analog to digital with the pre-warped bilinear transform
// ([Bilinear]), and convert to the caller's representation ([ZPK2TF],
// [ZPK2SOS]). [DesignZPK], [DesignBA], and [DesignSOS] run the whole
// pipeline from a single call.
//
// Digital critical frequencies are normalized fractions of the Nyquist
// frequency in (0, 1); analog critical frequencies are angular frequencies
// in rad/s. Every function is a pure function of its inputs; concurrent
// calls need no locking.
package iir
