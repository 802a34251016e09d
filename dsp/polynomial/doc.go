// Package polynomial provides the root-finding and polynomial expansion
// engine behind the IIR design pipeline.
//
// Coefficients are always ordered from the highest power down to the
// constant term, matching the transfer-function convention in dsp/rep.
//
// [Roots] finds the complex roots of a real polynomial by building its
// companion matrix and computing the eigenvalues with a dense real
// eigen-decomposition. [Poly] is the inverse operation, expanding a root set
// into monic coefficients. [Polyval] and [PolyvalComplex] evaluate a
// polynomial at a set of points with Horner's method.
package polynomial
