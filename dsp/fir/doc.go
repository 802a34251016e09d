// Package fir designs finite impulse response filters with the window
// method: the ideal band response's sinc kernel is truncated to order+1
// taps, shaped by a window function, and rescaled to unit passband gain.
// A Kaiser-windowed Hilbert transformer is also provided.
package fir
