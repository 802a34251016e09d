package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeHamming Type = iota
	TypeBartlett
	TypeHann
	TypeBlackmanOpt
	TypeKaiser
)

// Option configures window generation.
type Option func(*config)

type config struct {
	beta float64
}

func defaultConfig() config {
	return config{beta: 8}
}

// WithBeta sets the Kaiser shape parameter. It is ignored by the fixed
// windows.
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// Cosine-sum coefficients, sign folded in: w(x) = sum c_k cos(2*pi*k*x).
var (
	hammingCoeffs     = []float64{0.54, -0.46}
	hannCoeffs        = []float64{0.5, -0.5}
	blackmanOptCoeffs = []float64{7938.0 / 18608.0, -9240.0 / 18608.0, 1430.0 / 18608.0}
)

// Generate returns symmetric window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length)
		out[i] = evalWindow(t, x, cfg)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int) ([]float64, error) {
	return Generate(TypeHamming, size), validateLength(size)
}

// Bartlett returns Bartlett (triangle) window coefficients.
func Bartlett(size int) ([]float64, error) {
	return Generate(TypeBartlett, size), validateLength(size)
}

// Hann returns Hann window coefficients.
func Hann(size int) ([]float64, error) {
	return Generate(TypeHann, size), validateLength(size)
}

// BlackmanOpt returns optimal Blackman window coefficients.
func BlackmanOpt(size int) ([]float64, error) {
	return Generate(TypeBlackmanOpt, size), validateLength(size)
}

// Kaiser returns Kaiser window coefficients for the given shape parameter.
// Beta values large enough to overflow the I0 normalization are rejected.
func Kaiser(size int, beta float64) ([]float64, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	return Generate(TypeKaiser, size, WithBeta(beta)), nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	switch t {
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeBlackmanOpt:
		return cosineFromCoeffs(x, blackmanOptCoeffs)
	case TypeKaiser:
		return kaiserAt(x, cfg.beta)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0.5
	}

	return float64(n) / float64(size-1)
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// MaxKaiserBeta is the largest accepted Kaiser shape parameter. Beyond this
// the I0(beta) normalization overflows float64.
const MaxKaiserBeta = 700.0

// besselI0 returns a numerical approximation of the modified Bessel
// function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
