package designer

import (
	"errors"

	"github.com/cwbudde/algo-filter/dsp/fir"
	"github.com/cwbudde/algo-filter/dsp/iir"
	"github.com/cwbudde/algo-filter/dsp/rep"
	"github.com/cwbudde/algo-filter/dsp/window"
)

// ErrInvalidSampleRate indicates a non-positive sample rate.
var ErrInvalidSampleRate = errors.New("designer: sample rate must be positive")

// Option configures a design call.
type Option func(*config)

type config struct {
	prototype iir.Prototype
	ripple    float64
	pairing   iir.Pairing
	window    window.Type
}

func defaultConfig() config {
	return config{
		prototype: iir.PrototypeButterworth,
		pairing:   iir.PairNearest,
		window:    window.TypeHamming,
	}
}

// WithPrototype selects the analog prototype family for IIR designs.
func WithPrototype(p iir.Prototype) Option {
	return func(c *config) {
		c.prototype = p
	}
}

// WithRipple sets the ripple parameter in dB. It acts as the passband
// ripple for Chebyshev I designs and the stopband attenuation for
// Chebyshev II designs; other prototypes ignore it.
func WithRipple(db float64) Option {
	return func(c *config) {
		c.ripple = db
	}
}

// WithPairing selects the pole/zero pairing policy for SOS designs.
func WithPairing(p iir.Pairing) Option {
	return func(c *config) {
		c.pairing = p
	}
}

// WithWindow selects the window for FIR designs.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// ripples splits the single ripple knob into the passband/stopband pair
// the design pipeline expects for the selected prototype.
func (c config) ripples() (rp, rs float64) {
	switch c.prototype {
	case iir.PrototypeChebyshevI:
		return c.ripple, 0
	case iir.PrototypeChebyshevII:
		return 0, c.ripple
	default:
		return 0, 0
	}
}

func normalize(fc, fs float64) (float64, error) {
	if fs <= 0 {
		return 0, ErrInvalidSampleRate
	}

	return fc / (fs / 2), nil
}

// LowpassSOS designs a digital lowpass filter of the given order with
// cutoff fc in hertz at sample rate fs, returned as second-order sections.
func LowpassSOS(order int, fc, fs float64, opts ...Option) (rep.SOS, error) {
	cfg := applyOptions(opts)

	r, err := normalize(fc, fs)
	if err != nil {
		return rep.SOS{}, err
	}

	rp, rs := cfg.ripples()

	return iir.DesignSOS(order, []float64{r}, rp, rs,
		iir.BandLowpass, cfg.prototype, iir.DomainDigital, cfg.pairing)
}

// HighpassSOS designs a digital highpass filter with cutoff fc in hertz.
func HighpassSOS(order int, fc, fs float64, opts ...Option) (rep.SOS, error) {
	cfg := applyOptions(opts)

	r, err := normalize(fc, fs)
	if err != nil {
		return rep.SOS{}, err
	}

	rp, rs := cfg.ripples()

	return iir.DesignSOS(order, []float64{r}, rp, rs,
		iir.BandHighpass, cfg.prototype, iir.DomainDigital, cfg.pairing)
}

// BandpassSOS designs a digital bandpass filter with edges f1 < f2 in hertz.
func BandpassSOS(order int, f1, f2, fs float64, opts ...Option) (rep.SOS, error) {
	cfg := applyOptions(opts)

	r1, err := normalize(f1, fs)
	if err != nil {
		return rep.SOS{}, err
	}

	r2, _ := normalize(f2, fs)
	rp, rs := cfg.ripples()

	return iir.DesignSOS(order, []float64{r1, r2}, rp, rs,
		iir.BandBandpass, cfg.prototype, iir.DomainDigital, cfg.pairing)
}

// BandstopSOS designs a digital bandstop filter with edges f1 < f2 in hertz.
func BandstopSOS(order int, f1, f2, fs float64, opts ...Option) (rep.SOS, error) {
	cfg := applyOptions(opts)

	r1, err := normalize(f1, fs)
	if err != nil {
		return rep.SOS{}, err
	}

	r2, _ := normalize(f2, fs)
	rp, rs := cfg.ripples()

	return iir.DesignSOS(order, []float64{r1, r2}, rp, rs,
		iir.BandBandstop, cfg.prototype, iir.DomainDigital, cfg.pairing)
}

// LowpassBA designs a digital lowpass filter and returns transfer-function
// coefficients. Cascaded sections are numerically preferable for orders
// above roughly six; this form suits direct-form implementations.
func LowpassBA(order int, fc, fs float64, opts ...Option) (rep.BA, error) {
	cfg := applyOptions(opts)

	r, err := normalize(fc, fs)
	if err != nil {
		return rep.BA{}, err
	}

	rp, rs := cfg.ripples()

	return iir.DesignBA(order, []float64{r}, rp, rs,
		iir.BandLowpass, cfg.prototype, iir.DomainDigital)
}

// HighpassBA designs a digital highpass filter as transfer-function
// coefficients.
func HighpassBA(order int, fc, fs float64, opts ...Option) (rep.BA, error) {
	cfg := applyOptions(opts)

	r, err := normalize(fc, fs)
	if err != nil {
		return rep.BA{}, err
	}

	rp, rs := cfg.ripples()

	return iir.DesignBA(order, []float64{r}, rp, rs,
		iir.BandHighpass, cfg.prototype, iir.DomainDigital)
}

// LowpassFIR designs a windowed-sinc lowpass filter with cutoff fc in hertz.
func LowpassFIR(order int, fc, fs float64, opts ...Option) (rep.FIR, error) {
	cfg := applyOptions(opts)

	r, err := normalize(fc, fs)
	if err != nil {
		return rep.FIR{}, err
	}

	return fir.Lowpass(order, r, cfg.window)
}

// HighpassFIR designs a windowed-sinc highpass filter with cutoff fc in
// hertz. The order must be even.
func HighpassFIR(order int, fc, fs float64, opts ...Option) (rep.FIR, error) {
	cfg := applyOptions(opts)

	r, err := normalize(fc, fs)
	if err != nil {
		return rep.FIR{}, err
	}

	return fir.Highpass(order, r, cfg.window)
}

// BandpassFIR designs a windowed-sinc bandpass filter with edges f1 < f2
// in hertz.
func BandpassFIR(order int, f1, f2, fs float64, opts ...Option) (rep.FIR, error) {
	cfg := applyOptions(opts)

	r1, err := normalize(f1, fs)
	if err != nil {
		return rep.FIR{}, err
	}

	r2, _ := normalize(f2, fs)

	return fir.Bandpass(order, r1, r2, cfg.window)
}

// BandstopFIR designs a windowed-sinc bandstop filter with edges f1 < f2
// in hertz. The order must be even.
func BandstopFIR(order int, f1, f2, fs float64, opts ...Option) (rep.FIR, error) {
	cfg := applyOptions(opts)

	r1, err := normalize(f1, fs)
	if err != nil {
		return rep.FIR{}, err
	}

	r2, _ := normalize(f2, fs)

	return fir.Bandstop(order, r1, r2, cfg.window)
}
