// Command filterinfo designs a digital filter and prints its coefficients
// and frequency response.
//
// Usage:
//
//	filterinfo [flags]
//
// Examples:
//
//	filterinfo -band lowpass -order 4 -cutoff 0.25
//	filterinfo -band bandpass -order 3 -cutoff 0.2,0.5 -prototype cheby1 -ripple 1
//	filterinfo -band highpass -order 6 -cutoff 0.3 -rep ba
//	filterinfo -fir -band lowpass -order 32 -cutoff 0.25 -window hann
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/dsp/fir"
	"github.com/cwbudde/algo-filter/dsp/iir"
	"github.com/cwbudde/algo-filter/dsp/rep"
	"github.com/cwbudde/algo-filter/dsp/response"
	"github.com/cwbudde/algo-filter/dsp/window"
)

var bands = map[string]iir.Band{
	"lowpass":  iir.BandLowpass,
	"highpass": iir.BandHighpass,
	"bandpass": iir.BandBandpass,
	"bandstop": iir.BandBandstop,
}

var prototypes = map[string]iir.Prototype{
	"butterworth": iir.PrototypeButterworth,
	"bessel":      iir.PrototypeBessel,
	"cheby1":      iir.PrototypeChebyshevI,
	"cheby2":      iir.PrototypeChebyshevII,
}

var windows = map[string]window.Type{
	"hamming":  window.TypeHamming,
	"bartlett": window.TypeBartlett,
	"hann":     window.TypeHann,
	"blackman": window.TypeBlackmanOpt,
}

func main() {
	band := flag.String("band", "lowpass", "band type: lowpass, highpass, bandpass, bandstop")
	order := flag.Int("order", 4, "filter order")
	cutoff := flag.String("cutoff", "0.25", "cutoff as a fraction of Nyquist; two comma-separated values for bandpass/bandstop")
	proto := flag.String("prototype", "butterworth", "analog prototype: butterworth, bessel, cheby1, cheby2")
	ripple := flag.Float64("ripple", 1, "passband ripple (cheby1) or stopband attenuation (cheby2) in dB")
	repFlag := flag.String("rep", "sos", "IIR output representation: sos or ba")
	useFIR := flag.Bool("fir", false, "design a windowed-sinc FIR filter instead of an IIR filter")
	winName := flag.String("window", "hamming", "FIR window: hamming, bartlett, hann, blackman")
	points := flag.Int("points", 9, "number of response table rows")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a digital filter and prints coefficients and response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	freqs, err := parseCutoffs(*cutoff)
	if err != nil {
		fatal(err)
	}

	b, ok := bands[strings.ToLower(*band)]
	if !ok {
		fatal(fmt.Errorf("unknown band %q", *band))
	}

	if *useFIR {
		runFIR(b, *order, freqs, strings.ToLower(*winName), *points)
		return
	}

	p, ok := prototypes[strings.ToLower(*proto)]
	if !ok {
		fatal(fmt.Errorf("unknown prototype %q", *proto))
	}

	runIIR(b, p, *order, freqs, *ripple, strings.ToLower(*repFlag), *points)
}

func parseCutoffs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")

	freqs := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad cutoff %q: %w", p, err)
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}

func runIIR(band iir.Band, proto iir.Prototype, order int, freqs []float64, ripple float64, repName string, points int) {
	var rp, rs float64
	switch proto {
	case iir.PrototypeChebyshevI:
		rp = ripple
	case iir.PrototypeChebyshevII:
		rs = ripple
	}

	switch repName {
	case "sos":
		sos, err := iir.DesignSOS(order, freqs, rp, rs, band, proto, iir.DomainDigital, iir.PairNearest)
		if err != nil {
			fatal(err)
		}
		printSOS(sos)

		h, err := response.SOSFreqz(sos, responseGrid(points))
		if err != nil {
			fatal(err)
		}
		printResponse(h, points)
	case "ba":
		ba, err := iir.DesignBA(order, freqs, rp, rs, band, proto, iir.DomainDigital)
		if err != nil {
			fatal(err)
		}
		printBA(ba)

		h, err := response.Freqz(ba, responseGrid(points))
		if err != nil {
			fatal(err)
		}
		printResponse(h, points)
	default:
		fatal(fmt.Errorf("unknown representation %q", repName))
	}
}

func runFIR(band iir.Band, order int, freqs []float64, winName string, points int) {
	win, ok := windows[winName]
	if !ok {
		fatal(fmt.Errorf("unknown window %q", winName))
	}

	var (
		f   rep.FIR
		err error
	)

	switch band {
	case iir.BandLowpass:
		f, err = fir.Lowpass(order, freqs[0], win)
	case iir.BandHighpass:
		f, err = fir.Highpass(order, freqs[0], win)
	case iir.BandBandpass:
		if len(freqs) != 2 {
			fatal(fmt.Errorf("bandpass needs two cutoffs"))
		}
		f, err = fir.Bandpass(order, freqs[0], freqs[1], win)
	case iir.BandBandstop:
		if len(freqs) != 2 {
			fatal(fmt.Errorf("bandstop needs two cutoffs"))
		}
		f, err = fir.Bandstop(order, freqs[0], freqs[1], win)
	}
	if err != nil {
		fatal(err)
	}

	fmt.Printf("FIR taps (%d):\n", len(f.Taps))
	for i, h := range f.Taps {
		fmt.Printf("  h[%2d] = %+.10f\n", i, h)
	}

	ba := rep.BA{B: f.Taps, A: []float64{1}}
	h, err := response.Freqz(ba, responseGrid(points))
	if err != nil {
		fatal(err)
	}
	printResponse(h, points)
}

func responseGrid(points int) []float64 {
	w := make([]float64, points)
	for i := range w {
		w[i] = math.Pi * float64(i) / float64(points-1)
	}
	return w
}

func printSOS(sos rep.SOS) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Section\tb0\tb1\tb2\ta1\ta2\n")
	for i, s := range sos.Sections {
		fmt.Fprintf(tw, "%d\t%+.8f\t%+.8f\t%+.8f\t%+.8f\t%+.8f\n",
			i, s.B0, s.B1, s.B2, s.A1, s.A2)
	}
	if err := tw.Flush(); err != nil {
		fatal(err)
	}
}

func printBA(ba rep.BA) {
	fmt.Println("Numerator:")
	for i, b := range ba.B {
		fmt.Printf("  b[%2d] = %+.10f\n", i, b)
	}
	fmt.Println("Denominator:")
	for i, a := range ba.A {
		fmt.Printf("  a[%2d] = %+.10f\n", i, a)
	}
}

func printResponse(h []complex128, points int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nFreq [xNyquist]\tMagnitude\tMagnitude [dB]\tPhase [rad]\n")
	for i, hi := range h {
		f := float64(i) / float64(points-1)
		mag := math.Hypot(real(hi), imag(hi))
		db := 20 * math.Log10(mag)
		phase := math.Atan2(imag(hi), real(hi))
		fmt.Fprintf(tw, "%.3f\t%.6f\t%+.2f\t%+.4f\n", f, mag, db, phase)
	}
	if err := tw.Flush(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
