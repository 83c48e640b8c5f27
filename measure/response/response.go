package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const defaultFFTSize = 4096

// Errors returned by Measure.
var (
	ErrNilProcessor      = errors.New("response: processor is nil")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// Processor is a mono filter stage measurable by this package.
// Both biquad.Section and bandpass.Filter satisfy it.
type Processor interface {
	ProcessSample(x float64) float64
	Reset()
}

// Config holds measurement parameters.
type Config struct {
	SampleRate float64
	FFTSize    int // rounded up to a power of two; defaults to 4096
}

// Result holds a measured magnitude response over [0, Nyquist].
type Result struct {
	BinHz       float64   // frequency spacing between bins
	MagnitudeDB []float64 // one entry per bin, bin 0 = DC
}

// Measure captures the processor's impulse response and transforms it
// into a magnitude spectrum in dB. The processor is reset before the
// impulse and left reset afterwards.
//
// The measurement window equals the FFT size, so responses that decay
// slower than that are truncated; pick an FFT size comfortably longer
// than the filter's ring-out.
func Measure(p Processor, cfg Config) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProcessor
	}

	cfg = normalizeConfig(cfg)
	if cfg.SampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}

	n := cfg.FFTSize

	p.Reset()

	inData := make([]complex128, n)
	inData[0] = complex(p.ProcessSample(1), 0)
	for i := 1; i < n; i++ {
		inData[i] = complex(p.ProcessSample(0), 0)
	}
	p.Reset()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("response: init fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("response: forward fft: %w", err)
	}

	// Keep the non-negative frequency half, bin 0 through Nyquist.
	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	for i, m := range mag {
		mag[i] = ratioToDB(m)
	}

	return Result{
		BinHz:       cfg.SampleRate / float64(n),
		MagnitudeDB: mag,
	}, nil
}

// At returns the magnitude in dB at freqHz, linearly interpolated
// between the two neighboring bins. Frequencies outside [0, Nyquist]
// clamp to the edge bins.
func (r Result) At(freqHz float64) float64 {
	if len(r.MagnitudeDB) == 0 || r.BinHz <= 0 {
		return math.Inf(-1)
	}

	pos := freqHz / r.BinHz
	if pos <= 0 {
		return r.MagnitudeDB[0]
	}

	last := len(r.MagnitudeDB) - 1
	if pos >= float64(last) {
		return r.MagnitudeDB[last]
	}

	lo := int(pos)
	frac := pos - float64(lo)
	return r.MagnitudeDB[lo]*(1-frac) + r.MagnitudeDB[lo+1]*frac
}

// PeakHz returns the center frequency of the loudest bin.
func (r Result) PeakHz() float64 {
	bestBin := 0
	bestVal := math.Inf(-1)
	for i, db := range r.MagnitudeDB {
		if db > bestVal {
			bestVal = db
			bestBin = i
		}
	}

	return float64(bestBin) * r.BinHz
}

func normalizeConfig(cfg Config) Config {
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = defaultFFTSize
	}

	cfg.FFTSize = nextPowerOf2(cfg.FFTSize)

	return cfg
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
