package bandpass

import (
	"math"

	"github.com/cwbudde/algo-bandpass/dsp/filter/biquad"
)

// Params holds the three design parameters of a constant-skirt-gain
// band-pass biquad. It is a plain value type; Coefficients derives the
// normalized coefficient set from it.
type Params struct {
	Frequency  float64 // center frequency in Hz
	Q          float64 // quality factor, higher = narrower pass-band
	SampleRate float64 // samples per second
}

// Coefficients derives the normalized biquad coefficients for the
// parameter set using the RBJ cookbook band-pass design with constant
// 0 dB skirt gain (peak gain = Q):
//
//	w0    = 2*pi*Frequency/SampleRate
//	alpha = sin(w0) / (2*Q)
//	b0 = Q*alpha, b1 = 0, b2 = -Q*alpha
//	a0 = 1+alpha, a1 = -2*cos(w0), a2 = 1-alpha
//
// all divided by a0. The result depends on Frequency and SampleRate
// only through their ratio.
//
// Inputs are not validated. SampleRate == 0 or Q == 0 divide by zero
// and yield non-finite coefficients that propagate into processing;
// supplying sane positive values is the caller's contract.
func (p Params) Coefficients() biquad.Coefficients {
	w0 := 2 * math.Pi * p.Frequency / p.SampleRate
	sw := math.Sin(w0)
	cw := math.Cos(w0)
	alpha := sw / (2 * p.Q)

	b0 := p.Q * alpha
	a0 := 1 + alpha

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: 0,
		B2: -b0 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

// Filter is a single mono band-pass filter stage: a parameter set plus
// the biquad section it keeps synchronized. Every parameter change
// recomputes the full coefficient set before returning, so the next
// processed sample already reflects it.
//
// Filter performs no locking; see [biquad.Section] for the
// single-writer contract.
type Filter struct {
	params  Params
	section biquad.Section
}

// New creates a band-pass filter and computes its initial coefficients.
// Zero values are accepted but degenerate, see [Params.Coefficients].
func New(frequency, q, sampleRate float64) *Filter {
	f := &Filter{params: Params{
		Frequency:  frequency,
		Q:          q,
		SampleRate: sampleRate,
	}}
	f.Calculate()

	return f
}

// SetFrequency sets the center frequency in Hz and recomputes.
func (f *Filter) SetFrequency(hz float64) {
	f.params.Frequency = hz
	f.Calculate()
}

// SetQ sets the quality factor and recomputes.
func (f *Filter) SetQ(q float64) {
	f.params.Q = q
	f.Calculate()
}

// SetSampleRate sets the sample rate in Hz and recomputes.
func (f *Filter) SetSampleRate(sampleRate float64) {
	f.params.SampleRate = sampleRate
	f.Calculate()
}

// Calculate recomputes the coefficients from the current parameters and
// installs the complete snapshot into the section in a single
// assignment. Idempotent: with unchanged parameters it reproduces the
// identical coefficient set. The section's delay line is not reset, so
// a mid-stream parameter change causes a short transient rather than a
// discontinuity.
func (f *Filter) Calculate() {
	f.section.SetCoefficients(f.params.Coefficients())
}

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float64) float64 {
	return f.section.ProcessSample(x)
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (f *Filter) ProcessBlock(buf []float64) {
	f.section.ProcessBlock(buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	f.section.ProcessBlockTo(dst, src)
}

// Reset clears the filter history without touching the coefficients.
func (f *Filter) Reset() {
	f.section.Reset()
}

// Frequency returns the current center frequency in Hz.
func (f *Filter) Frequency() float64 { return f.params.Frequency }

// Q returns the current quality factor.
func (f *Filter) Q() float64 { return f.params.Q }

// SampleRate returns the current sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.params.SampleRate }

// Params returns the current parameter set.
func (f *Filter) Params() Params { return f.params }

// Coefficients returns the coefficient set currently installed in the
// processing path.
func (f *Filter) Coefficients() biquad.Coefficients {
	return f.section.Coefficients
}
