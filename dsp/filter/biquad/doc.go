// Package biquad provides the biquad (second-order IIR) filter runtime.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Coefficient design lives
// in dsp/filter/bandpass; this package only stores a coefficient set and
// applies it sample by sample.
package biquad
