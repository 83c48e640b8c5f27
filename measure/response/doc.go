// Package response measures the magnitude response of a running filter
// by capturing its impulse response and transforming it with an FFT.
//
// It complements the closed-form biquad.Coefficients.MagnitudeDB: the
// closed form evaluates the design, Measure observes the processing
// path actually in use, so the two agreeing is an end-to-end check.
package response
