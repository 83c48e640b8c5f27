// Package bandpass designs and runs a constant-skirt-gain band-pass
// biquad (RBJ cookbook variant, peak gain = Q).
//
// [Params] is the pure coefficient designer; [Filter] couples a
// parameter set with a [biquad.Section] and keeps the section's
// coefficients synchronized whenever frequency, Q, or sample rate
// change.
package bandpass
